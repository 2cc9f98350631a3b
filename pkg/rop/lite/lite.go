package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropauth/pkg/rop"
	"github.com/ib-77/ropauth/pkg/rop/core"
	"github.com/ib-77/ropauth/pkg/rop/mass"
)

// Run fans an engine over an input channel with a fixed number of lines,
// keeping the value type unchanged.
func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T],
	lines int) <-chan rop.Result[T] {

	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout fans an engine over an input channel with a fixed number of
// lines, possibly switching the value type.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out],
	lines int) <-chan rop.Result[Out] {

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, core.CancellationHandlers[In, Out]{}, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) func(ctx context.Context,
	input rop.Result[T]) <-chan rop.Result[T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return mass.Validating(ctx, input, validate, nil)
	}
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) rop.Result[Out]) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.Switching(ctx, input, switchOnSuccess, nil)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.Mapping(ctx, input, mapOnSuccess, nil)
	}
}

func DoubleMap[In, Out any](
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnError func(ctx context.Context, err error) Out,
	mapOnCancel func(ctx context.Context, err error) Out) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.DoubleMapping(ctx, input, mapOnSuccess, mapOnError, mapOnCancel, nil)
	}
}

// Tee lifts a failing side effect; the effect's own payload is discarded.
func Tee[T, U any](effect func(ctx context.Context, r T) rop.Result[U]) func(ctx context.Context,
	input rop.Result[T]) <-chan rop.Result[T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return mass.Teeing(ctx, input, effect, nil)
	}
}

// Observe lifts a both-branch observer that never changes the result.
func Observe[T any](onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) func(ctx context.Context,
	input rop.Result[T]) <-chan rop.Result[T] {
	return func(ctx context.Context, input rop.Result[T]) <-chan rop.Result[T] {
		return mass.Observing(ctx, input, onSuccess, onError, onCancel, nil)
	}
}

func Try[In, Out any](
	onTryExecute func(ctx context.Context, r In) (Out, error)) func(ctx context.Context,
	input rop.Result[In]) <-chan rop.Result[Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers mass.FinallyHandlers[In, Out]) <-chan Out {
	return mass.Finalizing(ctx, input, handlers)
}
