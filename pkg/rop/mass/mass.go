package mass

import (
	"context"

	"github.com/ib-77/ropauth/pkg/rop"
	"github.com/ib-77/ropauth/pkg/rop/core"
	"github.com/ib-77/ropauth/pkg/rop/solo"
)

// lift runs a single solo step in its own goroutine and exposes the
// product as a one-shot channel stage. When the context is cancelled
// before the product is delivered, onCancel receives the original input
// instead.
func lift[In, Out any](ctx context.Context, input rop.Result[In],
	step func(ctx context.Context) rop.Result[Out],
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	ch := make(chan rop.Result[Out])
	out := make(chan rop.Result[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- step(ctx)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

func Validating[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in rop.Result[T])) <-chan rop.Result[T] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	}, onCancel)
}

func Switching[In, Out any](ctx context.Context, input rop.Result[In],
	switchOnSuccess func(ctx context.Context, r In) rop.Result[Out],
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[Out] {
		return solo.Switch(ctx, input, switchOnSuccess)
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input rop.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	}, onCancel)
}

func DoubleMapping[In, Out any](ctx context.Context, input rop.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out,
	mapOnError func(ctx context.Context, err error) Out,
	mapOnCancel func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[Out] {
		return solo.DoubleMap(ctx, input, mapOnSuccess, mapOnError, mapOnCancel)
	}, onCancel)
}

// Teeing lifts the failing side-effect step: the effect's payload is
// discarded, its failure replaces the success.
func Teeing[T, U any](ctx context.Context, input rop.Result[T],
	effect func(ctx context.Context, r T) rop.Result[U],
	onCancel func(ctx context.Context, in rop.Result[T])) <-chan rop.Result[T] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[T] {
		return solo.Tee(ctx, input, effect)
	}, onCancel)
}

// Observing lifts the both-branch observer step.
func Observing[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancelBranch func(ctx context.Context, err error),
	onCancel func(ctx context.Context, in rop.Result[T])) <-chan rop.Result[T] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[T] {
		return solo.DoubleTee(ctx, input, onSuccess, onError, onCancelBranch)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in rop.Result[In])) <-chan rop.Result[Out] {

	return lift(ctx, input, func(ctx context.Context) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	}, onCancel)
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finalizing collapses a stream of results into concrete values. On
// context cancellation, results still queued are collapsed through the
// OnCancel handler when the process-remaining option allows it.
func Finalizing[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	flush := func() {
		if handlers.OnCancel == nil || !core.IsProcessRemainingEnabled(ctx, true) {
			return
		}
		for in := range inputCh {
			out <- handlers.OnCancel(ctx, cancelErr(in))
		}
	}

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				flush()
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)

				select {
				case <-ctx.Done():
					flush()
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}

func cancelErr[In any](in rop.Result[In]) error {
	if in.Err() != nil {
		return in.Err()
	}
	return context.Canceled
}
