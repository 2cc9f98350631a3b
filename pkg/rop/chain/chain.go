package chain

import (
	"context"

	"github.com/ib-77/ropauth/pkg/rop"
	"github.com/ib-77/ropauth/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rop.Success(value),
	}
}

// Validate creates a new chain by validating a raw value
func Validate[T any](ctx context.Context, value T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: solo.Validate(ctx, value, validate),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.TeeIgnore[T](c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T]) {
				onSuccess(ctx, result.Result())
			}),
	}
}

// EnsureResult performs a side effect that may fail the chain; its own
// payload is discarded and the value in flight is preserved
func EnsureResult[T, U any](c *Chain[T], effect func(context.Context, T) rop.Result[U]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee[T, U](c.ctx, c.result, effect),
	}
}

// Observe triggers side effects for every branch without changing the result
func (c *Chain[T]) Observe(onSuccess func(context.Context, T),
	onError func(context.Context, error),
	onCancel func(context.Context, error)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.DoubleTee[T](c.ctx, c.result, onSuccess, onError, onCancel),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure, onCancel)
}
