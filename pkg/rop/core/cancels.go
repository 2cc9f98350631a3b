package core

import (
	"context"
	"errors"

	"github.com/ib-77/ropauth/pkg/rop"
)

var ErrCancelled = errors.New("operation cancelled")

// CancelRemainingResults flushes everything left on inputCh as cancelled
// results, honoring the process-remaining context option.
func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		if in.IsCancel() {
			outCh <- rop.CancelFrom[In, Out](in)
		} else {
			outCh <- rop.Cancel[Out](ErrCancelled)
		}
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.Result[In],
	outCh chan<- rop.Result[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	if in.IsCancel() {
		outCh <- rop.CancelFrom[In, Out](in)
	} else {
		outCh <- rop.Cancel[Out](ErrCancelled)
	}
}
