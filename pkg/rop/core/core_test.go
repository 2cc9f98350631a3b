package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ib-77/ropauth/pkg/rop"
)

func TestToChanFromChanRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3}))
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("unexpected round trip: %v", got)
	}
}

func TestToChanManyResults_WrapsAsSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	results := FromChanMany(ctx, ToChanManyResults(ctx, []string{"a", "b"}))
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.IsSuccess() {
			t.Fatalf("expected success, got %v", r.Err())
		}
	}
}

func TestFromChanFirstOrDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if v := FromChanFirstOrDefault(ctx, ToChan(ctx, 9), -1); v != 9 {
		t.Fatalf("expected 9, got %d", v)
	}

	empty := make(chan int)
	close(empty)
	if v := FromChanFirstOrDefault(ctx, empty, -1); v != -1 {
		t.Fatalf("expected default, got %d", v)
	}
}

func TestCancelRemainingResults_FlushesAsCancelled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan rop.Result[int], 2)
	in <- rop.Success(1)
	in <- rop.Cancel[int](context.Canceled)
	close(in)

	out := make(chan rop.Result[string], 2)
	CancelRemainingResults[int, string](ctx, in, out)
	close(out)

	var flushed []rop.Result[string]
	for r := range out {
		flushed = append(flushed, r)
	}
	if len(flushed) != 2 {
		t.Fatalf("expected 2 flushed results, got %d", len(flushed))
	}
	if !errors.Is(flushed[0].Err(), ErrCancelled) {
		t.Fatalf("expected ErrCancelled for unprocessed success, got %v", flushed[0].Err())
	}
	if !flushed[1].IsCancel() || !errors.Is(flushed[1].Err(), context.Canceled) {
		t.Fatalf("expected original cancel carried over, got %v", flushed[1].Err())
	}
}

func TestCancelRemainingResults_DisabledByOption(t *testing.T) {
	t.Parallel()
	ctx := WithProcessOptions(context.Background(), false)

	in := make(chan rop.Result[int], 1)
	in <- rop.Success(1)
	close(in)

	out := make(chan rop.Result[string], 1)
	CancelRemainingResults[int, string](ctx, in, out)
	close(out)

	if len(out) != 0 {
		t.Fatal("expected nothing flushed when process-remaining is off")
	}
}

func TestWorkerOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := GetWorkerMaxCount(ctx, 4); got != 4 {
		t.Fatalf("expected default 4, got %d", got)
	}
	if got := GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4); got != 2 {
		t.Fatalf("expected override 2, got %d", got)
	}
}

func TestLocomotive_ProcessesUntilInputCloses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := func(ctx context.Context, input rop.Result[int]) <-chan rop.Result[int] {
		out := make(chan rop.Result[int], 1)
		out <- rop.Success(input.Result() * 10)
		close(out)
		return out
	}

	in := make(chan rop.Result[int], 3)
	for _, v := range []int{1, 2, 3} {
		in <- rop.Success(v)
	}
	close(in)

	out := make(chan rop.Result[int])
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, in, out, engine, CancellationHandlers[int, int]{}, nil, wg)
	go func() {
		wg.Wait()
		close(out)
	}()

	sum := 0
	for r := range out {
		if !r.IsSuccess() {
			t.Fatalf("unexpected failure: %v", r.Err())
		}
		sum += r.Result()
	}
	if sum != 60 {
		t.Fatalf("expected sum 60, got %d", sum)
	}
}
