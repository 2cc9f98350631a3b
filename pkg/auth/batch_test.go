package auth

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/ib-77/ropauth/pkg/rop"
	"github.com/ib-77/ropauth/pkg/rop/core"
)

func contextWithSingleWorker(t *testing.T) context.Context {
	t.Helper()
	return core.WithWorkerOptions(context.Background(), 1)
}

func TestBatchValues_MixedOutcomes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var lookups atomic.Int64
	deps := Deps{
		Lookup: func(ctx context.Context, username string) rop.Result[User] {
			lookups.Add(1)
			if username != testUser.Name {
				return rop.Fail[User](NewError(KindNotFound, "not found"))
			}
			return rop.Success(testUser)
		},
		Check:  PlainChecker(),
		Notify: func(ctx context.Context, email, message string) error { return nil },
	}
	p := New(deps, WithLogger(quietLogger()))

	creds := []Credentials{
		{Username: "Alice", Password: "secret"},
		{Username: "Alice", Password: "wrong"},
		{Username: "Bob", Password: "secret"},
		{Username: "", Password: "secret"},
		{Username: "Alice", Password: "secret"},
	}

	results := BatchValues(ctx, p, creds, 3)

	if len(results) != len(creds) {
		t.Fatalf("expected %d results, got %d", len(creds), len(results))
	}

	oks, fails := 0, 0
	for _, r := range results {
		if r.IsSuccess() {
			oks++
			if r.Result() != testUser {
				t.Fatalf("unexpected user %+v", r.Result())
			}
		} else {
			fails++
		}
	}
	if oks != 2 || fails != 3 {
		t.Fatalf("expected 2 successes and 3 failures, got %d/%d", oks, fails)
	}
	if got := lookups.Load(); got != 4 {
		t.Fatalf("expected 4 lookups (blank creds never reach lookup), got %d", got)
	}
}

func TestBatch_WorkerOptionOverride(t *testing.T) {
	t.Parallel()

	ctx := contextWithSingleWorker(t)

	deps := Deps{
		Lookup: func(ctx context.Context, username string) rop.Result[User] {
			return rop.Success(testUser)
		},
		Check:  PlainChecker(),
		Notify: func(ctx context.Context, email, message string) error { return nil },
	}
	p := New(deps, WithLogger(quietLogger()))

	creds := []Credentials{
		{Username: "Alice", Password: "secret"},
		{Username: "Alice", Password: "secret"},
	}

	results := BatchValues(ctx, p, creds, 8)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.IsSuccess() {
			t.Fatalf("expected success, got %v", r.Err())
		}
	}
}
