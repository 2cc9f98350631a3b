package auth

import (
	"context"

	"github.com/ib-77/ropauth/pkg/rop"
	"github.com/ib-77/ropauth/pkg/rop/core"
	"github.com/ib-77/ropauth/pkg/rop/lite"
)

// Batch fans a stream of credentials across workers, each running the
// synchronous pipeline. Items stay independent: one failed attempt never
// affects another.
func Batch(ctx context.Context, p *Pipeline, creds <-chan rop.Result[Credentials],
	workers int) <-chan rop.Result[User] {

	workers = core.GetWorkerMaxCount(ctx, workers)

	return lite.Turnout(ctx, creds,
		lite.Switch(func(ctx context.Context, c Credentials) rop.Result[User] {
			return p.Authenticate(ctx, c.Username, c.Password)
		}),
		workers)
}

// BatchValues is the slice convenience around Batch.
func BatchValues(ctx context.Context, p *Pipeline, creds []Credentials,
	workers int) []rop.Result[User] {

	return core.FromChanMany(ctx, Batch(ctx, p, core.ToChanManyResults(ctx, creds), workers))
}
