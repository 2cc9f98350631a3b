package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ib-77/ropauth/pkg/rop"
	"github.com/ib-77/ropauth/pkg/rop/solo"
)

// User is the record produced by the lookup dependency. The pipeline
// reads it and hands it back to the caller; it never constructs or
// persists one itself.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// Credentials is the immutable input pair of one authentication attempt.
type Credentials struct {
	Username string
	Password string
}

// LookupFunc resolves a username to a User or fails (not found, store
// unavailable).
type LookupFunc func(ctx context.Context, username string) rop.Result[User]

// CheckFunc compares a stored credential with the provided password and
// returns a non-nil error on mismatch.
type CheckFunc func(ctx context.Context, storedHash, provided string) error

// NotifyFunc delivers a sign-in confirmation to the user's address.
type NotifyFunc func(ctx context.Context, email, message string) error

// HistoryFunc records a successful sign-in for the user.
type HistoryFunc func(ctx context.Context, user User) error

// Deps are the external operations every pipeline needs. Each field is
// independently substitutable, which keeps the pipeline unit-testable
// with plain closures.
type Deps struct {
	Lookup LookupFunc
	Check  CheckFunc
	Notify NotifyFunc
}

const defaultNotifyMessage = "You have successfully signed in"

// Pipeline authenticates username/password pairs by threading them
// through validate, lookup, password check, notify, optional history and
// an always-on audit observer. It holds no per-call state: concurrent
// Authenticate calls are independent.
type Pipeline struct {
	deps           Deps
	logger         *slog.Logger
	history        HistoryFunc
	notifyMessage  string
	tolerantNotify bool
}

type Option func(*Pipeline)

// WithLogger sets the audit sink. The pipeline never touches the
// process-wide default logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithTolerantNotify downgrades a notification-delivery failure from
// fatal to a logged warning, so a user still authenticates when the
// confirmation cannot be sent.
func WithTolerantNotify() Option {
	return func(p *Pipeline) { p.tolerantNotify = true }
}

// WithHistory adds the optional fourth dependency recording successful
// sign-ins. Its failure fails the pipeline.
func WithHistory(h HistoryFunc) Option {
	return func(p *Pipeline) { p.history = h }
}

func WithNotifyMessage(msg string) Option {
	return func(p *Pipeline) { p.notifyMessage = msg }
}

func New(deps Deps, opts ...Option) *Pipeline {
	p := &Pipeline{
		deps:          deps,
		logger:        slog.Default(),
		notifyMessage: defaultNotifyMessage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// attempt pairs the looked-up user with the password still to be
// verified, so the check step sees both while the user record flows on.
type attempt struct {
	user     User
	password string
}

// Authenticate runs the whole track. Once a step fails, every later
// value-transforming step is skipped by the combinator contract; only
// the audit observer still sees the failure, and it cannot convert it
// back.
func (p *Pipeline) Authenticate(ctx context.Context, username, password string) rop.Result[User] {
	creds := Credentials{Username: username, Password: password}

	validated := solo.ValidateAll(ctx, solo.Succeed(creds), true,
		requireField(func(c Credentials) string { return c.Username }),
		requireField(func(c Credentials) string { return c.Password }),
	)

	looked := solo.Switch(ctx, validated, p.lookup)

	checked := solo.Tee(ctx, looked, func(ctx context.Context, a attempt) rop.Result[struct{}] {
		return asEffect(p.deps.Check(ctx, a.user.PasswordHash, a.password))
	})

	notified := solo.Tee(ctx, checked, p.notify)

	recorded := notified
	if p.history != nil {
		recorded = solo.Tee(ctx, notified, func(ctx context.Context, a attempt) rop.Result[struct{}] {
			return asEffect(p.history(ctx, a.user))
		})
	}

	audited := solo.DoubleTee(ctx, recorded,
		func(ctx context.Context, a attempt) {
			p.logger.InfoContext(ctx, "authenticated", "user_id", a.user.ID)
		},
		func(ctx context.Context, err error) {
			p.logger.ErrorContext(ctx, "authentication failed",
				"username", username, "kind", KindOf(err).String(), "error", err)
		},
		func(ctx context.Context, err error) {
			p.logger.WarnContext(ctx, "authentication cancelled",
				"username", username, "error", err)
		})

	return solo.Map(ctx, audited, func(ctx context.Context, a attempt) User {
		return a.user
	})
}

func (p *Pipeline) lookup(ctx context.Context, c Credentials) rop.Result[attempt] {
	return solo.Map(ctx, p.deps.Lookup(ctx, c.Username), func(ctx context.Context, u User) attempt {
		return attempt{user: u, password: c.Password}
	})
}

func (p *Pipeline) notify(ctx context.Context, a attempt) rop.Result[struct{}] {
	err := p.deps.Notify(ctx, a.user.Email, p.notifyMessage)
	if err == nil {
		return rop.Success(struct{}{})
	}

	if p.tolerantNotify {
		p.logger.WarnContext(ctx, "confirmation delivery failed",
			"user_id", a.user.ID, "error", err)
		return rop.Success(struct{}{})
	}

	return rop.Fail[struct{}](err)
}

func requireField(field func(Credentials) string) func(ctx context.Context, in rop.Result[Credentials]) rop.Result[Credentials] {
	return func(ctx context.Context, in rop.Result[Credentials]) rop.Result[Credentials] {
		if in.IsFailure() {
			return in
		}
		if strings.TrimSpace(field(in.Result())) == "" {
			return rop.Fail[Credentials](ErrInvalidParams)
		}
		return in
	}
}

func asEffect(err error) rop.Result[struct{}] {
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.Cancel[struct{}](err)
		}
		return rop.Fail[struct{}](err)
	}
	return rop.Success(struct{}{})
}

// TryLookup adapts a repository-style lookup that reports problems with
// (User, error) or by panicking. The solo.Try boundary turns either into
// a regular failure.
func TryLookup(f func(ctx context.Context, username string) (User, error)) LookupFunc {
	return func(ctx context.Context, username string) rop.Result[User] {
		return solo.Try(ctx, solo.Succeed(username), func(ctx context.Context, u string) (User, error) {
			return f(ctx, u)
		})
	}
}
