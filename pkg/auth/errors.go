package auth

import "errors"

// Kind is the closed set of failure categories the pipeline itself can
// produce. Errors coming back from caller-supplied dependencies pass
// through verbatim and report KindInternal unless the dependency used
// this package's constructors.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindCredentialMismatch
	KindNotifyFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindCredentialMismatch:
		return "credential_mismatch"
	case KindNotifyFailed:
		return "notify_failed"
	default:
		return "internal"
	}
}

type Error struct {
	kind Kind
	msg  string
	err  error
}

func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func WrapError(kind Kind, err error) *Error {
	return &Error{kind: kind, err: err}
}

// Error reports the wrapped error's text when one is present, so wrapping
// never changes the message observable by callers.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf classifies any error, descending through wrap chains and joins.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindInternal
}

// ErrInvalidParams is the failure produced when username or password is
// blank. The message is part of the pipeline's observable contract.
var ErrInvalidParams = NewError(KindInvalidInput, "Invalid params")
