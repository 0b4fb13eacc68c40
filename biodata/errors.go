package biodata

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines biodata error kinds.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindBusy       ErrorKind = "busy"
	KindTimeout    ErrorKind = "timeout"
	KindCanceled   ErrorKind = "canceled"
	KindInternal   ErrorKind = "internal"
	KindNotImpl    ErrorKind = "not_implemented"
)

// category maps the kind to its go-errors category. The kind string
// doubles as the wire text code.
func (k ErrorKind) category() errorslib.Category {
	switch k {
	case KindValidation:
		return errorslib.CategoryValidation
	case KindNotFound:
		return errorslib.CategoryNotFound
	case KindBusy, KindTimeout, KindCanceled, KindNotImpl:
		return errorslib.CategoryOperation
	default:
		return errorslib.CategoryInternal
	}
}

// Error wraps errors with a kind.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new biodata error.
func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindFromError classifies an error. An explicit kind anywhere in the
// chain wins; bare context errors classify as timeout or canceled.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var bioErr *Error
	if errors.As(err, &bioErr) {
		return bioErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}

	return KindInternal
}

// AsGoError maps an error into a go-errors error for the transport
// boundary. Existing go-errors values pass through untouched.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	msg := err.Error()
	var bioErr *Error
	if errors.As(err, &bioErr) && bioErr.Msg != "" {
		msg = bioErr.Msg
	}

	kind := KindFromError(err)
	return errorslib.New(msg, kind.category()).WithTextCode(string(kind))
}
