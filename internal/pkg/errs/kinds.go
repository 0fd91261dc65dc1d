package errs

import (
	"errors"
)

// Kind classifies every rejected precondition into one of four
// recoverable categories so callers can tell "fix your input" from
// "try different dates" from "you are not allowed" from "the state
// changed since you last looked".
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindConflict      Kind = "conflict"
	KindState         Kind = "state"
	KindNotFound      Kind = "not_found"
	KindUnknown       Kind = ""
)

type kindedError struct {
	kind Kind
	msg  string
}

func (e *kindedError) Error() string { return e.msg }

func (e *kindedError) Kind() Kind { return e.kind }

// NewKind creates a sentinel error that carries its kind through
// arbitrary wrapping by Wrap/Mark.
func NewKind(kind Kind, msg string) error {
	return &kindedError{kind: kind, msg: msg}
}

// KindOf walks the error chain and returns the first classified kind.
func KindOf(err error) Kind {
	var k *kindedError
	if errors.As(err, &k) {
		return k.kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the classified sentinel's text, safe to show to
// callers; wrapping detail stays out of responses.
func Message(err error) string {
	var k *kindedError
	if errors.As(err, &k) {
		return k.msg
	}
	return ""
}
