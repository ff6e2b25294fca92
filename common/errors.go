package common

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Error is a conversion failure of a known kind. Every failure aborts the
// whole conversion, there is no partial output.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// NewError creates error of the specified kind with formatted message.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError creates error of the specified kind keeping cause.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err,
// &Error{Kind: ErrorKindSyntaxError}) works as kind test.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// MarshalLogObject allows zap to log error kind and message as separate fields.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", e.Kind.String())
	enc.AddString("message", e.Msg)
	if e.Err != nil {
		enc.AddString("cause", e.Err.Error())
	}
	return nil
}

// KindOf returns taxonomy kind of the error, anything which is not *Error
// is reported as unknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindUnknownError
}

// Describe formats error as "Kind: message" for the user.
func Describe(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.String() + ": " + e.Error()
	}
	return ErrorKindUnknownError.String() + ": " + err.Error()
}
