package ckparams

import (
	"errors"
	"fmt"

	"github.com/ansel1/merry"
)

func Is(err error, originals ...error) bool {
	return merry.Is(err, originals...)
}

func Details(err error) string {
	return merry.Details(err)
}

// ErrInvalidParameter is returned when a parameter value is structurally
// invalid: a missing buffer, a length that doesn't match the mechanism's
// block or word size, or a selector outside the set the mechanism allows.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrUnresolvedReference is returned by the encoder when a reference to a
// token object can't be turned into a handle.
var ErrUnresolvedReference = errors.New("unresolved reference")

// ErrObjectNotFound is returned by the decoder when the session can't resolve
// a handle the token returned.  It means the token and the session disagree
// about which objects exist, and should not be retried.
var ErrObjectNotFound = errors.New("object not found")

// ErrMechanismMismatch is returned when parameters are paired with a
// mechanism that takes a different kind of parameters, or none.
var ErrMechanismMismatch = errors.New("parameters do not match mechanism")

type errKey int

const (
	errorKeyField errKey = iota
	errorKeyReason
)

func init() {
	merry.RegisterDetail("Field", errorKeyField)
	merry.RegisterDetail("Reason", errorKeyReason)
}

// Field returns the name of the parameter field an error is about, or ""
// if there isn't one.
func Field(err error) string {
	v := merry.Value(err, errorKeyField)
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		panic(fmt.Sprintf("err field attribute's value was wrong type, expected string, got %T", v))
	}
}

// Reason returns the reason a field was rejected, or "".
func Reason(err error) string {
	s, _ := merry.Value(err, errorKeyReason).(string)
	return s
}

func fieldError(sentinel error, field, format string, args ...interface{}) merry.Error {
	reason := fmt.Sprintf(format, args...)
	return merry.WrapSkipping(sentinel, 2).
		WithValue(errorKeyField, field).
		WithValue(errorKeyReason, reason).
		Appendf("%s: %s", field, reason)
}

func invalid(field, format string, args ...interface{}) merry.Error {
	return fieldError(ErrInvalidParameter, field, format, args...)
}

func unresolved(field, format string, args ...interface{}) merry.Error {
	return fieldError(ErrUnresolvedReference, field, format, args...)
}

func notFound(field, format string, args ...interface{}) merry.Error {
	return fieldError(ErrObjectNotFound, field, format, args...)
}
