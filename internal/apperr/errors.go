package apperr

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

type Error struct {
	Code    string
	Message string
	Kind    Kind
	Cause   error
	// Fields maps an invalid field to what is wrong with it.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Invalid(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindInvalid}
}

// Validation reports every invalid field at once.
func Validation(fields map[string]string) *Error {
	var b strings.Builder
	b.WriteString("invalid ")
	for i, name := range slices.Sorted(maps.Keys(fields)) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name + " (" + fields[name] + ")")
	}
	return &Error{Code: "validation_failed", Message: b.String(), Kind: KindInvalid, Fields: fields}
}

func NotFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindNotFound}
}

func Unauthorized(code, message string) *Error {
	return &Error{Code: code, Message: message, Kind: KindUnauthorized}
}

func Internal(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Kind: KindInternal, Cause: cause}
}

func AsError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsNotFound(err error) bool {
	appErr := AsError(err)
	return appErr != nil && appErr.Kind == KindNotFound
}
