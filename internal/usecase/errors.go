package usecase

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "internal"
}

// AppError is returned by every service operation. Message is safe to
// show to clients, Err is the underlying cause and is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ErrBadRequest(message string) error {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func ErrValidation(fields map[string]string) error {
	return &AppError{Kind: KindBadRequest, Message: "Validation failed", Fields: fields}
}

func ErrUnauthorized(message string) error {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func ErrForbidden(message string) error {
	return &AppError{Kind: KindForbidden, Message: message}
}

func ErrNotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ErrConflict(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

func ErrInternal(message string, err error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err. Errors that are not AppErrors are internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
