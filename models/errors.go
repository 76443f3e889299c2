package models

import (
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidState  ErrorKind = "invalid_state"
	KindOtp           ErrorKind = "otp"
	KindPersistence   ErrorKind = "persistence"
)

// AppError carries a kind so controllers can map a handler failure to an
// http status without parsing message text.
type AppError struct {
	Kind    ErrorKind
	message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Message is the user-renderable part, without the wrapped cause.
func (e *AppError) Message() string {
	return e.message
}

func NewValidationError(message string) error {
	return &AppError{Kind: KindValidation, message: message}
}

func NewAuthorizationError(message string) error {
	return &AppError{Kind: KindAuthorization, message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, message: message}
}

func NewInvalidStateError(message string) error {
	return &AppError{Kind: KindInvalidState, message: message}
}

func NewOtpError(message string) error {
	return &AppError{Kind: KindOtp, message: message}
}

func NewPersistenceError(cause error, message string) error {
	return &AppError{Kind: KindPersistence, message: message, cause: pkgerrors.WithStack(cause)}
}

// KindOf walks the wrap chain; unclassified errors report as persistence.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindOtp:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
