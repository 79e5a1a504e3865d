// Package apperrors provides coded errors for the job board and their HTTP mapping.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of board error.
type ErrorCode string

const (
	ErrCodeDraftIncomplete   ErrorCode = "DRAFT_INCOMPLETE"
	ErrCodeUnknownField      ErrorCode = "UNKNOWN_FIELD"
	ErrCodeInvalidFieldValue ErrorCode = "INVALID_FIELD_VALUE"
	ErrCodeJobNotFound       ErrorCode = "JOB_NOT_FOUND"
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
)

// AppError is a structured board error.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// Fields names the form fields involved, if any.
	Fields []string `json:"fields,omitempty"`
	Err    error    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any *AppError carrying the same code, so errors.Is(err, &AppError{Code: c}) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(code ErrorCode, message string, fields ...string) *AppError {
	return &AppError{Code: code, Message: message, Fields: fields}
}

func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HTTPStatus maps an error to the status code the API answers with.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrCodeDraftIncomplete:
		return http.StatusUnprocessableEntity
	case ErrCodeUnknownField, ErrCodeInvalidFieldValue, ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeJobNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
