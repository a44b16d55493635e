package common

import (
	"fmt"
	"net/http"
)

// InternalMessage is the only text a client sees for unexpected failures
const InternalMessage = "Internal server error"

// AppError is an error with a client facing status and message.
// Err keeps the cause for logs and is never rendered.
type AppError struct {
	Status  int
	Message string
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

// NotFound 404 with a message naming the entity
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// BadRequest 400 validation failure
func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// BadRequestf 400 with a formatted message
func BadRequestf(format string, args ...any) *AppError {
	return BadRequest(fmt.Sprintf(format, args...))
}

// Unauthorized 401
func Unauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// PayloadTooLarge 413
func PayloadTooLarge(message string) *AppError {
	return &AppError{Status: http.StatusRequestEntityTooLarge, Message: message}
}

// TooManyRequests 429
func TooManyRequests(message string) *AppError {
	return &AppError{Status: http.StatusTooManyRequests, Message: message}
}

// Internal 500 wrapping the cause
func Internal(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: InternalMessage, Err: err}
}
