package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the application.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInvalidToken    = "INVALID_TOKEN"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyLiked    = "ALREADY_LIKED"
	CodeNotLiked        = "NOT_LIKED"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorItem is a single entry of the API error list.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the standardized API error body: {"errors":[{"msg":...}]}.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
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

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

func NewInvalidTokenError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidToken,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewAlreadyLikedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyLiked,
		Message: "Post already liked",
	}
}

func NewNotLikedError() *AppError {
	return &AppError{
		Code:    CodeNotLiked,
		Message: "Post has not yet been liked",
	}
}

func NewAlreadyExistsError(message string) *AppError {
	return &AppError{
		Code:    CodeAlreadyExists,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the standardized error list body. Internal error
// details are never included in the response; callers are expected to log
// them.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	msg := "Internal server error"
	if appErr, ok := err.(*AppError); ok {
		if appErr.Code != CodeInternal {
			msg = appErr.Message
		}
	} else if status != fiber.StatusInternalServerError && err != nil {
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Errors: []ErrorItem{{Msg: msg}},
	})
}
