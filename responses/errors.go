package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status alongside the message so handlers can
// surface failures from deeper code without re-classifying them.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewValidation(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewNotAuthorized(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}

// NewInvalidTransition marks an illegal order-status change.
func NewInvalidTransition(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// FromError maps an error to its HTTP response. Unclassified errors become
// 500 with the raw message, matching the existing API contract.
func FromError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.Status, appErr.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
