package service

import (
	"errors"
	"fmt"

	"github.com/tutorbase/backend/internal/models"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeNotFound                = "not_found"
	ErrCodeInvalidState            = "invalid_state"
	ErrCodeInvalidOperation        = "invalid_operation"
	ErrCodeInvalidAmount           = "invalid_amount"
	ErrCodeInvalidRequest          = "invalid_request"
	ErrCodePaymentReferenceMissing = "payment_reference_missing"
	ErrCodeDuplicateNumber         = "duplicate_number"
	ErrCodeInternalError           = "internal_error"
)

// lookupError turns a repository lookup failure into a ServiceError
func lookupError(err error, entity string, id any) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("%s %v not found", entity, id),
		}
	}
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: fmt.Sprintf("failed to load %s %v", entity, id),
		Err:     err,
	}
}

func internalError(message string, err error) error {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err is a ServiceError with the given code
func HasCode(err error, code string) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == code
}
