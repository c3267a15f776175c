package service

import (
	"fmt"
	"strings"

	"github.com/tutorbase/backend/internal/models"
)

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateCurrency checks for a three-letter ISO 4217 style code
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("invalid currency %q: must be a 3-letter code", code)
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return fmt.Errorf("invalid currency %q: letters only", code)
		}
	}
	return nil
}

// validateCreateRefund checks the request shape before any lookup happens
func validateCreateRefund(in models.CreateRefundInput) error {
	if in.OrderID <= 0 {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "order id is required"}
	}
	if in.CustomerID <= 0 {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "customer id is required"}
	}
	if err := ValidateAmount(in.Amount); err != nil {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}
	if !in.Reason.Valid() {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("unknown refund reason %q", in.Reason)}
	}
	if strings.TrimSpace(in.ReasonDetails) == "" {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "reason details are required"}
	}
	if in.Currency != "" {
		if err := ValidateCurrency(in.Currency); err != nil {
			return &ServiceError{Code: ErrCodeInvalidRequest, Message: err.Error()}
		}
	}
	return nil
}

// validateRecordTransaction applies the ledger's shape checks
func validateRecordTransaction(in models.RecordTransactionInput) error {
	if !in.Type.Valid() {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("unknown transaction type %q", in.Type)}
	}
	if in.Amount < 0 {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: "invalid amount: must not be negative"}
	}
	if err := ValidateCurrency(in.Currency); err != nil {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: err.Error()}
	}
	if in.OrderID <= 0 {
		return &ServiceError{Code: ErrCodeInvalidRequest, Message: "order id is required"}
	}
	return nil
}
