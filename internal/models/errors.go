package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateNumber indicates a business number (REF-, INV-, TRN-) is already taken
	ErrDuplicateNumber = errors.New("duplicate number")

	// ErrDuplicateExternalRefund indicates a gateway refund is already recorded locally
	ErrDuplicateExternalRefund = errors.New("duplicate external refund")

	// ErrStatusConflict indicates a conditional status update matched no rows
	ErrStatusConflict = errors.New("status conflict")
)
