// Package repository provides data access layer implementations for refunds,
// invoices, the payment ledger and the order collaborators they touch.
package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tutorbase/backend/internal/models"
)

const (
	pqUniqueViolation = "23505"

	refundExternalIDIndex = "uq_refunds_external_refund_id"
)

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// mapWriteError translates driver errors into domain errors
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		if pqErr.Constraint == refundExternalIDIndex {
			return fmt.Errorf("%s: %w", pqErr.Constraint, models.ErrDuplicateExternalRefund)
		}
		return fmt.Errorf("%s: %w", pqErr.Constraint, models.ErrDuplicateNumber)
	}
	return err
}

// notFound converts sql.ErrNoRows into models.ErrNotFound
func notFound(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, models.ErrNotFound)
	}
	return err
}

func marshalJSON(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}
	return b, nil
}

func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}
	return b, nil
}

func unmarshalJSON(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return nil
}
