package repository

import (
	"context"
	"fmt"

	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
)

// SlotRepository manages tutoring slot reservations held by orders
type SlotRepository interface {
	Create(ctx context.Context, slot *models.SlotReservation) error
	FindByOrderID(ctx context.Context, orderID int64) ([]*models.SlotReservation, error)
	// ReleaseByOrderID frees every reserved slot for an order and reports how many were released.
	ReleaseByOrderID(ctx context.Context, orderID int64) (int64, error)
}

// slotRepository implements SlotRepository
type slotRepository struct {
	db db.DBTX
}

// NewSlotRepository creates a new SlotRepository
func NewSlotRepository(database db.DBTX) SlotRepository {
	return &slotRepository{db: database}
}

// Create inserts a slot reservation
func (r *slotRepository) Create(ctx context.Context, slot *models.SlotReservation) error {
	if slot.Status == "" {
		slot.Status = models.SlotStatusReserved
	}

	query := `
		INSERT INTO slot_reservations (order_id, status)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowContext(ctx, query, slot.OrderID, slot.Status).Scan(&slot.ID, &slot.CreatedAt); err != nil {
		return fmt.Errorf("failed to create slot reservation: %w", err)
	}
	return nil
}

// FindByOrderID returns an order's slot reservations
func (r *slotRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.SlotReservation, error) {
	query := `
		SELECT id, order_id, status, released_at, created_at
		FROM slot_reservations
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slot reservations: %w", err)
	}
	defer rows.Close()

	slots := make([]*models.SlotReservation, 0)
	for rows.Next() {
		var slot models.SlotReservation
		if err := rows.Scan(&slot.ID, &slot.OrderID, &slot.Status, &slot.ReleasedAt, &slot.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan slot reservation: %w", err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slot reservations: %w", err)
	}
	return slots, nil
}

// ReleaseByOrderID releases reserved slots; already released slots are left alone
func (r *slotRepository) ReleaseByOrderID(ctx context.Context, orderID int64) (int64, error) {
	query := `
		UPDATE slot_reservations
		SET status = $2, released_at = NOW()
		WHERE order_id = $1 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, orderID, models.SlotStatusReleased, models.SlotStatusReserved)
	if err != nil {
		return 0, fmt.Errorf("failed to release slot reservations: %w", err)
	}

	released, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return released, nil
}
