package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// RefundRepository defines the interface for refund data access
type RefundRepository interface {
	Create(ctx context.Context, refund *models.Refund) error
	FindByID(ctx context.Context, id int64) (*models.Refund, error)
	FindByNumber(ctx context.Context, refundNumber string) (*models.Refund, error)
	FindByExternalID(ctx context.Context, externalRefundID string) (*models.Refund, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]*models.Refund, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]*models.Refund, error)
	List(ctx context.Context, filter models.RefundFilter) ([]*models.Refund, error)
	Stats(ctx context.Context) (*models.RefundStats, error)
	// TransitionStatus moves the refund to `to` only if its current status is one
	// of `from`. It returns models.ErrStatusConflict when no row matched.
	TransitionStatus(ctx context.Context, id int64, to models.RefundStatus, from ...models.RefundStatus) error
	// TransitionWithNote is TransitionStatus that also appends note to the
	// reason details in the same statement, returning the updated refund.
	TransitionWithNote(ctx context.Context, id int64, to models.RefundStatus, note string, from ...models.RefundStatus) (*models.Refund, error)
	// Update writes the mutable fields only if the stored status is one of
	// `from`. It returns models.ErrStatusConflict when no row matched.
	Update(ctx context.Context, refund *models.Refund, from ...models.RefundStatus) error
}

// refundRepository implements RefundRepository
type refundRepository struct {
	db db.DBTX
}

// NewRefundRepository creates a new RefundRepository
func NewRefundRepository(database db.DBTX) RefundRepository {
	return &refundRepository{db: database}
}

const refundColumns = `
	id, uid, refund_number, order_id, replacement_order_id, invoice_id, customer_id,
	amount, currency, reason, reason_details, external_refund_id, status,
	initiated_by, processed_by, settled_at, metadata, created_at, updated_at`

func scanRefund(row scanner) (*models.Refund, error) {
	var (
		refund   models.Refund
		metadata []byte
	)
	err := row.Scan(
		&refund.ID,
		&refund.UID,
		&refund.RefundNumber,
		&refund.OrderID,
		&refund.ReplacementOrderID,
		&refund.InvoiceID,
		&refund.CustomerID,
		&refund.Amount,
		&refund.Currency,
		&refund.Reason,
		&refund.ReasonDetails,
		&refund.ExternalRefundID,
		&refund.Status,
		&refund.InitiatedBy,
		&refund.ProcessedBy,
		&refund.SettledAt,
		&metadata,
		&refund.CreatedAt,
		&refund.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(metadata, &refund.Metadata); err != nil {
		return nil, err
	}
	return &refund, nil
}

// Create inserts a new refund and fills in its generated fields
func (r *refundRepository) Create(ctx context.Context, refund *models.Refund) error {
	if refund.UID == uuid.Nil {
		refund.UID = uuid.New()
	}
	if refund.Status == "" {
		refund.Status = models.RefundStatusPending
	}

	metadata, err := marshalJSON(refund.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO refunds (
			uid, refund_number, order_id, replacement_order_id, invoice_id, customer_id,
			amount, currency, reason, reason_details, status, initiated_by, metadata,
			external_refund_id, processed_by, settled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		refund.UID,
		refund.RefundNumber,
		refund.OrderID,
		refund.ReplacementOrderID,
		refund.InvoiceID,
		refund.CustomerID,
		refund.Amount,
		refund.Currency,
		refund.Reason,
		refund.ReasonDetails,
		refund.Status,
		refund.InitiatedBy,
		metadata,
		refund.ExternalRefundID,
		refund.ProcessedBy,
		refund.SettledAt,
	).Scan(&refund.ID, &refund.CreatedAt, &refund.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create refund: %w", mapWriteError(err))
	}

	return nil
}

// FindByID retrieves a refund by its id
func (r *refundRepository) FindByID(ctx context.Context, id int64) (*models.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE id = $1`

	refund, err := scanRefund(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find refund by id: %w", notFound(err, "refund"))
	}
	return refund, nil
}

// FindByNumber retrieves a refund by its REF- number
func (r *refundRepository) FindByNumber(ctx context.Context, refundNumber string) (*models.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE refund_number = $1`

	refund, err := scanRefund(r.db.QueryRowContext(ctx, query, refundNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to find refund by number: %w", notFound(err, "refund"))
	}
	return refund, nil
}

// FindByExternalID retrieves a refund by the gateway's refund id
func (r *refundRepository) FindByExternalID(ctx context.Context, externalRefundID string) (*models.Refund, error) {
	query := `SELECT ` + refundColumns + ` FROM refunds WHERE external_refund_id = $1 ORDER BY id LIMIT 1`

	refund, err := scanRefund(r.db.QueryRowContext(ctx, query, externalRefundID))
	if err != nil {
		return nil, fmt.Errorf("failed to find refund by external id: %w", notFound(err, "refund"))
	}
	return refund, nil
}

// FindByOrderID returns every refund raised against an order, oldest first
func (r *refundRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.Refund, error) {
	return r.query(ctx, `SELECT `+refundColumns+` FROM refunds WHERE order_id = $1 ORDER BY id`, orderID)
}

// FindByCustomerID returns every refund for a customer, newest first
func (r *refundRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*models.Refund, error) {
	return r.query(ctx, `SELECT `+refundColumns+` FROM refunds WHERE customer_id = $1 ORDER BY id DESC`, customerID)
}

// List returns refunds matching the filter, newest first
func (r *refundRepository) List(ctx context.Context, filter models.RefundFilter) ([]*models.Refund, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CustomerID > 0 {
		args = append(args, filter.CustomerID)
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.OrderID > 0 {
		args = append(args, filter.OrderID)
		conditions = append(conditions, fmt.Sprintf("order_id = $%d", len(args)))
	}

	query := `SELECT ` + refundColumns + ` FROM refunds`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.query(ctx, query, args...)
}

func (r *refundRepository) query(ctx context.Context, query string, args ...any) ([]*models.Refund, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query refunds: %w", err)
	}
	defer rows.Close()

	refunds := make([]*models.Refund, 0)
	for rows.Next() {
		refund, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refund: %w", err)
		}
		refunds = append(refunds, refund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refunds: %w", err)
	}
	return refunds, nil
}

// Stats counts refunds per status and sums completed amounts
func (r *refundRepository) Stats(ctx context.Context) (*models.RefundStats, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM refunds
		GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query refund stats: %w", err)
	}
	defer rows.Close()

	stats := &models.RefundStats{ByStatus: make(map[models.RefundStatus]int64)}
	for rows.Next() {
		var (
			status models.RefundStatus
			count  int64
			amount int64
		)
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan refund stats: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
		if status == models.RefundStatusCompleted {
			stats.CompletedAmount = amount
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refund stats: %w", err)
	}
	return stats, nil
}

// TransitionStatus performs a compare-and-swap on the refund status
func (r *refundRepository) TransitionStatus(ctx context.Context, id int64, to models.RefundStatus, from ...models.RefundStatus) error {
	query := `
		UPDATE refunds
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`

	result, err := r.db.ExecContext(ctx, query, id, to, pq.Array(statusList(from)))
	if err != nil {
		return fmt.Errorf("failed to transition refund status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("refund %d not in %v: %w", id, from, models.ErrStatusConflict)
	}

	return nil
}

// TransitionWithNote moves the refund to `to` and appends note to its reason
// details, conditional on the current status being one of `from`
func (r *refundRepository) TransitionWithNote(ctx context.Context, id int64, to models.RefundStatus, note string, from ...models.RefundStatus) (*models.Refund, error) {
	query := `
		UPDATE refunds
		SET status = $2,
		    reason_details = reason_details || $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = ANY($4)
		RETURNING ` + refundColumns

	refund, err := scanRefund(r.db.QueryRowContext(ctx, query, id, to, note, pq.Array(statusList(from))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("refund %d not in %v: %w", id, from, models.ErrStatusConflict)
		}
		return nil, fmt.Errorf("failed to transition refund: %w", err)
	}
	return refund, nil
}

// Update persists the mutable fields of a refund whose stored status is
// still one of from
func (r *refundRepository) Update(ctx context.Context, refund *models.Refund, from ...models.RefundStatus) error {
	metadata, err := marshalJSON(refund.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE refunds
		SET invoice_id = $2,
		    reason_details = $3,
		    external_refund_id = $4,
		    status = $5,
		    processed_by = $6,
		    settled_at = $7,
		    metadata = $8,
		    updated_at = NOW()
		WHERE id = $1 AND status = ANY($9)
		RETURNING updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		refund.ID,
		refund.InvoiceID,
		refund.ReasonDetails,
		refund.ExternalRefundID,
		refund.Status,
		refund.ProcessedBy,
		refund.SettledAt,
		metadata,
		pq.Array(statusList(from)),
	).Scan(&refund.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("refund %d not in %v: %w", refund.ID, from, models.ErrStatusConflict)
		}
		return fmt.Errorf("failed to update refund: %w", mapWriteError(err))
	}

	return nil
}

func statusList(statuses []models.RefundStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
