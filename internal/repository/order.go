package repository

import (
	"context"
	"fmt"

	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
)

// OrderRepository is the slice of order storage the billing flows depend on.
// Orders themselves are created by order intake.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int64) (*models.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*models.Order, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error)
	SavePaymentIntent(ctx context.Context, id int64, paymentIntentID string) error
	RecordCheckout(ctx context.Context, id int64, paymentIntentID, checkoutSessionID, paidCurrency string, taxPaid int64) error
	UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error
}

// orderRepository implements OrderRepository
type orderRepository struct {
	db db.DBTX
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(database db.DBTX) OrderRepository {
	return &orderRepository{db: database}
}

const orderColumns = `
	id, customer_id, status, payment_status, currency, subtotal, tax, discount, total,
	items, metadata, payment_intent_id, checkout_session_id, created_at, updated_at`

func scanOrder(row scanner) (*models.Order, error) {
	var (
		order    models.Order
		items    []byte
		metadata []byte
	)
	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.Status,
		&order.PaymentStatus,
		&order.Currency,
		&order.Subtotal,
		&order.Tax,
		&order.Discount,
		&order.Total,
		&items,
		&metadata,
		&order.PaymentIntentID,
		&order.CheckoutSessionID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(items, &order.Items); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(metadata, &order.Metadata); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts an order. Used by seeding and tests.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = "PENDING"
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.OrderPaymentUnpaid
	}

	items, err := marshalList(order.Items)
	if err != nil {
		return err
	}
	metadata, err := marshalJSON(order.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			customer_id, status, payment_status, currency, subtotal, tax, discount, total,
			items, metadata, payment_intent_id, checkout_session_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		order.CustomerID,
		order.Status,
		order.PaymentStatus,
		order.Currency,
		order.Subtotal,
		order.Tax,
		order.Discount,
		order.Total,
		items,
		metadata,
		order.PaymentIntentID,
		order.CheckoutSessionID,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// FindByID retrieves an order by its id
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find order by id: %w", notFound(err, "order"))
	}
	return order, nil
}

// FindByIDForUpdate retrieves an order and locks the row.
// Must be called within a transaction.
func (r *orderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find order for update: %w", notFound(err, "order"))
	}
	return order, nil
}

// FindByPaymentIntentID locates an order by the column, then by metadata
func (r *orderRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE payment_intent_id = $1::text OR metadata->>'` + models.MetaStripePaymentIntentID + `' = $1::text
		ORDER BY (payment_intent_id = $1::text) DESC NULLS LAST, id
		LIMIT 1
	`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, paymentIntentID))
	if err != nil {
		return nil, fmt.Errorf("failed to find order by payment intent: %w", notFound(err, "order"))
	}
	return order, nil
}

// SavePaymentIntent stores a payment intent id discovered after checkout
func (r *orderRepository) SavePaymentIntent(ctx context.Context, id int64, paymentIntentID string) error {
	query := `
		UPDATE orders
		SET payment_intent_id = $2::text,
		    metadata = metadata || jsonb_build_object('` + models.MetaStripePaymentIntentID + `', $2::text),
		    updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, "save payment intent", query, id, paymentIntentID)
}

// RecordCheckout stores the checkout references and marks the order paid
func (r *orderRepository) RecordCheckout(ctx context.Context, id int64, paymentIntentID, checkoutSessionID, paidCurrency string, taxPaid int64) error {
	query := `
		UPDATE orders
		SET payment_intent_id = NULLIF($2::text, ''),
		    checkout_session_id = NULLIF($3::text, ''),
		    payment_status = $4,
		    metadata = metadata || jsonb_build_object(
		        '` + models.MetaStripePaymentIntentID + `', $2::text,
		        '` + models.MetaStripeCheckoutSessionID + `', $3::text,
		        '` + models.MetaPaidCurrency + `', $5::text,
		        '` + models.MetaTaxAmountPaid + `', $6::bigint
		    ),
		    updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, "record checkout", query, id, paymentIntentID, checkoutSessionID, models.OrderPaymentPaid, paidCurrency, taxPaid)
}

// UpdatePaymentStatus moves the order's payment status
func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error {
	query := `
		UPDATE orders
		SET payment_status = $2, updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, "update payment status", query, id, paymentStatus)
}

func (r *orderRepository) exec(ctx context.Context, op, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("failed to %s: order: %w", op, models.ErrNotFound)
	}

	return nil
}
