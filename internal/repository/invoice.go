package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByID(ctx context.Context, id int64) (*models.Invoice, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*models.Invoice, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]*models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
}

// invoiceRepository implements InvoiceRepository
type invoiceRepository struct {
	db db.DBTX
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(database db.DBTX) InvoiceRepository {
	return &invoiceRepository{db: database}
}

const invoiceColumns = `
	id, uid, invoice_number, order_id, customer_id, status, items,
	subtotal, tax, discount, total, currency, paid_date, voided_at, void_reason,
	created_at, updated_at`

func scanInvoice(row scanner) (*models.Invoice, error) {
	var (
		invoice models.Invoice
		items   []byte
	)
	err := row.Scan(
		&invoice.ID,
		&invoice.UID,
		&invoice.InvoiceNumber,
		&invoice.OrderID,
		&invoice.CustomerID,
		&invoice.Status,
		&items,
		&invoice.Subtotal,
		&invoice.Tax,
		&invoice.Discount,
		&invoice.Total,
		&invoice.Currency,
		&invoice.PaidDate,
		&invoice.VoidedAt,
		&invoice.VoidReason,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(items, &invoice.Items); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create inserts a new invoice
func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.UID == uuid.Nil {
		invoice.UID = uuid.New()
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusDraft
	}

	items, err := marshalList(invoice.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (
			uid, invoice_number, order_id, customer_id, status, items,
			subtotal, tax, discount, total, currency
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		invoice.UID,
		invoice.InvoiceNumber,
		invoice.OrderID,
		invoice.CustomerID,
		invoice.Status,
		items,
		invoice.Subtotal,
		invoice.Tax,
		invoice.Discount,
		invoice.Total,
		invoice.Currency,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", mapWriteError(err))
	}

	return nil
}

// FindByID retrieves an invoice by its id
func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	invoice, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice by id: %w", notFound(err, "invoice"))
	}
	return invoice, nil
}

// FindByIDForUpdate retrieves an invoice and locks the row.
// Must be called within a transaction.
func (r *invoiceRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`

	invoice, err := scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice for update: %w", notFound(err, "invoice"))
	}
	return invoice, nil
}

// FindByOrderID returns the invoices for an order, oldest first
func (r *invoiceRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE order_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]*models.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}
	return invoices, nil
}

// Update persists status and the paid/void stamps
func (r *invoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $2,
		    paid_date = $3,
		    voided_at = $4,
		    void_reason = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		invoice.ID,
		invoice.Status,
		invoice.PaidDate,
		invoice.VoidedAt,
		invoice.VoidReason,
	).Scan(&invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", notFound(err, "invoice"))
	}

	return nil
}
