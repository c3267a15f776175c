package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
)

// TransactionRepository defines the interface for payment ledger access.
// Entries are append-only; there is no update.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.PaymentTransaction) error
	FindByID(ctx context.Context, id int64) (*models.PaymentTransaction, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]*models.PaymentTransaction, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db db.DBTX
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(database db.DBTX) TransactionRepository {
	return &transactionRepository{db: database}
}

const transactionColumns = `
	id, uid, transaction_number, order_id, invoice_id, customer_id, type, amount,
	currency, payment_method, payment_intent_id, charge_id, status, metadata, created_at`

func scanTransaction(row scanner) (*models.PaymentTransaction, error) {
	var (
		txn      models.PaymentTransaction
		metadata []byte
	)
	err := row.Scan(
		&txn.ID,
		&txn.UID,
		&txn.TransactionNumber,
		&txn.OrderID,
		&txn.InvoiceID,
		&txn.CustomerID,
		&txn.Type,
		&txn.Amount,
		&txn.Currency,
		&txn.PaymentMethod,
		&txn.PaymentIntentID,
		&txn.ChargeID,
		&txn.Status,
		&metadata,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(metadata, &txn.Metadata); err != nil {
		return nil, err
	}
	return &txn, nil
}

// Create appends a ledger entry
func (r *transactionRepository) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	if txn.UID == uuid.Nil {
		txn.UID = uuid.New()
	}

	metadata, err := marshalJSON(txn.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payment_transactions (
			uid, transaction_number, order_id, invoice_id, customer_id, type, amount,
			currency, payment_method, payment_intent_id, charge_id, status, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		txn.UID,
		txn.TransactionNumber,
		txn.OrderID,
		txn.InvoiceID,
		txn.CustomerID,
		txn.Type,
		txn.Amount,
		txn.Currency,
		txn.PaymentMethod,
		txn.PaymentIntentID,
		txn.ChargeID,
		txn.Status,
		metadata,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", mapWriteError(err))
	}

	return nil
}

// FindByID retrieves a ledger entry by its id
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*models.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE id = $1`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by id: %w", notFound(err, "transaction"))
	}
	return txn, nil
}

// FindByOrderID returns an order's ledger entries, oldest first
func (r *transactionRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE order_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]*models.PaymentTransaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}
