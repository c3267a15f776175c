package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/repository"
)

// LedgerService appends immutable payment transactions
type LedgerService struct {
	transactions repository.TransactionRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(transactions repository.TransactionRepository, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		transactions: transactions,
		logger:       logger,
		now:          time.Now,
	}
}

// Record validates the entry shape, assigns a TRN number and appends it
func (s *LedgerService) Record(ctx context.Context, in models.RecordTransactionInput) (*models.PaymentTransaction, error) {
	if err := validateRecordTransaction(in); err != nil {
		return nil, err
	}

	txn := &models.PaymentTransaction{
		OrderID:         in.OrderID,
		InvoiceID:       in.InvoiceID,
		CustomerID:      in.CustomerID,
		Type:            in.Type,
		Amount:          in.Amount,
		Currency:        strings.ToUpper(in.Currency),
		PaymentMethod:   in.PaymentMethod,
		PaymentIntentID: in.PaymentIntentID,
		ChargeID:        in.ChargeID,
		Status:          in.Status,
		Metadata:        in.Metadata,
	}

	err := createWithNumber(ctx, PrefixTransaction, s.now, func(number string) error {
		txn.TransactionNumber = number
		return s.transactions.Create(ctx, txn)
	})
	if err != nil {
		return nil, asServiceError(err, "failed to record transaction")
	}

	s.logger.Info("ledger entry recorded",
		"transaction_number", txn.TransactionNumber,
		"type", txn.Type,
		"order_id", txn.OrderID,
		"amount", txn.Amount,
		"currency", txn.Currency,
	)

	return txn, nil
}

// ListForOrder returns an order's ledger entries
func (s *LedgerService) ListForOrder(ctx context.Context, orderID int64) ([]*models.PaymentTransaction, error) {
	txns, err := s.transactions.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}
	return txns, nil
}
