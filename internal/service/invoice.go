package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/repository"
)

// InvoiceService owns invoice state transitions. A voided invoice never
// changes status again.
type InvoiceService struct {
	db           *db.DB
	converter    CurrencyConverter
	logger       *slog.Logger
	now          func() time.Time
	baseCurrency string
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(database *db.DB, converter CurrencyConverter, baseCurrency string, logger *slog.Logger) *InvoiceService {
	return &InvoiceService{
		db:           database,
		converter:    converter,
		logger:       logger,
		now:          time.Now,
		baseCurrency: baseCurrency,
	}
}

// Void voids an invoice. Voiding an already voided invoice is an error.
func (s *InvoiceService) Void(ctx context.Context, invoiceID int64, reason string) (*models.Invoice, error) {
	var invoice *models.Invoice
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		invoice, err = s.performVoid(ctx, repository.NewInvoiceRepository(tx), invoiceID, reason)
		return err
	})
	if err != nil {
		return nil, asServiceError(err, "failed to void invoice")
	}

	s.logger.Info("invoice voided", "invoice_id", invoice.ID, "invoice_number", invoice.InvoiceNumber)
	return invoice, nil
}

// performVoid contains the core void business logic
func (s *InvoiceService) performVoid(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	invoiceID int64,
	reason string,
) (*models.Invoice, error) {
	invoice, err := invoiceRepo.FindByIDForUpdate(ctx, invoiceID)
	if err != nil {
		return nil, lookupError(err, "invoice", invoiceID)
	}

	if invoice.Status == models.InvoiceStatusVoid {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("invoice %s is already void", invoice.InvoiceNumber),
		}
	}

	voidedAt := s.now()
	invoice.Status = models.InvoiceStatusVoid
	invoice.VoidedAt = &voidedAt
	invoice.VoidReason = &reason

	if err := invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, internalError("failed to update invoice", err)
	}

	return invoice, nil
}

// UpdateStatus moves an invoice to status. PAID stamps the paid date the
// first time only; VOID goes through the void rules.
func (s *InvoiceService) UpdateStatus(ctx context.Context, invoiceID int64, status models.InvoiceStatus) (*models.Invoice, error) {
	var invoice *models.Invoice
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		invoice, err = s.performUpdateStatus(ctx, repository.NewInvoiceRepository(tx), invoiceID, status)
		return err
	})
	if err != nil {
		return nil, asServiceError(err, "failed to update invoice status")
	}

	s.logger.Info("invoice status updated", "invoice_id", invoice.ID, "status", invoice.Status)
	return invoice, nil
}

// performUpdateStatus contains the core status transition logic
func (s *InvoiceService) performUpdateStatus(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	invoiceID int64,
	status models.InvoiceStatus,
) (*models.Invoice, error) {
	status = models.InvoiceStatus(strings.ToUpper(string(status)))
	if !status.Valid() {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: fmt.Sprintf("unknown invoice status %q", status),
		}
	}

	if status == models.InvoiceStatusVoid {
		return s.performVoid(ctx, invoiceRepo, invoiceID, "Status set to VOID")
	}

	invoice, err := invoiceRepo.FindByIDForUpdate(ctx, invoiceID)
	if err != nil {
		return nil, lookupError(err, "invoice", invoiceID)
	}

	if invoice.Status == models.InvoiceStatusVoid {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("invoice %s is void and cannot become %s", invoice.InvoiceNumber, status),
		}
	}

	invoice.Status = status
	if status == models.InvoiceStatusPaid && invoice.PaidDate == nil {
		paidAt := s.now()
		invoice.PaidDate = &paidAt
	}

	if err := invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, internalError("failed to update invoice", err)
	}

	return invoice, nil
}

// GenerateFromOrder creates a DRAFT invoice for an order, or returns the
// order's existing invoice unchanged.
func (s *InvoiceService) GenerateFromOrder(ctx context.Context, orderID int64) (*models.Invoice, error) {
	var invoice *models.Invoice
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		invoice, err = s.performGenerate(ctx,
			repository.NewInvoiceRepository(tx),
			repository.NewOrderRepository(tx),
			orderID,
		)
		return err
	})
	if err != nil {
		return nil, asServiceError(err, "failed to generate invoice")
	}
	return invoice, nil
}

// performGenerate locks the order row, so concurrent generation for one
// order serializes and the loser sees the winner's invoice.
func (s *InvoiceService) performGenerate(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	orderID int64,
) (*models.Invoice, error) {
	order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, lookupError(err, "order", orderID)
	}
	return s.generateForOrder(ctx, invoiceRepo, order)
}

// generateForOrder returns the order's existing invoice or creates one.
// The caller must hold the order row lock.
func (s *InvoiceService) generateForOrder(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	order *models.Order,
) (*models.Invoice, error) {
	existing, err := invoiceRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, internalError("failed to look up invoices", err)
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	items := make([]models.InvoiceItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.Quantity * item.UnitPrice,
		})
	}

	invoice := &models.Invoice{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     models.InvoiceStatusDraft,
		Currency:   s.baseCurrency,
		Items:      items,
		Subtotal:   order.Subtotal,
		Tax:        order.Tax,
		Discount:   order.Discount,
		Total:      order.Total,
	}

	// tax collected in a foreign currency is stored back in the base currency
	paidCurrency, _ := order.MetaString(models.MetaPaidCurrency)
	taxPaid, hasTax := order.MetaInt(models.MetaTaxAmountPaid)
	if hasTax && paidCurrency != "" && !strings.EqualFold(paidCurrency, s.baseCurrency) {
		conv := s.converter.Convert(ctx, taxPaid, paidCurrency, s.baseCurrency)
		if conv.Converted {
			invoice.Tax = conv.Amount
			invoice.Total = invoice.Subtotal - invoice.Discount + invoice.Tax
		}
	}

	err = createWithNumber(ctx, PrefixInvoice, s.now, func(number string) error {
		invoice.InvoiceNumber = number
		return invoiceRepo.Create(ctx, invoice)
	})
	if err != nil {
		return nil, asServiceError(err, "failed to create invoice")
	}

	s.logger.Info("invoice generated",
		"invoice_id", invoice.ID,
		"invoice_number", invoice.InvoiceNumber,
		"order_id", order.ID,
		"total", invoice.Total,
	)

	return invoice, nil
}

// GetInvoice retrieves an invoice by id
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*models.Invoice, error) {
	invoice, err := repository.NewInvoiceRepository(s.db).FindByID(ctx, invoiceID)
	if err != nil {
		return nil, lookupError(err, "invoice", invoiceID)
	}
	return invoice, nil
}

// ListForOrder returns the invoices for an order, oldest first
func (s *InvoiceService) ListForOrder(ctx context.Context, orderID int64) ([]*models.Invoice, error) {
	invoices, err := repository.NewInvoiceRepository(s.db).FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, internalError("failed to list invoices", err)
	}
	return invoices, nil
}

// asServiceError passes ServiceErrors through and wraps anything else
func asServiceError(err error, message string) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return internalError(message, err)
}
