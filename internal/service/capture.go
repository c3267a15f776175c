package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/payments"
	"github.com/tutorbase/backend/internal/repository"
)

// CaptureService records a completed checkout: the order is marked paid,
// its invoice is generated and paid, and a PAYMENT ledger entry is written.
type CaptureService struct {
	db           *db.DB
	invoices     *InvoiceService
	ledger       LedgerRecorder
	logger       *slog.Logger
	baseCurrency string
}

// NewCaptureService creates a new CaptureService
func NewCaptureService(database *db.DB, invoices *InvoiceService, ledger LedgerRecorder, baseCurrency string, logger *slog.Logger) *CaptureService {
	return &CaptureService{
		db:           database,
		invoices:     invoices,
		ledger:       ledger,
		logger:       logger,
		baseCurrency: baseCurrency,
	}
}

// capture is the outcome of performCapture
type capture struct {
	invoice      *models.Invoice
	paidCurrency string
	// fresh is false when the order was already paid
	fresh bool
}

// CapturePayment applies a completed checkout session to an order.
// Redelivery for an already paid order returns its invoice and writes nothing.
func (s *CaptureService) CapturePayment(ctx context.Context, orderID int64, session *payments.CheckoutSession) (*models.Invoice, error) {
	var result *capture
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		result, err = s.performCapture(ctx,
			repository.NewOrderRepository(tx),
			repository.NewInvoiceRepository(tx),
			orderID,
			session,
		)
		return err
	})
	if err != nil {
		return nil, asServiceError(err, "failed to capture payment")
	}

	if !result.fresh {
		s.logger.Info("checkout already captured", "order_id", orderID, "session_id", session.ID)
		return result.invoice, nil
	}

	s.recordPayment(ctx, result.invoice, session, result.paidCurrency)

	s.logger.Info("payment captured",
		"order_id", orderID,
		"invoice_number", result.invoice.InvoiceNumber,
		"payment_intent_id", session.PaymentIntentID,
		"currency_paid", result.paidCurrency,
	)

	return result.invoice, nil
}

// performCapture holds the order row lock for the whole capture, so a
// concurrent redelivery waits and then takes the already-paid branch.
func (s *CaptureService) performCapture(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
	orderID int64,
	session *payments.CheckoutSession,
) (*capture, error) {
	order, err := orderRepo.FindByIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, lookupError(err, "order", orderID)
	}

	if order.PaymentStatus == models.OrderPaymentPaid {
		invoice, err := s.invoices.generateForOrder(ctx, invoiceRepo, order)
		if err != nil {
			return nil, err
		}
		return &capture{invoice: invoice}, nil
	}

	paidCurrency := strings.ToUpper(session.Currency)
	if paidCurrency == "" {
		paidCurrency = strings.ToUpper(order.Currency)
	}
	if paidCurrency == "" {
		paidCurrency = s.baseCurrency
	}

	err = orderRepo.RecordCheckout(ctx, order.ID, session.PaymentIntentID, session.ID, paidCurrency, session.AmountTax)
	if err != nil {
		return nil, lookupError(err, "order", order.ID)
	}

	// reload for the paid currency and tax just written
	order, err = orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, lookupError(err, "order", orderID)
	}

	invoice, err := s.invoices.generateForOrder(ctx, invoiceRepo, order)
	if err != nil {
		return nil, err
	}

	invoice, err = s.invoices.performUpdateStatus(ctx, invoiceRepo, invoice.ID, models.InvoiceStatusPaid)
	if err != nil {
		return nil, err
	}

	return &capture{invoice: invoice, paidCurrency: paidCurrency, fresh: true}, nil
}

// recordPayment writes the PAYMENT entry. The amount is the invoice
// subtotal; tax is carried in metadata.
func (s *CaptureService) recordPayment(ctx context.Context, invoice *models.Invoice, session *payments.CheckoutSession, paidCurrency string) {
	in := models.RecordTransactionInput{
		OrderID:       invoice.OrderID,
		InvoiceID:     &invoice.ID,
		CustomerID:    invoice.CustomerID,
		Type:          models.TransactionTypePayment,
		Amount:        invoice.Subtotal,
		Currency:      invoice.Currency,
		PaymentMethod: gatewayPaymentMethod,
		Status:        session.PaymentStatus,
		Metadata: map[string]any{
			models.MetaTaxAmount:         invoice.Tax,
			models.MetaTotalWithTax:      invoice.Total,
			models.MetaInvoiceSubtotal:   invoice.Subtotal,
			models.MetaCurrencyPaid:      paidCurrency,
			models.MetaConversionApplied: !strings.EqualFold(paidCurrency, invoice.Currency),
		},
	}
	if session.PaymentIntentID != "" {
		pi := session.PaymentIntentID
		in.PaymentIntentID = &pi
	}

	if _, err := s.ledger.Record(ctx, in); err != nil {
		s.logger.Error("failed to record payment ledger entry",
			"order_id", invoice.OrderID,
			"invoice_id", invoice.ID,
			"error", err,
		)
	}
}
