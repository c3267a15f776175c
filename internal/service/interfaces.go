package service

import (
	"context"

	"github.com/tutorbase/backend/internal/currency"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/payments"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// PaymentGateway is the payment processor used to move money back
type PaymentGateway interface {
	CreateRefund(ctx context.Context, req payments.RefundRequest) (*payments.Refund, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*payments.CheckoutSession, error)
}

// CurrencyConverter converts minor-unit amounts between currencies
type CurrencyConverter interface {
	Convert(ctx context.Context, amount int64, from, to string) currency.Conversion
}

// Refunder handles the refund lifecycle
type Refunder interface {
	CreateRefund(ctx context.Context, in models.CreateRefundInput) (*models.Refund, error)
	ProcessRefund(ctx context.Context, refundID int64, actor *int64) (*models.Refund, error)
	CancelRefund(ctx context.Context, refundID int64, reason string) (*models.Refund, error)
	ResetRefund(ctx context.Context, refundID int64) (*models.Refund, error)
	GetRefund(ctx context.Context, refundID int64) (*models.Refund, error)
	GetRefundByNumber(ctx context.Context, refundNumber string) (*models.Refund, error)
	ListRefunds(ctx context.Context, filter models.RefundFilter) ([]*models.Refund, error)
	ListRefundsForOrder(ctx context.Context, orderID int64) ([]*models.Refund, error)
	ListRefundsForCustomer(ctx context.Context, customerID int64) ([]*models.Refund, error)
	RefundStats(ctx context.Context) (*models.RefundStats, error)
}

// Invoicer owns invoice state transitions
type Invoicer interface {
	GenerateFromOrder(ctx context.Context, orderID int64) (*models.Invoice, error)
	Void(ctx context.Context, invoiceID int64, reason string) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceID int64, status models.InvoiceStatus) (*models.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID int64) (*models.Invoice, error)
	ListForOrder(ctx context.Context, orderID int64) ([]*models.Invoice, error)
}

// LedgerRecorder appends payment ledger entries
type LedgerRecorder interface {
	Record(ctx context.Context, in models.RecordTransactionInput) (*models.PaymentTransaction, error)
	ListForOrder(ctx context.Context, orderID int64) ([]*models.PaymentTransaction, error)
}

// Capturer turns a completed checkout into a paid invoice
type Capturer interface {
	CapturePayment(ctx context.Context, orderID int64, session *payments.CheckoutSession) (*models.Invoice, error)
}

// WebhookHandler applies verified gateway events
type WebhookHandler interface {
	HandleEvent(ctx context.Context, event *payments.Event) error
}

// Ensure concrete types implement interfaces
var (
	_ Refunder       = (*RefundService)(nil)
	_ Invoicer       = (*InvoiceService)(nil)
	_ LedgerRecorder = (*LedgerService)(nil)
	_ Capturer       = (*CaptureService)(nil)
	_ WebhookHandler = (*WebhookService)(nil)

	_ PaymentGateway    = (*payments.StripeGateway)(nil)
	_ PaymentGateway    = payments.DisabledGateway{}
	_ CurrencyConverter = (*currency.Converter)(nil)
)
