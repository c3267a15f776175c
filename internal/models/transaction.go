package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of ledger entry
type TransactionType string

const (
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeRefund     TransactionType = "REFUND"
	TransactionTypeChargeback TransactionType = "CHARGEBACK"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePayment, TransactionTypeRefund, TransactionTypeChargeback, TransactionTypeAdjustment:
		return true
	}
	return false
}

// Ledger metadata keys
const (
	MetaTaxAmount         = "taxAmount"
	MetaTotalWithTax      = "totalWithTax"
	MetaInvoiceSubtotal   = "invoiceSubtotal"
	MetaCurrencyPaid      = "currencyPaid"
	MetaConversionApplied = "conversionApplied"
	MetaRefundID          = "refundId"
	MetaRefundNumber      = "refundNumber"
)

// PaymentTransaction is an append-only ledger entry for money movement.
// Amount is the subtotal; tax lives in Metadata.
type PaymentTransaction struct {
	CreatedAt         time.Time       `db:"created_at" json:"createdAt"`
	Metadata          map[string]any  `db:"metadata" json:"metadata"`
	InvoiceID         *int64          `db:"invoice_id" json:"invoiceId,omitempty"`
	PaymentIntentID   *string         `db:"payment_intent_id" json:"paymentIntentId,omitempty"`
	ChargeID          *string         `db:"charge_id" json:"chargeId,omitempty"`
	TransactionNumber string          `db:"transaction_number" json:"transactionNumber"`
	Type              TransactionType `db:"type" json:"type"`
	Currency          string          `db:"currency" json:"currency"`
	PaymentMethod     string          `db:"payment_method" json:"paymentMethod"`
	Status            string          `db:"status" json:"status"`
	ID                int64           `db:"id" json:"id"`
	OrderID           int64           `db:"order_id" json:"orderId"`
	CustomerID        int64           `db:"customer_id" json:"customerId"`
	Amount            int64           `db:"amount" json:"amount"`
	UID               uuid.UUID       `db:"uid" json:"uid"`
}

// IdempotencyKey tracks processed requests to prevent duplicate mutations
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
