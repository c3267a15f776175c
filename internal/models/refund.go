package models

import (
	"time"

	"github.com/google/uuid"
)

// RefundStatus represents where a refund is in its lifecycle
type RefundStatus string

const (
	RefundStatusPending    RefundStatus = "PENDING"
	RefundStatusProcessing RefundStatus = "PROCESSING"
	RefundStatusCompleted  RefundStatus = "COMPLETED"
	RefundStatusCancelled  RefundStatus = "CANCELLED"
	RefundStatusFailed     RefundStatus = "FAILED"
)

// Valid reports whether s is a known status.
func (s RefundStatus) Valid() bool {
	switch s {
	case RefundStatusPending, RefundStatusProcessing, RefundStatusCompleted, RefundStatusCancelled, RefundStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s RefundStatus) IsTerminal() bool {
	return s == RefundStatusCompleted || s == RefundStatusCancelled
}

// RefundReason classifies why a refund was requested
type RefundReason string

const (
	RefundReasonCustomerRequest RefundReason = "customer_request"
	RefundReasonDuplicate       RefundReason = "duplicate"
	RefundReasonFraudulent      RefundReason = "fraudulent"
	RefundReasonOther           RefundReason = "other"
)

// Valid reports whether r is one of the known reasons.
func (r RefundReason) Valid() bool {
	switch r {
	case RefundReasonCustomerRequest, RefundReasonDuplicate, RefundReasonFraudulent, RefundReasonOther:
		return true
	}
	return false
}

// Refund metadata keys recording how the base-currency amount was converted.
const (
	MetaRefundAmountInCad             = "refundAmountInCad"
	MetaRefundAmountInPaymentCurrency = "refundAmountInPaymentCurrency"
	MetaOriginalPaymentCurrency       = "originalPaymentCurrency"
	MetaExchangeRate                  = "exchangeRate"
)

// Refund is a single refund request and its settlement against the gateway.
// Amount is always stored in the base currency.
type Refund struct {
	CreatedAt          time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updatedAt"`
	Metadata           map[string]any `db:"metadata" json:"metadata"`
	ReplacementOrderID *int64         `db:"replacement_order_id" json:"replacementOrderId,omitempty"`
	InvoiceID          *int64         `db:"invoice_id" json:"invoiceId,omitempty"`
	ExternalRefundID   *string        `db:"external_refund_id" json:"externalRefundId,omitempty"`
	InitiatedBy        *int64         `db:"initiated_by" json:"initiatedBy,omitempty"`
	ProcessedBy        *int64         `db:"processed_by" json:"processedBy,omitempty"`
	SettledAt          *time.Time     `db:"settled_at" json:"settledAt,omitempty"`
	RefundNumber       string         `db:"refund_number" json:"refundNumber"`
	Currency           string         `db:"currency" json:"currency"`
	Reason             RefundReason   `db:"reason" json:"reason"`
	ReasonDetails      string         `db:"reason_details" json:"reasonDetails"`
	Status             RefundStatus   `db:"status" json:"status"`
	ID                 int64          `db:"id" json:"id"`
	OrderID            int64          `db:"order_id" json:"orderId"`
	CustomerID         int64          `db:"customer_id" json:"customerId"`
	Amount             int64          `db:"amount" json:"amount"`
	UID                uuid.UUID      `db:"uid" json:"uid"`
}

// RefundFilter narrows refund listings. Zero values mean "any".
type RefundFilter struct {
	Status     RefundStatus
	CustomerID int64
	OrderID    int64
	Limit      int
	Offset     int
}

// RefundStats summarises refunds by status.
type RefundStats struct {
	ByStatus        map[RefundStatus]int64 `json:"byStatus"`
	Total           int64                  `json:"total"`
	CompletedAmount int64                  `json:"completedAmount"`
}
