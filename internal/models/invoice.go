package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusIssued  InvoiceStatus = "ISSUED"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusVoid    InvoiceStatus = "VOID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusVoid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// InvoiceItem is a single billed line.
type InvoiceItem struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	LineTotal   int64  `json:"lineTotal"`
}

// Invoice is the billable record for an order. Once VOID it never changes status again.
type Invoice struct {
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updatedAt"`
	PaidDate      *time.Time    `db:"paid_date" json:"paidDate,omitempty"`
	VoidedAt      *time.Time    `db:"voided_at" json:"voidedAt,omitempty"`
	VoidReason    *string       `db:"void_reason" json:"voidReason,omitempty"`
	InvoiceNumber string        `db:"invoice_number" json:"invoiceNumber"`
	Status        InvoiceStatus `db:"status" json:"status"`
	Currency      string        `db:"currency" json:"currency"`
	Items         []InvoiceItem `db:"items" json:"items"`
	ID            int64         `db:"id" json:"id"`
	OrderID       int64         `db:"order_id" json:"orderId"`
	CustomerID    int64         `db:"customer_id" json:"customerId"`
	Subtotal      int64         `db:"subtotal" json:"subtotal"`
	Tax           int64         `db:"tax" json:"tax"`
	Discount      int64         `db:"discount" json:"discount"`
	Total         int64         `db:"total" json:"total"`
	UID           uuid.UUID     `db:"uid" json:"uid"`
}
