package models

// CreateRefundInput carries a refund request. Currency defaults to the
// order's currency, then to the base currency.
type CreateRefundInput struct {
	ReplacementOrderID *int64       `json:"replacementOrderId"`
	InvoiceID          *int64       `json:"invoiceId"`
	InitiatedBy        *int64       `json:"-"`
	Currency           string       `json:"currency" binding:"omitempty,iso_currency"`
	Reason             RefundReason `json:"reason" binding:"required,refund_reason"`
	ReasonDetails      string       `json:"reasonDetails" binding:"required"`
	OrderID            int64        `json:"orderId" binding:"required,gt=0"`
	CustomerID         int64        `json:"customerId" binding:"required,gt=0"`
	Amount             int64        `json:"amount" binding:"required,gt=0"`
}

// CreateInvoiceInput asks for an invoice to be generated from an order.
type CreateInvoiceInput struct {
	OrderID int64 `json:"orderId" binding:"required,gt=0"`
}

// RecordTransactionInput is a ledger append request.
type RecordTransactionInput struct {
	Metadata        map[string]any
	InvoiceID       *int64
	PaymentIntentID *string
	ChargeID        *string
	Type            TransactionType
	Currency        string
	PaymentMethod   string
	Status          string
	OrderID         int64
	CustomerID      int64
	Amount          int64
}
