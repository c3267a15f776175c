package models

import "time"

// Order payment statuses used by the refund and capture flows
const (
	OrderPaymentUnpaid    = "UNPAID"
	OrderPaymentPaid      = "PAID"
	OrderPaymentCancelled = "CANCELLED"
	OrderPaymentRefunded  = "REFUNDED"
)

// Order metadata keys written by checkout
const (
	MetaStripePaymentIntentID   = "stripePaymentIntentId"
	MetaStripeCheckoutSessionID = "stripeCheckoutSessionId"
	MetaCheckedOutCurrency      = "checkedOutCurrency"
	MetaPaidCurrency            = "paidCurrency"
	MetaTaxAmountPaid           = "taxAmountPaid"
)

// OrderItem is a line on an order.
type OrderItem struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
}

// Order is owned by the order-intake subsystem; refunds and invoices only
// read it and move its payment status. Money fields are in the base currency.
type Order struct {
	CreatedAt         time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updatedAt"`
	Metadata          map[string]any `db:"metadata" json:"metadata"`
	PaymentIntentID   *string        `db:"payment_intent_id" json:"paymentIntentId,omitempty"`
	CheckoutSessionID *string        `db:"checkout_session_id" json:"checkoutSessionId,omitempty"`
	Status            string         `db:"status" json:"status"`
	PaymentStatus     string         `db:"payment_status" json:"paymentStatus"`
	Currency          string         `db:"currency" json:"currency"`
	Items             []OrderItem    `db:"items" json:"items"`
	ID                int64          `db:"id" json:"id"`
	CustomerID        int64          `db:"customer_id" json:"customerId"`
	Subtotal          int64          `db:"subtotal" json:"subtotal"`
	Tax               int64          `db:"tax" json:"tax"`
	Discount          int64          `db:"discount" json:"discount"`
	Total             int64          `db:"total" json:"total"`
}

// MetaString returns a non-empty string metadata value.
func (o *Order) MetaString(key string) (string, bool) {
	if o == nil || o.Metadata == nil {
		return "", false
	}
	v, ok := o.Metadata[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// MetaInt returns an integer metadata value. JSON numbers decode as float64.
func (o *Order) MetaInt(key string) (int64, bool) {
	if o == nil || o.Metadata == nil {
		return 0, false
	}
	switch v := o.Metadata[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// SlotReservation statuses
const (
	SlotStatusReserved = "reserved"
	SlotStatusReleased = "released"
)

// SlotReservation holds a tutoring slot for an order.
type SlotReservation struct {
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	ReleasedAt *time.Time `db:"released_at" json:"releasedAt,omitempty"`
	Status     string     `db:"status" json:"status"`
	ID         int64      `db:"id" json:"id"`
	OrderID    int64      `db:"order_id" json:"orderId"`
}
