// Package payments adapts the Stripe API to the refund and capture flows.
// Nothing outside this package imports stripe-go.
package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// RefundRequest asks the gateway to return money on a payment intent.
// Amount is in minor units of Currency, the currency of the original charge.
type RefundRequest struct {
	Metadata        map[string]string
	PaymentIntentID string
	Currency        string
	Reason          string
	IdempotencyKey  string
	Amount          int64
}

// Refund is the gateway's view of a refund
type Refund struct {
	Metadata        map[string]string
	ID              string
	PaymentIntentID string
	ChargeID        string
	Currency        string
	Status          string
	Reason          string
	Amount          int64
}

// CheckoutSession is the subset of a hosted checkout the billing flows read
type CheckoutSession struct {
	Metadata        map[string]string
	ID              string
	PaymentIntentID string
	Currency        string
	PaymentStatus   string
	AmountSubtotal  int64
	AmountTax       int64
	AmountTotal     int64
}

// StripeGateway executes refunds and checkout lookups against Stripe
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway creates a gateway with the provided secret key
func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)

	return &StripeGateway{client: sc}
}

// NewStripeGatewayWithBackends creates a gateway against custom backends
func NewStripeGatewayWithBackends(apiKey string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{client: client.New(apiKey, backends)}
}

// CreateRefund refunds a payment intent. The idempotency key makes a retried
// call for the same local refund return the original gateway refund.
func (g *StripeGateway) CreateRefund(ctx context.Context, req RefundRequest) (*Refund, error) {
	if req.PaymentIntentID == "" {
		return nil, &GatewayError{Op: "create refund", Code: "missing_payment_intent", Err: errors.New("payment intent id is required")}
	}
	if req.Amount <= 0 {
		return nil, &GatewayError{Op: "create refund", Code: "invalid_amount", Err: fmt.Errorf("amount must be positive, got %d", req.Amount)}
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentIntentID),
		Amount:        stripe.Int64(req.Amount),
	}
	if req.Reason != "" {
		params.Reason = stripe.String(req.Reason)
	}
	if len(req.Metadata) > 0 {
		params.Metadata = make(map[string]string, len(req.Metadata))
		for k, v := range req.Metadata {
			params.Metadata[k] = v
		}
	}
	if req.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(req.IdempotencyKey)
	}
	params.Context = ctx

	r, err := g.client.Refunds.New(params)
	if err != nil {
		return nil, mapStripeError("create refund", err)
	}

	return refundFromStripe(r), nil
}

// GetCheckoutSession retrieves a checkout session by id
func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.client.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, mapStripeError("retrieve checkout session", err)
	}

	return sessionFromStripe(s), nil
}

func refundFromStripe(r *stripe.Refund) *Refund {
	out := &Refund{
		ID:       r.ID,
		Amount:   r.Amount,
		Currency: strings.ToUpper(string(r.Currency)),
		Status:   string(r.Status),
		Reason:   string(r.Reason),
		Metadata: r.Metadata,
	}
	if r.PaymentIntent != nil {
		out.PaymentIntentID = r.PaymentIntent.ID
	}
	if r.Charge != nil {
		out.ChargeID = r.Charge.ID
	}
	return out
}

func sessionFromStripe(s *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:             s.ID,
		Currency:       strings.ToUpper(string(s.Currency)),
		PaymentStatus:  string(s.PaymentStatus),
		AmountSubtotal: s.AmountSubtotal,
		AmountTotal:    s.AmountTotal,
		Metadata:       s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if s.TotalDetails != nil {
		out.AmountTax = s.TotalDetails.AmountTax
	}
	return out
}
