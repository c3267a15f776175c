package payments

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Webhook event types handled by the billing flows
const (
	EventRefundCreated           = "refund.created"
	EventRefundUpdated           = "refund.updated"
	EventChargeRefundUpdated     = "charge.refund.updated"
	EventCheckoutSessionComplete = "checkout.session.completed"
)

// Event is a verified, normalised webhook event. Exactly one of Refund or
// Session is set for handled types; both are nil otherwise.
type Event struct {
	Refund  *Refund
	Session *CheckoutSession
	ID      string
	Type    string
}

// WebhookVerifier checks Stripe signatures and decodes event payloads
type WebhookVerifier struct {
	secret string
}

// NewWebhookVerifier creates a verifier for the endpoint signing secret
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Parse verifies payload against the Stripe-Signature header and decodes it
func (v *WebhookVerifier) Parse(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("stripe signature invalid: %w", err)
	}

	out := &Event{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case EventRefundCreated, EventRefundUpdated, EventChargeRefundUpdated:
		var r stripe.Refund
		if err := json.Unmarshal(event.Data.Raw, &r); err != nil {
			return nil, fmt.Errorf("failed to decode refund event: %w", err)
		}
		out.Refund = refundFromStripe(&r)
	case EventCheckoutSessionComplete:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session event: %w", err)
		}
		out.Session = sessionFromStripe(&s)
	}

	return out, nil
}
