package payments

import "context"

// DisabledGateway is used when no Stripe key is configured. Every call fails
// with ErrGatewayDisabled so refunds end up FAILED instead of silently passing.
type DisabledGateway struct{}

// CreateRefund always fails
func (DisabledGateway) CreateRefund(_ context.Context, _ RefundRequest) (*Refund, error) {
	return nil, &GatewayError{Op: "create refund", Code: "gateway_disabled", Err: ErrGatewayDisabled}
}

// GetCheckoutSession always fails
func (DisabledGateway) GetCheckoutSession(_ context.Context, _ string) (*CheckoutSession, error) {
	return nil, &GatewayError{Op: "retrieve checkout session", Code: "gateway_disabled", Err: ErrGatewayDisabled}
}
