package payments

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v79"
)

// ErrGatewayDisabled is returned when no gateway credentials are configured
var ErrGatewayDisabled = errors.New("payment gateway is not configured")

// GatewayError is a failed call to the payment processor. It is passed to
// callers unchanged so the upstream cause stays visible.
type GatewayError struct {
	Err        error
	Op         string
	Code       string
	HTTPStatus int
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment gateway: %s failed (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("payment gateway: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// mapStripeError converts stripe-go errors into GatewayError
func mapStripeError(op string, err error) error {
	gwErr := &GatewayError{Op: op, Err: err}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		gwErr.Code = string(stripeErr.Code)
		gwErr.HTTPStatus = stripeErr.HTTPStatusCode
		if stripeErr.Msg != "" {
			gwErr.Err = errors.New(stripeErr.Msg)
		}
		if gwErr.Code == "" && stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			gwErr.Code = "provider_unavailable"
		}
	}
	return gwErr
}
