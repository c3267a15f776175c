package payments

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/tutorbase/backend/internal/models"
)

// GatewayReason maps a refund reason onto Stripe's three accepted values.
// Anything unrecognised is sent as requested_by_customer.
func GatewayReason(reason models.RefundReason) string {
	switch reason {
	case models.RefundReasonDuplicate:
		return string(stripe.RefundReasonDuplicate)
	case models.RefundReasonFraudulent:
		return string(stripe.RefundReasonFraudulent)
	default:
		return string(stripe.RefundReasonRequestedByCustomer)
	}
}

// DomainReason maps a Stripe refund reason back to a refund reason
func DomainReason(reason string) models.RefundReason {
	switch reason {
	case string(stripe.RefundReasonDuplicate):
		return models.RefundReasonDuplicate
	case string(stripe.RefundReasonFraudulent):
		return models.RefundReasonFraudulent
	case string(stripe.RefundReasonRequestedByCustomer), "":
		return models.RefundReasonCustomerRequest
	default:
		return models.RefundReasonOther
	}
}

// RefundStatus maps a Stripe refund status to a refund status. ok is false
// for statuses with no local equivalent.
func RefundStatus(status string) (models.RefundStatus, bool) {
	switch status {
	case "pending", "requires_action":
		return models.RefundStatusProcessing, true
	case "succeeded":
		return models.RefundStatusCompleted, true
	case "failed":
		return models.RefundStatusFailed, true
	case "canceled", "cancelled":
		return models.RefundStatusCancelled, true
	}
	return "", false
}
