package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorbase/backend/internal/response"
	"github.com/tutorbase/backend/internal/service"
)

const maxWebhookBody = 64 << 10

// StripeWebhook handles POST /webhooks/stripe. Failures answer non-2xx so
// the gateway redelivers the event.
func (h *Handler) StripeWebhook(c *gin.Context) {
	if h.webhookParser == nil {
		response.ServiceUnavailable(c, "webhooks are not configured")
		return
	}

	payload, err := readLimited(c, maxWebhookBody)
	if err != nil {
		response.BadRequest(c, service.ErrCodeInvalidRequest, "unreadable webhook body")
		return
	}

	event, err := h.webhookParser.Parse(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("rejected webhook", "error", err)
		response.BadRequest(c, service.ErrCodeInvalidRequest, "invalid webhook signature")
		return
	}

	if err := h.webhookService.HandleEvent(c.Request.Context(), event); err != nil {
		h.logger.Error("webhook event failed", "event_id", event.ID, "type", event.Type, "error", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func readLimited(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	return c.GetRawData()
}
