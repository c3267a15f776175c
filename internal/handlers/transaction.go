package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tutorbase/backend/internal/response"
)

// ListTransactionsForOrder handles GET /transactions/order/:orderId
func (h *Handler) ListTransactionsForOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	txns, err := h.ledgerService.ListForOrder(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, txns)
}
