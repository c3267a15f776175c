package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tutorbase/backend/internal/middleware"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/response"
	"github.com/tutorbase/backend/internal/service"
)

type listRefundsQuery struct {
	Status     string `form:"status"`
	CustomerID int64  `form:"customerId" binding:"omitempty,gt=0"`
	OrderID    int64  `form:"orderId" binding:"omitempty,gt=0"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

type reasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateRefund handles POST /refunds. The refund is processed straight
// away; a processing failure still answers 201 with the FAILED refund.
func (h *Handler) CreateRefund(c *gin.Context) {
	var in models.CreateRefundInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}
	in.InitiatedBy = middleware.ActorID(c)

	refund, err := h.refundService.CreateRefund(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, refund)
}

// ListRefunds handles GET /refunds
func (h *Handler) ListRefunds(c *gin.Context) {
	var q listRefundsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	status := models.RefundStatus(strings.ToUpper(q.Status))
	if status != "" && !status.Valid() {
		response.BadRequest(c, service.ErrCodeInvalidRequest, "unknown refund status "+q.Status)
		return
	}

	refunds, err := h.refundService.ListRefunds(c.Request.Context(), models.RefundFilter{
		Status:     status,
		CustomerID: q.CustomerID,
		OrderID:    q.OrderID,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refunds)
}

// GetRefund handles GET /refunds/:id
func (h *Handler) GetRefund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	refund, err := h.refundService.GetRefund(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refund)
}

// GetRefundByNumber handles GET /refunds/number/:refundNumber
func (h *Handler) GetRefundByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("refundNumber"))
	if number == "" {
		response.BadRequest(c, service.ErrCodeInvalidRequest, "refund number is required")
		return
	}

	refund, err := h.refundService.GetRefundByNumber(c.Request.Context(), number)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refund)
}

// ListRefundsForOrder handles GET /refunds/order/:orderId
func (h *Handler) ListRefundsForOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	refunds, err := h.refundService.ListRefundsForOrder(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refunds)
}

// ListRefundsForCustomer handles GET /refunds/customer/:customerId
func (h *Handler) ListRefundsForCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}

	refunds, err := h.refundService.ListRefundsForCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refunds)
}

// RefundStats handles GET /refunds/stats
func (h *Handler) RefundStats(c *gin.Context) {
	stats, err := h.refundService.RefundStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, stats)
}

// ProcessRefund handles PUT /refunds/:id/process
func (h *Handler) ProcessRefund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	refund, err := h.refundService.ProcessRefund(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refund)
}

// CancelRefund handles PUT /refunds/:id/cancel
func (h *Handler) CancelRefund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	refund, err := h.refundService.CancelRefund(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refund)
}

// ResetRefund handles PUT /refunds/:id/reset
func (h *Handler) ResetRefund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	refund, err := h.refundService.ResetRefund(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, refund)
}
