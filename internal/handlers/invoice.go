package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/response"
)

type invoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateInvoice handles POST /invoicing. An order that already has an
// invoice gets that invoice back.
func (h *Handler) CreateInvoice(c *gin.Context) {
	var in models.CreateInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.GenerateFromOrder(c.Request.Context(), in.OrderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, invoice)
}

// GetInvoice handles GET /invoicing/:id
func (h *Handler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, invoice)
}

// ListInvoicesForOrder handles GET /invoicing/order/:orderId
func (h *Handler) ListInvoicesForOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListForOrder(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, invoices)
}

// VoidInvoice handles PUT /invoicing/:id/void
func (h *Handler) VoidInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.Void(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, invoice)
}

// UpdateInvoiceStatus handles PUT /invoicing/:id/status
func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req invoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, models.InvoiceStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, invoice)
}
