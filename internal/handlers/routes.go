package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorbase/backend/internal/api"
	"github.com/tutorbase/backend/internal/config"
	"github.com/tutorbase/backend/internal/middleware"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	h *Handler,
	idempotency middleware.IdempotencyStore,
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	if cfg.JWT.Secret != "" {
		r.Use(middleware.Actor(cfg.JWT.Secret))
	}

	api.RegisterDocsRoutes(r)
	r.GET("/health", h.GetHealth)

	refunds := r.Group("/refunds")
	{
		refunds.POST("", h.CreateRefund)
		refunds.GET("", h.ListRefunds)
		refunds.GET("/stats", h.RefundStats)
		refunds.GET("/number/:refundNumber", h.GetRefundByNumber)
		refunds.GET("/order/:orderId", h.ListRefundsForOrder)
		refunds.GET("/customer/:customerId", h.ListRefundsForCustomer)
		refunds.GET("/:id", h.GetRefund)
		refunds.PUT("/:id/process", h.ProcessRefund)
		refunds.PUT("/:id/cancel", h.CancelRefund)
		refunds.PUT("/:id/reset", h.ResetRefund)
	}

	invoicing := r.Group("/invoicing")
	{
		invoicing.POST("", h.CreateInvoice)
		invoicing.GET("/order/:orderId", h.ListInvoicesForOrder)
		invoicing.GET("/:id", h.GetInvoice)
		invoicing.PUT("/:id/void", h.VoidInvoice)
		invoicing.PUT("/:id/status", h.UpdateInvoiceStatus)
	}

	r.GET("/transactions/order/:orderId", h.ListTransactionsForOrder)
	r.POST("/webhooks/stripe", h.StripeWebhook)

	var finalHandler http.Handler = r
	if idempotency != nil {
		finalHandler = middleware.Idempotency(idempotency, logger, "/refunds", "/invoicing")(finalHandler)
	}

	return finalHandler
}
