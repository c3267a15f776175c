// Package handlers implements the HTTP API over gin.
package handlers

import (
	"log/slog"

	"github.com/tutorbase/backend/internal/payments"
	"github.com/tutorbase/backend/internal/service"
)

// EventParser verifies and decodes a signed webhook payload
type EventParser interface {
	Parse(payload []byte, signature string) (*payments.Event, error)
}

// Handler serves every endpoint. A nil webhook parser disables the
// webhook endpoint.
type Handler struct {
	refundService  service.Refunder
	invoiceService service.Invoicer
	ledgerService  service.LedgerRecorder
	webhookService service.WebhookHandler
	webhookParser  EventParser
	healthChecker  service.HealthChecker
	logger         *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	refundService service.Refunder,
	invoiceService service.Invoicer,
	ledgerService service.LedgerRecorder,
	webhookService service.WebhookHandler,
	webhookParser EventParser,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		refundService:  refundService,
		invoiceService: invoiceService,
		ledgerService:  ledgerService,
		webhookService: webhookService,
		webhookParser:  webhookParser,
		healthChecker:  healthChecker,
		logger:         logger,
	}
}
