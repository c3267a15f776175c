package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tutorbase/backend/internal/events"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/payments"
	"github.com/tutorbase/backend/internal/repository"
)

// WebhookDeps are the collaborators a WebhookService drives
type WebhookDeps struct {
	Refunds   repository.RefundRepository
	Orders    repository.OrderRepository
	Invoices  Invoicer
	Capturer  Capturer
	Converter CurrencyConverter
	Events    events.Publisher
}

// WebhookService applies verified payment gateway events. Refunds issued
// outside this system are recorded locally on first sight.
type WebhookService struct {
	refunds      repository.RefundRepository
	orders       repository.OrderRepository
	invoices     Invoicer
	capturer     Capturer
	converter    CurrencyConverter
	events       events.Publisher
	logger       *slog.Logger
	now          func() time.Time
	baseCurrency string
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(deps WebhookDeps, baseCurrency string, logger *slog.Logger) *WebhookService {
	publisher := deps.Events
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &WebhookService{
		refunds:      deps.Refunds,
		orders:       deps.Orders,
		invoices:     deps.Invoices,
		capturer:     deps.Capturer,
		converter:    deps.Converter,
		events:       publisher,
		logger:       logger,
		now:          time.Now,
		baseCurrency: baseCurrency,
	}
}

// HandleEvent dispatches an event by type. Unhandled types are ignored.
func (s *WebhookService) HandleEvent(ctx context.Context, event *payments.Event) error {
	switch event.Type {
	case payments.EventRefundCreated, payments.EventRefundUpdated, payments.EventChargeRefundUpdated:
		if event.Refund == nil {
			return &ServiceError{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("event %s carries no refund", event.ID)}
		}
		_, err := s.syncRefund(ctx, event.Refund)
		return err
	case payments.EventCheckoutSessionComplete:
		if event.Session == nil {
			return &ServiceError{Code: ErrCodeInvalidRequest, Message: fmt.Sprintf("event %s carries no checkout session", event.ID)}
		}
		return s.handleCheckoutCompleted(ctx, event.Session)
	default:
		s.logger.Debug("ignoring webhook event", "event_id", event.ID, "type", event.Type)
		return nil
	}
}

// maxSyncAttempts bounds re-reads after losing a write to a concurrent
// delivery or a refund state change.
const maxSyncAttempts = 3

// syncRefund brings the local refund in line with the gateway refund,
// creating it first when it is not known locally. A nil refund with a nil
// error means the event could not be tied to any order.
func (s *WebhookService) syncRefund(ctx context.Context, gw *payments.Refund) (*models.Refund, error) {
	var err error
	for attempt := 1; attempt <= maxSyncAttempts; attempt++ {
		var refund *models.Refund
		refund, err = s.applyRefund(ctx, gw)
		if !errors.Is(err, models.ErrStatusConflict) && !errors.Is(err, models.ErrDuplicateExternalRefund) {
			return refund, err
		}
		s.logger.Info("refund changed concurrently, re-reading",
			"external_refund_id", gw.ID,
			"attempt", attempt,
			"error", err,
		)
	}
	return nil, internalError("failed to sync refund from webhook", err)
}

// applyRefund is one read-then-write pass of syncRefund. Lost races come
// back as models.ErrStatusConflict or models.ErrDuplicateExternalRefund.
func (s *WebhookService) applyRefund(ctx context.Context, gw *payments.Refund) (*models.Refund, error) {
	refund, err := s.findLocalRefund(ctx, gw)
	if err != nil {
		return nil, err
	}
	if refund == nil {
		return s.recordExternalRefund(ctx, gw)
	}

	status, ok := payments.RefundStatus(gw.Status)
	if !ok {
		s.logger.Warn("unknown gateway refund status", "external_refund_id", gw.ID, "status", gw.Status)
		return refund, nil
	}

	if refund.Status.IsTerminal() {
		if refund.Status != status {
			s.logger.Warn("ignoring gateway status for settled refund",
				"refund_number", refund.RefundNumber,
				"status", refund.Status,
				"gateway_status", gw.Status,
			)
		}
		return refund, nil
	}

	externalID := gw.ID
	previous := refund.Status
	changed := previous != status
	refund.Status = status
	refund.ExternalRefundID = &externalID
	if status == models.RefundStatusCompleted && refund.SettledAt == nil {
		settledAt := s.now()
		refund.SettledAt = &settledAt
	}

	if err := s.refunds.Update(ctx, refund, previous); err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			return nil, err
		}
		return nil, internalError("failed to update refund from webhook", err)
	}

	s.logger.Info("refund updated from webhook",
		"refund_number", refund.RefundNumber,
		"external_refund_id", gw.ID,
		"status", refund.Status,
	)
	if changed {
		s.publishStatus(ctx, refund)
	}

	return refund, nil
}

// findLocalRefund looks up by gateway id, then by the refund id this
// system stamped into the gateway metadata.
func (s *WebhookService) findLocalRefund(ctx context.Context, gw *payments.Refund) (*models.Refund, error) {
	refund, err := s.refunds.FindByExternalID(ctx, gw.ID)
	if err == nil {
		return refund, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, internalError("failed to look up refund", err)
	}

	raw, ok := gw.Metadata[models.MetaRefundID]
	if !ok {
		return nil, nil
	}
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		s.logger.Warn("malformed refund id in gateway metadata", "external_refund_id", gw.ID, "value", raw)
		return nil, nil
	}

	refund, err = s.refunds.FindByID(ctx, id)
	if err == nil {
		return refund, nil
	}
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return nil, internalError("failed to look up refund", err)
}

// recordExternalRefund creates the local record for a refund issued
// directly on the gateway.
func (s *WebhookService) recordExternalRefund(ctx context.Context, gw *payments.Refund) (*models.Refund, error) {
	order, err := s.orders.FindByPaymentIntentID(ctx, gw.PaymentIntentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("no order for gateway refund",
				"external_refund_id", gw.ID,
				"payment_intent_id", gw.PaymentIntentID,
			)
			return nil, nil
		}
		return nil, internalError("failed to look up order", err)
	}

	status, ok := payments.RefundStatus(gw.Status)
	if !ok {
		status = models.RefundStatusProcessing
	}

	conv := s.converter.Convert(ctx, gw.Amount, gw.Currency, s.baseCurrency)
	externalID := gw.ID

	refund := &models.Refund{
		OrderID:          order.ID,
		CustomerID:       order.CustomerID,
		Amount:           conv.Amount,
		Currency:         s.baseCurrency,
		Reason:           payments.DomainReason(gw.Reason),
		ReasonDetails:    "Created from payment gateway refund " + gw.ID,
		ExternalRefundID: &externalID,
		Status:           status,
		Metadata: map[string]any{
			models.MetaRefundAmountInCad:             conv.Amount,
			models.MetaRefundAmountInPaymentCurrency: gw.Amount,
			models.MetaOriginalPaymentCurrency:       gw.Currency,
		},
	}
	if conv.Converted {
		refund.Metadata[models.MetaExchangeRate] = conv.Rate.String()
	}
	if status == models.RefundStatusCompleted {
		settledAt := s.now()
		refund.SettledAt = &settledAt
	}

	invoices, err := s.invoices.ListForOrder(ctx, order.ID)
	if err != nil {
		s.logger.Warn("failed to look up invoice for gateway refund", "order_id", order.ID, "error", err)
	} else if len(invoices) > 0 {
		refund.InvoiceID = &invoices[0].ID
	}

	err = createWithNumber(ctx, PrefixRefund, s.now, func(number string) error {
		refund.RefundNumber = number
		return s.refunds.Create(ctx, refund)
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateExternalRefund) {
			return nil, err
		}
		return nil, asServiceError(err, "failed to record gateway refund")
	}

	s.logger.Info("recorded refund issued on gateway",
		"refund_number", refund.RefundNumber,
		"external_refund_id", gw.ID,
		"order_id", order.ID,
		"status", refund.Status,
	)
	s.publishStatus(ctx, refund)

	return refund, nil
}

func (s *WebhookService) publishStatus(ctx context.Context, refund *models.Refund) {
	var eventType string
	switch refund.Status {
	case models.RefundStatusCompleted:
		eventType = events.RefundCompleted
	case models.RefundStatusFailed:
		eventType = events.RefundFailed
	case models.RefundStatusCancelled:
		eventType = events.RefundCancelled
	default:
		return
	}
	publishRefundEvent(ctx, s.events, s.logger, eventType, refund, s.now())
}

// handleCheckoutCompleted captures payment for the order named in the
// session metadata.
func (s *WebhookService) handleCheckoutCompleted(ctx context.Context, session *payments.CheckoutSession) error {
	raw, ok := session.Metadata["orderId"]
	if !ok {
		s.logger.Warn("checkout session has no order id", "session_id", session.ID)
		return nil
	}
	orderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.logger.Warn("malformed order id on checkout session", "session_id", session.ID, "value", raw)
		return nil
	}

	if _, err := s.capturer.CapturePayment(ctx, orderID, session); err != nil {
		if HasCode(err, ErrCodeNotFound) {
			s.logger.Warn("checkout session for unknown order", "session_id", session.ID, "order_id", orderID)
			return nil
		}
		return err
	}
	return nil
}
