package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tutorbase/backend/internal/events"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/payments"
	"github.com/tutorbase/backend/internal/repository"
)

const gatewayPaymentMethod = "stripe"

// RefundDeps are the collaborators a RefundService drives
type RefundDeps struct {
	Refunds   repository.RefundRepository
	Orders    repository.OrderRepository
	Slots     repository.SlotRepository
	Invoices  Invoicer
	Ledger    LedgerRecorder
	Gateway   PaymentGateway
	Converter CurrencyConverter
	Events    events.Publisher
}

// RefundService owns the refund state machine and drives settlement:
// gateway refund, invoice void, order cancellation and ledger entry.
//
// Each step commits on its own. A failure after the gateway call does not
// reverse the gateway refund; the refund is marked FAILED and the error
// returned unchanged.
type RefundService struct {
	refunds      repository.RefundRepository
	orders       repository.OrderRepository
	slots        repository.SlotRepository
	invoices     Invoicer
	ledger       LedgerRecorder
	gateway      PaymentGateway
	converter    CurrencyConverter
	events       events.Publisher
	logger       *slog.Logger
	now          func() time.Time
	baseCurrency string
}

// NewRefundService creates a new RefundService
func NewRefundService(deps RefundDeps, baseCurrency string, logger *slog.Logger) *RefundService {
	publisher := deps.Events
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &RefundService{
		refunds:      deps.Refunds,
		orders:       deps.Orders,
		slots:        deps.Slots,
		invoices:     deps.Invoices,
		ledger:       deps.Ledger,
		gateway:      deps.Gateway,
		converter:    deps.Converter,
		events:       publisher,
		logger:       logger,
		now:          time.Now,
		baseCurrency: baseCurrency,
	}
}

// CreateRefund records a PENDING refund and immediately processes it.
// If processing fails the refund is still returned, in whatever state
// processing left it, so it can be reset and retried.
func (s *RefundService) CreateRefund(ctx context.Context, in models.CreateRefundInput) (*models.Refund, error) {
	if err := validateCreateRefund(in); err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, lookupError(err, "order", in.OrderID)
	}

	currencyCode := strings.ToUpper(in.Currency)
	if currencyCode == "" {
		currencyCode = strings.ToUpper(order.Currency)
	}
	if currencyCode == "" {
		currencyCode = s.baseCurrency
	}

	invoiceID, err := s.resolveInvoice(ctx, order.ID, in.InvoiceID)
	if err != nil {
		return nil, err
	}

	refund := &models.Refund{
		OrderID:            order.ID,
		ReplacementOrderID: in.ReplacementOrderID,
		InvoiceID:          &invoiceID,
		CustomerID:         in.CustomerID,
		Amount:             in.Amount,
		Currency:           currencyCode,
		Reason:             in.Reason,
		ReasonDetails:      strings.TrimSpace(in.ReasonDetails),
		Status:             models.RefundStatusPending,
		InitiatedBy:        in.InitiatedBy,
		Metadata:           map[string]any{},
	}

	err = createWithNumber(ctx, PrefixRefund, s.now, func(number string) error {
		refund.RefundNumber = number
		return s.refunds.Create(ctx, refund)
	})
	if err != nil {
		return nil, asServiceError(err, "failed to create refund")
	}

	s.logger.Info("refund created",
		"refund_id", refund.ID,
		"refund_number", refund.RefundNumber,
		"order_id", refund.OrderID,
		"amount", refund.Amount,
		"currency", refund.Currency,
	)

	processed, err := s.ProcessRefund(ctx, refund.ID, in.InitiatedBy)
	if err == nil {
		return processed, nil
	}

	s.logger.Warn("automatic refund processing failed",
		"refund_id", refund.ID,
		"refund_number", refund.RefundNumber,
		"error", err,
	)

	reloaded, loadErr := s.refunds.FindByID(ctx, refund.ID)
	if loadErr != nil {
		s.logger.Error("failed to reload refund after processing failure", "refund_id", refund.ID, "error", loadErr)
		return refund, nil
	}
	return reloaded, nil
}

// resolveInvoice returns the explicit invoice if given, else the order's first invoice
func (s *RefundService) resolveInvoice(ctx context.Context, orderID int64, explicit *int64) (int64, error) {
	if explicit != nil {
		invoice, err := s.invoices.GetInvoice(ctx, *explicit)
		if err != nil {
			return 0, err
		}
		return invoice.ID, nil
	}

	invoices, err := s.invoices.ListForOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if len(invoices) == 0 {
		return 0, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("no invoice found for order %d", orderID),
		}
	}
	return invoices[0].ID, nil
}

// ProcessRefund settles a PENDING refund. The PENDING to PROCESSING move is a
// compare-and-swap, so concurrent calls cannot both settle the same refund.
func (s *RefundService) ProcessRefund(ctx context.Context, refundID int64, actor *int64) (*models.Refund, error) {
	refund, err := s.refunds.FindByID(ctx, refundID)
	if err != nil {
		return nil, lookupError(err, "refund", refundID)
	}

	if refund.Status != models.RefundStatusPending {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("refund %s is %s; only PENDING refunds can be processed", refund.RefundNumber, refund.Status),
		}
	}

	if err := s.refunds.TransitionStatus(ctx, refund.ID, models.RefundStatusProcessing, models.RefundStatusPending); err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidState,
				Message: fmt.Sprintf("refund %s is already being processed", refund.RefundNumber),
			}
		}
		return nil, internalError("failed to mark refund processing", err)
	}
	refund.Status = models.RefundStatusProcessing

	s.logger.Info("processing refund", "refund_id", refund.ID, "refund_number", refund.RefundNumber)

	gwRefund, paymentIntentID, err := s.settle(ctx, refund, actor)
	if err != nil {
		s.markFailed(ctx, refund, err)
		return nil, err
	}

	s.recordLedgerEntry(ctx, refund, gwRefund, paymentIntentID)
	s.publish(ctx, events.RefundCompleted, refund)

	s.logger.Info("refund completed",
		"refund_id", refund.ID,
		"refund_number", refund.RefundNumber,
		"external_refund_id", gwRefund.ID,
	)

	return refund, nil
}

// settle runs every step whose failure fails the refund. It returns the
// gateway refund and the payment intent it was issued against.
func (s *RefundService) settle(ctx context.Context, refund *models.Refund, actor *int64) (*payments.Refund, string, error) {
	order, err := s.orders.FindByID(ctx, refund.OrderID)
	if err != nil {
		return nil, "", lookupError(err, "order", refund.OrderID)
	}

	paymentIntentID, err := s.resolvePaymentIntent(ctx, order)
	if err != nil {
		return nil, "", err
	}

	paymentCurrency := s.paymentCurrency(order)
	conv := s.converter.Convert(ctx, refund.Amount, refund.Currency, paymentCurrency)

	gwRefund, err := s.gateway.CreateRefund(ctx, payments.RefundRequest{
		PaymentIntentID: paymentIntentID,
		Amount:          conv.Amount,
		Currency:        paymentCurrency,
		Reason:          payments.GatewayReason(refund.Reason),
		IdempotencyKey:  "refund-" + refund.UID.String(),
		Metadata: map[string]string{
			models.MetaRefundID:                      strconv.FormatInt(refund.ID, 10),
			models.MetaRefundNumber:                  refund.RefundNumber,
			"orderId":                                strconv.FormatInt(refund.OrderID, 10),
			"customerId":                             strconv.FormatInt(refund.CustomerID, 10),
			models.MetaRefundAmountInCad:             strconv.FormatInt(refund.Amount, 10),
			models.MetaRefundAmountInPaymentCurrency: strconv.FormatInt(conv.Amount, 10),
			models.MetaOriginalPaymentCurrency:       paymentCurrency,
		},
	})
	if err != nil {
		return nil, "", err
	}

	if refund.InvoiceID == nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeNotFound,
			Message: fmt.Sprintf("refund %s has no linked invoice", refund.RefundNumber),
		}
	}
	voidReason := fmt.Sprintf("Refunded (%s): %s", refund.RefundNumber, refund.ReasonDetails)
	if _, err := s.invoices.Void(ctx, *refund.InvoiceID, voidReason); err != nil {
		return nil, "", err
	}

	if err := s.orders.UpdatePaymentStatus(ctx, order.ID, models.OrderPaymentCancelled); err != nil {
		return nil, "", internalError("failed to cancel order payment", err)
	}
	if _, err := s.slots.ReleaseByOrderID(ctx, order.ID); err != nil {
		return nil, "", internalError("failed to release slot reservation", err)
	}

	settledAt := s.now()
	externalID := gwRefund.ID
	refund.Status = models.RefundStatusCompleted
	refund.ExternalRefundID = &externalID
	refund.SettledAt = &settledAt
	refund.ProcessedBy = actor
	if refund.Metadata == nil {
		refund.Metadata = map[string]any{}
	}
	refund.Metadata[models.MetaRefundAmountInCad] = refund.Amount
	refund.Metadata[models.MetaRefundAmountInPaymentCurrency] = conv.Amount
	refund.Metadata[models.MetaOriginalPaymentCurrency] = paymentCurrency
	refund.Metadata[models.MetaConversionApplied] = conv.Converted
	if conv.Converted {
		refund.Metadata[models.MetaExchangeRate] = conv.Rate.String()
	}

	if err := s.refunds.Update(ctx, refund, models.RefundStatusProcessing); err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			s.logger.Error("refund changed state during processing; gateway refund already issued",
				"refund_id", refund.ID,
				"refund_number", refund.RefundNumber,
				"external_refund_id", externalID,
			)
			return nil, "", &ServiceError{
				Code: ErrCodeInvalidState,
				Message: fmt.Sprintf("refund %s changed state during processing; gateway refund %s was issued",
					refund.RefundNumber, externalID),
				Err: err,
			}
		}
		return nil, "", internalError("failed to mark refund completed", err)
	}

	return gwRefund, paymentIntentID, nil
}

// resolvePaymentIntent prefers a stored payment intent, then derives one
// from the stored checkout session and saves it back onto the order.
func (s *RefundService) resolvePaymentIntent(ctx context.Context, order *models.Order) (string, error) {
	if order.PaymentIntentID != nil && *order.PaymentIntentID != "" {
		return *order.PaymentIntentID, nil
	}
	if pi, ok := order.MetaString(models.MetaStripePaymentIntentID); ok {
		return pi, nil
	}

	sessionID, ok := order.MetaString(models.MetaStripeCheckoutSessionID)
	if !ok && order.CheckoutSessionID != nil {
		sessionID, ok = *order.CheckoutSessionID, *order.CheckoutSessionID != ""
	}
	if ok {
		session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
		if err != nil {
			return "", err
		}
		if session.PaymentIntentID != "" {
			if err := s.orders.SavePaymentIntent(ctx, order.ID, session.PaymentIntentID); err != nil {
				s.logger.Warn("failed to save payment intent on order",
					"order_id", order.ID,
					"payment_intent_id", session.PaymentIntentID,
					"error", err,
				)
			}
			return session.PaymentIntentID, nil
		}
	}

	present := make([]string, 0, len(order.Metadata))
	for key := range order.Metadata {
		present = append(present, key)
	}
	sort.Strings(present)

	return "", &ServiceError{
		Code: ErrCodePaymentReferenceMissing,
		Message: fmt.Sprintf("order %d has no payment intent or checkout session to refund against (metadata keys present: [%s])",
			order.ID, strings.Join(present, ", ")),
	}
}

// paymentCurrency is the currency the customer was actually charged in
func (s *RefundService) paymentCurrency(order *models.Order) string {
	if c, ok := order.MetaString(models.MetaCheckedOutCurrency); ok {
		return strings.ToUpper(c)
	}
	if c, ok := order.MetaString(models.MetaPaidCurrency); ok {
		return strings.ToUpper(c)
	}
	return s.baseCurrency
}

// markFailed records FAILED if the refund is still PROCESSING. A failure
// here is logged; the caller still returns the original error.
func (s *RefundService) markFailed(ctx context.Context, refund *models.Refund, cause error) {
	s.logger.Error("refund processing failed",
		"refund_id", refund.ID,
		"refund_number", refund.RefundNumber,
		"error", cause,
	)

	refund.Status = models.RefundStatusFailed
	if err := s.refunds.Update(ctx, refund, models.RefundStatusProcessing); err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			s.logger.Warn("refund left processing before it could be marked failed", "refund_id", refund.ID)
			return
		}
		s.logger.Error("failed to mark refund failed", "refund_id", refund.ID, "error", err)
		return
	}
	s.publish(ctx, events.RefundFailed, refund)
}

// recordLedgerEntry writes the REFUND ledger entry. Money has already moved
// at this point, so a failure is logged and never fails the refund.
func (s *RefundService) recordLedgerEntry(ctx context.Context, refund *models.Refund, gwRefund *payments.Refund, paymentIntentID string) {
	metadata := map[string]any{
		models.MetaRefundID:                      refund.ID,
		models.MetaRefundNumber:                  refund.RefundNumber,
		models.MetaCurrencyPaid:                  refund.Metadata[models.MetaOriginalPaymentCurrency],
		models.MetaRefundAmountInPaymentCurrency: refund.Metadata[models.MetaRefundAmountInPaymentCurrency],
		models.MetaConversionApplied:             refund.Metadata[models.MetaConversionApplied] == true,
	}

	in := models.RecordTransactionInput{
		OrderID:         refund.OrderID,
		InvoiceID:       refund.InvoiceID,
		CustomerID:      refund.CustomerID,
		Type:            models.TransactionTypeRefund,
		Amount:          refund.Amount,
		Currency:        refund.Currency,
		PaymentMethod:   gatewayPaymentMethod,
		PaymentIntentID: &paymentIntentID,
		Status:          gwRefund.Status,
		Metadata:        metadata,
	}
	if gwRefund.ChargeID != "" {
		chargeID := gwRefund.ChargeID
		in.ChargeID = &chargeID
	}

	if _, err := s.ledger.Record(ctx, in); err != nil {
		s.logger.Error("failed to record refund ledger entry",
			"refund_id", refund.ID,
			"refund_number", refund.RefundNumber,
			"error", err,
		)
	}
}

func (s *RefundService) publish(ctx context.Context, eventType string, refund *models.Refund) {
	publishRefundEvent(ctx, s.events, s.logger, eventType, refund, s.now())
}

// publishRefundEvent delivers an event; delivery failures are logged only
func publishRefundEvent(ctx context.Context, publisher events.Publisher, logger *slog.Logger, eventType string, refund *models.Refund, at time.Time) {
	if err := publisher.PublishRefundEvent(ctx, events.NewRefundEvent(eventType, refund, at)); err != nil {
		logger.Warn("failed to publish refund event",
			"refund_id", refund.ID,
			"event", eventType,
			"error", err,
		)
	}
}

// CancelRefund cancels a refund that has not completed. The reason is
// appended to the existing details.
func (s *RefundService) CancelRefund(ctx context.Context, refundID int64, reason string) (*models.Refund, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &ServiceError{Code: ErrCodeInvalidRequest, Message: "cancellation reason is required"}
	}

	refund, err := s.refunds.FindByID(ctx, refundID)
	if err != nil {
		return nil, lookupError(err, "refund", refundID)
	}

	if refund.Status.IsTerminal() {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidOperation,
			Message: fmt.Sprintf("refund %s is %s and cannot be cancelled", refund.RefundNumber, refund.Status),
		}
	}

	cancelled, err := s.refunds.TransitionWithNote(ctx, refund.ID, models.RefundStatusCancelled, " - Cancelled: "+reason,
		models.RefundStatusPending, models.RefundStatusProcessing, models.RefundStatusFailed)
	if err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidOperation,
				Message: fmt.Sprintf("refund %s changed state and can no longer be cancelled", refund.RefundNumber),
			}
		}
		return nil, internalError("failed to cancel refund", err)
	}

	s.logger.Info("refund cancelled", "refund_id", cancelled.ID, "refund_number", cancelled.RefundNumber)
	s.publish(ctx, events.RefundCancelled, cancelled)

	return cancelled, nil
}

// ResetRefund moves a FAILED refund back to PENDING so it can be processed again
func (s *RefundService) ResetRefund(ctx context.Context, refundID int64) (*models.Refund, error) {
	refund, err := s.refunds.FindByID(ctx, refundID)
	if err != nil {
		return nil, lookupError(err, "refund", refundID)
	}

	if refund.Status != models.RefundStatusFailed {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: fmt.Sprintf("refund %s is %s; only FAILED refunds can be reset", refund.RefundNumber, refund.Status),
		}
	}

	reset, err := s.refunds.TransitionWithNote(ctx, refund.ID, models.RefundStatusPending, " - Reset for reprocessing",
		models.RefundStatusFailed)
	if err != nil {
		if errors.Is(err, models.ErrStatusConflict) {
			return nil, &ServiceError{
				Code:    ErrCodeInvalidState,
				Message: fmt.Sprintf("refund %s is no longer FAILED", refund.RefundNumber),
			}
		}
		return nil, internalError("failed to reset refund", err)
	}

	s.logger.Info("refund reset for reprocessing", "refund_id", reset.ID, "refund_number", reset.RefundNumber)
	return reset, nil
}

// GetRefund retrieves a refund by id
func (s *RefundService) GetRefund(ctx context.Context, refundID int64) (*models.Refund, error) {
	refund, err := s.refunds.FindByID(ctx, refundID)
	if err != nil {
		return nil, lookupError(err, "refund", refundID)
	}
	return refund, nil
}

// GetRefundByNumber retrieves a refund by its REF- number
func (s *RefundService) GetRefundByNumber(ctx context.Context, refundNumber string) (*models.Refund, error) {
	refund, err := s.refunds.FindByNumber(ctx, refundNumber)
	if err != nil {
		return nil, lookupError(err, "refund", refundNumber)
	}
	return refund, nil
}

// ListRefunds lists refunds matching filter
func (s *RefundService) ListRefunds(ctx context.Context, filter models.RefundFilter) ([]*models.Refund, error) {
	refunds, err := s.refunds.List(ctx, filter)
	if err != nil {
		return nil, internalError("failed to list refunds", err)
	}
	return refunds, nil
}

// ListRefundsForOrder lists the refunds raised against an order
func (s *RefundService) ListRefundsForOrder(ctx context.Context, orderID int64) ([]*models.Refund, error) {
	refunds, err := s.refunds.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, internalError("failed to list refunds", err)
	}
	return refunds, nil
}

// ListRefundsForCustomer lists a customer's refunds
func (s *RefundService) ListRefundsForCustomer(ctx context.Context, customerID int64) ([]*models.Refund, error) {
	refunds, err := s.refunds.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, internalError("failed to list refunds", err)
	}
	return refunds, nil
}

// RefundStats summarises refunds by status
func (s *RefundService) RefundStats(ctx context.Context) (*models.RefundStats, error) {
	stats, err := s.refunds.Stats(ctx)
	if err != nil {
		return nil, internalError("failed to compute refund stats", err)
	}
	return stats, nil
}
