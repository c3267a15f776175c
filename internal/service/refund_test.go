package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tutorbase/backend/internal/currency"
	"github.com/tutorbase/backend/internal/events"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/payments"
	repomocks "github.com/tutorbase/backend/internal/repository/mocks"
	svcmocks "github.com/tutorbase/backend/internal/service/mocks"
)

type refundFixture struct {
	refunds   *repomocks.MockRefundRepository
	orders    *repomocks.MockOrderRepository
	slots     *repomocks.MockSlotRepository
	invoices  *svcmocks.MockInvoicer
	ledger    *svcmocks.MockLedgerRecorder
	gateway   *svcmocks.MockPaymentGateway
	converter *svcmocks.MockCurrencyConverter
	events    *svcmocks.MockEventPublisher
	svc       *RefundService
}

func newRefundFixture(t *testing.T) *refundFixture {
	f := &refundFixture{
		refunds:   repomocks.NewMockRefundRepository(t),
		orders:    repomocks.NewMockOrderRepository(t),
		slots:     repomocks.NewMockSlotRepository(t),
		invoices:  svcmocks.NewMockInvoicer(t),
		ledger:    svcmocks.NewMockLedgerRecorder(t),
		gateway:   svcmocks.NewMockPaymentGateway(t),
		converter: svcmocks.NewMockCurrencyConverter(t),
		events:    svcmocks.NewMockEventPublisher(t),
	}
	f.svc = NewRefundService(RefundDeps{
		Refunds:   f.refunds,
		Orders:    f.orders,
		Slots:     f.slots,
		Invoices:  f.invoices,
		Ledger:    f.ledger,
		Gateway:   f.gateway,
		Converter: f.converter,
		Events:    f.events,
	}, "CAD", testLogger())
	f.svc.now = fixedNow
	return f
}

func pendingRefund() *models.Refund {
	return &models.Refund{
		ID:            7,
		UID:           uuid.MustParse("6f1c2d34-8a1e-4c55-9a0b-2b8d3c1e9f10"),
		RefundNumber:  "REF-20250301-0001",
		OrderID:       383,
		InvoiceID:     int64Ptr(1),
		CustomerID:    174,
		Amount:        10000,
		Currency:      "CAD",
		Reason:        models.RefundReasonCustomerRequest,
		ReasonDetails: "Customer asked",
		Status:        models.RefundStatusPending,
		Metadata:      map[string]any{},
	}
}

func paidOrder() *models.Order {
	return &models.Order{
		ID:              383,
		CustomerID:      174,
		Currency:        "CAD",
		PaymentStatus:   models.OrderPaymentPaid,
		PaymentIntentID: stringPtr("pi_123"),
		Metadata:        map[string]any{},
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e events.RefundEvent) bool { return e.Type == eventType })
}

func withStatus(status models.RefundStatus) any {
	return mock.MatchedBy(func(r *models.Refund) bool { return r.Status == status })
}

// expectSettlement wires the happy path from the PROCESSING transition on
func (f *refundFixture) expectSettlement(ctx context.Context, refund *models.Refund, order *models.Order, paymentCurrency string, conv currency.Conversion) {
	f.refunds.On("TransitionStatus", ctx, refund.ID, models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
	f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
	f.converter.On("Convert", ctx, refund.Amount, refund.Currency, paymentCurrency).Return(conv)
	f.gateway.On("CreateRefund", ctx, mock.MatchedBy(func(req payments.RefundRequest) bool {
		return req.Amount == conv.Amount &&
			req.Currency == paymentCurrency &&
			req.IdempotencyKey == "refund-"+refund.UID.String() &&
			req.Metadata[models.MetaRefundNumber] == refund.RefundNumber
	})).Return(&payments.Refund{ID: "re_1", ChargeID: "ch_1", Status: "succeeded", Amount: conv.Amount, Currency: paymentCurrency}, nil)
	f.invoices.On("Void", ctx, int64(1), mock.MatchedBy(func(reason string) bool {
		return strings.Contains(reason, refund.RefundNumber)
	})).Return(&models.Invoice{ID: 1, Status: models.InvoiceStatusVoid}, nil)
	f.orders.On("UpdatePaymentStatus", ctx, order.ID, models.OrderPaymentCancelled).Return(nil)
	f.slots.On("ReleaseByOrderID", ctx, order.ID).Return(int64(1), nil)
	f.refunds.On("Update", ctx, withStatus(models.RefundStatusCompleted), models.RefundStatusProcessing).Return(nil)
	f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundCompleted)).Return(nil)
}

func sameCurrency(amount int64, code string) currency.Conversion {
	return currency.Conversion{From: code, To: code, Amount: amount}
}

// cancelledCopy is the row TransitionWithNote returns for a cancel
func cancelledCopy(refund *models.Refund, note string) *models.Refund {
	cancelled := *refund
	cancelled.Status = models.RefundStatusCancelled
	cancelled.ReasonDetails += note
	return &cancelled
}

// storedStatus stands in for the status column, so conditional writes
// behave the way they do against the database.
type storedStatus struct {
	status models.RefundStatus
}

func (s *storedStatus) update(_ context.Context, refund *models.Refund, from ...models.RefundStatus) error {
	if !slices.Contains(from, s.status) {
		return models.ErrStatusConflict
	}
	s.status = refund.Status
	return nil
}

func TestRefundService_CreateRefund(t *testing.T) {
	t.Run("creates, processes and settles against the order's invoice", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		order := paidOrder()

		var created *models.Refund
		f.orders.On("FindByID", ctx, int64(383)).Return(order, nil)
		f.invoices.On("ListForOrder", ctx, int64(383)).Return([]*models.Invoice{{ID: 1, OrderID: 383}}, nil)
		f.refunds.On("Create", ctx, mock.MatchedBy(func(r *models.Refund) bool {
			return strings.HasPrefix(r.RefundNumber, "REF-20250301-") &&
				r.Status == models.RefundStatusPending &&
				*r.InvoiceID == 1 &&
				r.Currency == "CAD"
		})).Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Refund)
			created.ID = 7
			created.UID = uuid.New()
		}).Return(nil)
		f.refunds.On("FindByID", ctx, int64(7)).Return(func(context.Context, int64) (*models.Refund, error) {
			return created, nil
		})
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
		f.converter.On("Convert", ctx, int64(10000), "CAD", "CAD").Return(sameCurrency(10000, "CAD"))
		f.gateway.On("CreateRefund", ctx, mock.MatchedBy(func(req payments.RefundRequest) bool {
			return req.PaymentIntentID == "pi_123" && req.Amount == 10000 && req.Currency == "CAD" &&
				req.Reason == "requested_by_customer"
		})).Return(&payments.Refund{ID: "re_1", Status: "succeeded", Amount: 10000, Currency: "CAD"}, nil)
		f.invoices.On("Void", ctx, int64(1), mock.AnythingOfType("string")).Return(&models.Invoice{ID: 1, Status: models.InvoiceStatusVoid}, nil)
		f.orders.On("UpdatePaymentStatus", ctx, int64(383), models.OrderPaymentCancelled).Return(nil)
		f.slots.On("ReleaseByOrderID", ctx, int64(383)).Return(int64(1), nil)
		f.refunds.On("Update", ctx, withStatus(models.RefundStatusCompleted), models.RefundStatusProcessing).Return(nil)
		f.ledger.On("Record", ctx, mock.MatchedBy(func(in models.RecordTransactionInput) bool {
			return in.Type == models.TransactionTypeRefund &&
				in.Amount == 10000 &&
				in.Currency == "CAD" &&
				*in.InvoiceID == 1 &&
				*in.PaymentIntentID == "pi_123"
		})).Return(&models.PaymentTransaction{ID: 1}, nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundCompleted)).Return(nil)

		refund, err := f.svc.CreateRefund(ctx, models.CreateRefundInput{
			OrderID:       383,
			CustomerID:    174,
			Amount:        10000,
			Reason:        models.RefundReasonCustomerRequest,
			ReasonDetails: "Customer asked",
		})

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusCompleted, refund.Status)
		require.NotNil(t, refund.ExternalRefundID)
		assert.Equal(t, "re_1", *refund.ExternalRefundID)
		require.NotNil(t, refund.SettledAt)
		assert.Equal(t, fixedNow(), *refund.SettledAt)
	})

	t.Run("returns the failed refund when processing fails", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		order := paidOrder()
		order.PaymentIntentID = nil

		var created *models.Refund
		f.orders.On("FindByID", ctx, int64(383)).Return(order, nil)
		f.invoices.On("GetInvoice", ctx, int64(1)).Return(&models.Invoice{ID: 1}, nil)
		f.refunds.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Refund)
			created.ID = 7
		}).Return(nil)
		f.refunds.On("FindByID", ctx, int64(7)).Return(func(context.Context, int64) (*models.Refund, error) {
			return created, nil
		})
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
		f.refunds.On("Update", ctx, withStatus(models.RefundStatusFailed), models.RefundStatusProcessing).Return(nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundFailed)).Return(nil)

		refund, err := f.svc.CreateRefund(ctx, models.CreateRefundInput{
			OrderID:       383,
			CustomerID:    174,
			InvoiceID:     int64Ptr(1),
			Amount:        10000,
			Reason:        models.RefundReasonOther,
			ReasonDetails: "Tutor unavailable",
		})

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusFailed, refund.Status)
		f.gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
	})

	t.Run("currency falls back to the order currency", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		order := paidOrder()
		order.Currency = "usd"

		f.orders.On("FindByID", ctx, int64(383)).Return(order, nil)
		f.invoices.On("ListForOrder", ctx, int64(383)).Return([]*models.Invoice{{ID: 1}}, nil)
		f.refunds.On("Create", ctx, mock.MatchedBy(func(r *models.Refund) bool {
			return r.Currency == "USD"
		})).Return(errors.New("connection reset"))

		_, err := f.svc.CreateRefund(ctx, models.CreateRefundInput{
			OrderID:       383,
			CustomerID:    174,
			Amount:        500,
			Reason:        models.RefundReasonOther,
			ReasonDetails: "x",
		})

		assert.True(t, HasCode(err, ErrCodeInternalError))
	})

	t.Run("order without invoice is not found", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.orders.On("FindByID", ctx, int64(383)).Return(paidOrder(), nil)
		f.invoices.On("ListForOrder", ctx, int64(383)).Return([]*models.Invoice{}, nil)

		_, err := f.svc.CreateRefund(ctx, models.CreateRefundInput{
			OrderID:       383,
			CustomerID:    174,
			Amount:        10000,
			Reason:        models.RefundReasonCustomerRequest,
			ReasonDetails: "Customer asked",
		})

		assert.True(t, HasCode(err, ErrCodeNotFound))
		f.refunds.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.orders.On("FindByID", ctx, int64(999)).Return(nil, models.ErrNotFound)

		_, err := f.svc.CreateRefund(ctx, models.CreateRefundInput{
			OrderID:       999,
			CustomerID:    174,
			Amount:        10000,
			Reason:        models.RefundReasonCustomerRequest,
			ReasonDetails: "Customer asked",
		})

		assert.True(t, HasCode(err, ErrCodeNotFound))
	})

	t.Run("invalid amount is rejected before any lookup", func(t *testing.T) {
		f := newRefundFixture(t)

		_, err := f.svc.CreateRefund(context.Background(), models.CreateRefundInput{
			OrderID:       383,
			CustomerID:    174,
			Amount:        0,
			Reason:        models.RefundReasonCustomerRequest,
			ReasonDetails: "Customer asked",
		})

		assert.True(t, HasCode(err, ErrCodeInvalidAmount))
		f.orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestRefundService_ProcessRefund(t *testing.T) {
	t.Run("converts to the payment currency", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		order := paidOrder()
		order.PaymentIntentID = nil
		order.Metadata = map[string]any{
			models.MetaStripePaymentIntentID: "pi_inr",
			models.MetaCheckedOutCurrency:    "INR",
		}
		conv := currency.Conversion{Rate: decimal.NewFromFloat(62.5), From: "CAD", To: "INR", Amount: 625000, Converted: true}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.expectSettlement(ctx, refund, order, "INR", conv)
		f.ledger.On("Record", ctx, mock.MatchedBy(func(in models.RecordTransactionInput) bool {
			return in.Amount == 10000 && in.Currency == "CAD" && *in.PaymentIntentID == "pi_inr" &&
				in.Metadata[models.MetaConversionApplied] == true
		})).Return(&models.PaymentTransaction{ID: 1}, nil)

		result, err := f.svc.ProcessRefund(ctx, 7, int64Ptr(42))

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusCompleted, result.Status)
		assert.Equal(t, int64(10000), result.Metadata[models.MetaRefundAmountInCad])
		assert.Equal(t, int64(625000), result.Metadata[models.MetaRefundAmountInPaymentCurrency])
		assert.Equal(t, "INR", result.Metadata[models.MetaOriginalPaymentCurrency])
		assert.Equal(t, "62.5", result.Metadata[models.MetaExchangeRate])
		assert.Equal(t, int64(42), *result.ProcessedBy)
	})

	t.Run("non-pending refund is rejected without side effects", func(t *testing.T) {
		for _, status := range []models.RefundStatus{
			models.RefundStatusProcessing,
			models.RefundStatusCompleted,
			models.RefundStatusFailed,
			models.RefundStatusCancelled,
		} {
			t.Run(string(status), func(t *testing.T) {
				f := newRefundFixture(t)
				ctx := context.Background()
				refund := pendingRefund()
				refund.Status = status

				f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)

				_, err := f.svc.ProcessRefund(ctx, 7, nil)

				assert.True(t, HasCode(err, ErrCodeInvalidState))
				f.refunds.AssertNumberOfCalls(t, "TransitionStatus", 0)
				f.refunds.AssertNumberOfCalls(t, "Update", 0)
				f.gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
				f.invoices.AssertNotCalled(t, "Void", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("lost compare-and-swap is invalid state", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.refunds.On("FindByID", ctx, int64(7)).Return(pendingRefund(), nil)
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).
			Return(models.ErrStatusConflict)

		_, err := f.svc.ProcessRefund(ctx, 7, nil)

		assert.True(t, HasCode(err, ErrCodeInvalidState))
		f.gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
	})

	t.Run("gateway failure marks the refund failed and returns the error unchanged", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		gwErr := &payments.GatewayError{Op: "create refund", Code: "charge_already_refunded", HTTPStatus: 400}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
		f.orders.On("FindByID", ctx, int64(383)).Return(paidOrder(), nil)
		f.converter.On("Convert", ctx, int64(10000), "CAD", "CAD").Return(sameCurrency(10000, "CAD"))
		f.gateway.On("CreateRefund", ctx, mock.Anything).Return(nil, gwErr)
		f.refunds.On("Update", ctx, withStatus(models.RefundStatusFailed), models.RefundStatusProcessing).Return(nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundFailed)).Return(nil)

		_, err := f.svc.ProcessRefund(ctx, 7, nil)

		require.Error(t, err)
		assert.Same(t, gwErr, err)
		assert.Equal(t, models.RefundStatusFailed, refund.Status)
		f.invoices.AssertNotCalled(t, "Void", mock.Anything, mock.Anything, mock.Anything)
		f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("failure to persist FAILED still returns the original error", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		gwErr := errors.New("gateway timeout")

		f.refunds.On("FindByID", ctx, int64(7)).Return(pendingRefund(), nil)
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
		f.orders.On("FindByID", ctx, int64(383)).Return(paidOrder(), nil)
		f.converter.On("Convert", ctx, int64(10000), "CAD", "CAD").Return(sameCurrency(10000, "CAD"))
		f.gateway.On("CreateRefund", ctx, mock.Anything).Return(nil, gwErr)
		f.refunds.On("Update", ctx, mock.Anything, models.RefundStatusProcessing).Return(errors.New("db down"))

		_, err := f.svc.ProcessRefund(ctx, 7, nil)

		assert.Equal(t, gwErr, err)
		f.events.AssertNotCalled(t, "PublishRefundEvent", mock.Anything, mock.Anything)
	})

	t.Run("ledger failure does not fail a settled refund", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.expectSettlement(ctx, refund, paidOrder(), "CAD", sameCurrency(10000, "CAD"))
		f.ledger.On("Record", ctx, mock.Anything).Return(nil, errors.New("ledger unavailable"))

		result, err := f.svc.ProcessRefund(ctx, 7, nil)

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusCompleted, result.Status)
	})

	t.Run("missing payment reference fails the refund", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		order := paidOrder()
		order.PaymentIntentID = nil
		order.Metadata = map[string]any{models.MetaCheckedOutCurrency: "CAD"}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
		f.orders.On("FindByID", ctx, int64(383)).Return(order, nil)
		f.refunds.On("Update", ctx, withStatus(models.RefundStatusFailed), models.RefundStatusProcessing).Return(nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundFailed)).Return(nil)

		_, err := f.svc.ProcessRefund(ctx, 7, nil)

		require.True(t, HasCode(err, ErrCodePaymentReferenceMissing))
		assert.Contains(t, err.Error(), models.MetaCheckedOutCurrency)
		assert.Equal(t, models.RefundStatusFailed, refund.Status)
		f.gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
	})

	t.Run("payment intent is derived from the checkout session and saved", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		order := paidOrder()
		order.PaymentIntentID = nil
		order.Metadata = map[string]any{models.MetaStripeCheckoutSessionID: "cs_1"}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.gateway.On("GetCheckoutSession", ctx, "cs_1").Return(&payments.CheckoutSession{ID: "cs_1", PaymentIntentID: "pi_from_cs"}, nil)
		f.orders.On("SavePaymentIntent", ctx, int64(383), "pi_from_cs").Return(nil)
		f.expectSettlement(ctx, refund, order, "CAD", sameCurrency(10000, "CAD"))
		f.ledger.On("Record", ctx, mock.MatchedBy(func(in models.RecordTransactionInput) bool {
			return *in.PaymentIntentID == "pi_from_cs"
		})).Return(&models.PaymentTransaction{ID: 1}, nil)

		result, err := f.svc.ProcessRefund(ctx, 7, nil)

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusCompleted, result.Status)
	})

	t.Run("invoice already void fails the refund after the gateway call", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		voidErr := &ServiceError{Code: ErrCodeInvalidState, Message: "invoice INV-1 is already void"}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).Return(nil)
		f.orders.On("FindByID", ctx, int64(383)).Return(paidOrder(), nil)
		f.converter.On("Convert", ctx, int64(10000), "CAD", "CAD").Return(sameCurrency(10000, "CAD"))
		f.gateway.On("CreateRefund", ctx, mock.Anything).Return(&payments.Refund{ID: "re_1", Status: "succeeded"}, nil)
		f.invoices.On("Void", ctx, int64(1), mock.Anything).Return(nil, voidErr)
		f.refunds.On("Update", ctx, withStatus(models.RefundStatusFailed), models.RefundStatusProcessing).Return(nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundFailed)).Return(nil)

		_, err := f.svc.ProcessRefund(ctx, 7, nil)

		assert.Same(t, voidErr, err)
		f.orders.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancel during the gateway call is not overwritten", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		stored := &storedStatus{status: models.RefundStatusPending}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionStatus", ctx, int64(7), models.RefundStatusProcessing, models.RefundStatusPending).
			Run(func(mock.Arguments) { stored.status = models.RefundStatusProcessing }).Return(nil)
		f.refunds.On("TransitionWithNote", ctx, int64(7), models.RefundStatusCancelled, " - Cancelled: customer changed mind",
			models.RefundStatusPending, models.RefundStatusProcessing, models.RefundStatusFailed).
			Run(func(mock.Arguments) { stored.status = models.RefundStatusCancelled }).
			Return(cancelledCopy(refund, " - Cancelled: customer changed mind"), nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundCancelled)).Return(nil).Once()
		f.orders.On("FindByID", ctx, int64(383)).Return(paidOrder(), nil)
		f.converter.On("Convert", ctx, int64(10000), "CAD", "CAD").Return(sameCurrency(10000, "CAD"))
		f.gateway.On("CreateRefund", ctx, mock.Anything).Run(func(mock.Arguments) {
			_, err := f.svc.CancelRefund(ctx, 7, "customer changed mind")
			require.NoError(t, err)
		}).Return(&payments.Refund{ID: "re_1", Status: "succeeded"}, nil)
		f.invoices.On("Void", ctx, int64(1), mock.Anything).Return(&models.Invoice{ID: 1, Status: models.InvoiceStatusVoid}, nil)
		f.orders.On("UpdatePaymentStatus", ctx, int64(383), models.OrderPaymentCancelled).Return(nil)
		f.slots.On("ReleaseByOrderID", ctx, int64(383)).Return(int64(1), nil)
		f.refunds.On("Update", ctx, mock.Anything, models.RefundStatusProcessing).Return(stored.update)

		_, err := f.svc.ProcessRefund(ctx, 7, nil)

		require.True(t, HasCode(err, ErrCodeInvalidState))
		assert.Contains(t, err.Error(), "re_1")
		assert.Equal(t, models.RefundStatusCancelled, stored.status)
		// COMPLETED, then FAILED, both refused
		f.refunds.AssertNumberOfCalls(t, "Update", 2)
		f.ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("fallback conversion is not recorded as applied", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		order := paidOrder()
		order.Metadata = map[string]any{models.MetaCheckedOutCurrency: "INR"}
		// rates unavailable: amount passed through unconverted
		conv := currency.Conversion{From: "CAD", To: "INR", Amount: 10000}

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.expectSettlement(ctx, refund, order, "INR", conv)
		f.ledger.On("Record", ctx, mock.MatchedBy(func(in models.RecordTransactionInput) bool {
			return in.Metadata[models.MetaConversionApplied] == false &&
				in.Metadata[models.MetaCurrencyPaid] == "INR"
		})).Return(&models.PaymentTransaction{ID: 1}, nil)

		result, err := f.svc.ProcessRefund(ctx, 7, nil)

		require.NoError(t, err)
		assert.Equal(t, false, result.Metadata[models.MetaConversionApplied])
		assert.NotContains(t, result.Metadata, models.MetaExchangeRate)
	})

	t.Run("unknown refund is not found", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.refunds.On("FindByID", ctx, int64(9)).Return(nil, models.ErrNotFound)

		_, err := f.svc.ProcessRefund(ctx, 9, nil)

		assert.True(t, HasCode(err, ErrCodeNotFound))
	})
}

func TestRefundService_CancelRefund(t *testing.T) {
	t.Run("appends the reason for a processing refund", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		refund.Status = models.RefundStatusProcessing

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionWithNote", ctx, int64(7), models.RefundStatusCancelled, " - Cancelled: duplicate request",
			models.RefundStatusPending, models.RefundStatusProcessing, models.RefundStatusFailed).
			Return(cancelledCopy(refund, " - Cancelled: duplicate request"), nil)
		f.events.On("PublishRefundEvent", ctx, eventOfType(events.RefundCancelled)).Return(nil)

		result, err := f.svc.CancelRefund(ctx, 7, "duplicate request")

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusCancelled, result.Status)
		assert.Equal(t, "Customer asked - Cancelled: duplicate request", result.ReasonDetails)
	})

	t.Run("pending refund keeps its original details", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		refund := pendingRefund()

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionWithNote", ctx, int64(7), models.RefundStatusCancelled, " - Cancelled: changed mind",
			models.RefundStatusPending, models.RefundStatusProcessing, models.RefundStatusFailed).
			Return(cancelledCopy(refund, " - Cancelled: changed mind"), nil)
		f.events.On("PublishRefundEvent", ctx, mock.Anything).Return(nil)

		result, err := f.svc.CancelRefund(ctx, 7, "  changed mind  ")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.ReasonDetails, "Customer asked"))
		assert.True(t, strings.HasSuffix(result.ReasonDetails, "Cancelled: changed mind"))
	})

	t.Run("settled refunds cannot be cancelled", func(t *testing.T) {
		for _, status := range []models.RefundStatus{models.RefundStatusCompleted, models.RefundStatusCancelled} {
			t.Run(string(status), func(t *testing.T) {
				f := newRefundFixture(t)
				ctx := context.Background()
				refund := pendingRefund()
				refund.Status = status

				f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)

				_, err := f.svc.CancelRefund(ctx, 7, "too late")

				assert.True(t, HasCode(err, ErrCodeInvalidOperation))
				f.refunds.AssertNumberOfCalls(t, "TransitionWithNote", 0)
			})
		}
	})

	t.Run("refund completing concurrently cannot be cancelled", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.refunds.On("FindByID", ctx, int64(7)).Return(pendingRefund(), nil)
		f.refunds.On("TransitionWithNote", ctx, int64(7), models.RefundStatusCancelled, " - Cancelled: duplicate request",
			models.RefundStatusPending, models.RefundStatusProcessing, models.RefundStatusFailed).
			Return(nil, models.ErrStatusConflict)

		_, err := f.svc.CancelRefund(ctx, 7, "duplicate request")

		assert.True(t, HasCode(err, ErrCodeInvalidOperation))
	})

	t.Run("reason is required", func(t *testing.T) {
		f := newRefundFixture(t)

		_, err := f.svc.CancelRefund(context.Background(), 7, "   ")

		assert.True(t, HasCode(err, ErrCodeInvalidRequest))
		f.refunds.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestRefundService_ResetRefund(t *testing.T) {
	t.Run("failed refund goes back to pending", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		refund.Status = models.RefundStatusFailed

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		reset := *refund
		reset.Status = models.RefundStatusPending
		reset.ReasonDetails += " - Reset for reprocessing"
		f.refunds.On("TransitionWithNote", ctx, int64(7), models.RefundStatusPending, " - Reset for reprocessing",
			models.RefundStatusFailed).Return(&reset, nil)

		result, err := f.svc.ResetRefund(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, models.RefundStatusPending, result.Status)
		assert.Equal(t, "Customer asked - Reset for reprocessing", result.ReasonDetails)
	})

	t.Run("only failed refunds can be reset", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.refunds.On("FindByID", ctx, int64(7)).Return(pendingRefund(), nil)

		_, err := f.svc.ResetRefund(ctx, 7)

		assert.True(t, HasCode(err, ErrCodeInvalidState))
		f.refunds.AssertNumberOfCalls(t, "TransitionWithNote", 0)
	})

	t.Run("refund retried concurrently is no longer failed", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		refund := pendingRefund()
		refund.Status = models.RefundStatusFailed

		f.refunds.On("FindByID", ctx, int64(7)).Return(refund, nil)
		f.refunds.On("TransitionWithNote", ctx, int64(7), models.RefundStatusPending, " - Reset for reprocessing",
			models.RefundStatusFailed).Return(nil, models.ErrStatusConflict)

		_, err := f.svc.ResetRefund(ctx, 7)

		assert.True(t, HasCode(err, ErrCodeInvalidState))
	})
}

func TestRefundService_Reads(t *testing.T) {
	t.Run("get by number", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()

		f.refunds.On("FindByNumber", ctx, "REF-20250301-0001").Return(pendingRefund(), nil)

		refund, err := f.svc.GetRefundByNumber(ctx, "REF-20250301-0001")

		require.NoError(t, err)
		assert.Equal(t, int64(7), refund.ID)
	})

	t.Run("list failure is internal", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		filter := models.RefundFilter{Status: models.RefundStatusFailed}

		f.refunds.On("List", ctx, filter).Return(nil, errors.New("db down"))

		_, err := f.svc.ListRefunds(ctx, filter)

		assert.True(t, HasCode(err, ErrCodeInternalError))
	})

	t.Run("stats", func(t *testing.T) {
		f := newRefundFixture(t)
		ctx := context.Background()
		stats := &models.RefundStats{Total: 3, CompletedAmount: 20000}

		f.refunds.On("Stats", ctx).Return(stats, nil)

		result, err := f.svc.RefundStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, result)
	})
}
