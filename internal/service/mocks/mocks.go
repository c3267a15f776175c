package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tutorbase/backend/internal/currency"
	"github.com/tutorbase/backend/internal/events"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/payments"
)

// MockPaymentGateway is a mock implementation of service.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

// CreateRefund provides a mock function
func (_m *MockPaymentGateway) CreateRefund(ctx context.Context, req payments.RefundRequest) (*payments.Refund, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateRefund")
	}

	var r0 *payments.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, payments.RefundRequest) (*payments.Refund, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, payments.RefundRequest) *payments.Refund); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*payments.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, payments.RefundRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetCheckoutSession provides a mock function
func (_m *MockPaymentGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*payments.CheckoutSession, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetCheckoutSession")
	}

	var r0 *payments.CheckoutSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*payments.CheckoutSession, error)); ok {
		return rf(ctx, sessionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *payments.CheckoutSession); ok {
		r0 = rf(ctx, sessionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*payments.CheckoutSession)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockPaymentGateway creates a new instance of MockPaymentGateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCurrencyConverter is a mock implementation of service.CurrencyConverter
type MockCurrencyConverter struct {
	mock.Mock
}

// Convert provides a mock function
func (_m *MockCurrencyConverter) Convert(ctx context.Context, amount int64, from string, to string) currency.Conversion {
	ret := _m.Called(ctx, amount, from, to)

	if len(ret) == 0 {
		panic("no return value specified for Convert")
	}

	var r0 currency.Conversion
	if rf, ok := ret.Get(0).(func(context.Context, int64, string, string) currency.Conversion); ok {
		r0 = rf(ctx, amount, from, to)
	} else {
		r0 = ret.Get(0).(currency.Conversion)
	}

	return r0
}

// NewMockCurrencyConverter creates a new instance of MockCurrencyConverter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCurrencyConverter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCurrencyConverter {
	m := &MockCurrencyConverter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisher is a mock implementation of events.Publisher
type MockEventPublisher struct {
	mock.Mock
}

// PublishRefundEvent provides a mock function
func (_m *MockEventPublisher) PublishRefundEvent(ctx context.Context, event events.RefundEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishRefundEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, events.RefundEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRefunder is a mock implementation of service.Refunder
type MockRefunder struct {
	mock.Mock
}

// CreateRefund provides a mock function
func (_m *MockRefunder) CreateRefund(ctx context.Context, in models.CreateRefundInput) (*models.Refund, error) {
	ret := _m.Called(ctx, in)

	if len(ret) == 0 {
		panic("no return value specified for CreateRefund")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.CreateRefundInput) (*models.Refund, error)); ok {
		return rf(ctx, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, models.CreateRefundInput) *models.Refund); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.CreateRefundInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ProcessRefund provides a mock function
func (_m *MockRefunder) ProcessRefund(ctx context.Context, refundID int64, actor *int64) (*models.Refund, error) {
	ret := _m.Called(ctx, refundID, actor)

	if len(ret) == 0 {
		panic("no return value specified for ProcessRefund")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, *int64) (*models.Refund, error)); ok {
		return rf(ctx, refundID, actor)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, *int64) *models.Refund); ok {
		r0 = rf(ctx, refundID, actor)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, *int64) error); ok {
		r1 = rf(ctx, refundID, actor)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CancelRefund provides a mock function
func (_m *MockRefunder) CancelRefund(ctx context.Context, refundID int64, reason string) (*models.Refund, error) {
	ret := _m.Called(ctx, refundID, reason)

	if len(ret) == 0 {
		panic("no return value specified for CancelRefund")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*models.Refund, error)); ok {
		return rf(ctx, refundID, reason)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) *models.Refund); ok {
		r0 = rf(ctx, refundID, reason)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, refundID, reason)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ResetRefund provides a mock function
func (_m *MockRefunder) ResetRefund(ctx context.Context, refundID int64) (*models.Refund, error) {
	ret := _m.Called(ctx, refundID)

	if len(ret) == 0 {
		panic("no return value specified for ResetRefund")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Refund, error)); ok {
		return rf(ctx, refundID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Refund); ok {
		r0 = rf(ctx, refundID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, refundID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetRefund provides a mock function
func (_m *MockRefunder) GetRefund(ctx context.Context, refundID int64) (*models.Refund, error) {
	ret := _m.Called(ctx, refundID)

	if len(ret) == 0 {
		panic("no return value specified for GetRefund")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Refund, error)); ok {
		return rf(ctx, refundID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Refund); ok {
		r0 = rf(ctx, refundID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, refundID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetRefundByNumber provides a mock function
func (_m *MockRefunder) GetRefundByNumber(ctx context.Context, refundNumber string) (*models.Refund, error) {
	ret := _m.Called(ctx, refundNumber)

	if len(ret) == 0 {
		panic("no return value specified for GetRefundByNumber")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.Refund, error)); ok {
		return rf(ctx, refundNumber)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Refund); ok {
		r0 = rf(ctx, refundNumber)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, refundNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListRefunds provides a mock function
func (_m *MockRefunder) ListRefunds(ctx context.Context, filter models.RefundFilter) ([]*models.Refund, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListRefunds")
	}

	var r0 []*models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.RefundFilter) ([]*models.Refund, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, models.RefundFilter) []*models.Refund); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.RefundFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListRefundsForOrder provides a mock function
func (_m *MockRefunder) ListRefundsForOrder(ctx context.Context, orderID int64) ([]*models.Refund, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for ListRefundsForOrder")
	}

	var r0 []*models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*models.Refund, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*models.Refund); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListRefundsForCustomer provides a mock function
func (_m *MockRefunder) ListRefundsForCustomer(ctx context.Context, customerID int64) ([]*models.Refund, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for ListRefundsForCustomer")
	}

	var r0 []*models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*models.Refund, error)); ok {
		return rf(ctx, customerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*models.Refund); ok {
		r0 = rf(ctx, customerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RefundStats provides a mock function
func (_m *MockRefunder) RefundStats(ctx context.Context) (*models.RefundStats, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for RefundStats")
	}

	var r0 *models.RefundStats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*models.RefundStats, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *models.RefundStats); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.RefundStats)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockRefunder creates a new instance of MockRefunder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRefunder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRefunder {
	m := &MockRefunder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockInvoicer is a mock implementation of service.Invoicer
type MockInvoicer struct {
	mock.Mock
}

// GenerateFromOrder provides a mock function
func (_m *MockInvoicer) GenerateFromOrder(ctx context.Context, orderID int64) (*models.Invoice, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateFromOrder")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Invoice, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Invoice); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Void provides a mock function
func (_m *MockInvoicer) Void(ctx context.Context, invoiceID int64, reason string) (*models.Invoice, error) {
	ret := _m.Called(ctx, invoiceID, reason)

	if len(ret) == 0 {
		panic("no return value specified for Void")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) (*models.Invoice, error)); ok {
		return rf(ctx, invoiceID, reason)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) *models.Invoice); ok {
		r0 = rf(ctx, invoiceID, reason)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, invoiceID, reason)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateStatus provides a mock function
func (_m *MockInvoicer) UpdateStatus(ctx context.Context, invoiceID int64, status models.InvoiceStatus) (*models.Invoice, error) {
	ret := _m.Called(ctx, invoiceID, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateStatus")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, models.InvoiceStatus) (*models.Invoice, error)); ok {
		return rf(ctx, invoiceID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, models.InvoiceStatus) *models.Invoice); ok {
		r0 = rf(ctx, invoiceID, status)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, models.InvoiceStatus) error); ok {
		r1 = rf(ctx, invoiceID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetInvoice provides a mock function
func (_m *MockInvoicer) GetInvoice(ctx context.Context, invoiceID int64) (*models.Invoice, error) {
	ret := _m.Called(ctx, invoiceID)

	if len(ret) == 0 {
		panic("no return value specified for GetInvoice")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Invoice, error)); ok {
		return rf(ctx, invoiceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Invoice); ok {
		r0 = rf(ctx, invoiceID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, invoiceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListForOrder provides a mock function
func (_m *MockInvoicer) ListForOrder(ctx context.Context, orderID int64) ([]*models.Invoice, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for ListForOrder")
	}

	var r0 []*models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*models.Invoice, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*models.Invoice); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockInvoicer creates a new instance of MockInvoicer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockInvoicer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvoicer {
	m := &MockInvoicer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLedgerRecorder is a mock implementation of service.LedgerRecorder
type MockLedgerRecorder struct {
	mock.Mock
}

// Record provides a mock function
func (_m *MockLedgerRecorder) Record(ctx context.Context, in models.RecordTransactionInput) (*models.PaymentTransaction, error) {
	ret := _m.Called(ctx, in)

	if len(ret) == 0 {
		panic("no return value specified for Record")
	}

	var r0 *models.PaymentTransaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.RecordTransactionInput) (*models.PaymentTransaction, error)); ok {
		return rf(ctx, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, models.RecordTransactionInput) *models.PaymentTransaction); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PaymentTransaction)
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.RecordTransactionInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListForOrder provides a mock function
func (_m *MockLedgerRecorder) ListForOrder(ctx context.Context, orderID int64) ([]*models.PaymentTransaction, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for ListForOrder")
	}

	var r0 []*models.PaymentTransaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*models.PaymentTransaction, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*models.PaymentTransaction); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.PaymentTransaction)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockLedgerRecorder creates a new instance of MockLedgerRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLedgerRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerRecorder {
	m := &MockLedgerRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCapturer is a mock implementation of service.Capturer
type MockCapturer struct {
	mock.Mock
}

// CapturePayment provides a mock function
func (_m *MockCapturer) CapturePayment(ctx context.Context, orderID int64, session *payments.CheckoutSession) (*models.Invoice, error) {
	ret := _m.Called(ctx, orderID, session)

	if len(ret) == 0 {
		panic("no return value specified for CapturePayment")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, *payments.CheckoutSession) (*models.Invoice, error)); ok {
		return rf(ctx, orderID, session)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64, *payments.CheckoutSession) *models.Invoice); ok {
		r0 = rf(ctx, orderID, session)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, *payments.CheckoutSession) error); ok {
		r1 = rf(ctx, orderID, session)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCapturer creates a new instance of MockCapturer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCapturer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCapturer {
	m := &MockCapturer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockWebhookHandler is a mock implementation of service.WebhookHandler
type MockWebhookHandler struct {
	mock.Mock
}

// HandleEvent provides a mock function
func (_m *MockWebhookHandler) HandleEvent(ctx context.Context, event *payments.Event) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for HandleEvent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *payments.Event) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockWebhookHandler creates a new instance of MockWebhookHandler. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWebhookHandler(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWebhookHandler {
	m := &MockWebhookHandler{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthChecker is a mock implementation of service.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

// PingContext provides a mock function
func (_m *MockHealthChecker) PingContext(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for PingContext")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockHealthChecker creates a new instance of MockHealthChecker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
