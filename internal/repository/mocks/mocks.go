package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tutorbase/backend/internal/models"
)

// MockRefundRepository is a mock implementation of repository.RefundRepository
type MockRefundRepository struct {
	mock.Mock
}

// Create provides a mock function
func (_m *MockRefundRepository) Create(ctx context.Context, refund *models.Refund) error {
	ret := _m.Called(ctx, refund)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Refund) error); ok {
		r0 = rf(ctx, refund)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function
func (_m *MockRefundRepository) FindByID(ctx context.Context, id int64) (*models.Refund, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Refund, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Refund); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByNumber provides a mock function
func (_m *MockRefundRepository) FindByNumber(ctx context.Context, refundNumber string) (*models.Refund, error) {
	ret := _m.Called(ctx, refundNumber)

	if len(ret) == 0 {
		panic("no return value specified for FindByNumber")
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

// FindByExternalID provides a mock function
func (_m *MockRefundRepository) FindByExternalID(ctx context.Context, externalRefundID string) (*models.Refund, error) {
	ret := _m.Called(ctx, externalRefundID)

	if len(ret) == 0 {
		panic("no return value specified for FindByExternalID")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.Refund, error)); ok {
		return rf(ctx, externalRefundID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Refund); ok {
		r0 = rf(ctx, externalRefundID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, externalRefundID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByOrderID provides a mock function
func (_m *MockRefundRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.Refund, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for FindByOrderID")
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

// FindByCustomerID provides a mock function
func (_m *MockRefundRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*models.Refund, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for FindByCustomerID")
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

// List provides a mock function
func (_m *MockRefundRepository) List(ctx context.Context, filter models.RefundFilter) ([]*models.Refund, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for List")
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

// Stats provides a mock function
func (_m *MockRefundRepository) Stats(ctx context.Context) (*models.RefundStats, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Stats")
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

// TransitionStatus provides a mock function
func (_m *MockRefundRepository) TransitionStatus(ctx context.Context, id int64, to models.RefundStatus, from ...models.RefundStatus) error {
	_ca := []interface{}{ctx, id, to}
	for _, _v := range from {
		_ca = append(_ca, _v)
	}
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for TransitionStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, models.RefundStatus, ...models.RefundStatus) error); ok {
		r0 = rf(ctx, id, to, from...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// TransitionWithNote provides a mock function
func (_m *MockRefundRepository) TransitionWithNote(ctx context.Context, id int64, to models.RefundStatus, note string, from ...models.RefundStatus) (*models.Refund, error) {
	_ca := []interface{}{ctx, id, to, note}
	for _, _v := range from {
		_ca = append(_ca, _v)
	}
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for TransitionWithNote")
	}

	var r0 *models.Refund
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, models.RefundStatus, string, ...models.RefundStatus) (*models.Refund, error)); ok {
		return rf(ctx, id, to, note, from...)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Refund)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64, models.RefundStatus, string, ...models.RefundStatus) error); ok {
		r1 = rf(ctx, id, to, note, from...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function
func (_m *MockRefundRepository) Update(ctx context.Context, refund *models.Refund, from ...models.RefundStatus) error {
	_ca := []interface{}{ctx, refund}
	for _, _v := range from {
		_ca = append(_ca, _v)
	}
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Refund, ...models.RefundStatus) error); ok {
		r0 = rf(ctx, refund, from...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockRefundRepository creates a new instance of MockRefundRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRefundRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRefundRepository {
	m := &MockRefundRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockInvoiceRepository is a mock implementation of repository.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

// Create provides a mock function
func (_m *MockInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	ret := _m.Called(ctx, invoice)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invoice) error); ok {
		r0 = rf(ctx, invoice)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function
func (_m *MockInvoiceRepository) FindByID(ctx context.Context, id int64) (*models.Invoice, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Invoice, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Invoice); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByIDForUpdate provides a mock function
func (_m *MockInvoiceRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Invoice, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByIDForUpdate")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Invoice, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Invoice); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Invoice)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByOrderID provides a mock function
func (_m *MockInvoiceRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.Invoice, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for FindByOrderID")
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

// Update provides a mock function
func (_m *MockInvoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	ret := _m.Called(ctx, invoice)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invoice) error); ok {
		r0 = rf(ctx, invoice)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockInvoiceRepository creates a new instance of MockInvoiceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockInvoiceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvoiceRepository {
	m := &MockInvoiceRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionRepository is a mock implementation of repository.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// Create provides a mock function
func (_m *MockTransactionRepository) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	ret := _m.Called(ctx, txn)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.PaymentTransaction) error); ok {
		r0 = rf(ctx, txn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function
func (_m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*models.PaymentTransaction, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *models.PaymentTransaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.PaymentTransaction, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.PaymentTransaction); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PaymentTransaction)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByOrderID provides a mock function
func (_m *MockTransactionRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.PaymentTransaction, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for FindByOrderID")
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

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockOrderRepository is a mock implementation of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

// Create provides a mock function
func (_m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Order) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByID provides a mock function
func (_m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *models.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Order, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByIDForUpdate provides a mock function
func (_m *MockOrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*models.Order, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByIDForUpdate")
	}

	var r0 *models.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*models.Order, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindByPaymentIntentID provides a mock function
func (_m *MockOrderRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*models.Order, error) {
	ret := _m.Called(ctx, paymentIntentID)

	if len(ret) == 0 {
		panic("no return value specified for FindByPaymentIntentID")
	}

	var r0 *models.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.Order, error)); ok {
		return rf(ctx, paymentIntentID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Order); ok {
		r0 = rf(ctx, paymentIntentID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, paymentIntentID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SavePaymentIntent provides a mock function
func (_m *MockOrderRepository) SavePaymentIntent(ctx context.Context, id int64, paymentIntentID string) error {
	ret := _m.Called(ctx, id, paymentIntentID)

	if len(ret) == 0 {
		panic("no return value specified for SavePaymentIntent")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		r0 = rf(ctx, id, paymentIntentID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RecordCheckout provides a mock function
func (_m *MockOrderRepository) RecordCheckout(ctx context.Context, id int64, paymentIntentID string, checkoutSessionID string, paidCurrency string, taxPaid int64) error {
	ret := _m.Called(ctx, id, paymentIntentID, checkoutSessionID, paidCurrency, taxPaid)

	if len(ret) == 0 {
		panic("no return value specified for RecordCheckout")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string, string, string, int64) error); ok {
		r0 = rf(ctx, id, paymentIntentID, checkoutSessionID, paidCurrency, taxPaid)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpdatePaymentStatus provides a mock function
func (_m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error {
	ret := _m.Called(ctx, id, paymentStatus)

	if len(ret) == 0 {
		panic("no return value specified for UpdatePaymentStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		r0 = rf(ctx, id, paymentStatus)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockOrderRepository creates a new instance of MockOrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockSlotRepository is a mock implementation of repository.SlotRepository
type MockSlotRepository struct {
	mock.Mock
}

// Create provides a mock function
func (_m *MockSlotRepository) Create(ctx context.Context, slot *models.SlotReservation) error {
	ret := _m.Called(ctx, slot)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.SlotReservation) error); ok {
		r0 = rf(ctx, slot)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByOrderID provides a mock function
func (_m *MockSlotRepository) FindByOrderID(ctx context.Context, orderID int64) ([]*models.SlotReservation, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for FindByOrderID")
	}

	var r0 []*models.SlotReservation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]*models.SlotReservation, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []*models.SlotReservation); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.SlotReservation)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReleaseByOrderID provides a mock function
func (_m *MockSlotRepository) ReleaseByOrderID(ctx context.Context, orderID int64) (int64, error) {
	ret := _m.Called(ctx, orderID)

	if len(ret) == 0 {
		panic("no return value specified for ReleaseByOrderID")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (int64, error)); ok {
		return rf(ctx, orderID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) int64); ok {
		r0 = rf(ctx, orderID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockSlotRepository creates a new instance of MockSlotRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSlotRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSlotRepository {
	m := &MockSlotRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockIdempotencyRepository is a mock implementation of repository.IdempotencyRepository
type MockIdempotencyRepository struct {
	mock.Mock
}

// Get provides a mock function
func (_m *MockIdempotencyRepository) Get(ctx context.Context, key string, requestPath string) (*models.IdempotencyKey, error) {
	ret := _m.Called(ctx, key, requestPath)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *models.IdempotencyKey
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*models.IdempotencyKey, error)); ok {
		return rf(ctx, key, requestPath)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *models.IdempotencyKey); ok {
		r0 = rf(ctx, key, requestPath)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.IdempotencyKey)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, key, requestPath)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Store provides a mock function
func (_m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	ret := _m.Called(ctx, idemKey)

	if len(ret) == 0 {
		panic("no return value specified for Store")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.IdempotencyKey) error); ok {
		r0 = rf(ctx, idemKey)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockIdempotencyRepository creates a new instance of MockIdempotencyRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockIdempotencyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
