package service

import (
	"context"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/payment"
	"library-service-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBorrowingRepo
type MockBorrowingRepo struct {
	mock.Mock
}

func (m *MockBorrowingRepo) Borrow(ctx context.Context, b *domain.Borrowing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowingRepo) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) Return(ctx context.Context, id int32, returnedAt time.Time) (*domain.Borrowing, error) {
	args := m.Called(ctx, id, returnedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) List(ctx context.Context, filter repository.BorrowingFilter, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Borrowing), args.Get(1).(int32), args.Error(2)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkPaid(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) List(ctx context.Context, filter repository.BorrowingFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProvider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateCheckoutSession(ctx context.Context, borrowingID int32, paymentType domain.PaymentType) (*domain.Payment, error) {
	args := m.Called(ctx, borrowingID, paymentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ConfirmPayment(ctx context.Context, sessionID string) (*domain.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) GetPayment(ctx context.Context, callerID int32, staff bool, paymentID int32) (*domain.Payment, error) {
	args := m.Called(ctx, callerID, staff, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListPayments(ctx context.Context, callerID int32, staff bool, userIDs []int32, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, callerID, staff, userIDs, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

// MockNotifier records queued messages for assertion.
type MockNotifier struct {
	Messages []string
}

func (m *MockNotifier) Notify(text string) {
	m.Messages = append(m.Messages, text)
}
