package http

import (
	"context"
	"time"

	"library-service-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// MockBookService
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) AddBook(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookService) ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookService) UpdateBook(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookService) DeleteBook(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBorrowingService
type MockBorrowingService struct {
	mock.Mock
}

func (m *MockBorrowingService) CreateBorrowing(ctx context.Context, userID, bookID int32, expectedReturnDate time.Time) (*domain.Borrowing, error) {
	args := m.Called(ctx, userID, bookID, expectedReturnDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) ReturnBorrowing(ctx context.Context, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) GetBorrowing(ctx context.Context, callerID int32, staff bool, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, callerID, staff, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) ListBorrowings(ctx context.Context, callerID int32, staff bool, userIDs []int32, isActive *bool, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	args := m.Called(ctx, callerID, staff, userIDs, isActive, page, pageSize)
	return args.Get(0).([]domain.Borrowing), args.Get(1).(int32), args.Error(2)
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
