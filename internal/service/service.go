package service

import (
	"context"
	"time"

	"library-service-backend/internal/domain"
)

type BookService interface {
	AddBook(ctx context.Context, book *domain.Book) error
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
	UpdateBook(ctx context.Context, book *domain.Book) error
	DeleteBook(ctx context.Context, id int32) error
}

type BorrowingService interface {
	CreateBorrowing(ctx context.Context, userID, bookID int32, expectedReturnDate time.Time) (*domain.Borrowing, error)
	ReturnBorrowing(ctx context.Context, borrowingID int32) (*domain.Borrowing, error)
	GetBorrowing(ctx context.Context, callerID int32, staff bool, borrowingID int32) (*domain.Borrowing, error)
	ListBorrowings(ctx context.Context, callerID int32, staff bool, userIDs []int32, isActive *bool, page, pageSize int32) ([]domain.Borrowing, int32, error)
}

type PaymentService interface {
	// CreateCheckoutSession computes the amount due for the borrowing, opens a
	// checkout session with the payment provider and persists a PENDING
	// payment. No payment row is written when the provider call fails.
	CreateCheckoutSession(ctx context.Context, borrowingID int32, paymentType domain.PaymentType) (*domain.Payment, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*domain.Payment, error)
	GetPayment(ctx context.Context, callerID int32, staff bool, paymentID int32) (*domain.Payment, error)
	ListPayments(ctx context.Context, callerID int32, staff bool, userIDs []int32, page, pageSize int32) ([]domain.Payment, int32, error)
}

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Notifier queues a best-effort outbound message on lifecycle events. Sends
// never block and never fail the primary operation.
type Notifier interface {
	Notify(text string)
}
