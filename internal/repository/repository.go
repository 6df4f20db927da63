package repository

import (
	"context"
	"time"

	"library-service-backend/internal/domain"
)

// BorrowingFilter narrows borrowing and payment listings. An empty UserIDs
// slice means no user restriction; a nil IsActive means both states.
type BorrowingFilter struct {
	UserIDs  []int32
	IsActive *bool
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
}

type BorrowingRepository interface {
	// Borrow inserts the borrowing and decrements the book's inventory in a
	// single transaction. Returns domain.ErrNoInventory when no copies are
	// available; nothing is committed in that case.
	Borrow(ctx context.Context, b *domain.Borrowing) error
	GetByID(ctx context.Context, id int32) (*domain.Borrowing, error)
	// Return stamps the actual return date, clears the active flag and
	// increments the book's inventory in a single transaction. Returns
	// domain.ErrAlreadyReturned when the borrowing is no longer active.
	Return(ctx context.Context, id int32, returnedAt time.Time) (*domain.Borrowing, error)
	List(ctx context.Context, filter BorrowingFilter, page, pageSize int32) ([]domain.Borrowing, int32, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id int32) error
	List(ctx context.Context, filter BorrowingFilter, page, pageSize int32) ([]domain.Payment, int32, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
