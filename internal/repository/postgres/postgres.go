package postgres

import (
	"database/sql"

	"library-service-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.BorrowingRepository
	repository.PaymentRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		BookRepository:      NewBookRepository(db),
		BorrowingRepository: NewBorrowingRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		UserRepository:      NewUserRepository(db),
	}
}
