package service

import (
	"context"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/repository"
)

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func validateBook(b *domain.Book) error {
	if b.Title == "" {
		return &domain.ValidationError{Field: "title", Message: "title is required"}
	}
	if b.Author == "" {
		return &domain.ValidationError{Field: "author", Message: "author is required"}
	}
	if b.Cover != domain.BookCoverHard && b.Cover != domain.BookCoverSoft {
		return &domain.ValidationError{Field: "cover", Message: "cover must be HARD or SOFT"}
	}
	if b.Inventory < 0 {
		return &domain.ValidationError{Field: "inventory", Message: "inventory must not be negative"}
	}
	if b.DailyFeeCents < 0 {
		return &domain.ValidationError{Field: "daily_fee", Message: "daily fee must not be negative"}
	}
	return nil
}

func (s *bookService) AddBook(ctx context.Context, b *domain.Book) error {
	if err := validateBook(b); err != nil {
		return err
	}
	return s.bookRepo.Create(ctx, b)
}

func (s *bookService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	return s.bookRepo.List(ctx, page, pageSize)
}

func (s *bookService) UpdateBook(ctx context.Context, b *domain.Book) error {
	if err := validateBook(b); err != nil {
		return err
	}
	return s.bookRepo.Update(ctx, b)
}

func (s *bookService) DeleteBook(ctx context.Context, id int32) error {
	return s.bookRepo.Delete(ctx, id)
}
