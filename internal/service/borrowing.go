package service

import (
	"context"
	"fmt"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/repository"
)

type borrowingService struct {
	borrowRepo repository.BorrowingRepository
	bookRepo   repository.BookRepository
	paymentSvc PaymentService
	notifier   Notifier
}

func NewBorrowingService(
	borrowRepo repository.BorrowingRepository,
	bookRepo repository.BookRepository,
	paymentSvc PaymentService,
	notifier Notifier,
) BorrowingService {
	return &borrowingService{
		borrowRepo: borrowRepo,
		bookRepo:   bookRepo,
		paymentSvc: paymentSvc,
		notifier:   notifier,
	}
}

func (s *borrowingService) CreateBorrowing(ctx context.Context, userID, bookID int32, expectedReturnDate time.Time) (*domain.Borrowing, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !expectedReturnDate.After(now) {
		return nil, &domain.ValidationError{Field: "expected_return_date", Message: "must be after the borrow date"}
	}
	if book.Inventory <= 0 {
		return nil, domain.ErrNoInventory
	}

	b := &domain.Borrowing{
		BookID:             bookID,
		UserID:             userID,
		BorrowDate:         now,
		ExpectedReturnDate: expectedReturnDate,
	}
	// Borrow re-checks the inventory inside the transaction; the pre-check
	// above only short-circuits the obvious case.
	if err := s.borrowRepo.Borrow(ctx, b); err != nil {
		return nil, err
	}

	// The borrowing is committed at this point. A checkout failure is surfaced
	// to the caller but does not undo it; the record stays active with no
	// payment attached until reconciled.
	if _, err := s.paymentSvc.CreateCheckoutSession(ctx, b.ID, domain.PaymentTypePayment); err != nil {
		return nil, err
	}

	s.notifier.Notify(fmt.Sprintf(
		"Borrowing #%d Title: %s Borrowing at: %s. Expected return date: %s",
		b.ID, book.Title, b.BorrowDate.Format(time.RFC3339), b.ExpectedReturnDate.Format("2006-01-02"),
	))
	return b, nil
}

func (s *borrowingService) ReturnBorrowing(ctx context.Context, borrowingID int32) (*domain.Borrowing, error) {
	b, err := s.borrowRepo.Return(ctx, borrowingID, time.Now())
	if err != nil {
		return nil, err
	}

	if b.Overdue() {
		if _, err := s.paymentSvc.CreateCheckoutSession(ctx, b.ID, domain.PaymentTypeFine); err != nil {
			// The return is committed; the fine session has to be retried out
			// of band.
			return nil, err
		}
	}

	book, _ := s.bookRepo.GetByID(ctx, b.BookID)
	title := ""
	if book != nil {
		title = book.Title
	}
	s.notifier.Notify(fmt.Sprintf(
		"Borrowing #%d, Title: %s was returned at: %s",
		b.ID, title, b.ActualReturnDate.Format(time.RFC3339),
	))
	return b, nil
}

func (s *borrowingService) GetBorrowing(ctx context.Context, callerID int32, staff bool, borrowingID int32) (*domain.Borrowing, error) {
	b, err := s.borrowRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if !staff && b.UserID != callerID {
		return nil, &domain.NotFoundError{Resource: "borrowing", ID: borrowingID}
	}
	return b, nil
}

func (s *borrowingService) ListBorrowings(ctx context.Context, callerID int32, staff bool, userIDs []int32, isActive *bool, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	filter := repository.BorrowingFilter{IsActive: isActive}
	if staff {
		filter.UserIDs = userIDs
	} else {
		filter.UserIDs = []int32{callerID}
	}
	return s.borrowRepo.List(ctx, filter, page, pageSize)
}
