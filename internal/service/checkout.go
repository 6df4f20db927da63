package service

import (
	"context"
	"fmt"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/payment"
	"library-service-backend/internal/repository"
	"library-service-backend/internal/utils"
)

// CheckoutConfig carries the provider-facing settings of the payment
// initiator.
type CheckoutConfig struct {
	Currency   string
	SuccessURL string // carries the {CHECKOUT_SESSION_ID} placeholder
	CancelURL  string
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	borrowRepo  repository.BorrowingRepository
	bookRepo    repository.BookRepository
	provider    payment.Provider
	notifier    Notifier
	cfg         CheckoutConfig
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	borrowRepo repository.BorrowingRepository,
	bookRepo repository.BookRepository,
	provider payment.Provider,
	notifier Notifier,
	cfg CheckoutConfig,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		borrowRepo:  borrowRepo,
		bookRepo:    bookRepo,
		provider:    provider,
		notifier:    notifier,
		cfg:         cfg,
	}
}

func (s *paymentService) CreateCheckoutSession(ctx context.Context, borrowingID int32, paymentType domain.PaymentType) (*domain.Payment, error) {
	b, err := s.borrowRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.GetByID(ctx, b.BookID)
	if err != nil {
		return nil, err
	}

	var amount int64
	switch paymentType {
	case domain.PaymentTypeFine:
		if b.ActualReturnDate == nil {
			return nil, &domain.ValidationError{Field: "type", Message: "a fine requires a returned borrowing"}
		}
		amount = utils.FineFeeCents(b.ExpectedReturnDate, *b.ActualReturnDate, book.DailyFeeCents)
	case domain.PaymentTypePayment:
		amount = utils.RentalFeeCents(b.BorrowDate, b.ExpectedReturnDate, book.DailyFeeCents)
	default:
		return nil, &domain.ValidationError{Field: "type", Message: fmt.Sprintf("unknown payment type %q", paymentType)}
	}

	sess, err := s.provider.CreateSession(ctx, payment.SessionRequest{
		Currency:           s.cfg.Currency,
		UnitAmountCents:    amount,
		ProductName:        book.Title,
		ProductDescription: fmt.Sprintf("Author: %s", book.Author),
		Quantity:           1,
		SuccessURL:         s.cfg.SuccessURL,
		CancelURL:          s.cfg.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		BorrowingID: b.ID,
		Status:      domain.PaymentStatusPending,
		Type:        paymentType,
		SessionURL:  sess.URL,
		SessionID:   sess.ID,
		// The provider's echoed total wins over the locally computed amount.
		MoneyToPayCents: sess.AmountTotalCents,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, sessionID string) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.MarkPaid(ctx, p.ID); err != nil {
		return nil, err
	}
	p.Status = domain.PaymentStatusPaid

	s.notifier.Notify(fmt.Sprintf("Payment #%d for borrowing #%d was completed", p.ID, p.BorrowingID))
	return p, nil
}

func (s *paymentService) GetPayment(ctx context.Context, callerID int32, staff bool, paymentID int32) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !staff {
		b, err := s.borrowRepo.GetByID(ctx, p.BorrowingID)
		if err != nil {
			return nil, err
		}
		if b.UserID != callerID {
			return nil, &domain.NotFoundError{Resource: "payment", ID: paymentID}
		}
	}
	return p, nil
}

func (s *paymentService) ListPayments(ctx context.Context, callerID int32, staff bool, userIDs []int32, page, pageSize int32) ([]domain.Payment, int32, error) {
	filter := repository.BorrowingFilter{}
	if staff {
		filter.UserIDs = userIDs
	} else {
		filter.UserIDs = []int32{callerID}
	}
	return s.paymentRepo.List(ctx, filter, page, pageSize)
}
