package postgres

import (
	"context"
	"testing"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.Payment{
			BorrowingID:     42,
			Status:          domain.PaymentStatusPending,
			Type:            domain.PaymentTypePayment,
			SessionURL:      "https://checkout.test/cs_123",
			SessionID:       "cs_123",
			MoneyToPayCents: 2000,
		}

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(p.BorrowingID, p.Status, p.Type, p.SessionURL, p.SessionID, p.MoneyToPayCents, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), p.ID)
	})
}

func TestPaymentRepository_GetBySessionID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "borrowing_id", "status", "type", "session_url", "session_id", "money_to_pay_cents", "created_on"}).
			AddRow(9, 42, "PENDING", "PAYMENT", "https://checkout.test/cs_123", "cs_123", 2000, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM payments WHERE session_id = \\$1").
			WithArgs("cs_123").
			WillReturnRows(rows)

		p, err := repo.GetBySessionID(ctx, "cs_123")
		assert.NoError(t, err)
		assert.Equal(t, int32(9), p.ID)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE session_id = \\$1").
			WithArgs("cs_missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetBySessionID(ctx, "cs_missing")
		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestPaymentRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments SET status = 'PAID'").
			WithArgs(int32(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkPaid(ctx, 9))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments SET status = 'PAID'").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		var nf *domain.NotFoundError
		assert.ErrorAs(t, repo.MarkPaid(ctx, 99), &nf)
	})
}

func TestPaymentRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("ScopedToUser", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM payments p JOIN borrowings b").
			WillReturnRows(sqlmock.NewRows([]string{"id", "borrowing_id", "status", "type", "session_url", "session_id", "money_to_pay_cents", "created_on"}).
				AddRow(9, 42, "PAID", "FINE", "https://checkout.test/cs_456", "cs_456", 6000, time.Now()))

		items, total, err := repo.List(ctx, repository.BorrowingFilter{UserIDs: []int32{7}}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, items, 1)
		assert.Equal(t, domain.PaymentTypeFine, items[0].Type)
	})
}
