package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/repository"

	"github.com/lib/pq"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (borrowing_id, status, type, session_url, session_id, money_to_pay_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.BorrowingID, p.Status, p.Type, p.SessionURL, p.SessionID, p.MoneyToPayCents, time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, borrowing_id, status, type, session_url, session_id, money_to_pay_cents, created_on
	          FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Type, &p.SessionURL, &p.SessionID, &p.MoneyToPayCents, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "payment", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, borrowing_id, status, type, session_url, session_id, money_to_pay_cents, created_on
	          FROM payments WHERE session_id = $1`
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Type, &p.SessionURL, &p.SessionID, &p.MoneyToPayCents, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "payment", ID: sessionID}
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE payments SET status = 'PAID' WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "payment", ID: id}
	}
	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter repository.BorrowingFilter, page, pageSize int32) ([]domain.Payment, int32, error) {
	query := `SELECT p.id, p.borrowing_id, p.status, p.type, p.session_url, p.session_id, p.money_to_pay_cents, p.created_on
	          FROM payments p JOIN borrowings b ON b.id = p.borrowing_id WHERE 1=1`

	var args []interface{}
	argIdx := 1
	if len(filter.UserIDs) > 0 {
		query += fmt.Sprintf(" AND b.user_id = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.UserIDs))
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY p.created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BorrowingID, &p.Status, &p.Type, &p.SessionURL, &p.SessionID, &p.MoneyToPayCents, &p.CreatedOn); err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}
	return payments, count, rows.Err()
}
