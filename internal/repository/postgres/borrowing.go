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

type borrowingRepository struct {
	db *sql.DB
}

func NewBorrowingRepository(db *sql.DB) repository.BorrowingRepository {
	return &borrowingRepository{db: db}
}

func (r *borrowingRepository) Borrow(ctx context.Context, b *domain.Borrowing) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conditional decrement serializes concurrent borrowings of the last copy:
	// two requests cannot both pass the inventory > 0 check.
	res, err := tx.ExecContext(ctx, `UPDATE books SET inventory = inventory - 1 WHERE id = $1 AND inventory > 0`, b.BookID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNoInventory
	}

	query := `INSERT INTO borrowings (book_id, user_id, borrow_date, expected_return_date, is_active)
	          VALUES ($1, $2, $3, $4, TRUE) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, b.BookID, b.UserID, b.BorrowDate, b.ExpectedReturnDate).Scan(&b.ID); err != nil {
		return err
	}
	b.IsActive = true
	return tx.Commit()
}

func (r *borrowingRepository) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	b := &domain.Borrowing{}
	query := `SELECT id, book_id, user_id, borrow_date, expected_return_date, actual_return_date, is_active
	          FROM borrowings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BookID, &b.UserID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate, &b.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "borrowing", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *borrowingRepository) Return(ctx context.Context, id int32, returnedAt time.Time) (*domain.Borrowing, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	b := &domain.Borrowing{}
	query := `SELECT id, book_id, user_id, borrow_date, expected_return_date, actual_return_date, is_active
	          FROM borrowings WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BookID, &b.UserID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate, &b.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "borrowing", ID: id}
	}
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		return nil, domain.ErrAlreadyReturned
	}

	if _, err := tx.ExecContext(ctx, `UPDATE books SET inventory = inventory + 1 WHERE id = $1`, b.BookID); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE borrowings SET actual_return_date = $1, is_active = FALSE WHERE id = $2`, returnedAt, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	b.ActualReturnDate = &returnedAt
	b.IsActive = false
	return b, nil
}

func (r *borrowingRepository) List(ctx context.Context, filter repository.BorrowingFilter, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	query := `SELECT id, book_id, user_id, borrow_date, expected_return_date, actual_return_date, is_active
	          FROM borrowings WHERE 1=1`

	var args []interface{}
	argIdx := 1
	if len(filter.UserIDs) > 0 {
		query += fmt.Sprintf(" AND user_id = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.UserIDs))
		argIdx++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query += fmt.Sprintf(" ORDER BY borrow_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var borrowings []domain.Borrowing
	for rows.Next() {
		var b domain.Borrowing
		if err := rows.Scan(&b.ID, &b.BookID, &b.UserID, &b.BorrowDate, &b.ExpectedReturnDate, &b.ActualReturnDate, &b.IsActive); err != nil {
			return nil, 0, err
		}
		borrowings = append(borrowings, b)
	}
	return borrowings, count, rows.Err()
}
