package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, cover, inventory, daily_fee_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Title, b.Author, b.Cover, b.Inventory, b.DailyFeeCents, time.Now()).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, title, author, cover, inventory, daily_fee_cents, created_on FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.Cover, &b.Inventory, &b.DailyFeeCents, &b.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "book", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, title, author, cover, inventory, daily_fee_cents, created_on
	          FROM books ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Cover, &b.Inventory, &b.DailyFeeCents, &b.CreatedOn); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, count, rows.Err()
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author=$2, cover=$3, inventory=$4, daily_fee_cents=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, b.Title, b.Author, b.Cover, b.Inventory, b.DailyFeeCents, b.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "book", ID: b.ID}
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "book", ID: id}
	}
	return nil
}
