package postgres

import (
	"context"
	"testing"
	"time"

	"library-service-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBookRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := &domain.Book{
			Title:         "Dune",
			Author:        "Frank Herbert",
			Cover:         domain.BookCoverHard,
			Inventory:     3,
			DailyFeeCents: 1000,
		}

		mock.ExpectQuery("INSERT INTO books").
			WithArgs(b.Title, b.Author, b.Cover, b.Inventory, b.DailyFeeCents, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), b.ID)
	})
}

func TestBookRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "author", "cover", "inventory", "daily_fee_cents", "created_on"}).
			AddRow(5, "Dune", "Frank Herbert", "HARD", 3, 1000, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM books WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnRows(rows)

		b, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Equal(t, domain.BookCoverHard, b.Cover)
		assert.Equal(t, int64(1000), b.DailyFeeCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM books WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		var nf *domain.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestBookRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookRepository(db)
	ctx := context.Background()

	t.Run("SecondPage", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM books").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
		mock.ExpectQuery("SELECT (.+) FROM books ORDER BY id LIMIT \\$1 OFFSET \\$2").
			WithArgs(int32(20), int32(20)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "cover", "inventory", "daily_fee_cents", "created_on"}).
				AddRow(21, "Dune", "Frank Herbert", "HARD", 3, 1000, time.Now()))

		books, total, err := repo.List(ctx, 2, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(25), total)
		assert.Len(t, books, 1)
	})
}

func TestBookRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookRepository(db)
	ctx := context.Background()

	b := &domain.Book{
		ID:            5,
		Title:         "Dune",
		Author:        "Frank Herbert",
		Cover:         domain.BookCoverSoft,
		Inventory:     4,
		DailyFeeCents: 1200,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE books SET").
			WithArgs(b.Title, b.Author, b.Cover, b.Inventory, b.DailyFeeCents, b.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, b))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE books SET").
			WithArgs(b.Title, b.Author, b.Cover, b.Inventory, b.DailyFeeCents, b.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		var nf *domain.NotFoundError
		assert.ErrorAs(t, repo.Update(ctx, b), &nf)
	})
}

func TestBookRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM books WHERE id = \\$1").
			WithArgs(int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM books WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		var nf *domain.NotFoundError
		assert.ErrorAs(t, repo.Delete(ctx, 99), &nf)
	})
}
