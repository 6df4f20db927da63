package domain

import "time"

type Borrowing struct {
	ID                 int32      `json:"id"`
	BookID             int32      `json:"book_id"`
	UserID             int32      `json:"user_id"`
	BorrowDate         time.Time  `json:"borrow_date"` // set at creation, immutable afterwards
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
	IsActive           bool       `json:"is_active"`
}

// Overdue reports whether the borrowing was (or is being) returned past its
// expected return date.
func (b *Borrowing) Overdue() bool {
	return b.ActualReturnDate != nil && b.ActualReturnDate.After(b.ExpectedReturnDate)
}
