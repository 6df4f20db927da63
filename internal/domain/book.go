package domain

import "time"

type BookCover string

const (
	BookCoverHard BookCover = "HARD"
	BookCoverSoft BookCover = "SOFT"
)

type Book struct {
	ID            int32     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Cover         BookCover `json:"cover"`
	Inventory     int32     `json:"inventory"` // copies currently available to lend, never negative
	DailyFeeCents int64     `json:"daily_fee_cents"`
	CreatedOn     time.Time `json:"created_on"`
}
