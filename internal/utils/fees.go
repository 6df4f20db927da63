package utils

import (
	"math"
	"time"
)

// FineMultiplier is the penalty rate applied per overdue day, relative to the
// book's daily fee.
const FineMultiplier = 2

// daysBetween returns the number of whole days from one timestamp to another,
// clamped at zero. A return before (or within a day of) the reference point
// never produces a negative charge.
func daysBetween(from, to time.Time) int64 {
	days := int64(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// RentalFeeCents computes the up-front rental amount in minor currency units:
// one daily fee per whole day between the borrow date and the expected return
// date.
func RentalFeeCents(borrowDate, expectedReturnDate time.Time, dailyFeeCents int64) int64 {
	return daysBetween(borrowDate, expectedReturnDate) * dailyFeeCents
}

// FineFeeCents computes the overdue fine in minor currency units: twice the
// daily fee per whole day the actual return falls past the expected one.
func FineFeeCents(expectedReturnDate, actualReturnDate time.Time, dailyFeeCents int64) int64 {
	return daysBetween(expectedReturnDate, actualReturnDate) * dailyFeeCents * FineMultiplier
}

// MajorToCents converts a decimal currency amount to minor units.
func MajorToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToMajor converts minor currency units back to a decimal amount.
func CentsToMajor(cents int64) float64 {
	return float64(cents) / 100
}
