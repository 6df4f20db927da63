package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type PaymentType string

const (
	PaymentTypePayment PaymentType = "PAYMENT"
	PaymentTypeFine    PaymentType = "FINE"
)

// Payment records one checkout session obtained from the payment provider.
// Amount and type are fixed at creation; only the status moves, PENDING to PAID.
type Payment struct {
	ID              int32         `json:"id"`
	BorrowingID     int32         `json:"borrowing_id"`
	Status          PaymentStatus `json:"status"`
	Type            PaymentType   `json:"type"`
	SessionURL      string        `json:"session_url"`
	SessionID       string        `json:"session_id"`
	MoneyToPayCents int64         `json:"money_to_pay_cents"`
	CreatedOn       time.Time     `json:"created_on"`
}
