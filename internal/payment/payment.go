package payment

import "context"

// SessionRequest describes the single line item of a checkout session.
type SessionRequest struct {
	Currency           string
	UnitAmountCents    int64
	ProductName        string
	ProductDescription string
	Quantity           int
	SuccessURL         string
	CancelURL          string
}

// Session is the provider's handle for a pending charge. AmountTotalCents is
// the provider's echoed total and is treated as the authoritative amount.
type Session struct {
	ID               string
	URL              string
	AmountTotalCents int64
}

// Provider creates checkout sessions with an external payment service.
type Provider interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}
