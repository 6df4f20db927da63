package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/logger"
)

type stripeProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewStripeProvider returns a Provider backed by the Stripe Checkout API. A
// timeout on the outbound call surfaces as a session-creation failure.
func NewStripeProvider(apiKey, baseURL string, timeout time.Duration) Provider {
	return &stripeProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *stripeProvider) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("line_items[0][price_data][currency]", req.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.UnitAmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.ProductName)
	form.Set("line_items[0][price_data][product_data][description]", req.ProductDescription)
	form.Set("line_items[0][quantity]", strconv.Itoa(req.Quantity))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(p.apiKey, "")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	logger.ExternalServiceCall("stripe", "create_checkout_session", "product", req.ProductName)
	resp, err := p.client.Do(httpReq)
	if err != nil {
		logger.ExternalServiceResult("stripe", "create_checkout_session", err)
		return nil, &domain.ExternalServiceError{Service: "stripe", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("create checkout session: %s: %s", resp.Status, body)
		logger.ExternalServiceResult("stripe", "create_checkout_session", err)
		return nil, &domain.ExternalServiceError{Service: "stripe", Err: err}
	}

	var out struct {
		ID          string `json:"id"`
		URL         string `json:"url"`
		AmountTotal int64  `json:"amount_total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.ExternalServiceError{Service: "stripe", Err: err}
	}
	if out.ID == "" {
		return nil, &domain.ExternalServiceError{Service: "stripe", Err: errors.New("empty session id")}
	}

	logger.ExternalServiceResult("stripe", "create_checkout_session", nil, "session_id", out.ID)
	return &Session{ID: out.ID, URL: out.URL, AmountTotalCents: out.AmountTotal}, nil
}
