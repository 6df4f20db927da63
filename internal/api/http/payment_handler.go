package http

import (
	"net/http"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/service"
	"library-service-backend/internal/utils"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type paymentResponse struct {
	ID          int32     `json:"id"`
	BorrowingID int32     `json:"borrowing_id"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	SessionURL  string    `json:"session_url"`
	SessionID   string    `json:"session_id"`
	MoneyToPay  float64   `json:"money_to_pay"`
	CreatedOn   time.Time `json:"created_on"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		BorrowingID: p.BorrowingID,
		Status:      string(p.Status),
		Type:        string(p.Type),
		SessionURL:  p.SessionURL,
		SessionID:   p.SessionID,
		MoneyToPay:  utils.CentsToMajor(p.MoneyToPayCents),
		CreatedOn:   p.CreatedOn,
	}
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := UserFromContext(r.Context())
	p, err := h.paymentSvc.GetPayment(r.Context(), userID, isStaff, pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(p))
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := UserFromContext(r.Context())

	var userIDs []int32
	if v := r.URL.Query().Get("user_id"); v != "" {
		userIDs = parseIDList(v)
	}

	page, pageSize := pagination(r)
	payments, count, err := h.paymentSvc.ListPayments(r.Context(), userID, isStaff, userIDs, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]paymentResponse, len(payments))
	for i := range payments {
		results[i] = toPaymentResponse(&payments[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"count": count, "results": results})
}
