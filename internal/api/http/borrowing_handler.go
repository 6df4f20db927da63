package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/service"
)

type BorrowingHandler struct {
	borrowingSvc service.BorrowingService
	bookSvc      service.BookService
	paymentSvc   service.PaymentService
}

func NewBorrowingHandler(borrowingSvc service.BorrowingService, bookSvc service.BookService, paymentSvc service.PaymentService) *BorrowingHandler {
	return &BorrowingHandler{
		borrowingSvc: borrowingSvc,
		bookSvc:      bookSvc,
		paymentSvc:   paymentSvc,
	}
}

type createBorrowingRequest struct {
	Book               int32  `json:"book"`
	ExpectedReturnDate string `json:"expected_return_date"`
}

type borrowingResponse struct {
	ID                 int32         `json:"id"`
	BookID             int32         `json:"book_id"`
	UserID             int32         `json:"user_id"`
	BorrowDate         time.Time     `json:"borrow_date"`
	ExpectedReturnDate time.Time     `json:"expected_return_date"`
	ActualReturnDate   *time.Time    `json:"actual_return_date,omitempty"`
	IsActive           bool          `json:"is_active"`
	Book               *bookResponse `json:"book,omitempty"` // populated on detail views
}

func toBorrowingResponse(b *domain.Borrowing) borrowingResponse {
	return borrowingResponse{
		ID:                 b.ID,
		BookID:             b.BookID,
		UserID:             b.UserID,
		BorrowDate:         b.BorrowDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		ActualReturnDate:   b.ActualReturnDate,
		IsActive:           b.IsActive,
	}
}

// parseReturnDate accepts a full timestamp or a bare date.
func parseReturnDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBorrowingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}
	expectedReturn, err := parseReturnDate(req.ExpectedReturnDate)
	if err != nil {
		writeError(w, &domain.ValidationError{Field: "expected_return_date", Message: "expected yyyy-mm-dd or RFC 3339"})
		return
	}

	userID, _ := UserFromContext(r.Context())
	borrowing, err := h.borrowingSvc.CreateBorrowing(r.Context(), userID, req.Book, expectedReturn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBorrowingResponse(borrowing))
}

func (h *BorrowingHandler) Return(w http.ResponseWriter, r *http.Request) {
	borrowing, err := h.borrowingSvc.ReturnBorrowing(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBorrowingResponse(borrowing))
}

func (h *BorrowingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := UserFromContext(r.Context())
	borrowing, err := h.borrowingSvc.GetBorrowing(r.Context(), userID, isStaff, pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := toBorrowingResponse(borrowing)
	if book, err := h.bookSvc.GetBook(r.Context(), borrowing.BookID); err == nil {
		br := toBookResponse(book)
		resp.Book = &br
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BorrowingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := UserFromContext(r.Context())

	var isActive *bool
	if v := r.URL.Query().Get("is_active"); v != "" {
		active := v == "true" || v == "True" || v == "1"
		isActive = &active
	}
	var userIDs []int32
	if v := r.URL.Query().Get("user_id"); v != "" {
		userIDs = parseIDList(v)
	}

	page, pageSize := pagination(r)
	borrowings, count, err := h.borrowingSvc.ListBorrowings(r.Context(), userID, isStaff, userIDs, isActive, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]borrowingResponse, len(borrowings))
	for i := range borrowings {
		results[i] = toBorrowingResponse(&borrowings[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"count": count, "results": results})
}

// OrderSuccess is the payment provider's redirect target after a completed
// checkout. It flips the matching payment to PAID.
func (h *BorrowingHandler) OrderSuccess(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, &domain.ValidationError{Field: "session_id", Message: "session_id is required"})
		return
	}
	if _, err := h.paymentSvc.ConfirmPayment(r.Context(), sessionID); err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, "/api/borrowings", http.StatusSeeOther)
}

// OrderCanceled informs the user that the session stays open; no state
// changes here.
func (h *BorrowingHandler) OrderCanceled(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"detail": "Payment canceled. The checkout session stays available for 24 hours.",
	})
}

// parseIDList converts a comma-separated list of ids ("1,2,3") to integers.
func parseIDList(value string) []int32 {
	parts := strings.Split(value, ",")
	ids := make([]int32, 0, len(parts))
	for _, part := range parts {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			ids = append(ids, int32(id))
		}
	}
	return ids
}
