package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"library-service-backend/internal/domain"
	"library-service-backend/internal/service"
	"library-service-backend/internal/utils"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

type bookRequest struct {
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Cover     string  `json:"cover"`
	Inventory int32   `json:"inventory"`
	DailyFee  float64 `json:"daily_fee"`
}

type bookResponse struct {
	ID        int32   `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Cover     string  `json:"cover"`
	Inventory int32   `json:"inventory"`
	DailyFee  float64 `json:"daily_fee"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Cover:     string(b.Cover),
		Inventory: b.Inventory,
		DailyFee:  utils.CentsToMajor(b.DailyFeeCents),
	}
}

func requireStaff(w http.ResponseWriter, r *http.Request) bool {
	if _, isStaff := UserFromContext(r.Context()); !isStaff {
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "staff access required"})
		return false
	}
	return true
}

func pathID(r *http.Request) int32 {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return int32(id)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireStaff(w, r) {
		return
	}
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	book := &domain.Book{
		Title:         req.Title,
		Author:        req.Author,
		Cover:         domain.BookCover(req.Cover),
		Inventory:     req.Inventory,
		DailyFeeCents: utils.MajorToCents(req.DailyFee),
	}
	if err := h.bookSvc.AddBook(r.Context(), book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookSvc.GetBook(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	books, count, err := h.bookSvc.ListBooks(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]bookResponse, len(books))
	for i := range books {
		results[i] = toBookResponse(&books[i])
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"count": count, "results": results})
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireStaff(w, r) {
		return
	}
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	book := &domain.Book{
		ID:            pathID(r),
		Title:         req.Title,
		Author:        req.Author,
		Cover:         domain.BookCover(req.Cover),
		Inventory:     req.Inventory,
		DailyFeeCents: utils.MajorToCents(req.DailyFee),
	}
	if err := h.bookSvc.UpdateBook(r.Context(), book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireStaff(w, r) {
		return
	}
	if err := h.bookSvc.DeleteBook(r.Context(), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
