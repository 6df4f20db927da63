package http

import (
	"net/http"

	"library-service-backend/internal/security"
	"library-service-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP routes. Payment-provider callbacks and the auth
// endpoints are public; everything else requires a Bearer access token.
// Borrowings and payments expose no update or delete routes, so mux answers
// those methods with 405.
func NewRouter(
	authSvc service.AuthService,
	bookSvc service.BookService,
	borrowingSvc service.BorrowingService,
	paymentSvc service.PaymentService,
	tokens security.TokenManager,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	bookHandler := NewBookHandler(bookSvc)
	borrowingHandler := NewBorrowingHandler(borrowingSvc, bookSvc, paymentSvc)
	paymentHandler := NewPaymentHandler(paymentSvc)

	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/users/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/borrowings/success", borrowingHandler.OrderSuccess).Methods(http.MethodGet)
	api.HandleFunc("/borrowings/canceled/", borrowingHandler.OrderCanceled).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(tokens))

	protected.HandleFunc("/books", bookHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/books", bookHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/books/{id:[0-9]+}", bookHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/books/{id:[0-9]+}", bookHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/books/{id:[0-9]+}", bookHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/borrowings", borrowingHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/borrowings", borrowingHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/borrowings/{id:[0-9]+}", borrowingHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/borrowings/{id:[0-9]+}/return", borrowingHandler.Return).Methods(http.MethodPost)

	protected.HandleFunc("/payments", paymentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.Get).Methods(http.MethodGet)

	return r
}
