package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"library-service-backend/internal/logger"
	"library-service-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyUserID    contextKey = "user_id"
	contextKeyIsStaff   contextKey = "is_staff"
	contextKeyRequestID contextKey = "request_id"
)

// UserFromContext returns the authenticated caller's id and staff flag.
func UserFromContext(ctx context.Context) (int32, bool) {
	userID, _ := ctx.Value(contextKeyUserID).(int32)
	isStaff, _ := ctx.Value(contextKeyIsStaff).(bool)
	return userID, isStaff
}

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs method, path and duration of each request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		requestID, _ := r.Context().Value(contextKeyRequestID).(string)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
			"request_id", requestID,
		)
	})
}

// AuthMiddleware authenticates requests with a Bearer access token and puts
// the caller's identity on the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "authentication credentials were not provided"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": err.Error()})
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
			ctx = context.WithValue(ctx, contextKeyIsStaff, claims.IsStaff)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
