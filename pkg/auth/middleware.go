package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Middleware guards endpoints that require a logged-in user.
type Middleware struct {
	logger *zap.Logger
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(logger *zap.Logger) *Middleware {
	return &Middleware{logger: logger}
}

// RequireUser rejects requests without a valid login session and puts the
// user id in the request context for downstream handlers.
func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := SessionUserID(r)
		if !ok {
			m.unauthorized(w, "Login required")
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}

// unauthorized returns a 401 response with JSON error body.
func (m *Middleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthorized",
		"message": message,
	})
}
