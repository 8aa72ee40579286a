package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/audit"
	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/middleware"
	"github.com/vouch4food/vouch4food/pkg/services"
)

// SignupRequest for POST /api/signup
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	ImageURL  string `json:"image_url,omitempty"`
	Password  string `json:"password"`
}

// LoginRequest for POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	userService services.UserService
	auditor     *audit.SecurityAuditor
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService services.UserService, auditor *audit.SecurityAuditor, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		auditor:     auditor,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth handler's routes on the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/signup", h.Signup)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)
}

// Signup handles POST /api/signup. A successful signup logs the user in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "first_name, last_name and email are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	user, err := h.userService.SignUp(r.Context(), req.FirstName, req.LastName, req.Email, req.ImageURL, req.Password)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := auth.LogIn(r, w, user.ID); err != nil {
		h.logger.Error("Failed to start session after signup", zap.Error(err))
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Login handles POST /api/login. Failed attempts are audited with the
// client address before the generic rejection goes out.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.auditor.LogLoginFailure(req.Email, middleware.ClientIP(r))
		}
		ServiceError(w, h.logger, err)
		return
	}

	if err := auth.LogIn(r, w, user.ID); err != nil {
		h.logger.Error("Failed to start session", zap.Error(err))
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Logout handles POST /api/logout. Always succeeds, logged in or not.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.LogOut(r, w); err != nil {
		h.logger.Error("Failed to clear session", zap.Error(err))
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
