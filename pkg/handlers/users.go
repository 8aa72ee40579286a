package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/services"
)

// zipCodePattern matches 5-digit US zip codes.
var zipCodePattern = regexp.MustCompile(`^\d{5}$`)

// UpdateProfileRequest for PUT /api/users/me
type UpdateProfileRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url,omitempty"`
	CurrentPassword string `json:"current_password"`
}

// UpdatePasswordRequest for PUT /api/users/me/password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateLocationRequest for PUT /api/users/me/location
type UpdateLocationRequest struct {
	ZipCode string `json:"zip_code"`
}

// UserHandler handles the logged-in user's profile endpoints.
type UserHandler struct {
	userService services.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterRoutes registers the user handler's routes on the given mux.
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/users/me", authMiddleware.RequireUser(h.Me))
	mux.HandleFunc("PUT /api/users/me", authMiddleware.RequireUser(h.UpdateProfile))
	mux.HandleFunc("PUT /api/users/me/password", authMiddleware.RequireUser(h.UpdatePassword))
	mux.HandleFunc("PUT /api/users/me/location", authMiddleware.RequireUser(h.UpdateLocation))
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateProfile handles PUT /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	var req UpdateProfileRequest
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

	user, err := h.userService.UpdateProfile(r.Context(), userID, req.FirstName, req.LastName, req.Email, req.ImageURL, req.CurrentPassword)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdatePassword handles PUT /api/users/me/password
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "password_updated"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateLocation handles PUT /api/users/me/location. The zip code is
// geocoded before it is stored; an unknown zip is a 404.
func (h *UserHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	var req UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if !zipCodePattern.MatchString(req.ZipCode) {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_zip_code", "zip_code must be 5 digits"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	user, err := h.userService.SetLocation(r.Context(), userID, req.ZipCode)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
