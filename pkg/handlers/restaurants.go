package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/services"
)

// RestaurantSearchResponse for GET /api/restaurants/search
type RestaurantSearchResponse struct {
	Restaurants []*models.Restaurant `json:"restaurants"`
	Total       int                  `json:"total"`
}

// RestaurantDetailResponse for GET /api/restaurants/{id}
type RestaurantDetailResponse struct {
	Restaurant *models.Restaurant         `json:"restaurant"`
	Reviews    []*models.RestaurantReview `json:"reviews"`
}

// RestaurantHandler handles restaurant search and detail requests.
type RestaurantHandler struct {
	restaurantService services.RestaurantService
	reviewService     services.ReviewService
	userService       services.UserService
	logger            *zap.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(
	restaurantService services.RestaurantService,
	reviewService services.ReviewService,
	userService services.UserService,
	logger *zap.Logger,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		reviewService:     reviewService,
		userService:       userService,
		logger:            logger,
	}
}

// RegisterRoutes registers the restaurant handler's routes on the given mux.
func (h *RestaurantHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/restaurants/search", authMiddleware.RequireUser(h.Search))
	mux.HandleFunc("GET /api/restaurants/{id}", authMiddleware.RequireUser(h.Get))
}

// Search handles GET /api/restaurants/search?query=...
// The search runs near the caller's stored location; an empty query returns
// everything near that point. Results are synced into the store as a side
// effect, so details and reviews work on whatever search surfaced.
func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}
	if !user.HasLocation() {
		ServiceError(w, h.logger, apperrors.ErrLocationNotSet)
		return
	}

	query := r.URL.Query().Get("query")
	restaurants, err := h.restaurantService.Search(r.Context(), query, *user.Latitude, *user.Longitude)
	if err != nil {
		h.logger.Error("Restaurant search failed",
			zap.String("query", query),
			zap.Error(err))
		ServiceError(w, h.logger, err)
		return
	}

	response := RestaurantSearchResponse{
		Restaurants: restaurants,
		Total:       len(restaurants),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/restaurants/{id}, returning the stored location
// together with its reviews.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	restaurant, err := h.restaurantService.Get(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	reviews, err := h.reviewService.ListRestaurantReviews(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	response := RestaurantDetailResponse{
		Restaurant: restaurant,
		Reviews:    reviews,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
