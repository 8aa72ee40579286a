package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/services"
)

// ToggleFavoriteResponse reports the favorite state after a toggle.
type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

// FavoriteListResponse for GET /api/favorites
type FavoriteListResponse struct {
	Restaurants []*models.Restaurant `json:"restaurants"`
	Items       []*models.MenuItem   `json:"items"`
}

// FavoriteHandler handles favorite toggle and listing requests.
type FavoriteHandler struct {
	favoriteService services.FavoriteService
	logger          *zap.Logger
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService services.FavoriteService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
	}
}

// RegisterRoutes registers the favorite handler's routes on the given mux.
func (h *FavoriteHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("PUT /api/restaurants/{id}/favorite", authMiddleware.RequireUser(h.ToggleRestaurant))
	mux.HandleFunc("PUT /api/menu-items/{id}/favorite", authMiddleware.RequireUser(h.ToggleItem))
	mux.HandleFunc("GET /api/favorites", authMiddleware.RequireUser(h.List))
}

// ToggleRestaurant handles PUT /api/restaurants/{id}/favorite
func (h *FavoriteHandler) ToggleRestaurant(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	favorited, err := h.favoriteService.ToggleRestaurantFavorite(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ToggleFavoriteResponse{Favorited: favorited}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ToggleItem handles PUT /api/menu-items/{id}/favorite
func (h *FavoriteHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "menu item id must be an integer"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	favorited, err := h.favoriteService.ToggleItemFavorite(r.Context(), userID, itemID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, ToggleFavoriteResponse{Favorited: favorited}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/favorites, returning both favorite restaurants and
// favorite menu items in one response.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	restaurants, err := h.favoriteService.ListFavoriteRestaurants(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	items, err := h.favoriteService.ListFavoriteItems(r.Context(), userID)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	response := FavoriteListResponse{
		Restaurants: restaurants,
		Items:       items,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
