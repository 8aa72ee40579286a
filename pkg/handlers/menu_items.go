package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/services"
)

// MenuItemSearchResponse for GET /api/menu-items/search
type MenuItemSearchResponse struct {
	Items []*models.MenuItem `json:"items"`
	Total int                `json:"total"`
}

// MenuItemDetailResponse for GET /api/menu-items/{id}
type MenuItemDetailResponse struct {
	Item    *models.MenuItem     `json:"item"`
	Reviews []*models.ItemReview `json:"reviews"`
}

// MenuItemHandler handles menu item search and detail requests.
type MenuItemHandler struct {
	menuItemService services.MenuItemService
	reviewService   services.ReviewService
	logger          *zap.Logger
}

// NewMenuItemHandler creates a new menu item handler.
func NewMenuItemHandler(
	menuItemService services.MenuItemService,
	reviewService services.ReviewService,
	logger *zap.Logger,
) *MenuItemHandler {
	return &MenuItemHandler{
		menuItemService: menuItemService,
		reviewService:   reviewService,
		logger:          logger,
	}
}

// RegisterRoutes registers the menu item handler's routes on the given mux.
func (h *MenuItemHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/menu-items/search", authMiddleware.RequireUser(h.Search))
	mux.HandleFunc("GET /api/menu-items/{id}", authMiddleware.RequireUser(h.Get))
}

// Search handles GET /api/menu-items/search?chain=...
// Collects and syncs the chain's full menu. A chain the upstream API does not
// recognize comes back as an empty result, not an error.
func (h *MenuItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	chain := r.URL.Query().Get("chain")
	if chain == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "chain query parameter is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	items, err := h.menuItemService.SearchChainItems(r.Context(), chain)
	if err != nil {
		h.logger.Error("Menu item search failed",
			zap.String("chain", chain),
			zap.Error(err))
		ServiceError(w, h.logger, err)
		return
	}

	response := MenuItemSearchResponse{
		Items: items,
		Total: len(items),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/menu-items/{id}, returning the stored item together
// with its reviews.
func (h *MenuItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "menu item id must be an integer"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	item, err := h.menuItemService.Get(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	reviews, err := h.reviewService.ListItemReviews(r.Context(), id)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	response := MenuItemDetailResponse{
		Item:    item,
		Reviews: reviews,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
