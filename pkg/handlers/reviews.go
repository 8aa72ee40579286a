package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/services"
)

// ReviewRequest is the body for creating or editing a review of either kind.
type ReviewRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReviewHandler handles restaurant and menu item review requests.
type ReviewHandler struct {
	reviewService services.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService services.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers the review handler's routes on the given mux.
func (h *ReviewHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("POST /api/restaurants/{id}/reviews", authMiddleware.RequireUser(h.CreateRestaurantReview))
	mux.HandleFunc("PUT /api/restaurant-reviews/{id}", authMiddleware.RequireUser(h.UpdateRestaurantReview))
	mux.HandleFunc("DELETE /api/restaurant-reviews/{id}", authMiddleware.RequireUser(h.DeleteRestaurantReview))

	mux.HandleFunc("POST /api/menu-items/{id}/reviews", authMiddleware.RequireUser(h.CreateItemReview))
	mux.HandleFunc("PUT /api/item-reviews/{id}", authMiddleware.RequireUser(h.UpdateItemReview))
	mux.HandleFunc("DELETE /api/item-reviews/{id}", authMiddleware.RequireUser(h.DeleteItemReview))
}

// decodeReview parses and minimally validates a review body.
func (h *ReviewHandler) decodeReview(w http.ResponseWriter, r *http.Request) (ReviewRequest, bool) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return req, false
	}
	return req, true
}

// parseReviewID parses the {id} path segment as a review id.
func (h *ReviewHandler) parseReviewID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "review id must be an integer"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}

// CreateRestaurantReview handles POST /api/restaurants/{id}/reviews
func (h *ReviewHandler) CreateRestaurantReview(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())
	restaurantID := r.PathValue("id")

	req, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.CreateRestaurantReview(r.Context(), userID, restaurantID, req.Title, req.Content)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, review); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateRestaurantReview handles PUT /api/restaurant-reviews/{id}
func (h *ReviewHandler) UpdateRestaurantReview(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	reviewID, ok := h.parseReviewID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.UpdateRestaurantReview(r.Context(), userID, reviewID, req.Title, req.Content)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, review); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// DeleteRestaurantReview handles DELETE /api/restaurant-reviews/{id}
func (h *ReviewHandler) DeleteRestaurantReview(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	reviewID, ok := h.parseReviewID(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteRestaurantReview(r.Context(), userID, reviewID); err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateItemReview handles POST /api/menu-items/{id}/reviews
func (h *ReviewHandler) CreateItemReview(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "menu item id must be an integer"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	req, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.CreateItemReview(r.Context(), userID, itemID, req.Title, req.Content)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, review); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateItemReview handles PUT /api/item-reviews/{id}
func (h *ReviewHandler) UpdateItemReview(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	reviewID, ok := h.parseReviewID(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	review, err := h.reviewService.UpdateItemReview(r.Context(), userID, reviewID, req.Title, req.Content)
	if err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, review); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// DeleteItemReview handles DELETE /api/item-reviews/{id}
func (h *ReviewHandler) DeleteItemReview(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserIDFromContext(r.Context())

	reviewID, ok := h.parseReviewID(w, r)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteItemReview(r.Context(), userID, reviewID); err != nil {
		ServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
