package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/models"
)

func TestCreateRestaurantReviewHandler(t *testing.T) {
	var gotAuthor int64
	var gotRestaurant string
	reviewService := &mockReviewService{
		createRestaurantFn: func(_ context.Context, authorID int64, restaurantID, title, content string) (*models.RestaurantReview, error) {
			gotAuthor, gotRestaurant = authorID, restaurantID
			return &models.RestaurantReview{ID: 1, AuthorID: authorID, RestaurantID: restaurantID, Title: title, Content: content}, nil
		},
	}
	h := NewReviewHandler(reviewService, zap.NewNop())

	req := loggedInRequest(http.MethodPost, "/api/restaurants/chipotle-main-st/reviews",
		`{"title":"Great","content":"Loved it."}`, 5)
	req.SetPathValue("id", "chipotle-main-st")
	rec := httptest.NewRecorder()
	h.CreateRestaurantReview(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if gotAuthor != 5 || gotRestaurant != "chipotle-main-st" {
		t.Errorf("service args = %d, %q", gotAuthor, gotRestaurant)
	}
}

func TestUpdateReviewForbidden(t *testing.T) {
	reviewService := &mockReviewService{
		updateRestaurantFn: func(_ context.Context, _, _ int64, _, _ string) (*models.RestaurantReview, error) {
			return nil, apperrors.ErrForbidden
		},
	}
	h := NewReviewHandler(reviewService, zap.NewNop())

	req := loggedInRequest(http.MethodPut, "/api/restaurant-reviews/9", `{"title":"Hijack","content":"..."}`, 5)
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	h.UpdateRestaurantReview(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCreateItemReviewInvalid(t *testing.T) {
	reviewService := &mockReviewService{
		createItemFn: func(_ context.Context, _, _ int64, _, _ string) (*models.ItemReview, error) {
			return nil, apperrors.ErrInvalidReview
		},
	}
	h := NewReviewHandler(reviewService, zap.NewNop())

	req := loggedInRequest(http.MethodPost, "/api/menu-items/42/reviews", `{"title":"","content":""}`, 5)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	h.CreateItemReview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateItemReviewUnsafeContent(t *testing.T) {
	reviewService := &mockReviewService{
		createItemFn: func(_ context.Context, _, _ int64, _, _ string) (*models.ItemReview, error) {
			return nil, apperrors.ErrUnsafeContent
		},
	}
	h := NewReviewHandler(reviewService, zap.NewNop())

	req := loggedInRequest(http.MethodPost, "/api/menu-items/42/reviews",
		`{"title":"x","content":"<script>alert(1)</script>"}`, 5)
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()
	h.CreateItemReview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteItemReview(t *testing.T) {
	var deletedID int64
	reviewService := &mockReviewService{
		deleteItemFn: func(_ context.Context, _, reviewID int64) error {
			deletedID = reviewID
			return nil
		},
	}
	h := NewReviewHandler(reviewService, zap.NewNop())

	req := loggedInRequest(http.MethodDelete, "/api/item-reviews/14", "", 5)
	req.SetPathValue("id", "14")
	rec := httptest.NewRecorder()
	h.DeleteItemReview(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if deletedID != 14 {
		t.Errorf("deleted review id = %d", deletedID)
	}
}
