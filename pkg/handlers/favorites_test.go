package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/models"
)

func TestToggleRestaurantFavoriteHandler(t *testing.T) {
	favoriteService := &mockFavoriteService{
		toggleRestaurantFn: func(_ context.Context, userID int64, restaurantID string) (bool, error) {
			return true, nil
		},
	}
	h := NewFavoriteHandler(favoriteService, zap.NewNop())

	req := loggedInRequest(http.MethodPut, "/api/restaurants/chipotle-main-st/favorite", "", 5)
	req.SetPathValue("id", "chipotle-main-st")
	rec := httptest.NewRecorder()
	h.ToggleRestaurant(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp ToggleFavoriteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Favorited {
		t.Error("favorited = false, want true")
	}
}

func TestToggleUnknownRestaurant(t *testing.T) {
	favoriteService := &mockFavoriteService{
		toggleRestaurantFn: func(_ context.Context, _ int64, _ string) (bool, error) {
			return false, apperrors.ErrNotFound
		},
	}
	h := NewFavoriteHandler(favoriteService, zap.NewNop())

	req := loggedInRequest(http.MethodPut, "/api/restaurants/nope/favorite", "", 5)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.ToggleRestaurant(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestToggleItemFavoriteBadID(t *testing.T) {
	h := NewFavoriteHandler(&mockFavoriteService{}, zap.NewNop())

	req := loggedInRequest(http.MethodPut, "/api/menu-items/abc/favorite", "", 5)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	h.ToggleItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListFavoritesHandler(t *testing.T) {
	favoriteService := &mockFavoriteService{
		listRestaurantsFn: func(_ context.Context, _ int64) ([]*models.Restaurant, error) {
			return []*models.Restaurant{{ID: "chipotle-main-st"}}, nil
		},
		listItemsFn: func(_ context.Context, _ int64) ([]*models.MenuItem, error) {
			return []*models.MenuItem{{ID: 42}}, nil
		},
	}
	h := NewFavoriteHandler(favoriteService, zap.NewNop())

	rec := httptest.NewRecorder()
	h.List(rec, loggedInRequest(http.MethodGet, "/api/favorites", "", 5))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp FavoriteListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Restaurants) != 1 || len(resp.Items) != 1 {
		t.Errorf("response = %+v", resp)
	}
}
