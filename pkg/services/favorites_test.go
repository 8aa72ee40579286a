package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/models"
)

func newFavoriteFixture() (FavoriteService, *mockFavoriteRepo) {
	favoriteRepo := newMockFavoriteRepo()
	restaurantRepo := newMockRestaurantRepo()
	itemRepo := newMockMenuItemRepo()
	restaurantRepo.store["chipotle-main-st"] = &models.Restaurant{ID: "chipotle-main-st", Name: "Chipotle"}
	itemRepo.store[42] = &models.MenuItem{ID: 42, Title: "Burrito Bowl", RestaurantChain: "Chipotle"}

	svc := NewFavoriteService(favoriteRepo, restaurantRepo, itemRepo, zap.NewNop())
	return svc, favoriteRepo
}

func TestToggleRestaurantFavorite(t *testing.T) {
	svc, repo := newFavoriteFixture()
	ctx := context.Background()

	favorited, err := svc.ToggleRestaurantFavorite(ctx, 1, "chipotle-main-st")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !favorited {
		t.Error("first toggle should favorite")
	}
	if !repo.restaurantFavorites[restaurantFavoriteKey(1, "chipotle-main-st")] {
		t.Error("favorite not stored")
	}

	favorited, err = svc.ToggleRestaurantFavorite(ctx, 1, "chipotle-main-st")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if favorited {
		t.Error("second toggle should unfavorite")
	}
	if repo.restaurantFavorites[restaurantFavoriteKey(1, "chipotle-main-st")] {
		t.Error("favorite still stored after unfavorite")
	}
}

func TestToggleItemFavorite(t *testing.T) {
	svc, repo := newFavoriteFixture()
	ctx := context.Background()

	favorited, err := svc.ToggleItemFavorite(ctx, 1, 42)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !favorited {
		t.Error("first toggle should favorite")
	}

	favorited, err = svc.ToggleItemFavorite(ctx, 1, 42)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if favorited {
		t.Error("second toggle should unfavorite")
	}
	if repo.itemFavorites[itemFavoriteKey(1, 42)] {
		t.Error("favorite still stored after unfavorite")
	}
}

func TestToggleFavoriteUnknownTarget(t *testing.T) {
	svc, _ := newFavoriteFixture()
	ctx := context.Background()

	if _, err := svc.ToggleRestaurantFavorite(ctx, 1, "no-such-place"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("restaurant err = %v, want ErrNotFound", err)
	}
	if _, err := svc.ToggleItemFavorite(ctx, 1, 999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("item err = %v, want ErrNotFound", err)
	}
}

func TestListFavorites(t *testing.T) {
	svc, repo := newFavoriteFixture()
	repo.restaurantList = []*models.Restaurant{{ID: "chipotle-main-st", Name: "Chipotle"}}
	repo.itemList = []*models.MenuItem{{ID: 42, Title: "Burrito Bowl"}}

	restaurants, err := svc.ListFavoriteRestaurants(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListFavoriteRestaurants: %v", err)
	}
	if len(restaurants) != 1 || restaurants[0].ID != "chipotle-main-st" {
		t.Errorf("restaurants = %+v", restaurants)
	}

	items, err := svc.ListFavoriteItems(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListFavoriteItems: %v", err)
	}
	if len(items) != 1 || items[0].ID != 42 {
		t.Errorf("items = %+v", items)
	}
}
