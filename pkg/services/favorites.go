package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/repositories"
)

// FavoriteService defines favorite toggle and listing operations.
type FavoriteService interface {
	// ToggleRestaurantFavorite favorites the restaurant if it isn't already
	// a favorite, otherwise unfavorites it. Returns the resulting state.
	ToggleRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) (bool, error)
	ToggleItemFavorite(ctx context.Context, userID, itemID int64) (bool, error)
	ListFavoriteRestaurants(ctx context.Context, userID int64) ([]*models.Restaurant, error)
	ListFavoriteItems(ctx context.Context, userID int64) ([]*models.MenuItem, error)
}

// favoriteService implements FavoriteService.
type favoriteService struct {
	favoriteRepo   repositories.FavoriteRepository
	restaurantRepo repositories.RestaurantRepository
	itemRepo       repositories.MenuItemRepository
	logger         *zap.Logger
}

// NewFavoriteService creates a new favorite service with dependencies.
func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	restaurantRepo repositories.RestaurantRepository,
	itemRepo repositories.MenuItemRepository,
	logger *zap.Logger,
) FavoriteService {
	return &favoriteService{
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
		itemRepo:       itemRepo,
		logger:         logger.Named("favorites"),
	}
}

// ToggleRestaurantFavorite flips the favorite state for a persisted restaurant.
// Returns apperrors.ErrNotFound if the restaurant has never been synced.
func (s *favoriteService) ToggleRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) (bool, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.RestaurantFavoriteExists(ctx, userID, restaurantID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.DeleteRestaurantFavorite(ctx, userID, restaurantID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.favoriteRepo.InsertRestaurantFavorite(ctx, userID, restaurantID); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleItemFavorite flips the favorite state for a persisted menu item.
func (s *favoriteService) ToggleItemFavorite(ctx context.Context, userID, itemID int64) (bool, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.ItemFavoriteExists(ctx, userID, itemID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.DeleteItemFavorite(ctx, userID, itemID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.favoriteRepo.InsertItemFavorite(ctx, userID, itemID); err != nil {
		return false, err
	}
	return true, nil
}

// ListFavoriteRestaurants retrieves the user's favorite restaurants.
func (s *favoriteService) ListFavoriteRestaurants(ctx context.Context, userID int64) ([]*models.Restaurant, error) {
	return s.favoriteRepo.ListFavoriteRestaurants(ctx, userID)
}

// ListFavoriteItems retrieves the user's favorite menu items.
func (s *favoriteService) ListFavoriteItems(ctx context.Context, userID int64) ([]*models.MenuItem, error) {
	return s.favoriteRepo.ListFavoriteItems(ctx, userID)
}

// Ensure favoriteService implements FavoriteService at compile time.
var _ FavoriteService = (*favoriteService)(nil)
