package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/vouch4food/vouch4food/pkg/database"
	"github.com/vouch4food/vouch4food/pkg/models"
)

// FavoriteRepository defines the interface for favorite data access.
type FavoriteRepository interface {
	RestaurantFavoriteExists(ctx context.Context, userID int64, restaurantID string) (bool, error)
	InsertRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) error
	DeleteRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) error
	ListFavoriteRestaurants(ctx context.Context, userID int64) ([]*models.Restaurant, error)

	ItemFavoriteExists(ctx context.Context, userID, itemID int64) (bool, error)
	InsertItemFavorite(ctx context.Context, userID, itemID int64) error
	DeleteItemFavorite(ctx context.Context, userID, itemID int64) error
	ListFavoriteItems(ctx context.Context, userID int64) ([]*models.MenuItem, error)
}

// favoriteRepository implements FavoriteRepository using PostgreSQL.
type favoriteRepository struct {
	db *database.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *database.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// RestaurantFavoriteExists reports whether the user has favorited the restaurant.
func (r *favoriteRepository) RestaurantFavoriteExists(ctx context.Context, userID int64, restaurantID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM restaurant_favorites WHERE author_id = $1 AND restaurant_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, restaurantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check restaurant favorite: %w", err)
	}

	return exists, nil
}

// InsertRestaurantFavorite marks a restaurant as a user's favorite.
func (r *favoriteRepository) InsertRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) error {
	query := `
		INSERT INTO restaurant_favorites (author_id, restaurant_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (author_id, restaurant_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, userID, restaurantID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert restaurant favorite: %w", err)
	}

	return nil
}

// DeleteRestaurantFavorite removes a restaurant from a user's favorites.
func (r *favoriteRepository) DeleteRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) error {
	query := `DELETE FROM restaurant_favorites WHERE author_id = $1 AND restaurant_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, restaurantID); err != nil {
		return fmt.Errorf("failed to delete restaurant favorite: %w", err)
	}

	return nil
}

// ListFavoriteRestaurants retrieves the restaurants a user has favorited,
// most recently favorited first.
func (r *favoriteRepository) ListFavoriteRestaurants(ctx context.Context, userID int64) ([]*models.Restaurant, error) {
	query := `
		SELECT r.id, r.name, r.address, r.cuisines, r.description, r.phone, r.photo_url,
			r.latitude, r.longitude,
			r.sunday_hours, r.monday_hours, r.tuesday_hours, r.wednesday_hours,
			r.thursday_hours, r.friday_hours, r.saturday_hours
		FROM restaurants r
		JOIN restaurant_favorites f ON f.restaurant_id = r.id
		WHERE f.author_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite restaurants: %w", err)
	}

	return restaurants, nil
}

// ItemFavoriteExists reports whether the user has favorited the menu item.
func (r *favoriteRepository) ItemFavoriteExists(ctx context.Context, userID, itemID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM item_favorites WHERE author_id = $1 AND item_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check item favorite: %w", err)
	}

	return exists, nil
}

// InsertItemFavorite marks a menu item as a user's favorite.
func (r *favoriteRepository) InsertItemFavorite(ctx context.Context, userID, itemID int64) error {
	query := `
		INSERT INTO item_favorites (author_id, item_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (author_id, item_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, userID, itemID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert item favorite: %w", err)
	}

	return nil
}

// DeleteItemFavorite removes a menu item from a user's favorites.
func (r *favoriteRepository) DeleteItemFavorite(ctx context.Context, userID, itemID int64) error {
	query := `DELETE FROM item_favorites WHERE author_id = $1 AND item_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("failed to delete item favorite: %w", err)
	}

	return nil
}

// ListFavoriteItems retrieves the menu items a user has favorited,
// most recently favorited first.
func (r *favoriteRepository) ListFavoriteItems(ctx context.Context, userID int64) ([]*models.MenuItem, error) {
	query := `
		SELECT i.id, i.title, i.restaurant_chain, i.image_url
		FROM menu_items i
		JOIN item_favorites f ON f.item_id = i.id
		WHERE f.author_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite items: %w", err)
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(&item.ID, &item.Title, &item.RestaurantChain, &item.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite item: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite items: %w", err)
	}

	return items, nil
}

// Ensure favoriteRepository implements FavoriteRepository at compile time.
var _ FavoriteRepository = (*favoriteRepository)(nil)
