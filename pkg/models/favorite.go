package models

import "time"

// RestaurantFavorite marks a restaurant location as one of a user's favorites.
type RestaurantFavorite struct {
	AuthorID     int64     `json:"author_id"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ItemFavorite marks a menu item as one of a user's favorites.
type ItemFavorite struct {
	AuthorID  int64     `json:"author_id"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}
