package models

import "time"

// MaxReviewTitleLength is the longest allowed review title.
const MaxReviewTitleLength = 100

// RestaurantReview is a user's review of a specific restaurant location.
// A user can write multiple reviews for the same location; only the author
// may edit or delete a review.
type RestaurantReview struct {
	ID           int64     `json:"id"`
	AuthorID     int64     `json:"author_id"`
	RestaurantID string    `json:"restaurant_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

// ItemReview is a user's review of a chain's menu item.
type ItemReview struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	ItemID    int64     `json:"item_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
