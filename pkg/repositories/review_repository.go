package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/database"
	"github.com/vouch4food/vouch4food/pkg/models"
)

// ReviewRepository defines the interface for review data access.
// Restaurant-location reviews and menu-item reviews live in separate tables
// with the same shape; the repository exposes both sides.
type ReviewRepository interface {
	InsertRestaurantReview(ctx context.Context, review *models.RestaurantReview) error
	GetRestaurantReview(ctx context.Context, id int64) (*models.RestaurantReview, error)
	UpdateRestaurantReview(ctx context.Context, id int64, title, content string) error
	DeleteRestaurantReview(ctx context.Context, id int64) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.RestaurantReview, error)

	InsertItemReview(ctx context.Context, review *models.ItemReview) error
	GetItemReview(ctx context.Context, id int64) (*models.ItemReview, error)
	UpdateItemReview(ctx context.Context, id int64, title, content string) error
	DeleteItemReview(ctx context.Context, id int64) error
	ListByItem(ctx context.Context, itemID int64) ([]*models.ItemReview, error)
}

// reviewRepository implements ReviewRepository using PostgreSQL.
type reviewRepository struct {
	db *database.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *database.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// InsertRestaurantReview adds a review for a restaurant location and sets the
// assigned id and creation time on the given model.
func (r *reviewRepository) InsertRestaurantReview(ctx context.Context, review *models.RestaurantReview) error {
	review.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO restaurant_reviews (author_id, restaurant_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		review.AuthorID,
		review.RestaurantID,
		review.Title,
		review.Content,
		review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant review: %w", err)
	}

	return nil
}

// GetRestaurantReview retrieves a restaurant review by id.
func (r *reviewRepository) GetRestaurantReview(ctx context.Context, id int64) (*models.RestaurantReview, error) {
	query := `
		SELECT id, author_id, restaurant_id, title, content, created_at
		FROM restaurant_reviews
		WHERE id = $1`

	var review models.RestaurantReview
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.AuthorID,
		&review.RestaurantID,
		&review.Title,
		&review.Content,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant review: %w", err)
	}

	return &review, nil
}

// UpdateRestaurantReview replaces a restaurant review's title and content.
func (r *reviewRepository) UpdateRestaurantReview(ctx context.Context, id int64, title, content string) error {
	query := `UPDATE restaurant_reviews SET title = $1, content = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, title, content, id)
	if err != nil {
		return fmt.Errorf("failed to update restaurant review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteRestaurantReview removes a restaurant review.
func (r *reviewRepository) DeleteRestaurantReview(ctx context.Context, id int64) error {
	query := `DELETE FROM restaurant_reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ListByRestaurant retrieves all reviews for a restaurant location, newest first.
func (r *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*models.RestaurantReview, error) {
	query := `
		SELECT id, author_id, restaurant_id, title, content, created_at
		FROM restaurant_reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.RestaurantReview
	for rows.Next() {
		var review models.RestaurantReview
		err := rows.Scan(
			&review.ID,
			&review.AuthorID,
			&review.RestaurantID,
			&review.Title,
			&review.Content,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant reviews: %w", err)
	}

	return reviews, nil
}

// InsertItemReview adds a review for a menu item and sets the assigned id and
// creation time on the given model.
func (r *reviewRepository) InsertItemReview(ctx context.Context, review *models.ItemReview) error {
	review.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO item_reviews (author_id, item_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		review.AuthorID,
		review.ItemID,
		review.Title,
		review.Content,
		review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item review: %w", err)
	}

	return nil
}

// GetItemReview retrieves a menu item review by id.
func (r *reviewRepository) GetItemReview(ctx context.Context, id int64) (*models.ItemReview, error) {
	query := `
		SELECT id, author_id, item_id, title, content, created_at
		FROM item_reviews
		WHERE id = $1`

	var review models.ItemReview
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.AuthorID,
		&review.ItemID,
		&review.Title,
		&review.Content,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item review: %w", err)
	}

	return &review, nil
}

// UpdateItemReview replaces a menu item review's title and content.
func (r *reviewRepository) UpdateItemReview(ctx context.Context, id int64, title, content string) error {
	query := `UPDATE item_reviews SET title = $1, content = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, title, content, id)
	if err != nil {
		return fmt.Errorf("failed to update item review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeleteItemReview removes a menu item review.
func (r *reviewRepository) DeleteItemReview(ctx context.Context, id int64) error {
	query := `DELETE FROM item_reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ListByItem retrieves all reviews for a menu item, newest first.
func (r *reviewRepository) ListByItem(ctx context.Context, itemID int64) ([]*models.ItemReview, error) {
	query := `
		SELECT id, author_id, item_id, title, content, created_at
		FROM item_reviews
		WHERE item_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list item reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.ItemReview
	for rows.Next() {
		var review models.ItemReview
		err := rows.Scan(
			&review.ID,
			&review.AuthorID,
			&review.ItemID,
			&review.Title,
			&review.Content,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item reviews: %w", err)
	}

	return reviews, nil
}

// Ensure reviewRepository implements ReviewRepository at compile time.
var _ ReviewRepository = (*reviewRepository)(nil)
