package services

import (
	"context"
	"fmt"

	libinjection "github.com/corazawaf/libinjection-go"
	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/audit"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/repositories"
)

// ReviewService defines review operations for restaurant locations and menu
// items. Only the author of a review may edit or delete it.
type ReviewService interface {
	CreateRestaurantReview(ctx context.Context, authorID int64, restaurantID, title, content string) (*models.RestaurantReview, error)
	UpdateRestaurantReview(ctx context.Context, authorID, reviewID int64, title, content string) (*models.RestaurantReview, error)
	DeleteRestaurantReview(ctx context.Context, authorID, reviewID int64) error
	ListRestaurantReviews(ctx context.Context, restaurantID string) ([]*models.RestaurantReview, error)

	CreateItemReview(ctx context.Context, authorID, itemID int64, title, content string) (*models.ItemReview, error)
	UpdateItemReview(ctx context.Context, authorID, reviewID int64, title, content string) (*models.ItemReview, error)
	DeleteItemReview(ctx context.Context, authorID, reviewID int64) error
	ListItemReviews(ctx context.Context, itemID int64) ([]*models.ItemReview, error)
}

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo     repositories.ReviewRepository
	restaurantRepo repositories.RestaurantRepository
	itemRepo       repositories.MenuItemRepository
	auditor        *audit.SecurityAuditor
	logger         *zap.Logger
}

// NewReviewService creates a new review service with dependencies.
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	restaurantRepo repositories.RestaurantRepository,
	itemRepo repositories.MenuItemRepository,
	auditor *audit.SecurityAuditor,
	logger *zap.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		itemRepo:       itemRepo,
		auditor:        auditor,
		logger:         logger.Named("reviews"),
	}
}

// CreateRestaurantReview adds a review for an existing restaurant location.
func (s *reviewService) CreateRestaurantReview(ctx context.Context, authorID int64, restaurantID, title, content string) (*models.RestaurantReview, error) {
	if err := s.validateContent(authorID, "restaurant_review", title, content); err != nil {
		return nil, err
	}

	// The target must already be persisted; reviews never create restaurants.
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	review := &models.RestaurantReview{
		AuthorID:     authorID,
		RestaurantID: restaurantID,
		Title:        title,
		Content:      content,
	}
	if err := s.reviewRepo.InsertRestaurantReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// UpdateRestaurantReview edits a review the caller authored.
func (s *reviewService) UpdateRestaurantReview(ctx context.Context, authorID, reviewID int64, title, content string) (*models.RestaurantReview, error) {
	if err := s.validateContent(authorID, "restaurant_review", title, content); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetRestaurantReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.AuthorID != authorID {
		return nil, apperrors.ErrForbidden
	}

	if err := s.reviewRepo.UpdateRestaurantReview(ctx, reviewID, title, content); err != nil {
		return nil, err
	}

	review.Title = title
	review.Content = content
	return review, nil
}

// DeleteRestaurantReview removes a review the caller authored.
func (s *reviewService) DeleteRestaurantReview(ctx context.Context, authorID, reviewID int64) error {
	review, err := s.reviewRepo.GetRestaurantReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.AuthorID != authorID {
		return apperrors.ErrForbidden
	}

	return s.reviewRepo.DeleteRestaurantReview(ctx, reviewID)
}

// ListRestaurantReviews retrieves all reviews for a restaurant location.
func (s *reviewService) ListRestaurantReviews(ctx context.Context, restaurantID string) ([]*models.RestaurantReview, error) {
	return s.reviewRepo.ListByRestaurant(ctx, restaurantID)
}

// CreateItemReview adds a review for an existing menu item.
func (s *reviewService) CreateItemReview(ctx context.Context, authorID, itemID int64, title, content string) (*models.ItemReview, error) {
	if err := s.validateContent(authorID, "item_review", title, content); err != nil {
		return nil, err
	}

	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	review := &models.ItemReview{
		AuthorID: authorID,
		ItemID:   itemID,
		Title:    title,
		Content:  content,
	}
	if err := s.reviewRepo.InsertItemReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// UpdateItemReview edits a review the caller authored.
func (s *reviewService) UpdateItemReview(ctx context.Context, authorID, reviewID int64, title, content string) (*models.ItemReview, error) {
	if err := s.validateContent(authorID, "item_review", title, content); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetItemReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.AuthorID != authorID {
		return nil, apperrors.ErrForbidden
	}

	if err := s.reviewRepo.UpdateItemReview(ctx, reviewID, title, content); err != nil {
		return nil, err
	}

	review.Title = title
	review.Content = content
	return review, nil
}

// DeleteItemReview removes a review the caller authored.
func (s *reviewService) DeleteItemReview(ctx context.Context, authorID, reviewID int64) error {
	review, err := s.reviewRepo.GetItemReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.AuthorID != authorID {
		return apperrors.ErrForbidden
	}

	return s.reviewRepo.DeleteItemReview(ctx, reviewID)
}

// ListItemReviews retrieves all reviews for a menu item.
func (s *reviewService) ListItemReviews(ctx context.Context, itemID int64) ([]*models.ItemReview, error) {
	return s.reviewRepo.ListByItem(ctx, itemID)
}

// validateContent enforces the review shape rules and screens the text for
// XSS markup. Review text is rendered back to other users, so anything
// libinjection flags is rejected and audited.
func (s *reviewService) validateContent(authorID int64, target, title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidReview)
	}
	if len(title) > models.MaxReviewTitleLength {
		return fmt.Errorf("%w: title cannot exceed %d characters", apperrors.ErrInvalidReview, models.MaxReviewTitleLength)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", apperrors.ErrInvalidReview)
	}

	for field, value := range map[string]string{"title": title, "content": content} {
		if libinjection.IsXSS(value) {
			s.auditor.LogUnsafeContent(authorID, audit.UnsafeContentDetails{
				Field:  field,
				Target: target,
			})
			return apperrors.ErrUnsafeContent
		}
	}

	return nil
}

// Ensure reviewService implements ReviewService at compile time.
var _ ReviewService = (*reviewService)(nil)
