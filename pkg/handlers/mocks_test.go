package handlers

import (
	"context"
	"errors"

	"github.com/vouch4food/vouch4food/pkg/models"
)

// Function-field service mocks. Unset fields fail the call so tests only
// stub what they exercise.

var errNotStubbed = errors.New("not stubbed")

type mockUserService struct {
	signUpFn         func(ctx context.Context, firstName, lastName, email, imageURL, password string) (*models.User, error)
	authenticateFn   func(ctx context.Context, email, password string) (*models.User, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.User, error)
	updateProfileFn  func(ctx context.Context, id int64, firstName, lastName, email, imageURL, currentPassword string) (*models.User, error)
	updatePasswordFn func(ctx context.Context, id int64, currentPassword, newPassword string) error
	setLocationFn    func(ctx context.Context, id int64, zipCode string) (*models.User, error)
}

func (m *mockUserService) SignUp(ctx context.Context, firstName, lastName, email, imageURL, password string) (*models.User, error) {
	if m.signUpFn == nil {
		return nil, errNotStubbed
	}
	return m.signUpFn(ctx, firstName, lastName, email, imageURL, password)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if m.authenticateFn == nil {
		return nil, errNotStubbed
	}
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getByIDFn == nil {
		return nil, errNotStubbed
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id int64, firstName, lastName, email, imageURL, currentPassword string) (*models.User, error) {
	if m.updateProfileFn == nil {
		return nil, errNotStubbed
	}
	return m.updateProfileFn(ctx, id, firstName, lastName, email, imageURL, currentPassword)
}

func (m *mockUserService) UpdatePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	if m.updatePasswordFn == nil {
		return errNotStubbed
	}
	return m.updatePasswordFn(ctx, id, currentPassword, newPassword)
}

func (m *mockUserService) SetLocation(ctx context.Context, id int64, zipCode string) (*models.User, error) {
	if m.setLocationFn == nil {
		return nil, errNotStubbed
	}
	return m.setLocationFn(ctx, id, zipCode)
}

type mockRestaurantService struct {
	searchFn func(ctx context.Context, query string, lat, lng float64) ([]*models.Restaurant, error)
	getFn    func(ctx context.Context, id string) (*models.Restaurant, error)
}

func (m *mockRestaurantService) Search(ctx context.Context, query string, lat, lng float64) ([]*models.Restaurant, error) {
	if m.searchFn == nil {
		return nil, errNotStubbed
	}
	return m.searchFn(ctx, query, lat, lng)
}

func (m *mockRestaurantService) SyncSearchResults(_ context.Context, _ []models.RawRestaurant) ([]*models.Restaurant, error) {
	return nil, errNotStubbed
}

func (m *mockRestaurantService) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	if m.getFn == nil {
		return nil, errNotStubbed
	}
	return m.getFn(ctx, id)
}

type mockMenuItemService struct {
	searchChainFn func(ctx context.Context, chain string) ([]*models.MenuItem, error)
	getFn         func(ctx context.Context, id int64) (*models.MenuItem, error)
}

func (m *mockMenuItemService) SearchChainItems(ctx context.Context, chain string) ([]*models.MenuItem, error) {
	if m.searchChainFn == nil {
		return nil, errNotStubbed
	}
	return m.searchChainFn(ctx, chain)
}

func (m *mockMenuItemService) CollectChainItems(_ context.Context, _ string) ([]models.RawMenuItem, error) {
	return nil, errNotStubbed
}

func (m *mockMenuItemService) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	if m.getFn == nil {
		return nil, errNotStubbed
	}
	return m.getFn(ctx, id)
}

type mockReviewService struct {
	createRestaurantFn func(ctx context.Context, authorID int64, restaurantID, title, content string) (*models.RestaurantReview, error)
	updateRestaurantFn func(ctx context.Context, authorID, reviewID int64, title, content string) (*models.RestaurantReview, error)
	deleteRestaurantFn func(ctx context.Context, authorID, reviewID int64) error
	listRestaurantFn   func(ctx context.Context, restaurantID string) ([]*models.RestaurantReview, error)
	createItemFn       func(ctx context.Context, authorID, itemID int64, title, content string) (*models.ItemReview, error)
	updateItemFn       func(ctx context.Context, authorID, reviewID int64, title, content string) (*models.ItemReview, error)
	deleteItemFn       func(ctx context.Context, authorID, reviewID int64) error
	listItemFn         func(ctx context.Context, itemID int64) ([]*models.ItemReview, error)
}

func (m *mockReviewService) CreateRestaurantReview(ctx context.Context, authorID int64, restaurantID, title, content string) (*models.RestaurantReview, error) {
	if m.createRestaurantFn == nil {
		return nil, errNotStubbed
	}
	return m.createRestaurantFn(ctx, authorID, restaurantID, title, content)
}

func (m *mockReviewService) UpdateRestaurantReview(ctx context.Context, authorID, reviewID int64, title, content string) (*models.RestaurantReview, error) {
	if m.updateRestaurantFn == nil {
		return nil, errNotStubbed
	}
	return m.updateRestaurantFn(ctx, authorID, reviewID, title, content)
}

func (m *mockReviewService) DeleteRestaurantReview(ctx context.Context, authorID, reviewID int64) error {
	if m.deleteRestaurantFn == nil {
		return errNotStubbed
	}
	return m.deleteRestaurantFn(ctx, authorID, reviewID)
}

func (m *mockReviewService) ListRestaurantReviews(ctx context.Context, restaurantID string) ([]*models.RestaurantReview, error) {
	if m.listRestaurantFn == nil {
		return nil, errNotStubbed
	}
	return m.listRestaurantFn(ctx, restaurantID)
}

func (m *mockReviewService) CreateItemReview(ctx context.Context, authorID, itemID int64, title, content string) (*models.ItemReview, error) {
	if m.createItemFn == nil {
		return nil, errNotStubbed
	}
	return m.createItemFn(ctx, authorID, itemID, title, content)
}

func (m *mockReviewService) UpdateItemReview(ctx context.Context, authorID, reviewID int64, title, content string) (*models.ItemReview, error) {
	if m.updateItemFn == nil {
		return nil, errNotStubbed
	}
	return m.updateItemFn(ctx, authorID, reviewID, title, content)
}

func (m *mockReviewService) DeleteItemReview(ctx context.Context, authorID, reviewID int64) error {
	if m.deleteItemFn == nil {
		return errNotStubbed
	}
	return m.deleteItemFn(ctx, authorID, reviewID)
}

func (m *mockReviewService) ListItemReviews(ctx context.Context, itemID int64) ([]*models.ItemReview, error) {
	if m.listItemFn == nil {
		return nil, errNotStubbed
	}
	return m.listItemFn(ctx, itemID)
}

type mockFavoriteService struct {
	toggleRestaurantFn func(ctx context.Context, userID int64, restaurantID string) (bool, error)
	toggleItemFn       func(ctx context.Context, userID, itemID int64) (bool, error)
	listRestaurantsFn  func(ctx context.Context, userID int64) ([]*models.Restaurant, error)
	listItemsFn        func(ctx context.Context, userID int64) ([]*models.MenuItem, error)
}

func (m *mockFavoriteService) ToggleRestaurantFavorite(ctx context.Context, userID int64, restaurantID string) (bool, error) {
	if m.toggleRestaurantFn == nil {
		return false, errNotStubbed
	}
	return m.toggleRestaurantFn(ctx, userID, restaurantID)
}

func (m *mockFavoriteService) ToggleItemFavorite(ctx context.Context, userID, itemID int64) (bool, error) {
	if m.toggleItemFn == nil {
		return false, errNotStubbed
	}
	return m.toggleItemFn(ctx, userID, itemID)
}

func (m *mockFavoriteService) ListFavoriteRestaurants(ctx context.Context, userID int64) ([]*models.Restaurant, error) {
	if m.listRestaurantsFn == nil {
		return nil, errNotStubbed
	}
	return m.listRestaurantsFn(ctx, userID)
}

func (m *mockFavoriteService) ListFavoriteItems(ctx context.Context, userID int64) ([]*models.MenuItem, error) {
	if m.listItemsFn == nil {
		return nil, errNotStubbed
	}
	return m.listItemsFn(ctx, userID)
}
