package services

import (
	"context"
	"fmt"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/geocode"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/repositories"
	"github.com/vouch4food/vouch4food/pkg/spoonacular"
)

// In-memory fakes shared by the service tests in this package.

type mockRestaurantRepo struct {
	store   map[string]*models.Restaurant
	inserts int
	updates [][]repositories.FieldChange
	failErr error
}

func newMockRestaurantRepo() *mockRestaurantRepo {
	return &mockRestaurantRepo{store: make(map[string]*models.Restaurant)}
}

func (m *mockRestaurantRepo) GetByID(_ context.Context, id string) (*models.Restaurant, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	restaurant, ok := m.store[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return restaurant, nil
}

func (m *mockRestaurantRepo) Insert(_ context.Context, restaurant *models.Restaurant) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.inserts++
	m.store[restaurant.ID] = restaurant
	return nil
}

func (m *mockRestaurantRepo) UpdateFields(_ context.Context, id string, changes []repositories.FieldChange) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.store[id]; !ok {
		return apperrors.ErrNotFound
	}
	m.updates = append(m.updates, changes)
	return nil
}

type mockMenuItemRepo struct {
	store   map[int64]*models.MenuItem
	inserts int
	updates [][]repositories.FieldChange
}

func newMockMenuItemRepo() *mockMenuItemRepo {
	return &mockMenuItemRepo{store: make(map[int64]*models.MenuItem)}
}

func (m *mockMenuItemRepo) GetByID(_ context.Context, id int64) (*models.MenuItem, error) {
	item, ok := m.store[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

func (m *mockMenuItemRepo) Insert(_ context.Context, item *models.MenuItem) error {
	m.inserts++
	m.store[item.ID] = item
	return nil
}

func (m *mockMenuItemRepo) UpdateFields(_ context.Context, id int64, changes []repositories.FieldChange) error {
	if _, ok := m.store[id]; !ok {
		return apperrors.ErrNotFound
	}
	m.updates = append(m.updates, changes)
	return nil
}

// mockRestaurantAPI returns a canned result set for every search.
type mockRestaurantAPI struct {
	records []models.RawRestaurant
	err     error
	calls   int
}

func (m *mockRestaurantAPI) SearchRestaurants(_ context.Context, _ string, _, _ float64) ([]models.RawRestaurant, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

// mockMenuAPI serves pages out of a fixed upstream result set, recording the
// offset of every call so tests can assert on pagination behavior.
type mockMenuAPI struct {
	items   []models.RawMenuItem
	total   int
	offsets []int
	err     error
}

func (m *mockMenuAPI) SearchMenuItems(_ context.Context, _ string, offset int) (*spoonacular.MenuItemPage, error) {
	m.offsets = append(m.offsets, offset)
	if m.err != nil {
		return nil, m.err
	}

	var pageItems []models.RawMenuItem
	if offset < len(m.items) {
		end := offset + spoonacular.MenuItemPageSize
		if end > len(m.items) {
			end = len(m.items)
		}
		pageItems = m.items[offset:end]
	}

	return &spoonacular.MenuItemPage{MenuItems: pageItems, TotalMenuItems: m.total}, nil
}

type mockUserRepo struct {
	store  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{store: make(map[int64]*models.User)}
}

func (m *mockUserRepo) Insert(_ context.Context, user *models.User) error {
	for _, existing := range m.store {
		if existing.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.store[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.store[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.store {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id int64, firstName, lastName, email, imageURL string) error {
	user, ok := m.store[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.ImageURL = imageURL
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := m.store[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) UpdateLocation(_ context.Context, id int64, zip string, lat, lng float64) error {
	user, ok := m.store[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.AddressZip = &zip
	user.Latitude = &lat
	user.Longitude = &lng
	return nil
}

type mockReviewRepo struct {
	restaurantReviews map[int64]*models.RestaurantReview
	itemReviews       map[int64]*models.ItemReview
	nextID            int64
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{
		restaurantReviews: make(map[int64]*models.RestaurantReview),
		itemReviews:       make(map[int64]*models.ItemReview),
	}
}

func (m *mockReviewRepo) InsertRestaurantReview(_ context.Context, review *models.RestaurantReview) error {
	m.nextID++
	review.ID = m.nextID
	m.restaurantReviews[review.ID] = review
	return nil
}

func (m *mockReviewRepo) GetRestaurantReview(_ context.Context, id int64) (*models.RestaurantReview, error) {
	review, ok := m.restaurantReviews[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return review, nil
}

func (m *mockReviewRepo) UpdateRestaurantReview(_ context.Context, id int64, title, content string) error {
	review, ok := m.restaurantReviews[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	review.Title = title
	review.Content = content
	return nil
}

func (m *mockReviewRepo) DeleteRestaurantReview(_ context.Context, id int64) error {
	if _, ok := m.restaurantReviews[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.restaurantReviews, id)
	return nil
}

func (m *mockReviewRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]*models.RestaurantReview, error) {
	var reviews []*models.RestaurantReview
	for _, review := range m.restaurantReviews {
		if review.RestaurantID == restaurantID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (m *mockReviewRepo) InsertItemReview(_ context.Context, review *models.ItemReview) error {
	m.nextID++
	review.ID = m.nextID
	m.itemReviews[review.ID] = review
	return nil
}

func (m *mockReviewRepo) GetItemReview(_ context.Context, id int64) (*models.ItemReview, error) {
	review, ok := m.itemReviews[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return review, nil
}

func (m *mockReviewRepo) UpdateItemReview(_ context.Context, id int64, title, content string) error {
	review, ok := m.itemReviews[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	review.Title = title
	review.Content = content
	return nil
}

func (m *mockReviewRepo) DeleteItemReview(_ context.Context, id int64) error {
	if _, ok := m.itemReviews[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.itemReviews, id)
	return nil
}

func (m *mockReviewRepo) ListByItem(_ context.Context, itemID int64) ([]*models.ItemReview, error) {
	var reviews []*models.ItemReview
	for _, review := range m.itemReviews {
		if review.ItemID == itemID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

type mockFavoriteRepo struct {
	restaurantFavorites map[string]bool
	itemFavorites       map[string]bool
	restaurantList      []*models.Restaurant
	itemList            []*models.MenuItem
}

func newMockFavoriteRepo() *mockFavoriteRepo {
	return &mockFavoriteRepo{
		restaurantFavorites: make(map[string]bool),
		itemFavorites:       make(map[string]bool),
	}
}

func restaurantFavoriteKey(userID int64, restaurantID string) string {
	return fmt.Sprintf("%d:%s", userID, restaurantID)
}

func itemFavoriteKey(userID, itemID int64) string {
	return fmt.Sprintf("%d:%d", userID, itemID)
}

func (m *mockFavoriteRepo) RestaurantFavoriteExists(_ context.Context, userID int64, restaurantID string) (bool, error) {
	return m.restaurantFavorites[restaurantFavoriteKey(userID, restaurantID)], nil
}

func (m *mockFavoriteRepo) InsertRestaurantFavorite(_ context.Context, userID int64, restaurantID string) error {
	m.restaurantFavorites[restaurantFavoriteKey(userID, restaurantID)] = true
	return nil
}

func (m *mockFavoriteRepo) DeleteRestaurantFavorite(_ context.Context, userID int64, restaurantID string) error {
	delete(m.restaurantFavorites, restaurantFavoriteKey(userID, restaurantID))
	return nil
}

func (m *mockFavoriteRepo) ListFavoriteRestaurants(_ context.Context, _ int64) ([]*models.Restaurant, error) {
	return m.restaurantList, nil
}

func (m *mockFavoriteRepo) ItemFavoriteExists(_ context.Context, userID, itemID int64) (bool, error) {
	return m.itemFavorites[itemFavoriteKey(userID, itemID)], nil
}

func (m *mockFavoriteRepo) InsertItemFavorite(_ context.Context, userID, itemID int64) error {
	m.itemFavorites[itemFavoriteKey(userID, itemID)] = true
	return nil
}

func (m *mockFavoriteRepo) DeleteItemFavorite(_ context.Context, userID, itemID int64) error {
	delete(m.itemFavorites, itemFavoriteKey(userID, itemID))
	return nil
}

func (m *mockFavoriteRepo) ListFavoriteItems(_ context.Context, _ int64) ([]*models.MenuItem, error) {
	return m.itemList, nil
}

// mockGeocoder resolves every zip to fixed coordinates, or fails with err.
type mockGeocoder struct {
	coords geocode.Coordinates
	err    error
	zips   []string
}

func (m *mockGeocoder) ResolveLocation(_ context.Context, zipCode string) (geocode.Coordinates, error) {
	m.zips = append(m.zips, zipCode)
	if m.err != nil {
		return geocode.Coordinates{}, m.err
	}
	return m.coords, nil
}
