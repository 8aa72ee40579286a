package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/repositories"
)

// RestaurantSearchAPI is the slice of the search client restaurant sync needs.
type RestaurantSearchAPI interface {
	SearchRestaurants(ctx context.Context, query string, lat, lng float64) ([]models.RawRestaurant, error)
}

// RestaurantService defines restaurant search, sync and lookup operations.
type RestaurantService interface {
	// Search fetches raw records for the query near the given coordinates and
	// reconciles each one into the store. An empty query means "all
	// restaurants near this point".
	Search(ctx context.Context, query string, lat, lng float64) ([]*models.Restaurant, error)
	// SyncSearchResults reconciles a batch of raw records into the store and
	// returns the persisted entities in input order.
	SyncSearchResults(ctx context.Context, records []models.RawRestaurant) ([]*models.Restaurant, error)
	Get(ctx context.Context, id string) (*models.Restaurant, error)
}

// restaurantService implements RestaurantService.
type restaurantService struct {
	api            RestaurantSearchAPI
	restaurantRepo repositories.RestaurantRepository
	logger         *zap.Logger
}

// NewRestaurantService creates a new restaurant service with dependencies.
func NewRestaurantService(api RestaurantSearchAPI, restaurantRepo repositories.RestaurantRepository, logger *zap.Logger) RestaurantService {
	return &restaurantService{
		api:            api,
		restaurantRepo: restaurantRepo,
		logger:         logger.Named("restaurant_sync"),
	}
}

// Search fetches one page of raw restaurant records and reconciles them.
func (s *restaurantService) Search(ctx context.Context, query string, lat, lng float64) ([]*models.Restaurant, error) {
	records, err := s.api.SearchRestaurants(ctx, query, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("restaurant search failed: %w", err)
	}

	return s.SyncSearchResults(ctx, records)
}

// SyncSearchResults upserts each raw record, keyed by its external id.
// Each upsert commits on its own: a failure partway through aborts the batch
// and earlier upserts stand. Upserts are idempotent, so the store converges
// on the next successful pass.
func (s *restaurantService) SyncSearchResults(ctx context.Context, records []models.RawRestaurant) ([]*models.Restaurant, error) {
	restaurants := make([]*models.Restaurant, 0, len(records))
	for _, record := range records {
		restaurant, err := s.upsert(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("failed to sync restaurant %q: %w", record.ID, err)
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// Get retrieves a persisted restaurant location.
func (s *restaurantService) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByID(ctx, id)
}

// upsert inserts a restaurant on first sighting of its external id, or
// refreshes the fields that differ on subsequent sightings. Returns the
// persisted entity after reconciliation.
func (s *restaurantService) upsert(ctx context.Context, record models.RawRestaurant) (*models.Restaurant, error) {
	incoming := record.ToRestaurant()

	existing, err := s.restaurantRepo.GetByID(ctx, incoming.ID)
	if errors.Is(err, apperrors.ErrNotFound) {
		if err := s.restaurantRepo.Insert(ctx, incoming); err != nil {
			return nil, err
		}
		s.logger.Debug("Inserted restaurant", zap.String("id", incoming.ID))
		return incoming, nil
	}
	if err != nil {
		return nil, err
	}

	changes := restaurantChanges(existing, incoming)
	if len(changes) == 0 {
		return existing, nil
	}

	if err := s.restaurantRepo.UpdateFields(ctx, existing.ID, changes); err != nil {
		return nil, err
	}
	s.logger.Debug("Updated restaurant",
		zap.String("id", existing.ID),
		zap.Int("changed_fields", len(changes)))

	return existing, nil
}

// restaurantStringFields drives the field-level merge for all nullable text
// columns. A nil incoming value means the raw record didn't carry the field,
// and it must never null out a stored value.
var restaurantStringFields = []struct {
	column string
	get    func(*models.Restaurant) *string
	set    func(*models.Restaurant, *string)
}{
	{"address", func(r *models.Restaurant) *string { return r.Address }, func(r *models.Restaurant, v *string) { r.Address = v }},
	{"cuisines", func(r *models.Restaurant) *string { return r.Cuisines }, func(r *models.Restaurant, v *string) { r.Cuisines = v }},
	{"description", func(r *models.Restaurant) *string { return r.Description }, func(r *models.Restaurant, v *string) { r.Description = v }},
	{"phone", func(r *models.Restaurant) *string { return r.Phone }, func(r *models.Restaurant, v *string) { r.Phone = v }},
	{"sunday_hours", func(r *models.Restaurant) *string { return r.SundayHours }, func(r *models.Restaurant, v *string) { r.SundayHours = v }},
	{"monday_hours", func(r *models.Restaurant) *string { return r.MondayHours }, func(r *models.Restaurant, v *string) { r.MondayHours = v }},
	{"tuesday_hours", func(r *models.Restaurant) *string { return r.TuesdayHours }, func(r *models.Restaurant, v *string) { r.TuesdayHours = v }},
	{"wednesday_hours", func(r *models.Restaurant) *string { return r.WednesdayHours }, func(r *models.Restaurant, v *string) { r.WednesdayHours = v }},
	{"thursday_hours", func(r *models.Restaurant) *string { return r.ThursdayHours }, func(r *models.Restaurant, v *string) { r.ThursdayHours = v }},
	{"friday_hours", func(r *models.Restaurant) *string { return r.FridayHours }, func(r *models.Restaurant, v *string) { r.FridayHours = v }},
	{"saturday_hours", func(r *models.Restaurant) *string { return r.SaturdayHours }, func(r *models.Restaurant, v *string) { r.SaturdayHours = v }},
}

// restaurantChanges computes the field-level diff between a stored restaurant
// and a freshly mapped one, and applies the changes to existing in place so
// the caller gets the merged entity. Applying the same record twice yields an
// empty change set the second time.
func restaurantChanges(existing, incoming *models.Restaurant) []repositories.FieldChange {
	var changes []repositories.FieldChange

	if incoming.Name != "" && incoming.Name != existing.Name {
		changes = append(changes, repositories.FieldChange{Column: "name", Value: incoming.Name})
		existing.Name = incoming.Name
	}
	if incoming.PhotoURL != existing.PhotoURL {
		changes = append(changes, repositories.FieldChange{Column: "photo_url", Value: incoming.PhotoURL})
		existing.PhotoURL = incoming.PhotoURL
	}
	if incoming.Latitude != existing.Latitude {
		changes = append(changes, repositories.FieldChange{Column: "latitude", Value: incoming.Latitude})
		existing.Latitude = incoming.Latitude
	}
	if incoming.Longitude != existing.Longitude {
		changes = append(changes, repositories.FieldChange{Column: "longitude", Value: incoming.Longitude})
		existing.Longitude = incoming.Longitude
	}

	for _, field := range restaurantStringFields {
		newVal := field.get(incoming)
		if newVal == nil {
			continue
		}
		oldVal := field.get(existing)
		if oldVal == nil || *oldVal != *newVal {
			changes = append(changes, repositories.FieldChange{Column: field.column, Value: *newVal})
			field.set(existing, newVal)
		}
	}

	return changes
}

// Ensure restaurantService implements RestaurantService at compile time.
var _ RestaurantService = (*restaurantService)(nil)
