package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/database"
	"github.com/vouch4food/vouch4food/pkg/models"
)

// RestaurantRepository defines the interface for restaurant location data access.
type RestaurantRepository interface {
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	Insert(ctx context.Context, restaurant *models.Restaurant) error
	// UpdateFields overwrites only the given columns on an existing row.
	UpdateFields(ctx context.Context, id string, changes []FieldChange) error
}

// restaurantRepository implements RestaurantRepository using PostgreSQL.
type restaurantRepository struct {
	db *database.DB
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(db *database.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

const restaurantColumns = `id, name, address, cuisines, description, phone, photo_url,
	latitude, longitude,
	sunday_hours, monday_hours, tuesday_hours, wednesday_hours,
	thursday_hours, friday_hours, saturday_hours`

func scanRestaurant(row pgx.Row) (*models.Restaurant, error) {
	var r models.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.Cuisines,
		&r.Description,
		&r.Phone,
		&r.PhotoURL,
		&r.Latitude,
		&r.Longitude,
		&r.SundayHours,
		&r.MondayHours,
		&r.TuesdayHours,
		&r.WednesdayHours,
		&r.ThursdayHours,
		&r.FridayHours,
		&r.SaturdayHours,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetByID retrieves a restaurant location by its external identifier.
// Returns apperrors.ErrNotFound if no row exists.
func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	restaurant, err := scanRestaurant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return restaurant, nil
}

// Insert adds a new restaurant location.
func (r *restaurantRepository) Insert(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
		INSERT INTO restaurants (` + restaurantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Cuisines,
		restaurant.Description,
		restaurant.Phone,
		restaurant.PhotoURL,
		restaurant.Latitude,
		restaurant.Longitude,
		restaurant.SundayHours,
		restaurant.MondayHours,
		restaurant.TuesdayHours,
		restaurant.WednesdayHours,
		restaurant.ThursdayHours,
		restaurant.FridayHours,
		restaurant.SaturdayHours,
	)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}

	return nil
}

// UpdateFields overwrites only the given columns on an existing row. The id
// is the immutable reconciliation key and is never part of the change set.
func (r *restaurantRepository) UpdateFields(ctx context.Context, id string, changes []FieldChange) error {
	if len(changes) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)+1)
	for i, change := range changes {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", change.Column, i+1))
		args = append(args, change.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE restaurants SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Ensure restaurantRepository implements RestaurantRepository at compile time.
var _ RestaurantRepository = (*restaurantRepository)(nil)
