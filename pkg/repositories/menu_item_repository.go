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

// MenuItemRepository defines the interface for menu item data access.
type MenuItemRepository interface {
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Insert(ctx context.Context, item *models.MenuItem) error
	UpdateFields(ctx context.Context, id int64, changes []FieldChange) error
}

// menuItemRepository implements MenuItemRepository using PostgreSQL.
type menuItemRepository struct {
	db *database.DB
}

// NewMenuItemRepository creates a new menu item repository.
func NewMenuItemRepository(db *database.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

// GetByID retrieves a menu item by its external identifier.
// Returns apperrors.ErrNotFound if no row exists.
func (r *menuItemRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	query := `SELECT id, title, restaurant_chain, image_url FROM menu_items WHERE id = $1`

	var item models.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&item.RestaurantChain,
		&item.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return &item, nil
}

// Insert adds a new menu item.
func (r *menuItemRepository) Insert(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, title, restaurant_chain, image_url)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Title,
		item.RestaurantChain,
		item.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	return nil
}

// UpdateFields overwrites only the given columns on an existing row.
func (r *menuItemRepository) UpdateFields(ctx context.Context, id int64, changes []FieldChange) error {
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

	query := fmt.Sprintf("UPDATE menu_items SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Ensure menuItemRepository implements MenuItemRepository at compile time.
var _ MenuItemRepository = (*menuItemRepository)(nil)
