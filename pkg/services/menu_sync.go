package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/models"
	"github.com/vouch4food/vouch4food/pkg/repositories"
	"github.com/vouch4food/vouch4food/pkg/spoonacular"
)

// menuItemPageSize is the external API's cap on items per response.
const menuItemPageSize = spoonacular.MenuItemPageSize

// MenuSearchAPI is the slice of the search client menu sync needs.
type MenuSearchAPI interface {
	SearchMenuItems(ctx context.Context, query string, offset int) (*spoonacular.MenuItemPage, error)
}

// MenuItemService defines menu item collection, sync and lookup operations.
type MenuItemService interface {
	// SearchChainItems collects every menu item belonging to the chain and
	// reconciles each one into the store.
	SearchChainItems(ctx context.Context, chain string) ([]*models.MenuItem, error)
	// CollectChainItems pages through the external API until all items
	// matching the chain have been retrieved.
	CollectChainItems(ctx context.Context, chain string) ([]models.RawMenuItem, error)
	Get(ctx context.Context, id int64) (*models.MenuItem, error)
}

// menuItemService implements MenuItemService.
type menuItemService struct {
	api      MenuSearchAPI
	itemRepo repositories.MenuItemRepository
	logger   *zap.Logger
}

// NewMenuItemService creates a new menu item service with dependencies.
func NewMenuItemService(api MenuSearchAPI, itemRepo repositories.MenuItemRepository, logger *zap.Logger) MenuItemService {
	return &menuItemService{
		api:      api,
		itemRepo: itemRepo,
		logger:   logger.Named("menu_sync"),
	}
}

// SearchChainItems collects the chain's full menu and upserts every item.
func (s *menuItemService) SearchChainItems(ctx context.Context, chain string) ([]*models.MenuItem, error) {
	records, err := s.CollectChainItems(ctx, chain)
	if err != nil {
		return nil, err
	}

	items := make([]*models.MenuItem, 0, len(records))
	for _, record := range records {
		item, err := s.upsert(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("failed to sync menu item %d: %w", record.ID, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// CollectChainItems pages through the external menu search until every item
// for the chain has been retrieved. The API matches free text fuzzily and can
// return items from unrelated chains when there is no exact match, so the
// first item of the first page doubles as a relevance sentinel: if it isn't
// from the requested chain, the whole query is treated as a miss. Every page
// is still filtered to exact chain matches.
func (s *menuItemService) CollectChainItems(ctx context.Context, chain string) ([]models.RawMenuItem, error) {
	page, err := s.api.SearchMenuItems(ctx, chain, 0)
	if err != nil {
		return nil, fmt.Errorf("menu item search failed: %w", err)
	}

	if page.TotalMenuItems == 0 || len(page.MenuItems) == 0 || page.MenuItems[0].RestaurantChain != chain {
		return nil, nil
	}

	total := page.TotalMenuItems
	items := filterByChain(page.MenuItems, chain)

	for offset := 0; offset+menuItemPageSize < total; {
		offset += menuItemPageSize
		next, err := s.api.SearchMenuItems(ctx, chain, offset)
		if err != nil {
			return nil, fmt.Errorf("menu item search failed at offset %d: %w", offset, err)
		}
		items = append(items, filterByChain(next.MenuItems, chain)...)
	}

	s.logger.Debug("Collected chain menu items",
		zap.String("chain", chain),
		zap.Int("total_reported", total),
		zap.Int("collected", len(items)))

	return items, nil
}

// Get retrieves a persisted menu item.
func (s *menuItemService) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// upsert inserts a menu item on first sighting of its external id, or
// refreshes the fields that differ on subsequent sightings.
func (s *menuItemService) upsert(ctx context.Context, record models.RawMenuItem) (*models.MenuItem, error) {
	incoming := record.ToMenuItem()

	existing, err := s.itemRepo.GetByID(ctx, incoming.ID)
	if errors.Is(err, apperrors.ErrNotFound) {
		if err := s.itemRepo.Insert(ctx, incoming); err != nil {
			return nil, err
		}
		return incoming, nil
	}
	if err != nil {
		return nil, err
	}

	changes := menuItemChanges(existing, incoming)
	if len(changes) == 0 {
		return existing, nil
	}

	if err := s.itemRepo.UpdateFields(ctx, existing.ID, changes); err != nil {
		return nil, err
	}

	return existing, nil
}

// menuItemChanges computes the field-level diff between a stored menu item
// and a freshly mapped one, applying changes to existing in place. Only the
// id is guaranteed stable; everything else may change between sightings.
func menuItemChanges(existing, incoming *models.MenuItem) []repositories.FieldChange {
	fields := []struct {
		column string
		old    string
		new    string
		set    func(string)
	}{
		{"title", existing.Title, incoming.Title, func(v string) { existing.Title = v }},
		{"restaurant_chain", existing.RestaurantChain, incoming.RestaurantChain, func(v string) { existing.RestaurantChain = v }},
		{"image_url", existing.ImageURL, incoming.ImageURL, func(v string) { existing.ImageURL = v }},
	}

	var changes []repositories.FieldChange
	for _, field := range fields {
		if field.new != field.old {
			changes = append(changes, repositories.FieldChange{Column: field.column, Value: field.new})
			field.set(field.new)
		}
	}

	return changes
}

// filterByChain keeps only the items whose chain field exactly equals chain.
func filterByChain(items []models.RawMenuItem, chain string) []models.RawMenuItem {
	var matched []models.RawMenuItem
	for _, item := range items {
		if item.RestaurantChain == chain {
			matched = append(matched, item)
		}
	}
	return matched
}

// Ensure menuItemService implements MenuItemService at compile time.
var _ MenuItemService = (*menuItemService)(nil)
