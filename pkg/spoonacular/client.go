// Package spoonacular provides a client for the Spoonacular food API's
// restaurant and menu-item search endpoints.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/config"
	"github.com/vouch4food/vouch4food/pkg/logging"
	"github.com/vouch4food/vouch4food/pkg/models"
)

// DefaultTimeout is the maximum time to wait for search responses.
const DefaultTimeout = 30 * time.Second

// SearchRadius is the fixed restaurant search radius in miles.
const SearchRadius = 5

// MenuItemPageSize is the most menu items the API returns per call.
const MenuItemPageSize = 100

// MenuItemPage is one page of menu-item search results plus the total number
// of matches the API claims to have, which drives pagination.
type MenuItemPage struct {
	MenuItems      []models.RawMenuItem `json:"menuItems"`
	TotalMenuItems int                  `json:"totalMenuItems"`
}

// Client provides access to the restaurant/menu search API.
// Transport failures and malformed responses are wrapped and propagated;
// there is no retry policy here, by design - the web layer owns user-facing
// error handling.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a new search client.
func NewClient(cfg config.SpoonacularConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger.Named("spoonacular"),
	}
}

// SearchRestaurants returns raw restaurant records matching the query near
// the given coordinates, within the fixed search radius. An empty query is
// valid and means "all restaurants near this point".
func (c *Client) SearchRestaurants(ctx context.Context, query string, lat, lng float64) ([]models.RawRestaurant, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("query", query)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("distance", strconv.Itoa(SearchRadius))

	body, err := c.get(ctx, "/food/restaurants/search", params)
	if err != nil {
		return nil, err
	}

	var response struct {
		Restaurants []models.RawRestaurant `json:"restaurants"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse restaurant search response: %w", err)
	}

	return response.Restaurants, nil
}

// SearchMenuItems returns one page of menu items matching the query, starting
// at the given offset, along with the API's total match count. The API caps
// each response at MenuItemPageSize items.
func (c *Client) SearchMenuItems(ctx context.Context, query string, offset int) (*MenuItemPage, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("query", query)
	params.Set("number", strconv.Itoa(MenuItemPageSize))
	params.Set("offset", strconv.Itoa(offset))

	body, err := c.get(ctx, "/food/menuItems/search", params)
	if err != nil {
		return nil, err
	}

	var page MenuItemPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse menu item search response: %w", err)
	}

	return &page, nil
}

// get executes a GET request against the API and returns the response body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling search API",
		zap.String("url", logging.SanitizeURL(endpoint)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call search API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Search API returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", logging.SanitizeURL(string(body))))
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	return body, nil
}
