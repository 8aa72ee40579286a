// Package geocode provides a client for the PositionStack forward-geocoding API,
// used to turn a user's zip code into coordinates for restaurant lookup.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/config"
	"github.com/vouch4food/vouch4food/pkg/jsonutil"
	"github.com/vouch4food/vouch4food/pkg/logging"
)

// DefaultTimeout is the maximum time to wait for geocoding responses.
const DefaultTimeout = 30 * time.Second

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Client provides access to the forward-geocoding API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	logger     *zap.Logger
}

// NewClient creates a new geocoding client.
func NewClient(cfg config.GeocodingConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   cfg.BaseURL,
		accessKey: cfg.AccessKey,
		logger:    logger.Named("geocode"),
	}
}

// ResolveLocation converts a zip code into coordinates. The API returns a
// list of address candidates ordered by relevance; the first one wins. Its
// latitude/longitude may arrive as JSON numbers or strings, so decoding is
// flexible. Returns apperrors.ErrZipCodeNotFound when the API has no
// candidates for the given code.
func (c *Client) ResolveLocation(ctx context.Context, zipCode string) (Coordinates, error) {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("query", zipCode)
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Resolving zip code",
		zap.String("url", logging.SanitizeURL(endpoint)),
		zap.String("zip_code", zipCode))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to call geocoding service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Geocoding service returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", logging.SanitizeURL(string(body))))
		return Coordinates{}, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var response struct {
		Data []struct {
			Latitude  json.RawMessage `json:"latitude"`
			Longitude json.RawMessage `json:"longitude"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Data) == 0 {
		return Coordinates{}, apperrors.ErrZipCodeNotFound
	}

	// The first candidate is the most relevant one.
	candidate := response.Data[0]
	lat, err := jsonutil.FlexibleFloat(candidate.Latitude)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse latitude: %w", err)
	}
	lng, err := jsonutil.FlexibleFloat(candidate.Longitude)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse longitude: %w", err)
	}

	return Coordinates{Latitude: lat, Longitude: lng}, nil
}
