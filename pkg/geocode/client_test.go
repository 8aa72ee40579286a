package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/apperrors"
	"github.com/vouch4food/vouch4food/pkg/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.GeocodingConfig{
		BaseURL:   serverURL,
		AccessKey: "test-key",
	}, zap.NewNop())
}

func TestResolveLocation_Success(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"latitude":32.7,"longitude":-117.1},{"latitude":0,"longitude":0}]}`))
	}))
	defer server.Close()

	coords, err := newTestClient(server.URL).ResolveLocation(context.Background(), "92101")
	require.NoError(t, err)
	assert.Equal(t, "92101", gotQuery)
	assert.Equal(t, 32.7, coords.Latitude)
	assert.Equal(t, -117.1, coords.Longitude)
}

func TestResolveLocation_StringCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"latitude":"32.7","longitude":"-117.1"}]}`))
	}))
	defer server.Close()

	coords, err := newTestClient(server.URL).ResolveLocation(context.Background(), "92101")
	require.NoError(t, err)
	assert.Equal(t, 32.7, coords.Latitude)
	assert.Equal(t, -117.1, coords.Longitude)
}

func TestResolveLocation_NoCandidates(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ResolveLocation(context.Background(), "00000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrZipCodeNotFound))
	assert.Equal(t, 1, calls, "no further calls after an empty candidate list")
}

func TestResolveLocation_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ResolveLocation(context.Background(), "92101")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrZipCodeNotFound))
}

func TestResolveLocation_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ResolveLocation(context.Background(), "92101")
	require.Error(t, err)
}

func TestResolveLocation_SendsAccessKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("access_key")
		_, _ = w.Write([]byte(`{"data":[{"latitude":1,"longitude":2}]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ResolveLocation(context.Background(), "92101")
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
}
