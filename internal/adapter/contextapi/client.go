// Package contextapi implements domain.DimensionProvider against an external
// context-dimension HTTP service, with an in-memory LRU cache in front.
package contextapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hexsight/contextspace/internal/domain"
	"github.com/hexsight/contextspace/internal/observability"
)

// Client implements domain.DimensionProvider over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a dimension-provider client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// FetchDimensions looks up observed dimensions for a coordinate. A response
// with no land-use classification means the upstream has no coverage there;
// that returns a zero Dimensions and no error so the caller falls back to
// procedural synthesis.
func (c *Client) FetchDimensions(ctx context.Context, coord domain.LatLng) (domain.Dimensions, error) {
	params := url.Values{
		"lat": {fmt.Sprintf("%.6f", coord.Lat)},
		"lng": {fmt.Sprintf("%.6f", coord.Lng)},
	}
	fullURL := c.baseURL + "/v1/dimensions?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Dimensions{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Dimensions{}, fmt.Errorf("dimension request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.metrics.ProviderRequests.WithLabelValues("empty").Inc()
		return domain.Dimensions{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Dimensions{}, fmt.Errorf("context API error: status %d: %s", resp.StatusCode, body)
	}

	var dims domain.Dimensions
	if err := json.NewDecoder(resp.Body).Decode(&dims); err != nil {
		c.metrics.ProviderRequests.WithLabelValues("error").Inc()
		return domain.Dimensions{}, fmt.Errorf("decode response: %w", err)
	}

	if dims.Geography.LandUse == "" {
		c.metrics.ProviderRequests.WithLabelValues("empty").Inc()
		return domain.Dimensions{}, nil
	}
	c.metrics.ProviderRequests.WithLabelValues("success").Inc()
	return dims, nil
}
