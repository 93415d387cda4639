package pota

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/loudsignal/hambot/internal/domain"
	"github.com/loudsignal/hambot/internal/observability"
)

// Client fetches current activation spots from the POTA API.
type Client struct {
	httpClient *resty.Client
	url        string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a POTA spot feed client.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: resty.New().SetTimeout(timeout),
		url:        url,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchActivations downloads the spot feed and converts every entry into a
// typed activation, preserving feed order.
func (c *Client) FetchActivations(ctx context.Context) ([]domain.Activation, error) {
	start := time.Now()
	activations, err := c.fetch(ctx)
	c.metrics.UpstreamDuration.WithLabelValues("pota").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("pota", "error").Inc()
		return nil, err
	}
	c.metrics.UpstreamRequests.WithLabelValues("pota", "success").Inc()
	return activations, nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.Activation, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spots: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("pota API error: status %d: %s", resp.StatusCode(), resp.Body())
	}

	var spots []domain.RawSpot
	if err := json.Unmarshal(resp.Body(), &spots); err != nil {
		return nil, fmt.Errorf("decode spot feed: %w", err)
	}

	activations, err := domain.ConvertSpots(spots)
	if err != nil {
		return nil, fmt.Errorf("convert spot feed: %w", err)
	}

	c.logger.Debug("fetched activation spots", "count", len(activations))
	return activations, nil
}
