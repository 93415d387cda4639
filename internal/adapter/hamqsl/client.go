package hamqsl

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/loudsignal/hambot/internal/domain"
	"github.com/loudsignal/hambot/internal/observability"
)

// Client fetches solar band conditions from the hamqsl.com XML feed.
type Client struct {
	httpClient *resty.Client
	url        string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a hamqsl solar data client.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: resty.New().SetTimeout(timeout),
		url:        url,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchConditions downloads the solar XML document and normalizes it into a
// band condition report.
func (c *Client) FetchConditions(ctx context.Context) (*domain.ConditionReport, error) {
	start := time.Now()
	report, err := c.fetch(ctx)
	c.metrics.UpstreamDuration.WithLabelValues("hamqsl").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("hamqsl", "error").Inc()
		return nil, err
	}
	c.metrics.UpstreamRequests.WithLabelValues("hamqsl", "success").Inc()
	return report, nil
}

func (c *Client) fetch(ctx context.Context) (*domain.ConditionReport, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/xml").
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solar data: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("hamqsl API error: status %d: %s", resp.StatusCode(), resp.Body())
	}

	var doc solarDocument
	if err := xml.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode solar xml: %w", err)
	}

	entries := make([]domain.BandConditionEntry, 0, len(doc.SolarData.Bands))
	for _, b := range doc.SolarData.Bands {
		entries = append(entries, domain.BandConditionEntry{
			BandName:  b.Name,
			Period:    b.Time,
			Condition: b.Condition,
		})
	}

	report, err := domain.BuildConditionReport(doc.SolarData.Updated, entries)
	if err != nil {
		return nil, fmt.Errorf("normalize solar data: %w", err)
	}

	c.logger.Debug("fetched solar conditions", "bands", len(report.Bands))
	return report, nil
}

// hamqsl solarxml.php response types.

type solarDocument struct {
	XMLName   xml.Name  `xml:"solar"`
	SolarData solarData `xml:"solardata"`
}

type solarData struct {
	Updated string        `xml:"updated"`
	Bands   []bandReading `xml:"calculatedconditions>band"`
}

type bandReading struct {
	Name      string `xml:"name,attr"`
	Time      string `xml:"time,attr"`
	Condition string `xml:",chardata"`
}
