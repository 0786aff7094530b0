package swpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"AstroPulse/internal/domain/models"
	drepo "AstroPulse/internal/domain/service"
	icache "AstroPulse/internal/service/cache"
	"AstroPulse/internal/service/metrics"
	xhttp "AstroPulse/pkg/http"
)

// Client implements the ConditionsProvider against the NOAA SWPC product
// feeds. Every product is a JSON array of positional rows whose first
// row is a column header.
type Client struct {
	baseURL  string
	client   *xhttp.Client
	cache    icache.BytesCache
	cacheTTL time.Duration
}

// New creates a SWPC ConditionsProvider.
func New(baseURL string, timeout time.Duration, c icache.BytesCache, cacheTTL time.Duration) drepo.ConditionsProvider {
	if c == nil {
		c = icache.Nop{}
	}
	return &Client{
		baseURL:  baseURL,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// SolarWind returns the 7-day magnetometer series.
func (c *Client) SolarWind(ctx context.Context) (models.Series, error) {
	return c.series(ctx, "solar_wind", "/products/solar-wind/mag-7-day.json")
}

// KpIndex returns the planetary K-index series.
func (c *Client) KpIndex(ctx context.Context) (models.Series, error) {
	return c.series(ctx, "kp_index", "/products/noaa-planetary-k-index.json")
}

// XRayFlux returns the GOES primary X-ray flux series.
func (c *Client) XRayFlux(ctx context.Context) (models.Series, error) {
	return c.series(ctx, "xray_flux", "/products/goes-xray-flux-primary.json")
}

// ProtonFlux returns the GOES primary proton flux series.
func (c *Client) ProtonFlux(ctx context.Context) (models.Series, error) {
	return c.series(ctx, "proton_flux", "/products/goes-proton-flux-primary.json")
}

func (c *Client) series(ctx context.Context, feed, path string) (models.Series, error) {
	url := c.baseURL + path

	body, ok, _ := c.cache.GetBytes(url)
	if ok {
		metrics.UpstreamCacheHits.WithLabelValues(feed).Inc()
	} else {
		start := time.Now()
		var err error
		body, err = c.client.GetBytes(ctx, &xhttp.RequestOptions{URL: url})
		metrics.UpstreamLatency.WithLabelValues(feed).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.UpstreamErrors.WithLabelValues(feed).Inc()
			return nil, fmt.Errorf("fetch %s: %w", feed, err)
		}
		_ = c.cache.SetBytes(url, body, c.cacheTTL)
	}

	var rows models.Series
	if err := json.Unmarshal(body, &rows); err != nil {
		metrics.UpstreamErrors.WithLabelValues(feed).Inc()
		return nil, fmt.Errorf("decode %s: %w", feed, err)
	}

	// First row is the column header.
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
