package donki

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
	"AstroPulse/pkg/util"
)

// Client implements the EventProvider against the NASA DONKI and NEO
// REST APIs.
type Client struct {
	apiKey   string
	baseURL  string
	client   *xhttp.Client
	cache    icache.BytesCache
	cacheTTL time.Duration
}

// New creates a DONKI EventProvider.
func New(apiKey, baseURL string, timeout time.Duration, c icache.BytesCache, cacheTTL time.Duration) drepo.EventProvider {
	if c == nil {
		c = icache.Nop{}
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// SolarFlares fetches FLR events for the last `days` days.
func (c *Client) SolarFlares(ctx context.Context, days int) ([]models.RawEvent, error) {
	return c.events(ctx, "FLR", "solar_flares", days)
}

// CMEEvents fetches CME events for the last `days` days.
func (c *Client) CMEEvents(ctx context.Context, days int) ([]models.RawEvent, error) {
	return c.events(ctx, "CME", "cme", days)
}

// GeomagneticStorms fetches GST events for the last `days` days.
func (c *Client) GeomagneticStorms(ctx context.Context, days int) ([]models.RawEvent, error) {
	return c.events(ctx, "GST", "geomagnetic_storms", days)
}

// RadiationBeltEvents fetches RBE events for the last `days` days.
func (c *Client) RadiationBeltEvents(ctx context.Context, days int) ([]models.RawEvent, error) {
	return c.events(ctx, "RBE", "radiation_belt", days)
}

// NearEarthObjects fetches the NEO feed for the last `days` days. The
// feed is one object keyed by date, not an event list.
func (c *Client) NearEarthObjects(ctx context.Context, days int) (models.RawEvent, error) {
	start, end := util.DateRange(time.Now().UTC(), days)

	body, err := c.getCached(ctx, "neo_feed", c.baseURL+"/neo/rest/v1/feed", map[string]string{
		"start_date": start,
		"end_date":   end,
		"api_key":    c.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var feed models.RawEvent
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode neo feed: %w", err)
	}
	return feed, nil
}

func (c *Client) events(ctx context.Context, endpoint, feed string, days int) ([]models.RawEvent, error) {
	start, end := util.DateRange(time.Now().UTC(), days)

	body, err := c.getCached(ctx, feed, c.baseURL+"/DONKI/"+endpoint, map[string]string{
		"startDate": start,
		"endDate":   end,
		"api_key":   c.apiKey,
	})
	if err != nil {
		return nil, err
	}

	var events []models.RawEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode %s events: %w", endpoint, err)
	}
	return events, nil
}

// getCached fetches a URL through the byte cache. The cache key includes
// the query window so a day rollover misses naturally.
func (c *Client) getCached(ctx context.Context, feed, url string, params map[string]string) ([]byte, error) {
	key := cacheKey(url, params)
	if b, ok, _ := c.cache.GetBytes(key); ok {
		metrics.UpstreamCacheHits.WithLabelValues(feed).Inc()
		return b, nil
	}

	start := time.Now()
	body, err := c.client.GetBytes(ctx, &xhttp.RequestOptions{URL: url, QueryParams: params})
	metrics.UpstreamLatency.WithLabelValues(feed).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(feed).Inc()
		return nil, fmt.Errorf("fetch %s: %w", feed, err)
	}

	_ = c.cache.SetBytes(key, body, c.cacheTTL)
	return body, nil
}

func cacheKey(url string, params map[string]string) string {
	return fmt.Sprintf("%s?start=%s&end=%s", url, params["startDate"]+params["start_date"], params["endDate"]+params["end_date"])
}
