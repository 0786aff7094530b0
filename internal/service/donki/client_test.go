package donki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icache "AstroPulse/internal/service/cache"
)

func TestSolarFlares_QueryAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DONKI/FLR", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "TEST_KEY", q.Get("api_key"))
		assert.NotEmpty(t, q.Get("startDate"))
		assert.NotEmpty(t, q.Get("endDate"))
		_, _ = w.Write([]byte(`[
			{"flrID":"FLR-1","classType":"M1.0","beginTime":"2025-03-01T10:00Z"},
			{"flrID":"FLR-2","classType":"X2.2","beginTime":"2025-03-01T12:00Z"}
		]`))
	}))
	defer srv.Close()

	c := New("TEST_KEY", srv.URL, 5*time.Second, nil, 0)

	flares, err := c.SolarFlares(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, flares, 2)
	assert.Equal(t, "M1.0", flares[0].String("classType"))
	assert.Equal(t, "FLR-2", flares[1].String("flrID"))
}

func TestCMEEvents_NumericSpeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DONKI/CME", r.URL.Path)
		_, _ = w.Write([]byte(`[{"activityID":"CME-1","speed":1234.5,"startTime":"2025-03-01T10:00Z"}]`))
	}))
	defer srv.Close()

	c := New("TEST_KEY", srv.URL, 5*time.Second, nil, 0)

	cmes, err := c.CMEEvents(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, cmes, 1)
	assert.InDelta(t, 1234.5, cmes[0].Float("speed"), 1e-9)
	assert.True(t, cmes[0].Has("speed"))
}

func TestNearEarthObjects_KeyedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/rest/v1/feed", r.URL.Path)
		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("start_date"))
		assert.NotEmpty(t, q.Get("end_date"))
		_, _ = w.Write([]byte(`{"element_count":7,"near_earth_objects":{"2025-03-01":[]}}`))
	}))
	defer srv.Close()

	c := New("TEST_KEY", srv.URL, 5*time.Second, nil, 0)

	feed, err := c.NearEarthObjects(context.Background(), 7)
	require.NoError(t, err)

	assert.InDelta(t, 7, feed.Float("element_count"), 1e-9)
	assert.True(t, feed.Has("near_earth_objects"))
}

func TestEvents_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("TEST_KEY", srv.URL, 5*time.Second, nil, 0)

	_, err := c.GeomagneticStorms(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestEvents_SecondCallServedFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[{"rbeID":"RBE-1","eventTime":"2025-03-01T10:00Z"}]`))
	}))
	defer srv.Close()

	c := New("TEST_KEY", srv.URL, 5*time.Second, icache.NewTTLCache(), time.Minute)

	first, err := c.RadiationBeltEvents(context.Background(), 2)
	require.NoError(t, err)
	second, err := c.RadiationBeltEvents(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}
