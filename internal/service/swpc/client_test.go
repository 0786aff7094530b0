package swpc

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

func TestSolarWind_StripsHeaderRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/solar-wind/mag-7-day.json", r.URL.Path)
		_, _ = w.Write([]byte(`[
			["time_tag","bx_gsm","by_gsm","bz_gsm","bt","lat_gsm"],
			["2025-03-01 10:00:00.000","1.2","-0.5","3.1","3.4","10.0"],
			["2025-03-01 10:01:00.000","1.3","-0.4","3.0","3.3","11.0"]
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nil, 0)

	series, err := c.SolarWind(context.Background())
	require.NoError(t, err)

	require.Len(t, series, 2)
	assert.Equal(t, "2025-03-01 10:00:00.000", series[0].StringAt(0))
	assert.InDelta(t, 1.2, series[0].FloatAt(1), 1e-9)
}

func TestKpIndex_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nil, 0)

	series, err := c.KpIndex(context.Background())
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestSeries_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nil, 0)

	_, err := c.XRayFlux(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSeries_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nil, 0)

	_, err := c.ProtonFlux(context.Background())
	require.Error(t, err)
}

func TestSeries_SecondCallServedFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[["time_tag","kp"],["2025-03-01 10:00:00","3.67"]]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, icache.NewTTLCache(), time.Minute)

	first, err := c.KpIndex(context.Background())
	require.NoError(t, err)
	second, err := c.KpIndex(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.InDelta(t, 3.67, second[0].FloatAt(1), 1e-9)
}
