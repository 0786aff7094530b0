package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroPulse/internal/domain/models"
)

func newTestAlertService(t *testing.T, events *fakeEvents) *AlertService {
	t.Helper()
	l := testLogger(t)
	return NewAlertService(NewWeatherService(events, &fakeConditions{}, l), l)
}

func TestActive_FiltersBySeverity(t *testing.T) {
	events := &fakeEvents{
		flares: []models.RawEvent{
			{"flrID": "FLR-1", "classType": "X1.5", "peakTime": "2025-03-01T12:30Z", "beginTime": "2025-03-01T12:00Z"},
			{"flrID": "FLR-2", "classType": "C1.0", "beginTime": "2025-03-01T08:00Z"},
		},
		cmes: []models.RawEvent{
			{"activityID": "CME-1", "speed": 1500.0, "startTime": "2025-03-01T11:00Z"},
			{"activityID": "CME-2", "speed": 400.0, "startTime": "2025-03-01T09:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 2)
	types := []string{alerts[0].Type, alerts[1].Type}
	assert.Contains(t, types, "solar_flare")
	assert.Contains(t, types, "cme")
	for _, a := range alerts {
		assert.NotEqual(t, "FLR-2", a.ID, "C-class flare must not alert")
		assert.NotEqual(t, "CME-2", a.ID, "slow CME must not alert")
	}
}

func TestActive_CMEAlertSpeedText(t *testing.T) {
	events := &fakeEvents{
		cmes: []models.RawEvent{
			{"activityID": "CME-1", "speed": 1500.0, "startTime": "2025-03-01T11:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 1)
	assert.Equal(t, "Speed: 1500.0 km/s", alerts[0].Description)
}

func TestActive_SortedNewestFirst(t *testing.T) {
	events := &fakeEvents{
		flares: []models.RawEvent{
			{"flrID": "FLR-old", "classType": "M1.0", "beginTime": "2025-03-01T01:00Z"},
			{"flrID": "FLR-new", "classType": "M2.0", "beginTime": "2025-03-02T01:00Z"},
		},
		belts: []models.RawEvent{
			{"rbeID": "RBE-1", "eventTime": "2025-03-01T18:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 3)
	assert.Equal(t, "FLR-new", alerts[0].ID)
	assert.Equal(t, "RBE-1", alerts[1].ID)
	assert.Equal(t, "FLR-old", alerts[2].ID)
}

func TestActive_RadiationBeltAlwaysIncluded(t *testing.T) {
	events := &fakeEvents{
		belts: []models.RawEvent{
			{"rbeID": "RBE-1", "eventTime": "2025-03-01T18:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 1)
	assert.Equal(t, "radiation", alerts[0].Type)
	assert.Equal(t, "moderate", alerts[0].Severity)
	assert.Equal(t, "Radiation Belt Enhancement", alerts[0].Title)
	assert.Equal(t, "NASA DONKI", alerts[0].Source)
}

func TestActive_GeomagneticStormKpThreshold(t *testing.T) {
	events := &fakeEvents{
		storms: []models.RawEvent{
			{
				"gstID":      "GST-severe",
				"startTime":  "2025-03-01T06:00Z",
				"allKpIndex": []interface{}{map[string]interface{}{"kpIndex": 8.0}},
			},
			{
				"gstID":      "GST-mild",
				"startTime":  "2025-03-01T07:00Z",
				"allKpIndex": []interface{}{map[string]interface{}{"kpIndex": 5.0}},
			},
			{
				"gstID":     "GST-no-kp",
				"startTime": "2025-03-01T08:00Z",
			},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 1)
	assert.Equal(t, "GST-severe", alerts[0].ID)
	assert.Equal(t, "Geomagnetic Storm (Kp 8.0)", alerts[0].Title)
	assert.Equal(t, "high", alerts[0].Severity)
}

func TestActive_FlareAlertFieldDefaults(t *testing.T) {
	events := &fakeEvents{
		flares: []models.RawEvent{
			{"flrID": "FLR-1", "classType": "X2.0", "beginTime": "2025-03-01T12:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 1)
	assert.Equal(t, "Solar Flare X2.0 detected", alerts[0].Title)
	assert.Equal(t, "Peak time: N/A", alerts[0].Description)
	assert.Equal(t, "extreme", alerts[0].Severity)
}

func TestSummary_CountsBySeverity(t *testing.T) {
	events := &fakeEvents{
		flares: []models.RawEvent{
			{"flrID": "FLR-1", "classType": "X1.0", "beginTime": "2025-03-01T12:00Z"},
			{"flrID": "FLR-2", "classType": "M1.0", "beginTime": "2025-03-01T11:00Z"},
		},
		belts: []models.RawEvent{
			{"rbeID": "RBE-1", "eventTime": "2025-03-01T10:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	summary := svc.Summary(context.Background())

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Extreme)
	assert.Equal(t, 1, summary.High)
	assert.Equal(t, 1, summary.Moderate)
	assert.Equal(t, 0, summary.Low)
}

func TestActive_UpstreamFailureDegrades(t *testing.T) {
	events := &fakeEvents{
		flaresErr: assert.AnError,
		belts: []models.RawEvent{
			{"rbeID": "RBE-1", "eventTime": "2025-03-01T10:00Z"},
		},
	}
	svc := newTestAlertService(t, events)

	alerts := svc.Active(context.Background())

	require.Len(t, alerts, 1)
	assert.Equal(t, "RBE-1", alerts[0].ID)
}
