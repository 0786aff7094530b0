package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"AstroPulse/internal/domain/models"
	"AstroPulse/internal/services/forecast"
	applogger "AstroPulse/pkg/logger"
)

const alertWindowDays = 2

// AlertService synthesizes human-readable alerts from the last two days
// of DONKI events.
type AlertService struct {
	weather *WeatherService
	logger  *applogger.Logger
}

func NewAlertService(weather *WeatherService, logger *applogger.Logger) *AlertService {
	return &AlertService{weather: weather, logger: logger}
}

// Active collects alerts from all four event feeds, newest first. Feeds
// that fail upstream contribute nothing; the list still comes back.
func (s *AlertService) Active(ctx context.Context) []models.Alert {
	var flares, cmes, storms, belts []models.RawEvent

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); flares = s.weather.SolarFlares(ctx, alertWindowDays) }()
	go func() { defer wg.Done(); cmes = s.weather.CMEEvents(ctx, alertWindowDays) }()
	go func() { defer wg.Done(); storms = s.weather.GeomagneticStorms(ctx, alertWindowDays) }()
	go func() { defer wg.Done(); belts = s.weather.RadiationBeltEvents(ctx, alertWindowDays) }()
	wg.Wait()

	alerts := make([]models.Alert, 0, len(flares)+len(cmes)+len(storms)+len(belts))
	alerts = append(alerts, flareAlerts(flares)...)
	alerts = append(alerts, cmeAlerts(cmes)...)
	alerts = append(alerts, stormAlerts(storms)...)
	alerts = append(alerts, beltAlerts(belts)...)

	// ISO-8601 timestamps sort lexicographically; newest first.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Timestamp > alerts[j].Timestamp
	})
	return alerts
}

// Summary tallies the active alerts per severity.
func (s *AlertService) Summary(ctx context.Context) models.AlertSummary {
	summary := models.AlertSummary{}
	for _, alert := range s.Active(ctx) {
		summary.Total++
		switch alert.Severity {
		case forecast.SeverityExtreme:
			summary.Extreme++
		case forecast.SeverityHigh:
			summary.High++
		case forecast.SeverityModerate:
			summary.Moderate++
		default:
			summary.Low++
		}
	}
	return summary
}

// flareAlerts keeps only high and extreme class flares.
func flareAlerts(flares []models.RawEvent) []models.Alert {
	var alerts []models.Alert
	for _, flare := range flares {
		severity := forecast.ClassifyFlareSeverity(flare.String("classType"))
		if severity != forecast.SeverityHigh && severity != forecast.SeverityExtreme {
			continue
		}

		classType := flare.String("classType")
		if classType == "" {
			classType = "Unknown"
		}
		peakTime := flare.String("peakTime")
		if peakTime == "" {
			peakTime = "N/A"
		}

		alerts = append(alerts, models.Alert{
			ID:          flare.String("flrID"),
			Type:        "solar_flare",
			Severity:    severity,
			Title:       fmt.Sprintf("Solar Flare %s detected", classType),
			Description: fmt.Sprintf("Peak time: %s", peakTime),
			Timestamp:   flare.String("beginTime"),
			Source:      "NASA DONKI",
		})
	}
	return alerts
}

// cmeAlerts keeps only fast CMEs, rated by speed.
func cmeAlerts(cmes []models.RawEvent) []models.Alert {
	var alerts []models.Alert
	for _, cme := range cmes {
		severity := forecast.ClassifyCMESeverity(cme.Float("speed"))
		if severity != forecast.SeverityHigh && severity != forecast.SeverityExtreme {
			continue
		}

		alerts = append(alerts, models.Alert{
			ID:          cme.String("activityID"),
			Type:        "cme",
			Severity:    severity,
			Title:       "Coronal Mass Ejection detected",
			Description: fmt.Sprintf("Speed: %s km/s", forecast.FloatText(cme.Float("speed"))),
			Timestamp:   cme.String("startTime"),
			Source:      "NASA DONKI",
		})
	}
	return alerts
}

// stormAlerts rates geomagnetic storms by the first reported Kp reading.
func stormAlerts(storms []models.RawEvent) []models.Alert {
	var alerts []models.Alert
	for _, storm := range storms {
		kpRows := storm.List("allKpIndex")
		if len(kpRows) == 0 {
			continue
		}
		kp := kpRows[0].Float("kpIndex")

		var severity string
		switch {
		case kp >= 7:
			severity = forecast.SeverityHigh
		case kp >= 5:
			severity = forecast.SeverityModerate
		default:
			severity = forecast.SeverityLow
		}
		if severity != forecast.SeverityHigh && severity != forecast.SeverityExtreme {
			continue
		}

		alerts = append(alerts, models.Alert{
			ID:          storm.String("gstID"),
			Type:        "geomagnetic_storm",
			Severity:    severity,
			Title:       fmt.Sprintf("Geomagnetic Storm (Kp %s)", forecast.FloatText(kp)),
			Description: fmt.Sprintf("Start time: %s", storm.String("startTime")),
			Timestamp:   storm.String("startTime"),
			Source:      "NASA DONKI",
		})
	}
	return alerts
}

// beltAlerts surfaces every radiation belt enhancement at a fixed
// moderate severity.
func beltAlerts(belts []models.RawEvent) []models.Alert {
	var alerts []models.Alert
	for _, belt := range belts {
		alerts = append(alerts, models.Alert{
			ID:          belt.String("rbeID"),
			Type:        "radiation",
			Severity:    forecast.SeverityModerate,
			Title:       "Radiation Belt Enhancement",
			Description: fmt.Sprintf("Event time: %s", belt.String("eventTime")),
			Timestamp:   belt.String("eventTime"),
			Source:      "NASA DONKI",
		})
	}
	return alerts
}
