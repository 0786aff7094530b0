package forecast

import (
	"fmt"
	"time"

	"AstroPulse/internal/domain/models"
	"AstroPulse/pkg/util"
)

// sunEarthDistanceKm is the mean Sun-Earth distance used for the
// constant-speed travel time estimate.
const sunEarthDistanceKm = 150_000_000

// PredictCMEArrival converts a CME's plane-of-sky speed and detection
// time into an Earth-arrival window. CMEs slower than 200 km/s are
// treated as not Earth-directed.
func PredictCMEArrival(speed float64, detectionTime string) models.CMEArrivalForecast {
	if speed < 200 {
		return models.CMEArrivalForecast{
			ImpactProbability: 0,
			Message:           "CME not Earth-directed or too slow",
		}
	}

	travelHours := sunEarthDistanceKm / (speed * 3600)

	detection := util.ParseTimeDefault(detectionTime, clock.Now().UTC())
	arrival := detection.Add(time.Duration(travelHours * float64(time.Hour)))

	severity := SeverityModerate
	warnings := []string{
		"Minor geomagnetic activity possible",
		"Aurora may be visible at high latitudes",
	}
	if speed >= 1000 {
		severity = SeverityHigh
		warnings = []string{
			"Geomagnetic storm expected",
			"Satellite operations may be affected",
			"Aurora visible at lower latitudes",
		}
	}

	return models.CMEArrivalForecast{
		DetectionTime:     detectionTime,
		Speed:             fmt.Sprintf("%s km/s", FloatText(speed)),
		EstimatedArrival:  arrival.UTC().Format(time.RFC3339),
		ArrivalWindow:     fmt.Sprintf("%.1f to %.1f hours", travelHours-6, travelHours+6),
		ImpactProbability: round2(minF(speed/2000*0.8, 0.95)),
		Severity:          severity,
		Warnings:          warnings,
	}
}
