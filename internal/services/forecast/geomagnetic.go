package forecast

import (
	"AstroPulse/internal/domain/models"
)

// PredictGeomagneticStorm estimates storm intensity over the next 24
// hours from recent Kp history and whether a fast CME is inbound.
func PredictGeomagneticStorm(kpHistory models.Series, cmeIncoming bool) models.GeomagneticPrediction {
	if len(kpHistory) == 0 {
		return models.GeomagneticPrediction{
			StormProbability: 0.1,
			PredictedMaxKp:   2,
			StormLevel:       "None",
		}
	}

	recent := kpHistory.Tail(5)
	var sum float64
	for _, row := range recent {
		sum += row.FloatAt(1)
	}
	avgKp := sum / float64(len(recent))

	var predictedKp, stormProb float64
	if cmeIncoming {
		predictedKp = minF(avgKp+3, 9)
		stormProb = 0.85
	} else {
		predictedKp = minF(avgKp+1, 7)
		if avgKp > 4 {
			stormProb = 0.3
		} else {
			stormProb = 0.1
		}
	}

	level, impacts := stormLevel(predictedKp)

	return models.GeomagneticPrediction{
		Timestamp:        nowISO(),
		CurrentKp:        round1(avgKp),
		PredictedMaxKp:   round1(predictedKp),
		StormProbability: round2(stormProb),
		StormLevel:       level,
		ForecastPeriod:   "24 hours",
		Impacts:          impacts,
	}
}

func stormLevel(predictedKp float64) (string, []string) {
	switch {
	case predictedKp >= 7:
		return "Severe (G4-G5)", []string{
			"Widespread power grid problems possible",
			"Spacecraft operations significantly affected",
			"HF radio blackouts in many areas",
			"GPS navigation errors likely",
		}
	case predictedKp >= 5:
		return "Moderate (G2-G3)", []string{
			"Power systems may experience voltage alarms",
			"Spacecraft may need corrective actions",
			"HF radio propagation affected",
			"GPS accuracy reduced",
		}
	default:
		return "Minor (G1) or None", []string{
			"Minimal impact expected",
			"Possible minor fluctuations in power grids",
			"Aurora visible at high latitudes",
		}
	}
}
