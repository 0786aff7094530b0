package forecast

import (
	"strings"

	"AstroPulse/internal/domain/models"
)

// FlarePredictor scores the probability of solar flares over the next
// 24-48 hours from recent flare history, solar wind coverage and X-ray
// flux coverage. It is stateless; confidence is the model's historic
// accuracy, not derived from the inputs.
type FlarePredictor struct {
	version    string
	confidence float64
}

func NewFlarePredictor() *FlarePredictor {
	return &FlarePredictor{
		version:    "1.0.0",
		confidence: 0.78,
	}
}

func (p *FlarePredictor) Version() string     { return p.version }
func (p *FlarePredictor) Confidence() float64 { return p.confidence }

// PredictFlareProbability produces per-class likelihoods, a risk tier and
// recommendations. The class probabilities are independently capped and
// intentionally not normalized to a distribution.
func (p *FlarePredictor) PredictFlareProbability(flares []models.RawEvent, wind, xray models.Series) models.FlarePrediction {
	base := p.BaseScore(flares, wind, xray)

	return models.FlarePrediction{
		Timestamp:      nowISO(),
		ForecastPeriod: "24-48 hours",
		ModelVersion:   p.version,
		Confidence:     p.confidence,
		Predictions: models.FlareClassForecasts{
			CClass: models.ClassForecast{
				Probability: minF(base*1.2, 0.95),
				Description: "Minor flares, little impact",
				Severity:    SeverityLow,
			},
			MClass: models.ClassForecast{
				Probability: minF(base*0.6, 0.75),
				Description: "Moderate flares, possible radio blackouts",
				Severity:    SeverityModerate,
			},
			XClass: models.ClassForecast{
				Probability: minF(base*0.3, 0.45),
				Description: "Major flares, significant impacts possible",
				Severity:    SeverityHigh,
			},
		},
		RiskLevel:       riskLevel(base),
		Recommendations: recommendations(base),
	}
}

// BaseScore blends the three feature scores: 50% recent activity, 30%
// solar wind coverage, 20% X-ray flux coverage.
func (p *FlarePredictor) BaseScore(flares []models.RawEvent, wind, xray models.Series) float64 {
	return activityScore(flares)*0.5 + solarWindScore(wind)*0.3 + xrayScore(xray)*0.2
}

// activityScore weights the last window's flares by class: X counts 0.9,
// M 0.6, C 0.3, over a /10 normalizer with a 0.2 floor and 0.9 cap.
func activityScore(flares []models.RawEvent) float64 {
	if len(flares) == 0 {
		return 0.2
	}

	var x, m, c int
	for _, flare := range flares {
		classType := flare.String("classType")
		if classType == "" {
			continue
		}
		switch strings.ToUpper(classType[:1]) {
		case "X":
			x++
		case "M":
			m++
		case "C":
			c++
		}
	}

	score := (float64(x)*0.9 + float64(m)*0.6 + float64(c)*0.3) / 10
	return minF(score+0.2, 0.9)
}

// solarWindScore scores sample coverage, not physical magnitude. Sparse
// data falls back to a neutral 0.5.
func solarWindScore(wind models.Series) float64 {
	if len(wind) < 5 {
		return 0.5
	}
	return minF(0.3+float64(len(wind))/100*0.4, 0.8)
}

// xrayScore scores the size of the most recent 10-sample window.
func xrayScore(xray models.Series) float64 {
	if len(xray) < 5 {
		return 0.5
	}
	recent := xray.Tail(10)
	return minF(0.5+float64(len(recent))/100, 0.8)
}

func riskLevel(score float64) string {
	switch {
	case score >= 0.7:
		return models.RiskHigh
	case score >= 0.5:
		return models.RiskModerate
	case score >= 0.3:
		return models.RiskLow
	default:
		return models.RiskMinimal
	}
}

func recommendations(score float64) []string {
	switch {
	case score >= 0.7:
		return []string{
			"Satellite operators should prepare for possible disruptions",
			"Monitor communication systems closely",
			"GPS accuracy may be affected",
			"Power grid operators should be on alert",
			"Consider postponing sensitive space operations",
		}
	case score >= 0.5:
		return []string{
			"Maintain awareness of space weather conditions",
			"Monitor alerts for any rapid changes",
			"Satellite operators should review contingency plans",
			"Aviation routes over polar regions may be affected",
		}
	case score >= 0.3:
		return []string{
			"Normal operations expected",
			"Continue routine space weather monitoring",
			"Low risk of significant impacts",
		}
	default:
		return []string{
			"Minimal solar activity expected",
			"Excellent conditions for space operations",
			"Low probability of disturbances",
		}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
