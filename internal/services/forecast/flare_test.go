package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroPulse/internal/domain/models"
)

func flares(classes ...string) []models.RawEvent {
	out := make([]models.RawEvent, 0, len(classes))
	for _, c := range classes {
		out = append(out, models.RawEvent{"classType": c})
	}
	return out
}

func seriesOfLen(n int) models.Series {
	s := make(models.Series, n)
	for i := range s {
		s[i] = models.SeriesRow{"2025-01-01 00:00:00", "1.0"}
	}
	return s
}

func TestBaseScore_AllEmptyInputs(t *testing.T) {
	p := NewFlarePredictor()

	// activity floor 0.2, both coverage scores neutral 0.5
	base := p.BaseScore(nil, nil, nil)
	assert.InDelta(t, 0.35, base, 1e-9)
}

func TestPredictFlareProbability_QuietSun(t *testing.T) {
	p := NewFlarePredictor()

	pred := p.PredictFlareProbability(nil, nil, nil)

	assert.Equal(t, models.RiskLow, pred.RiskLevel)
	assert.Equal(t, "24-48 hours", pred.ForecastPeriod)
	assert.Equal(t, "1.0.0", pred.ModelVersion)
	assert.InDelta(t, 0.78, pred.Confidence, 1e-9)
	assert.InDelta(t, 0.35*1.2, pred.Predictions.CClass.Probability, 1e-9)
	assert.InDelta(t, 0.35*0.6, pred.Predictions.MClass.Probability, 1e-9)
	assert.InDelta(t, 0.35*0.3, pred.Predictions.XClass.Probability, 1e-9)
	assert.NotEmpty(t, pred.Recommendations)
}

func TestPredictFlareProbability_ClassOrderingAndCaps(t *testing.T) {
	p := NewFlarePredictor()

	// Saturate activity with X flares so the caps bind.
	active := flares("X1.0", "X2.2", "X9.3", "X1.5", "X3.0", "X1.1", "X1.2", "X2.0", "X5.0", "X1.9")
	pred := p.PredictFlareProbability(active, seriesOfLen(200), seriesOfLen(200))

	c := pred.Predictions.CClass.Probability
	m := pred.Predictions.MClass.Probability
	x := pred.Predictions.XClass.Probability

	require.True(t, c >= m && m >= x, "C >= M >= X expected, got %v %v %v", c, m, x)
	assert.LessOrEqual(t, c, 0.95)
	assert.LessOrEqual(t, m, 0.75)
	assert.LessOrEqual(t, x, 0.45)
	assert.Equal(t, models.RiskHigh, pred.RiskLevel)
}

func TestActivityScore(t *testing.T) {
	assert.InDelta(t, 0.2, activityScore(nil), 1e-9)

	// one X, one M, one C: (0.9+0.6+0.3)/10 + 0.2
	assert.InDelta(t, 0.38, activityScore(flares("X1.0", "M2.0", "C3.0")), 1e-9)

	// cap at 0.9 regardless of count
	many := flares("X1", "X2", "X3", "X4", "X5", "X6", "X7", "X8", "X9", "X1", "X2", "X3")
	assert.InDelta(t, 0.9, activityScore(many), 1e-9)

	// records without a class are skipped, not counted
	withBlank := append(flares("M1.0"), models.RawEvent{"beginTime": "2025-01-01T00:00Z"})
	assert.InDelta(t, 0.26, activityScore(withBlank), 1e-9)
}

func TestCoverageScores(t *testing.T) {
	// below the 5-sample floor both fall back to neutral
	assert.InDelta(t, 0.5, solarWindScore(seriesOfLen(4)), 1e-9)
	assert.InDelta(t, 0.5, xrayScore(seriesOfLen(4)), 1e-9)

	// wind: 0.3 + 50/100*0.4
	assert.InDelta(t, 0.5, solarWindScore(seriesOfLen(50)), 1e-9)
	assert.InDelta(t, 0.8, solarWindScore(seriesOfLen(300)), 1e-9)

	// xray window is clamped to 10 samples: 0.5 + 10/100
	assert.InDelta(t, 0.6, xrayScore(seriesOfLen(50)), 1e-9)
}

func TestRiskLevelTiers(t *testing.T) {
	assert.Equal(t, models.RiskHigh, riskLevel(0.7))
	assert.Equal(t, models.RiskModerate, riskLevel(0.5))
	assert.Equal(t, models.RiskLow, riskLevel(0.3))
	assert.Equal(t, models.RiskMinimal, riskLevel(0.29))
}
