package usecase

import (
	"context"
	"sync"

	"AstroPulse/internal/domain/models"
	domsvc "AstroPulse/internal/domain/service"
	"AstroPulse/internal/services/forecast"
	applogger "AstroPulse/pkg/logger"
)

// fastCMESpeedKmS is the speed above which a CME gets an arrival
// estimate; cmeIncomingSpeedKmS marks one fast enough to raise the
// geomagnetic forecast.
const (
	fastCMESpeedKmS     = 500.0
	cmeIncomingSpeedKmS = 1000.0
)

// Forecaster runs the scorers over freshly fetched telemetry and merges
// their outputs into one consolidated risk assessment.
type Forecaster struct {
	weather   *WeatherService
	flare     *forecast.FlarePredictor
	radiation *forecast.RadiationPredictor
	enhancer  domsvc.Enhancer
	logger    *applogger.Logger
}

func NewForecaster(weather *WeatherService, flare *forecast.FlarePredictor, radiation *forecast.RadiationPredictor, enhancer domsvc.Enhancer, logger *applogger.Logger) *Forecaster {
	return &Forecaster{
		weather:   weather,
		flare:     flare,
		radiation: radiation,
		enhancer:  enhancer,
		logger:    logger,
	}
}

// Comprehensive fans out all upstream fetches, runs every scorer and
// blends the results. Upstream failures have already degraded to empty
// inputs by the time scoring starts, so the response always carries all
// predictions.
func (f *Forecaster) Comprehensive(ctx context.Context) models.ComprehensiveForecast {
	var (
		flares []models.RawEvent
		cmes   []models.RawEvent
		wind   models.Series
		xray   models.Series
		kp     models.Series
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); flares = f.weather.SolarFlares(ctx, 7) }()
	go func() { defer wg.Done(); cmes = f.weather.CMEEvents(ctx, 7) }()
	go func() { defer wg.Done(); wind = f.weather.SolarWind(ctx) }()
	go func() { defer wg.Done(); xray = f.weather.XRayFlux(ctx) }()
	go func() { defer wg.Done(); kp = f.weather.KpIndex(ctx) }()
	wg.Wait()

	flarePred := f.flare.PredictFlareProbability(flares, wind, xray)
	f.enhancer.Enhance(ctx, &flarePred)

	cmeIncoming := hasFastCME(cmes, cmeIncomingSpeedKmS)
	geomagPred := forecast.PredictGeomagneticStorm(kp, cmeIncoming)
	radiationPred := f.radiation.PredictRadiationStorm(flares)
	cmeArrival := latestCMEArrival(cmes)

	return models.ComprehensiveForecast{
		Status:      "success",
		GeneratedAt: flarePred.Timestamp,
		CMEIncoming: cmeIncoming,
		Predictions: models.ForecastSet{
			SolarFlares:      &flarePred,
			GeomagneticStorm: &geomagPred,
			RadiationStorm:   &radiationPred,
			CMEArrival:       cmeArrival,
		},
		OverallRiskAssessment: OverallRiskAssessment(flarePred, geomagPred, radiationPred),
		DataQuality:           assessDataQuality(len(flares), len(wind), len(xray)),
	}
}

// FlareForecast runs only the flare scorer.
func (f *Forecaster) FlareForecast(ctx context.Context) models.FlarePrediction {
	var (
		flares []models.RawEvent
		wind   models.Series
		xray   models.Series
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); flares = f.weather.SolarFlares(ctx, 7) }()
	go func() { defer wg.Done(); wind = f.weather.SolarWind(ctx) }()
	go func() { defer wg.Done(); xray = f.weather.XRayFlux(ctx) }()
	wg.Wait()

	pred := f.flare.PredictFlareProbability(flares, wind, xray)
	f.enhancer.Enhance(ctx, &pred)
	return pred
}

// GeomagneticForecast runs only the geomagnetic scorer.
func (f *Forecaster) GeomagneticForecast(ctx context.Context) models.GeomagneticPrediction {
	var (
		kp   models.Series
		cmes []models.RawEvent
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); kp = f.weather.KpIndex(ctx) }()
	go func() { defer wg.Done(); cmes = f.weather.CMEEvents(ctx, 3) }()
	wg.Wait()

	return forecast.PredictGeomagneticStorm(kp, hasFastCME(cmes, cmeIncomingSpeedKmS))
}

// RadiationForecast runs only the radiation scorer.
func (f *Forecaster) RadiationForecast(ctx context.Context) models.RadiationPrediction {
	flares := f.weather.SolarFlares(ctx, 7)
	return f.radiation.PredictRadiationStorm(flares)
}

// CMEArrivals estimates Earth arrival for the last 3 fast CMEs of the
// 3-day window.
func (f *Forecaster) CMEArrivals(ctx context.Context) []models.CMEArrivalForecast {
	cmes := f.weather.CMEEvents(ctx, 3)

	fast := make([]models.RawEvent, 0, len(cmes))
	for _, cme := range cmes {
		if cme.Has("speed") && cme.Float("speed") > fastCMESpeedKmS {
			fast = append(fast, cme)
		}
	}
	if len(fast) > 3 {
		fast = fast[len(fast)-3:]
	}

	out := make([]models.CMEArrivalForecast, 0, len(fast))
	for _, cme := range fast {
		out = append(out, forecast.PredictCMEArrival(cme.Float("speed"), cme.String("startTime")))
	}
	return out
}

// ProtonFlux extrapolates the most recent GOES proton flux sample.
func (f *Forecaster) ProtonFlux(ctx context.Context) models.ProtonFluxForecast {
	series := f.weather.ProtonFlux(ctx)

	current := 1.0
	if len(series) > 0 {
		if v := series[len(series)-1].FloatAt(1); v > 0 {
			current = v
		}
	}
	return f.radiation.PredictProtonFlux(current)
}

// Capabilities reports the enhancer feature flags probed at startup.
func (f *Forecaster) Capabilities() models.Capabilities {
	return f.enhancer.Capabilities()
}

// ModelInfo describes the deployed scoring models.
func (f *Forecaster) ModelInfo() models.ModelInfo {
	var info models.ModelInfo
	info.Models.SolarFlares = models.ModelDescriptor{
		Name:       "Solar Flare Probability Model",
		Version:    f.flare.Version(),
		Confidence: f.flare.Confidence(),
	}
	info.Models.Radiation = models.ModelDescriptor{
		Name:       "Radiation Storm Model",
		Version:    f.radiation.Version(),
		Confidence: f.radiation.Confidence(),
	}
	info.Capabilities = f.enhancer.Capabilities()
	return info
}

// latestCMEArrival estimates arrival for the most recent fast CME of the
// window, or nil when none qualifies.
func latestCMEArrival(cmes []models.RawEvent) *models.CMEArrivalForecast {
	var latest models.RawEvent
	for _, cme := range cmes {
		if cme.Has("speed") && cme.Float("speed") > fastCMESpeedKmS {
			latest = cme
		}
	}
	if latest == nil {
		return nil
	}
	arrival := forecast.PredictCMEArrival(latest.Float("speed"), latest.String("startTime"))
	return &arrival
}

// OverallRiskAssessment blends the three scorer outputs: 40% flare tier,
// 35% geomagnetic storm probability, 25% radiation storm probability.
func OverallRiskAssessment(flare models.FlarePrediction, geomag models.GeomagneticPrediction, radiation models.RadiationPrediction) models.OverallRisk {
	score := riskToScore(flare.RiskLevel)*0.4 +
		geomag.StormProbability*0.35 +
		radiation.RadiationStormProbability*0.25

	var level, color, message string
	switch {
	case score >= 0.7:
		level, color = models.RiskHigh, "red"
		message = "Significant space weather activity expected"
	case score >= 0.5:
		level, color = models.RiskElevated, "orange"
		message = "Moderate space weather activity possible"
	case score >= 0.3:
		level, color = models.RiskModerate, "yellow"
		message = "Minor space weather activity possible"
	default:
		level, color = models.RiskLow, "green"
		message = "Quiet space weather conditions expected"
	}

	return models.OverallRisk{
		RiskLevel:       level,
		RiskScore:       roundScore(score),
		Color:           color,
		Message:         message,
		PrimaryConcerns: primaryConcerns(flare, geomag, radiation),
	}
}

func riskToScore(level string) float64 {
	switch level {
	case models.RiskHigh:
		return 0.85
	case models.RiskModerate:
		return 0.6
	case models.RiskLow:
		return 0.3
	case models.RiskMinimal:
		return 0.1
	default:
		return 0.3
	}
}

// primaryConcerns is ordered: flare, geomagnetic, radiation, fallback.
func primaryConcerns(flare models.FlarePrediction, geomag models.GeomagneticPrediction, radiation models.RadiationPrediction) []string {
	var concerns []string

	if flare.RiskLevel == models.RiskHigh || flare.RiskLevel == models.RiskModerate {
		concerns = append(concerns, "Solar flare activity")
	}
	if geomag.StormProbability > 0.5 {
		concerns = append(concerns, "Geomagnetic disturbances")
	}
	if radiation.RadiationStormProbability > 0.5 {
		concerns = append(concerns, "Radiation hazards")
	}
	if len(concerns) == 0 {
		concerns = append(concerns, "No significant concerns")
	}
	return concerns
}

func hasFastCME(cmes []models.RawEvent, threshold float64) bool {
	for _, cme := range cmes {
		if cme.Has("speed") && cme.Float("speed") > threshold {
			return true
		}
	}
	return false
}

func assessDataQuality(flares, wind, xray int) models.DataQuality {
	score := 0.0

	switch {
	case flares >= 5:
		score += 0.4
	case flares >= 2:
		score += 0.2
	}
	switch {
	case wind >= 10:
		score += 0.3
	case wind >= 5:
		score += 0.15
	}
	switch {
	case xray >= 10:
		score += 0.3
	case xray >= 5:
		score += 0.15
	}

	var rating string
	switch {
	case score >= 0.8:
		rating = "Excellent"
	case score >= 0.6:
		rating = "Good"
	case score >= 0.4:
		rating = "Fair"
	default:
		rating = "Limited"
	}

	dq := models.DataQuality{Score: roundScore(score), Rating: rating}
	dq.DataPoints.Flares = flares
	dq.DataPoints.SolarWind = wind
	dq.DataPoints.XRayFlux = xray
	return dq
}

func roundScore(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
