package models

// Risk tiers emitted by the flare scorer and the overall assessment.
const (
	RiskMinimal  = "MINIMAL"
	RiskLow      = "LOW"
	RiskModerate = "MODERATE"
	RiskElevated = "ELEVATED"
	RiskHigh     = "HIGH"
)

// ClassForecast is the per-flare-class likelihood estimate. The three
// class probabilities are independently capped, not a distribution; they
// deliberately do not sum to 1.
type ClassForecast struct {
	Probability float64 `json:"probability"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
}

// FlareClassForecasts groups the C/M/X class estimates.
type FlareClassForecasts struct {
	CClass ClassForecast `json:"C_class"`
	MClass ClassForecast `json:"M_class"`
	XClass ClassForecast `json:"X_class"`
}

// FlarePrediction is the flare scorer output for the next 24-48 hours.
type FlarePrediction struct {
	Timestamp       string              `json:"timestamp"`
	ForecastPeriod  string              `json:"forecast_period"`
	ModelVersion    string              `json:"model_version"`
	Confidence      float64             `json:"confidence"`
	Predictions     FlareClassForecasts `json:"predictions"`
	RiskLevel       string              `json:"risk_level"`
	Recommendations []string            `json:"recommendations"`
	Insights        []string            `json:"ai_insights,omitempty"`
}

// GeomagneticPrediction is the geomagnetic storm scorer output.
type GeomagneticPrediction struct {
	Timestamp        string   `json:"timestamp,omitempty"`
	CurrentKp        float64  `json:"current_kp"`
	PredictedMaxKp   float64  `json:"predicted_max_kp"`
	StormProbability float64  `json:"storm_probability"`
	StormLevel       string   `json:"storm_level"`
	ForecastPeriod   string   `json:"forecast_period,omitempty"`
	Impacts          []string `json:"impacts,omitempty"`
}

// RadiationPrediction is the radiation storm scorer output.
type RadiationPrediction struct {
	Timestamp                 string   `json:"timestamp"`
	ForecastPeriod            string   `json:"forecast_period"`
	RadiationStormProbability float64  `json:"radiation_storm_probability"`
	PredictedScale            string   `json:"predicted_scale"`
	Severity                  string   `json:"severity"`
	Confidence                float64  `json:"confidence"`
	Impacts                   []string `json:"impacts"`
	AffectedRegions           []string `json:"affected_regions"`
	Recommendations           []string `json:"recommendations"`
}

// ProtonFluxForecast is the 6-hour proton flux trend estimate.
type ProtonFluxForecast struct {
	Timestamp     string `json:"timestamp"`
	CurrentFlux   string `json:"current_flux"`
	PredictedFlux string `json:"predicted_flux_6h"`
	Trend         string `json:"trend"`
	AlertLevel    string `json:"alert_level"`
}

// CMEArrivalForecast is the Earth-arrival estimate for one CME. A CME
// that is too slow or not Earth-directed carries only Message and a zero
// impact probability.
type CMEArrivalForecast struct {
	DetectionTime     string   `json:"detection_time,omitempty"`
	Speed             string   `json:"cme_speed,omitempty"`
	EstimatedArrival  string   `json:"estimated_arrival,omitempty"`
	ArrivalWindow     string   `json:"arrival_window,omitempty"`
	ImpactProbability float64  `json:"impact_probability"`
	Severity          string   `json:"severity,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
	Message           string   `json:"message,omitempty"`
}

// EarthDirected reports whether an arrival estimate was produced.
func (f CMEArrivalForecast) EarthDirected() bool {
	return f.EstimatedArrival != ""
}

// OverallRisk is the weighted blend of all scorers.
type OverallRisk struct {
	RiskLevel       string   `json:"risk_level"`
	RiskScore       float64  `json:"risk_score"`
	Color           string   `json:"color"`
	Message         string   `json:"message"`
	PrimaryConcerns []string `json:"primary_concerns"`
}

// DataQuality summarizes how much telemetry backed a forecast.
type DataQuality struct {
	Score      float64 `json:"score"`
	Rating     string  `json:"rating"`
	DataPoints struct {
		Flares    int `json:"flares"`
		SolarWind int `json:"solar_wind"`
		XRayFlux  int `json:"xray_flux"`
	} `json:"data_points"`
}

// ForecastSet groups the individual scorer outputs.
type ForecastSet struct {
	SolarFlares      *FlarePrediction       `json:"solar_flares"`
	GeomagneticStorm *GeomagneticPrediction `json:"geomagnetic_storm"`
	RadiationStorm   *RadiationPrediction   `json:"radiation_storm"`
	CMEArrival       *CMEArrivalForecast    `json:"cme_arrival"`
}

// ComprehensiveForecast is the full aggregate response body.
type ComprehensiveForecast struct {
	Status                string      `json:"status"`
	GeneratedAt           string      `json:"generated_at"`
	CMEIncoming           bool        `json:"cme_incoming"`
	Predictions           ForecastSet `json:"predictions"`
	OverallRiskAssessment OverallRisk `json:"overall_risk_assessment"`
	DataQuality           DataQuality `json:"data_quality"`
}

// Capabilities are the optional-enhancer feature flags probed once at
// startup. None of them is load-bearing.
type Capabilities struct {
	AdvancedML   bool `json:"advanced_ml"`
	Transformers bool `json:"transformers"`
	Ollama       bool `json:"ollama"`
}

// ModelDescriptor identifies one scoring model.
type ModelDescriptor struct {
	Name       string  `json:"name"`
	Version    string  `json:"version"`
	Confidence float64 `json:"confidence"`
}

// ModelInfo describes the deployed models and the enhancer flags.
type ModelInfo struct {
	Models struct {
		SolarFlares ModelDescriptor `json:"solar_flare_predictor"`
		Radiation   ModelDescriptor `json:"radiation_predictor"`
	} `json:"models"`
	Capabilities Capabilities `json:"capabilities"`
}
