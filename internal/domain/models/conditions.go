package models

// CurrentConditions is the snapshot served by /api/weather/current: the
// most recent samples of each real-time series.
type CurrentConditions struct {
	Timestamp string `json:"timestamp"`
	SolarWind Series `json:"solar_wind"`
	KpIndex   Series `json:"kp_index"`
	XRayFlux  Series `json:"xray_flux"`
}
