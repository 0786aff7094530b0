package api

import (
	"AstroPulse/internal/usecase"
	xhttp "AstroPulse/pkg/http"
	xlogger "AstroPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionsHandler serves the scorer endpoints under /api/predictions.
type PredictionsHandler struct {
	logger     *xlogger.Logger
	forecaster *usecase.Forecaster
}

func NewPredictionsHandler(logger *xlogger.Logger, forecaster *usecase.Forecaster) *PredictionsHandler {
	return &PredictionsHandler{logger: logger, forecaster: forecaster}
}

func (h *PredictionsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/predictions")
	g.GET("/comprehensive", h.Comprehensive)
	g.GET("/solar-flares", h.SolarFlares)
	g.GET("/geomagnetic-storm", h.GeomagneticStorm)
	g.GET("/radiation-storm", h.RadiationStorm)
	g.GET("/cme-arrival", h.CMEArrival)
	g.GET("/proton-flux", h.ProtonFlux)
	g.GET("/model-info", h.ModelInfo)
}

// Comprehensive carries its own status field, so it goes out unwrapped.
func (h *PredictionsHandler) Comprehensive(c echo.Context) error {
	return xhttp.RawResponse(c, h.forecaster.Comprehensive(c.Request().Context()))
}

func (h *PredictionsHandler) SolarFlares(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.forecaster.FlareForecast(c.Request().Context()))
}

func (h *PredictionsHandler) GeomagneticStorm(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.forecaster.GeomagneticForecast(c.Request().Context()))
}

func (h *PredictionsHandler) RadiationStorm(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.forecaster.RadiationForecast(c.Request().Context()))
}

func (h *PredictionsHandler) CMEArrival(c echo.Context) error {
	predictions := h.forecaster.CMEArrivals(c.Request().Context())
	if len(predictions) == 0 {
		return xhttp.SuccessResponse(c, map[string]interface{}{
			"message":     "No Earth-directed CMEs detected recently",
			"predictions": []interface{}{},
		})
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"count":       len(predictions),
		"predictions": predictions,
	})
}

func (h *PredictionsHandler) ProtonFlux(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.forecaster.ProtonFlux(c.Request().Context()))
}

func (h *PredictionsHandler) ModelInfo(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.forecaster.ModelInfo())
}
