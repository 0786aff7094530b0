package api

import (
	"AstroPulse/internal/domain/models"
	"AstroPulse/internal/usecase"
	xhttp "AstroPulse/pkg/http"
	xlogger "AstroPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WeatherHandler serves the raw telemetry endpoints under /api/weather.
type WeatherHandler struct {
	logger  *xlogger.Logger
	weather *usecase.WeatherService
}

func NewWeatherHandler(logger *xlogger.Logger, weather *usecase.WeatherService) *WeatherHandler {
	return &WeatherHandler{logger: logger, weather: weather}
}

func (h *WeatherHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/weather")
	g.GET("/current", h.Current)
	g.GET("/solar-flares", h.SolarFlares)
	g.GET("/cme", h.CMEEvents)
	g.GET("/geomagnetic-storms", h.GeomagneticStorms)
	g.GET("/asteroids", h.Asteroids)
	g.GET("/radiation", h.Radiation)
	g.GET("/solar-wind", h.SolarWind)
	g.GET("/kp-index", h.KpIndex)
}

func (h *WeatherHandler) Current(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.weather.CurrentConditions(c.Request().Context()))
}

func (h *WeatherHandler) SolarFlares(c echo.Context) error {
	req := &models.DaysRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	flares := h.weather.SolarFlares(c.Request().Context(), req.Days)
	return xhttp.ListResponse(c, len(flares), flares)
}

func (h *WeatherHandler) CMEEvents(c echo.Context) error {
	req := &models.DaysRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	cmes := h.weather.CMEEvents(c.Request().Context(), req.Days)
	return xhttp.ListResponse(c, len(cmes), cmes)
}

func (h *WeatherHandler) GeomagneticStorms(c echo.Context) error {
	req := &models.DaysRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	storms := h.weather.GeomagneticStorms(c.Request().Context(), req.Days)
	return xhttp.ListResponse(c, len(storms), storms)
}

// Asteroids serves the NEO feed. The feed is a single keyed object, so
// no count is attached.
func (h *WeatherHandler) Asteroids(c echo.Context) error {
	req := &models.NEODaysRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	feed := h.weather.NearEarthObjects(c.Request().Context(), req.Days)
	return xhttp.SuccessResponse(c, feed)
}

func (h *WeatherHandler) Radiation(c echo.Context) error {
	req := &models.DaysRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	events := h.weather.RadiationBeltEvents(c.Request().Context(), req.Days)
	return xhttp.ListResponse(c, len(events), events)
}

// SolarWind serves the most recent 50 magnetometer points.
func (h *WeatherHandler) SolarWind(c echo.Context) error {
	wind := h.weather.SolarWind(c.Request().Context())
	return xhttp.SuccessResponse(c, wind.Tail(50))
}

// KpIndex serves the full planetary K-index series.
func (h *WeatherHandler) KpIndex(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.weather.KpIndex(c.Request().Context()))
}
