package api

import (
	"AstroPulse/internal/usecase"
	xhttp "AstroPulse/pkg/http"
	xlogger "AstroPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AlertsHandler serves the synthesized alert endpoints.
type AlertsHandler struct {
	logger *xlogger.Logger
	alerts *usecase.AlertService
}

func NewAlertsHandler(logger *xlogger.Logger, alerts *usecase.AlertService) *AlertsHandler {
	return &AlertsHandler{logger: logger, alerts: alerts}
}

func (h *AlertsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/alerts")
	g.GET("/active", h.Active)
	g.GET("/summary", h.Summary)
}

func (h *AlertsHandler) Active(c echo.Context) error {
	alerts := h.alerts.Active(c.Request().Context())
	return xhttp.RawResponse(c, map[string]interface{}{
		"status": "success",
		"count":  len(alerts),
		"alerts": alerts,
	})
}

func (h *AlertsHandler) Summary(c echo.Context) error {
	return xhttp.RawResponse(c, map[string]interface{}{
		"status":  "success",
		"summary": h.alerts.Summary(c.Request().Context()),
	})
}
