package api

import (
	xhttp "AstroPulse/pkg/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves the banner and liveness endpoints.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

func (h *RootHandler) Root(c echo.Context) error {
	return xhttp.RawResponse(c, map[string]interface{}{
		"message": "AstroPulse API - Space Weather Monitoring",
		"status":  "operational",
	})
}

func (h *RootHandler) Health(c echo.Context) error {
	return xhttp.RawResponse(c, map[string]interface{}{"status": "healthy"})
}
