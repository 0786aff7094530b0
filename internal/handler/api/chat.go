package api

import (
	"AstroPulse/internal/domain/models"
	"AstroPulse/internal/usecase"
	xhttp "AstroPulse/pkg/http"
	xlogger "AstroPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatHandler serves the space weather assistant endpoints.
type ChatHandler struct {
	logger *xlogger.Logger
	chat   *usecase.ChatService
}

func NewChatHandler(logger *xlogger.Logger, chat *usecase.ChatService) *ChatHandler {
	return &ChatHandler{logger: logger, chat: chat}
}

func (h *ChatHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/chat")
	g.POST("/message", h.Message)
	g.GET("/health", h.Health)
}

// Message routes the question to a live feed. Fetch failures surface
// here as a 500 with the cause, unlike the forecast endpoints which
// degrade silently.
func (h *ChatHandler) Message(c echo.Context) error {
	req := &models.ChatRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.chat.Reply(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("chat reply error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("Error generating response: %v", err).WithError(err))
	}
	return xhttp.RawResponse(c, res)
}

func (h *ChatHandler) Health(c echo.Context) error {
	return xhttp.RawResponse(c, map[string]interface{}{
		"status":  "operational",
		"message": "Space Weather Assistant is ready",
	})
}
