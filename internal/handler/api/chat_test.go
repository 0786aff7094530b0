package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroPulse/internal/domain/models"
	domsvc "AstroPulse/internal/domain/service"
	"AstroPulse/internal/usecase"
	applogger "AstroPulse/pkg/logger"
)

// failingEvents breaks the flare feed while the rest keeps working.
type failingEvents struct {
	stubEvents
	err error
}

func (f *failingEvents) SolarFlares(context.Context, int) ([]models.RawEvent, error) {
	return nil, f.err
}

func newChatTestServer(t *testing.T, events domsvc.EventProvider, conditions *stubConditions) *echo.Echo {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	e := echo.New()
	NewChatHandler(l, usecase.NewChatService(events, conditions, l)).RegisterRoutes(e)
	return e
}

func postMessage(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestChatMessage_RepliesWithSources(t *testing.T) {
	e := newChatTestServer(t, &stubEvents{}, &stubConditions{})

	rec := postMessage(e, `{"message": "is my satellite safe?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Response, "Satellite Threats")
	assert.Equal(t, []string{"General Space Weather Knowledge"}, body.Sources)
}

func TestChatMessage_UpstreamErrorIsInternalError(t *testing.T) {
	events := &failingEvents{err: errors.New("donki timeout")}
	e := newChatTestServer(t, events, &stubConditions{})

	rec := postMessage(e, `{"message": "recent flare?"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Error generating response: donki timeout", body.Message)
}

func TestChatMessage_MissingMessageIsBadRequest(t *testing.T) {
	e := newChatTestServer(t, &stubEvents{}, &stubConditions{})

	rec := postMessage(e, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHealth(t *testing.T) {
	e := newChatTestServer(t, &stubEvents{}, &stubConditions{})

	rec := doGet(e, "/api/chat/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "operational", body.Status)
	assert.Equal(t, "Space Weather Assistant is ready", body.Message)
}
