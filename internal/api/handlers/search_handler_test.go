package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return resp.StatusCode, decoded
}

func newSearchApp() *fiber.App {
	app := fiber.New()
	handler := NewSearchHandler(nil)
	app.Post("/api/v1/search", handler.HandleSearch)
	return app
}

func TestSearchRejectsMissingUserText(t *testing.T) {
	status, body := postJSON(t, newSearchApp(), "/api/v1/search", map[string]any{
		"latitude":  37.77,
		"longitude": -122.42,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "userText is required", body["error"])
}

func TestSearchRejectsMissingCoordinates(t *testing.T) {
	status, body := postJSON(t, newSearchApp(), "/api/v1/search", map[string]any{
		"userText": "tacos",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "latitude and longitude are required", body["error"])
}

func TestSearchRejectsLoneCoordinate(t *testing.T) {
	status, body := postJSON(t, newSearchApp(), "/api/v1/search", map[string]any{
		"userText": "tacos",
		"latitude": 37.77,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "latitude and longitude are required", body["error"])
}

func TestSearchRejectsMalformedBody(t *testing.T) {
	app := newSearchApp()

	req := httptest.NewRequest("POST", "/api/v1/search", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
