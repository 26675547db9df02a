package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newHoursApp() *fiber.App {
	app := fiber.New()
	handler := NewHoursHandler(nil)
	app.Post("/api/v1/business-hours", handler.HandleBusinessHours)
	return app
}

func TestBusinessHoursRejectsMissingBusinessID(t *testing.T) {
	status, body := postJSON(t, newHoursApp(), "/api/v1/business-hours", map[string]any{})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "businessId is required", body["error"])
}

func TestBusinessHoursReadsCamelCaseField(t *testing.T) {
	// The contract field is businessId; a snake_case key is not parsed.
	status, body := postJSON(t, newHoursApp(), "/api/v1/business-hours", map[string]any{
		"business_id": "biz-1",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "businessId is required", body["error"])
}
