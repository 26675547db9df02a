package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/geocode"
	"github.com/tablewise/backend/pkg/logger"
)

type GeocodeHandler struct {
	client *geocode.Client
}

func NewGeocodeHandler(client *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{client: client}
}

func (h *GeocodeHandler) HandleGeocode(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	result, err := h.client.Lookup(c.Context(), query)
	if err != nil {
		logger.Error("Geocode lookup failed", zap.String("query", query), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Geocoding service unavailable",
		})
	}
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No match for location",
		})
	}

	return c.JSON(result)
}
