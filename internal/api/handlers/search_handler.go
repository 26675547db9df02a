package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/provider"
	"github.com/tablewise/backend/internal/search"
	"github.com/tablewise/backend/pkg/logger"
)

type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req struct {
		UserText  string   `json:"userText"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		ChatID    string   `json:"chatId"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse search request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.UserText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userText is required",
		})
	}
	if req.Latitude == nil || req.Longitude == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "latitude and longitude are required",
		})
	}

	response, err := h.engine.Search(c.Context(), search.Request{
		UserText:  req.UserText,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		ChatID:    req.ChatID,
	})
	if err != nil {
		var ue *provider.UpstreamError
		if errors.As(err, &ue) {
			logger.Error("Upstream search call failed",
				zap.Int("status", ue.Status),
				zap.String("detail", ue.Body),
			)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":           "Search provider request failed",
				"upstream_status": ue.Status,
				"upstream_detail": ue.Body,
			})
		}
		logger.Error("Search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process search",
		})
	}

	return c.JSON(response)
}
