package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/search"
	"github.com/tablewise/backend/pkg/logger"
)

type QuoteHandler struct {
	engine *search.Engine
}

func NewQuoteHandler(engine *search.Engine) *QuoteHandler {
	return &QuoteHandler{engine: engine}
}

// HandleQuote drafts a reservation request for one provider. Upstream
// failure still yields a 200 with the template message and a diagnostic
// block, so the caller always gets something to send.
func (h *QuoteHandler) HandleQuote(c *fiber.Ctx) error {
	var req search.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse quote request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	response, err := h.engine.GenerateQuote(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(response)
}
