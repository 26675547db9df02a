package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/hours"
	"github.com/tablewise/backend/internal/provider"
	"github.com/tablewise/backend/pkg/logger"
)

type HoursHandler struct {
	details *provider.DetailClient
}

func NewHoursHandler(details *provider.DetailClient) *HoursHandler {
	return &HoursHandler{details: details}
}

// HandleBusinessHours fetches the raw hours for one business and
// returns a normalized 7-day schedule anchored to the current week.
func (h *HoursHandler) HandleBusinessHours(c *fiber.Ctx) error {
	var req struct {
		BusinessID string `json:"businessId"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse hours request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.BusinessID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "businessId is required",
		})
	}

	doc, err := h.details.BusinessDetails(c.Context(), req.BusinessID)
	if err != nil {
		var ue *provider.UpstreamError
		if errors.As(err, &ue) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":           "Business details request failed",
				"upstream_status": ue.Status,
				"upstream_detail": ue.Body,
			})
		}
		logger.Error("Business details lookup failed",
			zap.String("business_id", req.BusinessID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch business hours",
		})
	}

	schedule := hours.Normalize(doc.OpenSlots(), time.Now())

	return c.JSON(fiber.Map{
		"business_id": req.BusinessID,
		"name":        doc.Name,
		"contextual_info": fiber.Map{
			"business_hours": schedule,
		},
		"meta": fiber.Map{
			"has_hours": schedule.HasHours(),
		},
	})
}
