package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tablewise/backend/internal/tools"
	"github.com/tablewise/backend/pkg/logger"
)

type ToolsHandler struct {
	svc *tools.Service
}

func NewToolsHandler(svc *tools.Service) *ToolsHandler {
	return &ToolsHandler{svc: svc}
}

func (h *ToolsHandler) parseToolRequest(c *fiber.Ctx, req *tools.ToolRequest) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		logger.Error("Failed to parse tool request", zap.Error(err))
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.UserText == "" {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userText is required",
		})
	}
	return true, nil
}

func (h *ToolsHandler) HandleQuickFind(c *fiber.Ctx) error {
	var req tools.ToolRequest
	if ok, err := h.parseToolRequest(c, &req); !ok {
		return err
	}
	response, err := h.svc.QuickFind(c.Context(), req)
	if err != nil {
		return toolError(c, "quickfind", err)
	}
	return c.JSON(response)
}

func (h *ToolsHandler) HandleSafeEats(c *fiber.Ctx) error {
	var req tools.ToolRequest
	if ok, err := h.parseToolRequest(c, &req); !ok {
		return err
	}
	response, err := h.svc.SafeEats(c.Context(), req)
	if err != nil {
		return toolError(c, "safeeats", err)
	}
	return c.JSON(response)
}

func (h *ToolsHandler) HandleSoloSafe(c *fiber.Ctx) error {
	var req tools.ToolRequest
	if ok, err := h.parseToolRequest(c, &req); !ok {
		return err
	}
	response, err := h.svc.SoloSafe(c.Context(), req)
	if err != nil {
		return toolError(c, "solosafe", err)
	}
	return c.JSON(response)
}

func (h *ToolsHandler) HandleWaitWise(c *fiber.Ctx) error {
	var req tools.ToolRequest
	if ok, err := h.parseToolRequest(c, &req); !ok {
		return err
	}
	response, err := h.svc.WaitWise(c.Context(), req)
	if err != nil {
		return toolError(c, "waitwise", err)
	}
	return c.JSON(response)
}

func (h *ToolsHandler) HandleTruePrice(c *fiber.Ctx) error {
	var req tools.ToolRequest
	if ok, err := h.parseToolRequest(c, &req); !ok {
		return err
	}
	response, err := h.svc.TruePrice(c.Context(), req)
	if err != nil {
		return toolError(c, "trueprice", err)
	}
	return c.JSON(response)
}

func (h *ToolsHandler) HandlePlanDate(c *fiber.Ctx) error {
	var req tools.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse plan request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Vibe == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "vibe is required",
		})
	}
	response, err := h.svc.PlanDate(c.Context(), req)
	if err != nil {
		return toolError(c, "datestack", err)
	}
	return c.JSON(response)
}

func toolError(c *fiber.Ctx, tool string, err error) error {
	logger.Error("Tool request failed", zap.String("tool", tool), zap.Error(err))
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": "Search provider request failed",
	})
}
