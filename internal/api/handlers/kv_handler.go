package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	cache "github.com/tablewise/backend/internal/cache/redis"
	"github.com/tablewise/backend/pkg/logger"
)

// KVHandler exposes the per-session key/value store. Values are opaque
// bytes; the server never inspects them. Clients use it to keep tool
// preferences and draft state across devices.
type KVHandler struct {
	store *cache.Client
	ttl   time.Duration
}

func NewKVHandler(store *cache.Client, ttl time.Duration) *KVHandler {
	return &KVHandler{store: store, ttl: ttl}
}

func (h *KVHandler) HandleGet(c *fiber.Ctx) error {
	session, key := c.Params("session"), c.Params("key")

	value, found, err := h.store.GetSessionValue(c.Context(), session, key)
	if err != nil {
		logger.Error("Session value lookup failed",
			zap.String("session", session),
			zap.String("key", key),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read session value",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Key not found",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(value)
}

func (h *KVHandler) HandlePut(c *fiber.Ctx) error {
	session, key := c.Params("session"), c.Params("key")

	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body is required",
		})
	}

	value := make([]byte, len(body))
	copy(value, body)

	if err := h.store.SetSessionValue(c.Context(), session, key, value, h.ttl); err != nil {
		logger.Error("Session value store failed",
			zap.String("session", session),
			zap.String("key", key),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store session value",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
