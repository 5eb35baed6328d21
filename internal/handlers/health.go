package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordlecache/internal/models"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports the service as up.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok"})
}
