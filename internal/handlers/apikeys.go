package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wordlecache/internal/models"
)

// APIKeyHandler issues API keys. Issuance is a stub: keys are opaque random
// values, not recorded anywhere and not enforced by any endpoint.
type APIKeyHandler struct{}

// NewAPIKeyHandler creates a new API key handler.
func NewAPIKeyHandler() *APIKeyHandler {
	return &APIKeyHandler{}
}

// Create issues a fresh key.
func (h *APIKeyHandler) Create(c fiber.Ctx) error {
	return jsonSuccess(c, models.APIKeyResponse{Key: uuid.NewString()})
}
