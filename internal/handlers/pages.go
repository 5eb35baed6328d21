package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordlecache/internal/config"
)

// PageHandler renders the landing page.
type PageHandler struct {
	svc PuzzleService
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(svc PuzzleService, cfg *config.Config) *PageHandler {
	return &PageHandler{svc: svc, cfg: cfg}
}

// Home renders the landing page with yesterday's answer. The answer lookup
// is best-effort and substitutes a sentinel on failure, so this handler only
// errors if template rendering itself fails. Social bots are told to cache
// for an hour so the page rolls over soon after the day changes.
func (h *PageHandler) Home(c fiber.Ctx) error {
	yesterday := h.svc.YesterdayAnswer(c.Context())

	c.Set("Cache-Control", "public, max-age=3600")
	return c.Render("index", fiber.Map{
		"Title":           h.cfg.SiteTitle,
		"YesterdayAnswer": yesterday,
	})
}
