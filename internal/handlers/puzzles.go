package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"wordlecache/internal/models"
	"wordlecache/internal/puzzle"
	"wordlecache/internal/upstream"
)

// PuzzleService resolves date keys to puzzle answers.
type PuzzleService interface {
	Answer(ctx context.Context, date string) (models.PuzzleAnswer, error)
	YesterdayAnswer(ctx context.Context) string
}

// PuzzleHandler serves the per-date puzzle answer endpoint.
type PuzzleHandler struct {
	svc PuzzleService
}

// NewPuzzleHandler creates a new puzzle handler.
func NewPuzzleHandler(svc PuzzleService) *PuzzleHandler {
	return &PuzzleHandler{svc: svc}
}

// Get returns the answer for the date in the path. The response body is the
// bare answer shape; provider metadata never leaves the service.
func (h *PuzzleHandler) Get(c fiber.Ctx) error {
	answer, err := h.svc.Answer(c.Context(), c.Params("date"))
	if err != nil {
		switch {
		case errors.Is(err, puzzle.ErrInvalidDate):
			return jsonError(c, fiber.StatusBadRequest, "invalid date format")
		case errors.Is(err, upstream.ErrNotFound):
			return jsonError(c, fiber.StatusNotFound, "word not found")
		case errors.Is(err, upstream.ErrUnavailable):
			return jsonError(c, fiber.StatusBadGateway, "upstream unavailable")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(answer)
}
