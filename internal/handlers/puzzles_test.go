package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"wordlecache/internal/models"
	"wordlecache/internal/puzzle"
	"wordlecache/internal/upstream"
)

type fakeService struct {
	answer    models.PuzzleAnswer
	err       error
	yesterday string
	lastDate  string
}

func (f *fakeService) Answer(ctx context.Context, date string) (models.PuzzleAnswer, error) {
	f.lastDate = date
	if f.err != nil {
		return models.PuzzleAnswer{}, f.err
	}
	return f.answer, nil
}

func (f *fakeService) YesterdayAnswer(ctx context.Context) string {
	if f.yesterday == "" {
		return puzzle.UnknownAnswer
	}
	return f.yesterday
}

func newPuzzleApp(svc PuzzleService) *fiber.App {
	app := fiber.New()
	app.Get("/puzzle/:date", NewPuzzleHandler(svc).Get)
	return app
}

func TestPuzzleGet_Success(t *testing.T) {
	svc := &fakeService{
		answer: models.PuzzleAnswer{Solution: "CRANE", PrintDate: "2024-01-15", DaysSinceLaunch: 965},
	}
	app := newPuzzleApp(svc)

	req, _ := http.NewRequest("GET", "/puzzle/2024-01-15", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if svc.lastDate != "2024-01-15" {
		t.Errorf("service received date %q, want %q", svc.lastDate, "2024-01-15")
	}

	var got models.PuzzleAnswer
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got != svc.answer {
		t.Errorf("body = %+v, want %+v", got, svc.answer)
	}
}

func TestPuzzleGet_MinimalFieldExposure(t *testing.T) {
	svc := &fakeService{
		answer: models.PuzzleAnswer{Solution: "CRANE", PrintDate: "2024-01-15", DaysSinceLaunch: 965},
	}
	app := newPuzzleApp(svc)

	req, _ := http.NewRequest("GET", "/puzzle/2024-01-15", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	want := map[string]bool{"solution": true, "print_date": true, "days_since_launch": true}
	for k := range fields {
		if !want[k] {
			t.Errorf("response exposes unexpected field %q", k)
		}
	}
	for k := range want {
		if _, ok := fields[k]; !ok {
			t.Errorf("response missing field %q", k)
		}
	}
}

func TestPuzzleGet_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid date", puzzle.ErrInvalidDate, fiber.StatusBadRequest},
		{"not found upstream", upstream.ErrNotFound, fiber.StatusNotFound},
		{"upstream unavailable", upstream.ErrUnavailable, fiber.StatusBadGateway},
		{"unexpected error", context.DeadlineExceeded, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newPuzzleApp(&fakeService{err: tt.err})

			req, _ := http.NewRequest("GET", "/puzzle/2024-01-15", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var body struct {
				Status string `json:"status"`
				Error  string `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Status != "error" || body.Error == "" {
				t.Errorf("error body = %+v, want status=error with a reason", body)
			}
		})
	}
}
