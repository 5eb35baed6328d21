// Package puzzle implements the fetch-through cache for daily puzzle answers.
package puzzle

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"wordlecache/internal/db"
	"wordlecache/internal/metrics"
	"wordlecache/internal/models"
	"wordlecache/internal/upstream"
	"wordlecache/internal/validation"
)

// ErrInvalidDate is returned for keys that are not well-formed calendar dates.
var ErrInvalidDate = errors.New("invalid date key")

// UnknownAnswer is the sentinel substituted when the best-effort yesterday
// lookup fails for any reason.
const UnknownAnswer = "UNKNOWN"

// Store is the persistence surface the service needs.
type Store interface {
	GetPuzzleByDate(ctx context.Context, date string) (*models.Puzzle, error)
	UpsertPuzzle(ctx context.Context, p *models.Puzzle) error
}

// Service resolves a date key to its puzzle answer. A stored record is served
// directly; on a miss the upstream provider is fetched once, the record is
// persisted, and the answer returned. Safe for concurrent use: concurrent
// misses for the same date may both fetch, and the store's idempotent upsert
// converges them on one row.
type Service struct {
	store   Store
	fetcher upstream.Fetcher
	loc     *time.Location
}

// NewService creates the cache service. loc anchors "yesterday" to the
// provider's day boundary rather than the server's local zone.
func NewService(store Store, fetcher upstream.Fetcher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: store, fetcher: fetcher, loc: loc}
}

// Answer returns the answer for a date key.
//
// Errors: ErrInvalidDate for malformed keys (checked before any store or
// network access), upstream.ErrNotFound when the provider has no record for
// the date, upstream.ErrUnavailable for transient provider failures. Storage
// failures are never surfaced: a failed read degrades to a miss, a failed
// write degrades to an uncached-but-successful response.
func (s *Service) Answer(ctx context.Context, date string) (models.PuzzleAnswer, error) {
	if !validation.ValidateDateKey(date) {
		return models.PuzzleAnswer{}, ErrInvalidDate
	}

	cached, err := s.store.GetPuzzleByDate(ctx, date)
	if err == nil {
		slog.Debug("cache hit", "date", date)
		metrics.RecordLookup(metrics.OutcomeHit)
		return cached.Answer(), nil
	}
	if !errors.Is(err, db.ErrPuzzleNotFound) {
		slog.Error("store read failed, treating as cache miss", "date", date, "error", err)
	}

	slog.Info("cache miss, fetching upstream", "date", date)
	metrics.RecordLookup(metrics.OutcomeMiss)
	doc, err := s.fetcher.Fetch(ctx, date)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			metrics.RecordFetch(metrics.ResultNotFound)
		} else {
			metrics.RecordFetch(metrics.ResultUnavailable)
		}
		return models.PuzzleAnswer{}, err
	}
	metrics.RecordFetch(metrics.ResultOK)

	p := &models.Puzzle{
		Date:            date,
		ExternalID:      doc.ID,
		Solution:        doc.Solution,
		PrintDate:       doc.PrintDate,
		DaysSinceLaunch: doc.DaysSinceLaunch,
		Editor:          doc.Editor,
		RawPayload:      doc.Raw,
	}

	if err := s.store.UpsertPuzzle(ctx, p); err != nil {
		// The fetched answer is still served; only caching is lost.
		slog.Error("store write failed, serving uncached answer", "date", date, "error", err)
	}

	return p.Answer(), nil
}

// YesterdayAnswer resolves yesterday's solution for the landing page. It is
// best-effort: every error from Answer collapses into the UnknownAnswer
// sentinel so the page itself can never fail on this path.
func (s *Service) YesterdayAnswer(ctx context.Context) string {
	answer, err := s.Answer(ctx, s.yesterdayKey(time.Now()))
	if err != nil {
		slog.Warn("yesterday answer unavailable", "error", err)
		return UnknownAnswer
	}
	return strings.ToUpper(answer.Solution)
}

// yesterdayKey formats the day before now in the provider's time zone.
func (s *Service) yesterdayKey(now time.Time) string {
	return now.In(s.loc).AddDate(0, 0, -1).Format(time.DateOnly)
}
