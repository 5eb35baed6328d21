package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"wordlecache/internal/models"
)

// puzzleColumns is the standard column list for puzzle queries.
const puzzleColumns = `date, external_id, solution, print_date, days_since_launch, editor, raw_payload, created_at`

// scanPuzzle scans a row into a Puzzle struct.
func scanPuzzle(row pgx.Row) (*models.Puzzle, error) {
	var p models.Puzzle
	err := row.Scan(
		&p.Date,
		&p.ExternalID,
		&p.Solution,
		&p.PrintDate,
		&p.DaysSinceLaunch,
		&p.Editor,
		&p.RawPayload,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPuzzleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPuzzleByDate returns the stored puzzle for a date, or ErrPuzzleNotFound.
func (d *DB) GetPuzzleByDate(ctx context.Context, date string) (*models.Puzzle, error) {
	query := `SELECT ` + puzzleColumns + ` FROM puzzles WHERE date = $1`
	return scanPuzzle(d.Pool.QueryRow(ctx, query, date))
}

// UpsertPuzzle inserts the puzzle for its date, replacing any existing row.
// The replace is a single-row atomic upsert, so concurrent writers for the
// same date converge on identical stored state.
func (d *DB) UpsertPuzzle(ctx context.Context, p *models.Puzzle) error {
	query := `
		INSERT INTO puzzles (date, external_id, solution, print_date, days_since_launch, editor, raw_payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			external_id = EXCLUDED.external_id,
			solution = EXCLUDED.solution,
			print_date = EXCLUDED.print_date,
			days_since_launch = EXCLUDED.days_since_launch,
			editor = EXCLUDED.editor,
			raw_payload = EXCLUDED.raw_payload
		RETURNING created_at
	`

	return d.Pool.QueryRow(ctx, query,
		p.Date,
		p.ExternalID,
		p.Solution,
		p.PrintDate,
		p.DaysSinceLaunch,
		p.Editor,
		p.RawPayload,
	).Scan(&p.CreatedAt)
}
