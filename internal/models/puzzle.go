package models

import "time"

// Puzzle represents one day's stored puzzle answer, keyed by its canonical
// YYYY-MM-DD date. Rows are written once on a confirmed upstream fetch and
// never mutated afterwards; a re-fetch upserts identical content.
type Puzzle struct {
	Date            string    `json:"date"`
	ExternalID      int64     `json:"external_id"`
	Solution        string    `json:"solution"`
	PrintDate       string    `json:"print_date"`
	DaysSinceLaunch int64     `json:"days_since_launch"`
	Editor          string    `json:"editor"`
	RawPayload      []byte    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// Answer returns the caller-facing projection of the puzzle. Provider
// metadata (external id, editor, raw payload) is deliberately excluded.
func (p *Puzzle) Answer() PuzzleAnswer {
	return PuzzleAnswer{
		Solution:        p.Solution,
		PrintDate:       p.PrintDate,
		DaysSinceLaunch: p.DaysSinceLaunch,
	}
}
