package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
)
