package validation

import (
	"regexp"
	"time"
)

// DateKeyPattern defines the canonical puzzle date format: YYYY-MM-DD.
var DateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateKey checks that a date key has the exact YYYY-MM-DD shape and
// denotes a real calendar date. Dates like 2024-13-40 are rejected.
func ValidateDateKey(date string) bool {
	if !DateKeyPattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(time.DateOnly, date)
	return err == nil
}
