package validation

import "testing"

func TestValidateDateKey(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"valid date", "2024-01-15", true},
		{"valid leap day", "2024-02-29", true},
		{"non-leap-year feb 29", "2023-02-29", false},
		{"empty", "", false},
		{"wrong separator", "2024/01/15", false},
		{"too short", "2024-1-5", false},
		{"too long", "2024-01-150", false},
		{"trailing garbage", "2024-01-15x", false},
		{"non-numeric", "abcd-ef-gh", false},
		{"impossible month", "2024-13-01", false},
		{"impossible day", "2024-13-40", false},
		{"zero month", "2024-00-10", false},
		{"zero day", "2024-01-00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateDateKey(tt.date); got != tt.want {
				t.Errorf("ValidateDateKey(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
