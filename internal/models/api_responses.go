package models

// PuzzleAnswer is the minimal answer shape exposed to API callers.
type PuzzleAnswer struct {
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int64  `json:"days_since_launch"`
}

// APIKeyResponse carries a newly issued API key.
type APIKeyResponse struct {
	Key string `json:"key"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
