package models

import "time"

// ParseResumeResponse is the envelope returned by the extraction entry
// point. Warning is set when the recovery parser had to salvage the
// result; Error is only set together with Success=false.
type ParseResumeResponse struct {
	Success        bool          `json:"success"`
	Data           *ParsedResume `json:"data,omitempty"`
	Warning        string        `json:"warning,omitempty"`
	Error          string        `json:"error,omitempty"`
	StrategyUsed   string        `json:"strategy_used,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// CompareResponse is the envelope returned by the comparison entry point
type CompareResponse struct {
	MatchScore     int               `json:"match_score"`
	Analysis       *ComparisonReport `json:"analysis"`
	StrategyUsed   string            `json:"strategy_used,omitempty"`
	ProcessingTime time.Duration     `json:"processing_time"`
	RequestID      string            `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
