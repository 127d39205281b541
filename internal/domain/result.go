package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Result is the uniform envelope produced for every operation, success or
// failure. It is stateless: constructed fresh per call and discarded after
// transport.
type Result struct {
	Success    bool   `json:"success"`
	Operation  string `json:"operation"`
	Text       string `json:"text"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	WorkingDir string `json:"working_dir"`
	RequestID  string `json:"request_id"`
	DurationMS int64  `json:"duration_ms"`
	Timestamp  string `json:"timestamp"`
}

// NewResult creates a success envelope for an operation that started at the
// given time.
func NewResult(op, workDir, text string, start time.Time) *Result {
	return &Result{
		Success:    true,
		Operation:  op,
		Text:       text,
		WorkingDir: workDir,
		RequestID:  uuid.New().String(),
		DurationMS: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// NewFailureResult creates a failure envelope from a classified error.
func NewFailureResult(op, workDir string, err error, start time.Time) *Result {
	return &Result{
		Success:    false,
		Operation:  op,
		Error:      err.Error(),
		Suggestion: SuggestionFor(err),
		WorkingDir: workDir,
		RequestID:  uuid.New().String(),
		DurationMS: time.Since(start).Milliseconds(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON serializes the result envelope for protocol transport.
func (r *Result) JSON() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return `{"success":false,"error":"failed to serialize result"}`
	}
	return string(data)
}
