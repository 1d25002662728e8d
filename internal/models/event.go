package models

import "time"

// DetectionCompletedEvent is published after a successful submission. It never
// carries the submitted text.
type DetectionCompletedEvent struct {
	EventID     string        `json:"event_id"`
	SessionID   string        `json:"session_id,omitempty"`
	Kind        DetectionKind `json:"kind"`
	Provider    string        `json:"provider"`
	Demo        bool          `json:"demo"`
	Segments    int           `json:"segments"`
	Score       float64       `json:"score"`
	Cost        float64       `json:"cost"`
	DurationMs  int64         `json:"duration_ms"`
	CompletedAt time.Time     `json:"completed_at"`
}
