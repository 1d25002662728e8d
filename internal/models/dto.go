package models

import "time"

// Data Transfer Objects

type SubmitRequest struct {
	Text  string `json:"text"`
	Title string `json:"title,omitempty"`
}

type AnalyzeRequest struct {
	Text    string `json:"text"`
	Title   string `json:"title,omitempty"`
	UseMock bool   `json:"use_mock"`
}

type CreateSessionRequest struct {
	Kind DetectionKind `json:"kind"`
}

type ServiceStatusResponse struct {
	Status             string                 `json:"status"`
	CredentialPresent  bool                   `json:"credential_present"`
	AIProvider         string                 `json:"ai_provider"`
	PlagiarismProvider string                 `json:"plagiarism_provider"`
	EventsEnabled      bool                   `json:"events_enabled"`
	ActiveSessions     int                    `json:"active_sessions"`
	Workers            map[string]interface{} `json:"workers,omitempty"`
	Uptime             string                 `json:"uptime"`
	Timestamp          time.Time              `json:"timestamp"`
}
