package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"one", 1},
		{"  two   words ", 2},
		{"line\nbreaks\tand tabs", 4},
	}

	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "session not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "session not found" {
		t.Errorf("Expected message 'session not found', got '%s'", body["message"])
	}
	if body["error"] != "Not Found" {
		t.Errorf("Expected error 'Not Found', got '%s'", body["error"])
	}
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi","bogus":1}`))
	var dst struct {
		Text string `json:"text"`
	}
	if err := ReadJSON(req, &dst); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestValidateUUID(t *testing.T) {
	if !ValidateUUID(GenerateUUID()) {
		t.Error("Expected generated uuid to validate")
	}
	if ValidateUUID("not-a-uuid") {
		t.Error("Expected invalid uuid to fail")
	}
}
