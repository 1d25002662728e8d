package utils

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(data)
}

func ReadJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func ErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func SuccessResponse(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func GenerateUUID() string {
	return uuid.New().String()
}

func ValidateUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}

// CountWords считает слова, разделенные любыми пробельными символами.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
