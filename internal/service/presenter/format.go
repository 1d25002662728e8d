// Package presenter turns provider responses into display-ready view models.
// Every function here is pure and tolerates malformed input.
package presenter

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

type Status string

const (
	StatusOK    Status = "ok"
	StatusEmpty Status = "empty"
	StatusError Status = "error"
)

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// FormatPercent renders a 0..1 score as a percentage with one decimal.
func FormatPercent(score float64) string {
	return fmt.Sprintf("%.1f%%", clamp(score, 0, 1)*100)
}

// Truncate cuts text to maxLength runes and appends "..." when it had to cut.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// Domain returns the host of raw without a leading "www.".
func Domain(raw string) string {
	if raw == "" {
		return "Unknown source"
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
