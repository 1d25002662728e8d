package mock

import (
	"strings"
	"unicode"
)

const (
	sampleAIText         = "Sample text for AI detection"
	samplePlagiarismText = "Sample text for plagiarism detection"
)

// Segment splits text after sentence-terminal punctuation that is followed by
// whitespace. Whitespace-only pieces are dropped; text without a terminator
// comes back as a single segment.
func Segment(text string) []string {
	var segments []string

	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}

		segments = appendSegment(segments, string(runes[start:i+1]))

		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if start < len(runes) {
		segments = appendSegment(segments, string(runes[start:]))
	}

	if len(segments) == 0 && strings.TrimSpace(text) != "" {
		segments = []string{strings.TrimSpace(text)}
	}

	return segments
}

func appendSegment(segments []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return segments
	}
	return append(segments, s)
}

func isTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}
