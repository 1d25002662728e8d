package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/pkg/utils"
)

var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

const (
	msgEmptyText      = "Please enter some text to analyze."
	msgTooFewWords    = "Please enter at least %d words for accurate analysis."
	msgUnavailable    = "The API is currently unavailable due to usage limits. Would you like to try the demo mode instead?"
	msgTooLong        = "The text is too long. Please reduce the length and try again."
	msgRateLimited    = "Too many requests. Please try again in a few minutes."
	msgInvalidKey     = "Invalid API key. Please check your EDEN_AI_API_KEY environment variable."
	msgNoResponse     = "No response received from server. Please check your network connection."
	msgMalformed      = "Invalid response format from the %s service."
	msgGenericFailure = "An error occurred while analyzing the text. Please try again later."
)

// ValidationError rejects a submission before any request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func validate(text string, minWords int) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Message: msgEmptyText}
	}
	if utils.CountWords(text) < minWords {
		return &ValidationError{Message: fmt.Sprintf(msgTooFewWords, minWords)}
	}
	return nil
}

// ErrorInfo is the banner shown for a failed submission.
type ErrorInfo struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func reason(err error) string {
	if errors.Is(err, ErrValidationFailed) {
		return "validation_failed"
	}
	return integration.Reason(err)
}

// userMessage converts a detection failure into banner text.
func userMessage(err error, serviceName string) string {
	var msg string
	switch {
	case errors.Is(err, ErrValidationFailed):
		return err.Error()
	case errors.Is(err, integration.ErrCreditsExhausted):
		return msgUnavailable
	case errors.Is(err, integration.ErrMissingCredential):
		msg = msgInvalidKey
	case errors.Is(err, integration.ErrNoResponse):
		msg = msgNoResponse
	case errors.Is(err, integration.ErrMalformedResponse):
		msg = fmt.Sprintf(msgMalformed, serviceName)
	case errors.Is(err, integration.ErrRequestSetupFailed):
		msg = "Error: " + err.Error()
	default:
		msg = err.Error()
	}

	switch {
	case strings.Contains(msg, "length"):
		return msgTooLong
	case strings.Contains(msg, "rate limit"):
		return msgRateLimited
	case msg == "":
		return msgGenericFailure
	}
	return msg
}
