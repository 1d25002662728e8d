package integration

import (
	"errors"
	"fmt"
)

// Причины отказа внешнего провайдера. Проверяются через errors.Is.
var (
	ErrMissingCredential  = errors.New("provider credential is missing")
	ErrCreditsExhausted   = errors.New("provider credits exhausted")
	ErrProviderRejected   = errors.New("provider rejected the request")
	ErrUnexpectedStatus   = errors.New("unexpected provider status")
	ErrNoResponse         = errors.New("no response from provider")
	ErrRequestSetupFailed = errors.New("request setup failed")
	ErrMalformedResponse  = errors.New("malformed provider response")
)

// ProviderError is a structured rejection. Error returns the provider's
// message verbatim.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderRejected
}

// StatusError is a non-2xx answer without any recognizable error field.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if body == "" {
		body = "Unknown error"
	}
	return fmt.Sprintf("API Error (%d): %s", e.StatusCode, body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Reason names the failure class of err for clients of the HTTP API.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrCreditsExhausted):
		return "credits_exhausted"
	case errors.Is(err, ErrProviderRejected):
		return "provider_rejected"
	case errors.Is(err, ErrUnexpectedStatus):
		return "unexpected_status"
	case errors.Is(err, ErrNoResponse):
		return "no_response"
	case errors.Is(err, ErrRequestSetupFailed):
		return "request_setup_failed"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	default:
		return "unknown"
	}
}
