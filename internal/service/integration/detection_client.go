package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/service/mock"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

type DetectionClient interface {
	DetectAIContent(ctx context.Context, text string, useMock bool) (models.AIDetectionResponse, error)
	DetectPlagiarism(ctx context.Context, text, title string, useMock bool) (models.PlagiarismResponse, error)
	AIProvider() string
	PlagiarismProvider() string
	CredentialPresent() bool
}

type ClientConfig struct {
	APIKey             string
	BaseURL            string
	AIDetectionPath    string
	PlagiarismPath     string
	AIProvider         string
	PlagiarismProvider string
	Timeout            time.Duration
}

type detectionClient struct {
	apiKey             string
	baseURL            string
	aiDetectionPath    string
	plagiarismPath     string
	aiProvider         string
	plagiarismProvider string
	aiSchema           *gojsonschema.Schema
	plagiarismSchema   *gojsonschema.Schema
	mock               *mock.Generator
	client             *http.Client
	logger             zerolog.Logger
}

func NewDetectionClient(cfg ClientConfig, generator *mock.Generator, logger zerolog.Logger) (DetectionClient, error) {
	aiSchema, err := providerSchema(cfg.AIProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to build ai detection schema: %w", err)
	}

	plagiarismSchema, err := providerSchema(cfg.PlagiarismProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to build plagiarism schema: %w", err)
	}

	return &detectionClient{
		apiKey:             cfg.APIKey,
		baseURL:            strings.TrimRight(cfg.BaseURL, "/"),
		aiDetectionPath:    cfg.AIDetectionPath,
		plagiarismPath:     cfg.PlagiarismPath,
		aiProvider:         cfg.AIProvider,
		plagiarismProvider: cfg.PlagiarismProvider,
		aiSchema:           aiSchema,
		plagiarismSchema:   plagiarismSchema,
		mock:               generator,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

func (c *detectionClient) AIProvider() string {
	return c.aiProvider
}

func (c *detectionClient) PlagiarismProvider() string {
	return c.plagiarismProvider
}

func (c *detectionClient) CredentialPresent() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

func (c *detectionClient) DetectAIContent(ctx context.Context, text string, useMock bool) (models.AIDetectionResponse, error) {
	if useMock {
		c.logger.Info().Str("provider", c.aiProvider).Msg("Using mock AI detection data")
		return c.mock.AIDetection(text, c.aiProvider), nil
	}

	if err := c.checkCredential(); err != nil {
		return nil, err
	}

	payload := models.AIDetectionRequest{
		Providers:         c.aiProvider,
		Text:              text,
		FallbackProviders: "",
	}

	var resp models.AIDetectionResponse
	if err := c.post(ctx, c.aiDetectionPath, payload, c.aiSchema, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *detectionClient) DetectPlagiarism(ctx context.Context, text, title string, useMock bool) (models.PlagiarismResponse, error) {
	if useMock {
		c.logger.Info().Str("provider", c.plagiarismProvider).Msg("Using mock plagiarism detection data")
		return c.mock.Plagiarism(text, c.plagiarismProvider), nil
	}

	if err := c.checkCredential(); err != nil {
		return nil, err
	}

	payload := models.PlagiarismRequest{
		Providers: c.plagiarismProvider,
		Text:      text,
		Title:     title,
	}

	var resp models.PlagiarismResponse
	if err := c.post(ctx, c.plagiarismPath, payload, c.plagiarismSchema, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *detectionClient) checkCredential() error {
	if c.CredentialPresent() {
		return nil
	}

	c.logger.Error().
		Bool("credential_set", c.apiKey != "").
		Int("credential_length", len(c.apiKey)).
		Msg("Provider credential validation failed")

	return ErrMissingCredential
}

func (c *detectionClient) post(ctx context.Context, path string, payload interface{}, schema *gojsonschema.Schema, dst interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrRequestSetupFailed, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequestSetupFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("url", url).Int("body_bytes", len(body)).Msg("Sending detection request")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("Detection request failed")
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrNoResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		classified := classifyFailure(resp.StatusCode, raw)
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("reason", Reason(classified)).
			Str("body", string(raw)).
			Msg("Provider returned an error")
		return classified
	}

	if err := validateBody(schema, raw); err != nil {
		c.logger.Error().Err(err).Msg("Provider response does not match the expected shape")
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrMalformedResponse, err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Detection request completed")

	return nil
}

// classifyFailure разбирает тело ошибки: сначала статус 402, затем поля
// message, error, detail и ключ "No more credits". Сообщение про кончившиеся
// кредиты тоже считается CreditsExhausted.
func classifyFailure(status int, raw []byte) error {
	if status == http.StatusPaymentRequired {
		return ErrCreditsExhausted
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err == nil && payload != nil {
		for _, key := range []string{"message", "error", "detail"} {
			if v, ok := payload[key]; ok && truthy(v) {
				msg := stringify(v)
				if signalsNoCredits(msg) {
					return fmt.Errorf("%w: %s", ErrCreditsExhausted, msg)
				}
				return &ProviderError{StatusCode: status, Message: msg}
			}
		}
		if v, ok := payload["No more credits"]; ok && truthy(v) {
			return ErrCreditsExhausted
		}
	}

	return &StatusError{StatusCode: status, Body: string(raw)}
}

func signalsNoCredits(msg string) bool {
	return strings.Contains(msg, "No more credits") || strings.Contains(msg, "API credits exhausted")
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
