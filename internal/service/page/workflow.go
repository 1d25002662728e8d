package page

import (
	"context"
	"fmt"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/internal/service/presenter"
)

// Submission is the form content of one analysis request.
type Submission struct {
	Text  string
	Title string
}

// Outcome is a settled, successful detection.
type Outcome struct {
	Response interface{}
	View     interface{}
	Segments int
	Score    float64
	Cost     float64
}

// Workflow binds a page to one detection kind.
type Workflow interface {
	Kind() models.DetectionKind
	Provider() string
	ServiceName() string
	Detect(ctx context.Context, sub Submission, useMock bool) (*Outcome, error)
}

type aiWorkflow struct {
	client integration.DetectionClient
}

func NewAIWorkflow(client integration.DetectionClient) Workflow {
	return &aiWorkflow{client: client}
}

func (w *aiWorkflow) Kind() models.DetectionKind { return models.KindAIDetection }
func (w *aiWorkflow) Provider() string           { return w.client.AIProvider() }
func (w *aiWorkflow) ServiceName() string        { return "AI detection" }

func (w *aiWorkflow) Detect(ctx context.Context, sub Submission, useMock bool) (*Outcome, error) {
	resp, err := w.client.DetectAIContent(ctx, sub.Text, useMock)
	if err != nil {
		return nil, err
	}

	provider := w.Provider()
	result, ok := resp[provider]
	if !ok || result == nil {
		return nil, fmt.Errorf("%w: no %s result", integration.ErrMalformedResponse, provider)
	}

	return &Outcome{
		Response: resp,
		View:     presenter.AIDetection(resp, provider, useMock),
		Segments: len(result.Items),
		Score:    result.AIScore,
		Cost:     result.Cost,
	}, nil
}

type plagiarismWorkflow struct {
	client integration.DetectionClient
}

func NewPlagiarismWorkflow(client integration.DetectionClient) Workflow {
	return &plagiarismWorkflow{client: client}
}

func (w *plagiarismWorkflow) Kind() models.DetectionKind { return models.KindPlagiarismDetection }
func (w *plagiarismWorkflow) Provider() string           { return w.client.PlagiarismProvider() }
func (w *plagiarismWorkflow) ServiceName() string        { return "plagiarism detection" }

func (w *plagiarismWorkflow) Detect(ctx context.Context, sub Submission, useMock bool) (*Outcome, error) {
	resp, err := w.client.DetectPlagiarism(ctx, sub.Text, sub.Title, useMock)
	if err != nil {
		return nil, err
	}

	provider := w.Provider()
	result, ok := resp[provider]
	if !ok || result == nil {
		return nil, fmt.Errorf("%w: no %s result", integration.ErrMalformedResponse, provider)
	}

	return &Outcome{
		Response: resp,
		View:     presenter.Plagiarism(resp, provider, sub.Title, useMock),
		Segments: len(result.Items),
		Score:    result.PlagiaScore,
		Cost:     result.Cost,
	}, nil
}
