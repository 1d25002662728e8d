// Package page drives one detection form through validation, the provider
// call and its settled outcome.
package page

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/pkg/utils"
)

// UsageReporter is told about every successful detection.
type UsageReporter interface {
	DetectionCompleted(ctx context.Context, event models.DetectionCompletedEvent)
}

type Options struct {
	MinWords int
	Reporter UsageReporter
	Logger   zerolog.Logger
}

type Snapshot struct {
	ID                  string               `json:"id,omitempty"`
	Kind                models.DetectionKind `json:"kind"`
	Provider            string               `json:"provider"`
	State               string               `json:"state"`
	Error               *ErrorInfo           `json:"error,omitempty"`
	DemoMode            bool                 `json:"demo_mode"`
	ProviderUnavailable bool                 `json:"provider_unavailable"`
	OfferDemoMode       bool                 `json:"offer_demo_mode"`
	Title               string               `json:"title,omitempty"`
	Demo                bool                 `json:"demo"`
	Response            interface{}          `json:"response,omitempty"`
	View                interface{}          `json:"view,omitempty"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type Page struct {
	mu       sync.Mutex
	id       string
	workflow Workflow
	fsm      *stateMachine
	minWords int
	reporter UsageReporter
	logger   zerolog.Logger

	demoMode            bool
	providerUnavailable bool
	errInfo             *ErrorInfo
	title               string
	outcome             *Outcome
	outcomeFromMock     bool
	updatedAt           time.Time
}

func NewPage(id string, workflow Workflow, opts Options) (*Page, error) {
	fsm, err := newStateMachine(id)
	if err != nil {
		return nil, err
	}

	minWords := opts.MinWords
	if minWords <= 0 {
		minWords = 10
	}

	return &Page{
		id:        id,
		workflow:  workflow,
		fsm:       fsm,
		minWords:  minWords,
		reporter:  opts.Reporter,
		logger:    opts.Logger.With().Str("page_id", id).Str("kind", workflow.Kind().String()).Logger(),
		updatedAt: time.Now(),
	}, nil
}

func (p *Page) ID() string {
	return p.id
}

// Submit validates sub and, when it passes, performs the detection call.
// Detection failures are reported in the snapshot, not as an error.
func (p *Page) Submit(ctx context.Context, sub Submission) (Snapshot, error) {
	p.mu.Lock()
	if p.fsm.current() == StateLoading {
		p.mu.Unlock()
		return Snapshot{}, ErrSubmissionInFlight
	}

	if err := p.fsm.fire(eventSubmit); err != nil {
		p.mu.Unlock()
		return Snapshot{}, err
	}

	if err := validate(sub.Text, p.minWords); err != nil {
		p.setError(err)
		fireErr := p.fsm.fire(eventReject)
		snap := p.snapshotLocked()
		p.mu.Unlock()
		return snap, fireErr
	}

	useMock := p.demoMode || p.providerUnavailable
	p.errInfo = nil
	p.outcome = nil
	p.title = sub.Title
	if err := p.fsm.fire(eventDispatch); err != nil {
		p.mu.Unlock()
		return Snapshot{}, err
	}
	p.updatedAt = time.Now()
	p.mu.Unlock()

	started := time.Now()
	outcome, err := p.workflow.Detect(ctx, sub, useMock)
	elapsed := time.Since(started)

	p.mu.Lock()
	var event *models.DetectionCompletedEvent
	if err != nil {
		p.handleFailure(err, useMock)
		err = p.fsm.fire(eventFail)
	} else {
		p.outcome = outcome
		p.outcomeFromMock = useMock
		err = p.fsm.fire(eventResolve)
		event = p.completedEvent(outcome, useMock, elapsed)

		p.logger.Info().
			Bool("demo", useMock).
			Int("segments", outcome.Segments).
			Dur("duration", elapsed).
			Msg("Detection completed")
	}
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if event != nil && p.reporter != nil {
		p.reporter.DetectionCompleted(ctx, *event)
	}

	return snap, err
}

// EnableDemoMode switches every later submission to simulated results.
func (p *Page) EnableDemoMode() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.demoMode = true
	p.errInfo = nil
	p.updatedAt = time.Now()
	return p.snapshotLocked()
}

func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Page) handleFailure(err error, usedMock bool) {
	p.setError(err)

	if errors.Is(err, integration.ErrCreditsExhausted) {
		p.providerUnavailable = true
		p.logger.Warn().Err(err).Msg("Provider credits exhausted, offering demo mode")
		return
	}

	p.logger.Error().Err(err).Str("reason", p.errInfo.Reason).Msg("Detection failed")
	if !usedMock {
		p.logger.Info().Msg("Falling back to demo mode for the next submission")
		p.demoMode = true
	}
}

func (p *Page) setError(err error) {
	p.errInfo = &ErrorInfo{
		Reason:  reason(err),
		Message: userMessage(err, p.workflow.ServiceName()),
	}
	p.updatedAt = time.Now()
}

func (p *Page) completedEvent(outcome *Outcome, demo bool, elapsed time.Duration) *models.DetectionCompletedEvent {
	return &models.DetectionCompletedEvent{
		EventID:     utils.GenerateUUID(),
		SessionID:   p.id,
		Kind:        p.workflow.Kind(),
		Provider:    p.workflow.Provider(),
		Demo:        demo,
		Segments:    outcome.Segments,
		Score:       outcome.Score,
		Cost:        outcome.Cost,
		DurationMs:  elapsed.Milliseconds(),
		CompletedAt: time.Now().UTC(),
	}
}

func (p *Page) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:                  p.id,
		Kind:                p.workflow.Kind(),
		Provider:            p.workflow.Provider(),
		State:               p.fsm.current(),
		DemoMode:            p.demoMode,
		ProviderUnavailable: p.providerUnavailable,
		OfferDemoMode:       p.providerUnavailable && !p.demoMode && p.errInfo != nil,
		Title:               p.title,
		UpdatedAt:           p.updatedAt,
	}
	if p.errInfo != nil {
		info := *p.errInfo
		snap.Error = &info
	}
	if p.outcome != nil {
		snap.Demo = p.outcomeFromMock
		snap.Response = p.outcome.Response
		snap.View = p.outcome.View
	}
	return snap
}
