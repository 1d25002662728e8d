package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/repository"
	"github.com/RubachokBoss/textinspect/internal/service/integration"
	"github.com/RubachokBoss/textinspect/internal/service/page"
	"github.com/RubachokBoss/textinspect/pkg/utils"
)

type SessionService interface {
	Create(kind models.DetectionKind) (page.Snapshot, error)
	Get(id string) (page.Snapshot, error)
	Submit(ctx context.Context, id string, sub page.Submission) (page.Snapshot, error)
	EnableDemoMode(id string) (page.Snapshot, error)
	Delete(id string) error
	Analyze(ctx context.Context, kind models.DetectionKind, sub page.Submission, forceMock bool) (page.Snapshot, error)
	ActiveSessions() int
}

type sessionService struct {
	repo      repository.SessionRepository
	workflows map[models.DetectionKind]page.Workflow
	minWords  int
	reporter  page.UsageReporter
	logger    zerolog.Logger
}

func NewSessionService(
	repo repository.SessionRepository,
	client integration.DetectionClient,
	minWords int,
	reporter page.UsageReporter,
	logger zerolog.Logger,
) SessionService {
	if reporter == nil {
		reporter = NewNoopReporter()
	}

	return &sessionService{
		repo: repo,
		workflows: map[models.DetectionKind]page.Workflow{
			models.KindAIDetection:         page.NewAIWorkflow(client),
			models.KindPlagiarismDetection: page.NewPlagiarismWorkflow(client),
		},
		minWords: minWords,
		reporter: reporter,
		logger:   logger,
	}
}

func (s *sessionService) newPage(id string, kind models.DetectionKind) (*page.Page, error) {
	workflow, ok := s.workflows[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return page.NewPage(id, workflow, page.Options{
		MinWords: s.minWords,
		Reporter: s.reporter,
		Logger:   s.logger,
	})
}

func (s *sessionService) Create(kind models.DetectionKind) (page.Snapshot, error) {
	p, err := s.newPage(utils.GenerateUUID(), kind)
	if err != nil {
		return page.Snapshot{}, err
	}

	s.repo.Save(p)
	s.logger.Info().Str("session_id", p.ID()).Str("kind", kind.String()).Msg("Session created")

	return p.Snapshot(), nil
}

func (s *sessionService) get(id string) (*page.Page, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return p, nil
}

func (s *sessionService) Get(id string) (page.Snapshot, error) {
	p, err := s.get(id)
	if err != nil {
		return page.Snapshot{}, err
	}
	return p.Snapshot(), nil
}

func (s *sessionService) Submit(ctx context.Context, id string, sub page.Submission) (page.Snapshot, error) {
	p, err := s.get(id)
	if err != nil {
		return page.Snapshot{}, err
	}
	return p.Submit(ctx, sub)
}

func (s *sessionService) EnableDemoMode(id string) (page.Snapshot, error) {
	p, err := s.get(id)
	if err != nil {
		return page.Snapshot{}, err
	}

	s.logger.Info().Str("session_id", id).Msg("Demo mode enabled")
	return p.EnableDemoMode(), nil
}

func (s *sessionService) Delete(id string) error {
	if !s.repo.Delete(id) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.logger.Info().Str("session_id", id).Msg("Session deleted")
	return nil
}

// Analyze runs a single submission on a throwaway page that is never stored.
func (s *sessionService) Analyze(ctx context.Context, kind models.DetectionKind, sub page.Submission, forceMock bool) (page.Snapshot, error) {
	p, err := s.newPage("", kind)
	if err != nil {
		return page.Snapshot{}, err
	}

	if forceMock {
		p.EnableDemoMode()
	}
	return p.Submit(ctx, sub)
}

func (s *sessionService) ActiveSessions() int {
	return s.repo.Count()
}
