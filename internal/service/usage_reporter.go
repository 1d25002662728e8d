package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/models"
	"github.com/RubachokBoss/textinspect/internal/service/page"
	"github.com/RubachokBoss/textinspect/internal/worker"
	"github.com/RubachokBoss/textinspect/internal/worker/queue"
)

type noopReporter struct{}

// NewNoopReporter is used when event publishing is disabled.
func NewNoopReporter() page.UsageReporter {
	return noopReporter{}
}

func (noopReporter) DetectionCompleted(context.Context, models.DetectionCompletedEvent) {}

type queuedReporter struct {
	pool      *worker.WorkerPool
	publisher queue.EventPublisher
	logger    zerolog.Logger
}

// NewQueuedReporter publishes events from the worker pool. Publish errors are
// logged and never reach the caller.
func NewQueuedReporter(pool *worker.WorkerPool, publisher queue.EventPublisher, logger zerolog.Logger) page.UsageReporter {
	return &queuedReporter{
		pool:      pool,
		publisher: publisher,
		logger:    logger,
	}
}

func (r *queuedReporter) DetectionCompleted(_ context.Context, event models.DetectionCompletedEvent) {
	accepted := r.pool.Submit(func(ctx context.Context) {
		if err := r.publisher.PublishDetectionCompleted(ctx, event); err != nil {
			r.logger.Error().Err(err).Str("event_id", event.EventID).Msg("Failed to publish detection event")
		}
	})
	if !accepted {
		r.logger.Warn().Str("event_id", event.EventID).Msg("Detection event dropped")
	}
}
