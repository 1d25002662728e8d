package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

type Task func(ctx context.Context)

// WorkerPool runs background tasks off the request path. Submit never blocks
// longer than submitWait.
type WorkerPool struct {
	tasks       chan Task
	quit        chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	busyWorkers atomic.Int32
	maxWorkers  int
	processed   atomic.Int64
	dropped     atomic.Int64
	submitWait  time.Duration
	logger      zerolog.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewWorkerPool(maxWorkers int, logger zerolog.Logger) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		tasks:      make(chan Task, maxWorkers*10),
		quit:       make(chan struct{}),
		maxWorkers: maxWorkers,
		submitWait: time.Second,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) error {
	wp.logger.Info().Int("max_workers", wp.maxWorkers).Msg("Starting worker pool")

	for i := 0; i < wp.maxWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}

	wp.logger.Info().Int("workers_started", wp.maxWorkers).Msg("Worker pool started")
	return nil
}

// Stop drains queued tasks and waits for the workers to exit.
func (wp *WorkerPool) Stop() error {
	wp.stopOnce.Do(func() {
		wp.logger.Info().Msg("Stopping worker pool")

		close(wp.quit)
		wp.wg.Wait()
		wp.cancel()

		wp.logger.Info().Msg("Worker pool stopped")
	})
	return nil
}

func (wp *WorkerPool) stopped() bool {
	select {
	case <-wp.quit:
		return true
	default:
		return false
	}
}

// Submit queues task and reports whether it was accepted. The tasks channel
// is never closed, so a send racing with Stop cannot panic.
func (wp *WorkerPool) Submit(task Task) bool {
	if wp.stopped() {
		wp.logger.Warn().Msg("Worker pool is stopped, task dropped")
		return false
	}

	select {
	case wp.tasks <- task:
		return true
	default:
	}

	wp.logger.Warn().Msg("Worker pool task queue is full")

	timer := time.NewTimer(wp.submitWait)
	defer timer.Stop()

	select {
	case wp.tasks <- task:
		return true
	case <-wp.quit:
		wp.logger.Warn().Msg("Worker pool stopped while waiting, task dropped")
		wp.dropped.Add(1)
		return false
	case <-timer.C:
		wp.logger.Error().Msg("Failed to submit task to worker pool (timeout)")
		wp.dropped.Add(1)
		return false
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	wp.logger.Debug().Int("worker_id", id).Msg("Worker started")

	for {
		select {
		case task := <-wp.tasks:
			wp.run(id, task)
		case <-wp.quit:
			// дочищаем то, что успели поставить в очередь
			for {
				select {
				case task := <-wp.tasks:
					wp.run(id, task)
				default:
					wp.logger.Debug().Int("worker_id", id).Msg("Worker stopped")
					return
				}
			}
		}
	}
}

func (wp *WorkerPool) run(id int, task Task) {
	wp.busyWorkers.Add(1)

	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error().
				Int("worker_id", id).
				Interface("panic", r).
				Msg("Worker recovered from panic")
		}

		wp.busyWorkers.Add(-1)
		wp.processed.Add(1)
	}()

	task(wp.ctx)
}

func (wp *WorkerPool) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"busy_workers":   int(wp.busyWorkers.Load()),
		"max_workers":    wp.maxWorkers,
		"queue_length":   len(wp.tasks),
		"queue_capacity": cap(wp.tasks),
		"processed":      wp.processed.Load(),
		"dropped":        wp.dropped.Load(),
	}
}
