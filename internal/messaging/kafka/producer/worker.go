package producer

import (
	"context"
	"go-gift-api/internal/outbox"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultBatchSize    = 10
	DefaultMaxAttempts  = 5
)

type Worker struct {
	repo        outbox.Repository
	writer      MessageWriter
	logger      *zap.Logger
	interval    time.Duration
	batch       int32
	maxAttempts int32
}

func NewWorker(repo outbox.Repository, writer MessageWriter, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		repo:        repo,
		writer:      writer,
		logger:      logger.Named("outbox.worker"),
		interval:    DefaultPollInterval,
		batch:       DefaultBatchSize,
		maxAttempts: DefaultMaxAttempts,
	}
}

// Run polls the outbox until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("outbox processor started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox processor stopped")
			return
		case <-ticker.C:
			if _, err := w.ProcessPending(ctx); err != nil {
				w.logger.Error("error processing events", zap.Error(err))
			}
		}
	}
}

// ProcessPending publishes one batch and returns how many events were sent.
// A failed publish stays PENDING until it has failed maxAttempts times. Once
// an event of a wishlist fails, its later events in the batch wait for the
// next poll so they cannot overtake it.
func (w *Worker) ProcessPending(ctx context.Context) (int, error) {
	events, err := w.repo.ListPending(ctx, w.batch)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	w.logger.Debug("processing pending events", zap.Int("count", len(events)))

	blocked := make(map[uuid.UUID]bool)
	sent := 0
	for _, event := range events {
		if blocked[event.AggregateID] {
			continue
		}

		if err := publishEvent(ctx, w.writer, event); err != nil {
			status, markErr := w.repo.RecordFailure(ctx, event.ID, w.maxAttempts)
			if markErr != nil {
				w.logger.Error("failed to record publish failure", zap.String("event_id", event.ID.String()), zap.Error(markErr))
			}
			w.logger.Warn("failed to publish event",
				zap.String("event_id", event.ID.String()),
				zap.String("event_type", event.EventType),
				zap.Int32("attempt", event.Attempts+1),
				zap.String("status", status),
				zap.Error(err),
			)
			if status != outbox.StatusFailed {
				blocked[event.AggregateID] = true
			}
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			w.logger.Error("failed to mark event as SENT", zap.String("event_id", event.ID.String()), zap.Error(err))
			continue
		}

		sent++
	}

	return sent, nil
}
