// Package notify drains the email outbox. Notification rows are committed
// together with the event that triggered them; this worker polls for
// pending rows, delivers them and records the result, retrying failures a
// bounded number of times.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/emre/alumnihub/internal/app/models"
	"github.com/emre/alumnihub/internal/pkg/email"
)

type outboxStore interface {
	FetchPending(ctx context.Context, limit int) ([]models.OutboxEmail, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, sendErr string, maxAttempts int) error
	CountPending(ctx context.Context) (int64, error)
}

// Config tunes the polling loop.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Worker polls the outbox and delivers pending emails.
type Worker struct {
	store  outboxStore
	sender email.Sender
	cfg    Config
	logger zerolog.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewWorker creates a Worker. Zero config fields fall back to safe
// defaults.
func NewWorker(store outboxStore, sender email.Sender, cfg Config, logger zerolog.Logger) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Worker{
		store:  store,
		sender: sender,
		cfg:    cfg,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start launches the polling loop in its own goroutine
func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.cfg.PollInterval)
		defer ticker.Stop()

		w.logger.Info().
			Dur("poll_interval", w.cfg.PollInterval).
			Int("batch_size", w.cfg.BatchSize).
			Msg("Notification worker started")

		// Rows left over from a previous run are picked up on the first tick.
		if backlog, err := w.store.CountPending(context.Background()); err != nil {
			w.logger.Error().Err(err).Msg("Failed to count pending notifications")
		} else if backlog > 0 {
			w.logger.Info().Int64("pending", backlog).Msg("Outbox backlog found at startup")
		}

		for {
			select {
			case <-ticker.C:
				w.DrainOnce(context.Background())
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop shuts the loop down and waits for an in-flight batch to finish
func (w *Worker) Stop() {
	close(w.stop)
	w.wg.Wait()
	w.logger.Info().Msg("Notification worker stopped")
}

// DrainOnce processes a single batch of pending emails. Each email is
// marked sent or failed individually, so one bad recipient never blocks
// the rest of the batch.
func (w *Worker) DrainOnce(ctx context.Context) {
	pending, err := w.store.FetchPending(ctx, w.cfg.BatchSize)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to fetch pending notifications")
		return
	}
	if len(pending) == 0 {
		return
	}

	sent := 0
	for _, item := range pending {
		if err := w.sender.Send(item.Recipient, item.Subject, item.Body); err != nil {
			w.logger.Warn().
				Err(err).
				Int64("outbox_id", item.ID).
				Int("attempts", item.Attempts+1).
				Msg("Notification delivery failed")
			if markErr := w.store.MarkFailed(ctx, item.ID, err.Error(), w.cfg.MaxAttempts); markErr != nil {
				w.logger.Error().Err(markErr).Int64("outbox_id", item.ID).Msg("Failed to record delivery failure")
			}
			continue
		}

		if err := w.store.MarkSent(ctx, item.ID); err != nil {
			w.logger.Error().Err(err).Int64("outbox_id", item.ID).Msg("Failed to mark notification sent")
			continue
		}
		sent++
	}

	w.logger.Info().Int("sent", sent).Int("batch", len(pending)).Msg("Outbox batch processed")
}
