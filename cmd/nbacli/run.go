package main

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/aself101/nba-api/internal/logging"
	"github.com/aself101/nba-api/stats"
)

// runner executes a batch of tasks sequentially with paced inter-call delays.
// One failed task does not stop the batch.
type runner struct {
	client  *stats.Client
	writer  *ReportWriter
	logger  *slog.Logger
	limiter *rate.Limiter
	jitter  time.Duration
}

func newRunner(client *stats.Client, writer *ReportWriter, logger *slog.Logger, delayMin, delayMax time.Duration) *runner {
	limit := rate.Inf
	if delayMin > 0 {
		limit = rate.Every(delayMin)
	}
	return &runner{
		client:  client,
		writer:  writer,
		logger:  logger,
		limiter: rate.NewLimiter(limit, 1),
		jitter:  delayMax - delayMin,
	}
}

// run executes every task and returns the failure count. Context cancellation
// stops the batch between tasks.
func (r *runner) run(ctx context.Context, tasks []task) int {
	runID := uuid.NewString()
	logging.Info(r.logger, "batch started",
		logging.FieldRunID, runID,
		logging.FieldCount, len(tasks))

	failed := 0
	for i, t := range tasks {
		if err := r.pace(ctx); err != nil {
			logging.Warn(r.logger, "batch interrupted", logging.FieldRunID, runID)
			return failed + len(tasks) - i
		}
		callID := uuid.NewString()
		start := time.Now()
		sections, err := dispatch(ctx, r.client, t)
		if err != nil {
			failed++
			logging.Error(r.logger, "report failed", err,
				logging.FieldRunID, runID,
				logging.FieldCallID, callID,
				logging.FieldReport, t.name())
			continue
		}
		files, err := r.writer.WriteReport(t.name(), sections)
		if err != nil {
			failed++
			logging.Error(r.logger, "report write failed", err,
				logging.FieldRunID, runID,
				logging.FieldCallID, callID,
				logging.FieldReport, t.name())
			continue
		}
		logging.Info(r.logger, "report written",
			logging.FieldRunID, runID,
			logging.FieldCallID, callID,
			logging.FieldReport, t.name(),
			logging.FieldCount, len(files),
			logging.FieldDuration, time.Since(start).Milliseconds())
	}

	logging.Info(r.logger, "batch finished",
		logging.FieldRunID, runID,
		"failed", failed)
	return failed
}

// pace waits out the limiter plus a bounded random jitter so call spacing
// never forms a fixed cadence.
func (r *runner) pace(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	if r.jitter <= 0 {
		return nil
	}
	select {
	case <-time.After(time.Duration(rand.Int63n(int64(r.jitter)))):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
