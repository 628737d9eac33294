package workers

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Refresher is the slice of the derived-state store the worker needs.
type Refresher interface {
	RefreshRisk() error
}

// RiskRefreshWorker rebuilds the materialized ETA risk classification on
// a schedule. The refresh runs concurrently with ingestion and never
// blocks writers; readers tolerate staleness up to one interval.
type RiskRefreshWorker struct {
	logger   *zap.Logger
	repo     Refresher
	schedule string

	// busy is read by the scheduler goroutine while Execute runs.
	busy atomic.Bool
}

func NewRiskRefreshWorker(logger *zap.Logger, repo Refresher, schedule string) *RiskRefreshWorker {
	return &RiskRefreshWorker{
		logger:   logger,
		repo:     repo,
		schedule: schedule,
	}
}

func (w *RiskRefreshWorker) Schedule() string {
	return w.schedule
}

func (w *RiskRefreshWorker) Ready(time.Time) bool {
	return !w.busy.Load()
}

func (w *RiskRefreshWorker) Execute() {
	// Ready is only advisory: two ticks can pass it before either run
	// starts. The swap makes the second one a no-op.
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	started := time.Now()
	if err := w.repo.RefreshRisk(); err != nil {
		w.logger.Error("risk view refresh failed", zap.Error(err))
		return
	}

	w.logger.Info("risk view refreshed",
		zap.Duration("took", time.Since(started)),
	)
}
