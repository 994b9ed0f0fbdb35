// Package warmup periodically recomputes the expensive pricing aggregates
// through the cached service, so a cache cleared by a mutation is refilled
// off the request path.
package warmup

import (
	"context"
	"time"

	"github.com/aevon-lab/catalog-pricing/internal/pricing"
	"go.uber.org/zap"
)

// Scheduler runs a warm-up pass on a fixed interval.
type Scheduler struct {
	interval time.Duration
	queries  pricing.Queries
	logger   *zap.Logger
}

// NewScheduler creates a scheduler. queries should be the cached service;
// warming the bare engine has no effect.
func NewScheduler(interval time.Duration, queries pricing.Queries, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		queries:  queries,
		logger:   logger.Named("warmup"),
	}
}

// Start runs one pass immediately and then one per tick. Runs until context
// is cancelled. No pass runs after cancellation.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("starting cache warm-up scheduler", zap.Duration("interval", s.interval))

	s.RunOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("stopping cache warm-up scheduler (context cancelled)")
			return nil
		}
	}
}

// RunOnce recomputes each aggregate. A failure is logged and does not stop
// the remaining steps.
func (s *Scheduler) RunOnce(ctx context.Context) {
	start := time.Now()

	if ctx.Err() != nil {
		return
	}
	if _, _, err := s.queries.LowestTotalPriceBrand(ctx); err != nil {
		s.logger.Error("warm-up of lowest total price brand failed", zap.Error(err))
	}

	if ctx.Err() != nil {
		return
	}
	if _, err := s.queries.CategoryPricing(ctx); err != nil {
		s.logger.Error("warm-up of category pricing failed", zap.Error(err))
	}

	s.logger.Debug("warm-up pass complete", zap.Duration("took", time.Since(start)))
}
