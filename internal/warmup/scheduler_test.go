package warmup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aevon-lab/catalog-pricing/internal/core/catalog"
	pricingmocks "github.com/aevon-lab/catalog-pricing/internal/mocks/pricing"
	"github.com/aevon-lab/catalog-pricing/internal/pricing"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	q := pricingmocks.NewQueries(t)
	q.EXPECT().LowestTotalPriceBrand(mock.Anything).
		Return(catalog.BrandSummary{}, false, errors.New("store down")).
		Once()
	q.EXPECT().CategoryPricing(mock.Anything).
		Return(pricing.CategoryPricing{}, nil).
		Once()

	NewScheduler(time.Minute, q, zap.NewNop()).RunOnce(context.Background())
}

func TestScheduler_RunOnceSkipsWhenCancelled(t *testing.T) {
	q := pricingmocks.NewQueries(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewScheduler(time.Minute, q, zap.NewNop()).RunOnce(ctx)
}

func TestScheduler_StartTicksUntilCancelled(t *testing.T) {
	q := pricingmocks.NewQueries(t)
	ticks := make(chan struct{}, 16)
	q.EXPECT().LowestTotalPriceBrand(mock.Anything).
		Return(catalog.BrandSummary{}, false, nil)
	q.EXPECT().CategoryPricing(mock.Anything).
		Run(func(context.Context) {
			select {
			case ticks <- struct{}{}:
			default:
			}
		}).
		Return(pricing.CategoryPricing{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewScheduler(5*time.Millisecond, q, zap.NewNop()).Start(ctx) }()

	// Initial pass plus at least one tick.
	for i := 0; i < 2; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatal("warm-up pass did not run")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
