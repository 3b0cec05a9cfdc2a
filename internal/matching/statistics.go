package matching

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gradhire/matchengine/internal/types"
)

// matchLogWindow bounds how far back the average match score looks.
const matchLogWindow = 30 * 24 * time.Hour

// Statistics computes a point-in-time snapshot of the candidate/job
// population: totals, the top five qualification and stream distributions,
// and the average score over the recent match log. The independent reads run
// concurrently.
func (e *Engine) Statistics(ctx context.Context) (*types.MatchingStatistics, error) {
	var stats types.MatchingStatistics
	var hasHistory bool

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := e.store.CountProfiles(gctx)
		if err != nil {
			return fmt.Errorf("failed to count profiles: %w", err)
		}
		stats.TotalCandidates = n
		return nil
	})

	g.Go(func() error {
		n, err := e.store.CountActiveJobs(gctx)
		if err != nil {
			return fmt.Errorf("failed to count active jobs: %w", err)
		}
		stats.TotalActiveJobs = n
		return nil
	})

	g.Go(func() error {
		counts, err := e.store.QualificationCounts(gctx, types.DefaultStatisticsTopN)
		if err != nil {
			return fmt.Errorf("failed to aggregate qualifications: %w", err)
		}
		stats.TopQualifications = counts
		return nil
	})

	g.Go(func() error {
		counts, err := e.store.StreamCounts(gctx, types.DefaultStatisticsTopN)
		if err != nil {
			return fmt.Errorf("failed to aggregate streams: %w", err)
		}
		stats.TopStreams = counts
		return nil
	})

	g.Go(func() error {
		avg, ok, err := e.store.AverageMatchScore(gctx, time.Now().Add(-matchLogWindow))
		if err != nil {
			return fmt.Errorf("failed to average match scores: %w", err)
		}
		stats.AverageMatchScore = avg
		hasHistory = ok
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.MatchingEfficiency = efficiencyLabel(stats.AverageMatchScore, hasHistory)
	return &stats, nil
}

// efficiencyLabel derives the coarse efficiency label from the recent
// average match score.
func efficiencyLabel(avg float64, hasHistory bool) string {
	switch {
	case !hasHistory:
		return types.EfficiencyUnknown
	case avg >= 70:
		return types.EfficiencyHigh
	case avg >= 40:
		return types.EfficiencyMedium
	default:
		return types.EfficiencyLow
	}
}
