package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradhire/matchengine/internal/types"
)

// Recommend returns jobs matching the candidate's preferences with a score at
// or above the preference threshold. Unlike RankJobsForCandidate, a missing
// profile is not an error here: profile completion is optional at this stage,
// so the result degrades to an empty list. Only active jobs of the preferred
// types and locations whose deadline is strictly in the future are
// considered.
func (e *Engine) Recommend(ctx context.Context, candidateID uuid.UUID, prefs types.RecommendationPrefs) ([]types.MatchResult, error) {
	prefs = prefs.Normalize()

	profile, err := e.store.GetProfileByUserID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		e.logger.Debug("no profile for recommendations", zap.String("candidate_id", candidateID.String()))
		return []types.MatchResult{}, nil
	}

	now := time.Now()
	jobs, err := e.store.ListActiveJobs(ctx, types.JobFilters{
		JobTypes:      prefs.PreferredJobTypes,
		Locations:     prefs.PreferredLocations,
		DeadlineAfter: &now,
		Limit:         e.maxPopulation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	results := make([]types.MatchResult, 0, len(jobs))
	scores := make([]int, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		score, reasons := Score(profile, job.Eligibility)
		scores = append(scores, score)
		if score < *prefs.MinMatchScore {
			continue
		}
		results = append(results, newMatchResult(job, score, reasons))
	}

	sortMatchesByScore(results)
	if len(results) > prefs.MaxResults {
		results = results[:prefs.MaxResults]
	}

	e.recordScores(ctx, scores)
	e.logger.Debug("recommended jobs",
		zap.String("candidate_id", candidateID.String()),
		zap.Int("population", len(jobs)),
		zap.Int("min_score", *prefs.MinMatchScore),
		zap.Int("returned", len(results)))

	return results, nil
}
