package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradhire/matchengine/internal/types"
)

// RankJobsForCandidate scores every active job for the candidate and returns
// the top matches ordered by descending score. Zero-score results are
// included; callers decide whether to display them. Returns
// ErrProfileNotFound when the candidate has no profile.
func (e *Engine) RankJobsForCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.MatchResult, error) {
	if limit <= 0 {
		limit = types.DefaultRankLimit
	}

	profile, err := e.store.GetProfileByUserID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	jobs, err := e.store.ListActiveJobs(ctx, types.JobFilters{Limit: e.maxPopulation})
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	results := make([]types.MatchResult, 0, len(jobs))
	scores := make([]int, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		score, reasons := Score(profile, job.Eligibility)
		results = append(results, newMatchResult(job, score, reasons))
		scores = append(scores, score)
	}

	sortMatchesByScore(results)
	if len(results) > limit {
		results = results[:limit]
	}

	e.recordScores(ctx, scores)
	e.logger.Debug("ranked jobs for candidate",
		zap.String("candidate_id", candidateID.String()),
		zap.Int("population", len(jobs)),
		zap.Int("returned", len(results)))

	return results, nil
}

// RankCandidatesForJob scores candidates against a job and returns the top
// matches ordered by descending score. The candidate pool is pre-filtered by
// the job's eligibility sets and minimum CGPA at the store level, fetching up
// to twice the limit; only candidates scoring above zero are returned.
// Returns ErrJobNotFound when the job id does not resolve.
func (e *Engine) RankCandidatesForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]types.UserMatch, error) {
	if limit <= 0 {
		limit = types.DefaultCandidateLimit
	}

	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	profiles, err := e.store.ListEligibleProfiles(ctx, job.Eligibility, 2*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible profiles: %w", err)
	}

	matches := make([]types.UserMatch, 0, len(profiles))
	scores := make([]int, 0, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		score, reasons := Score(profile, job.Eligibility)
		scores = append(scores, score)
		if score == 0 {
			continue
		}
		matches = append(matches, types.UserMatch{
			ProfileID:     profile.ID,
			UserID:        profile.UserID,
			MatchScore:    score,
			MatchReasons:  reasons,
			Name:          profile.Name,
			Email:         profile.Email,
			Qualification: profile.Qualification,
			Stream:        profile.Stream,
			YearOfPassout: profile.YearOfPassout,
			CGPA:          profile.CGPA,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	e.recordScores(ctx, scores)
	e.logger.Debug("ranked candidates for job",
		zap.String("job_id", jobID.String()),
		zap.Int("pool", len(profiles)),
		zap.Int("returned", len(matches)))

	return matches, nil
}

// newMatchResult builds a MatchResult with the job's display snapshot.
func newMatchResult(job *types.Job, score int, reasons []string) types.MatchResult {
	return types.MatchResult{
		JobID:        job.ID,
		MatchScore:   score,
		MatchReasons: reasons,
		Title:        job.Title,
		Company:      job.Company,
		JobType:      job.JobType,
		Location:     job.Location,
		Salary:       job.Salary,
		Deadline:     job.Deadline,
	}
}

func sortMatchesByScore(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
}
