package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradhire/matchengine/internal/types"
)

// Bonuses applied on top of the base score during advanced matching
const (
	qualificationFilterBonus = 10
	locationFilterBonus      = 5
	recencyBonus             = 3
	advancedScoreCap         = 100
	recencyWindow            = 7 * 24 * time.Hour
)

// AdvancedMatch scores the candidate against a filtered page of the job
// population. Filters narrow the population at the store level; Limit/Offset
// paginate it before scoring, so the ranking is relative to the requested
// page rather than the full matching set. Returns ErrProfileNotFound when the
// candidate has no profile.
//
// Each job gets two scores: the unmodified base score and an advanced score
// adding contextual bonuses (+10 when the job's accepted qualifications
// intersect the requested ones, +5 when its location is among the requested
// locations, +3 when posted within the last seven days), clamped to 100.
func (e *Engine) AdvancedMatch(ctx context.Context, candidateID uuid.UUID, filters types.AdvancedFilters, opts types.AdvancedOptions) ([]types.AdvancedMatchResult, error) {
	opts = opts.Normalize()

	profile, err := e.store.GetProfileByUserID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	jobs, err := e.store.ListActiveJobs(ctx, types.JobFilters{
		JobTypes:        filters.JobTypes,
		Locations:       filters.Locations,
		Qualifications:  filters.Qualifications,
		Streams:         filters.Streams,
		MinSalary:       filters.MinSalary,
		MaxSalary:       filters.MaxSalary,
		ExperienceLevel: filters.ExperienceLevel,
		Limit:           opts.Limit,
		Offset:          opts.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	now := time.Now()
	results := make([]types.AdvancedMatchResult, 0, len(jobs))
	scores := make([]int, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		base, reasons, breakdown := scoreWithBreakdown(profile, job.Eligibility)
		scores = append(scores, base)

		advanced := base
		if intersects(job.Eligibility.Qualifications, filters.Qualifications) {
			advanced += qualificationFilterBonus
		}
		if containsString(filters.Locations, job.Location) {
			advanced += locationFilterBonus
		}
		recent := now.Sub(job.CreatedAt) <= recencyWindow
		if recent {
			advanced += recencyBonus
		}
		if advanced > advancedScoreCap {
			advanced = advancedScoreCap
		}

		result := types.AdvancedMatchResult{
			MatchResult:        newMatchResult(job, advanced, reasons),
			BaseMatchScore:     base,
			AdvancedMatchScore: advanced,
			DetailedReasons:    detailedReasons(profile, job, filters, breakdown, recent),
			PostedAt:           job.CreatedAt,
			SalaryMin:          job.SalaryMin,
			SalaryMax:          job.SalaryMax,
		}
		results = append(results, result)
	}

	sortAdvanced(results, opts.SortBy)

	e.recordScores(ctx, scores)
	e.logger.Debug("advanced match",
		zap.String("candidate_id", candidateID.String()),
		zap.String("sort_by", opts.SortBy),
		zap.Int("page_size", len(jobs)))

	return results, nil
}

// detailedReasons builds the typed explanation entries for one advanced
// match. The per-entry scores illustrate each criterion's weight for UI
// breakdowns; the numeric match score is computed independently.
func detailedReasons(profile *types.CandidateProfile, job *types.Job, filters types.AdvancedFilters, b scoreBreakdown, recent bool) []types.DetailedMatchReason {
	reasons := make([]types.DetailedMatchReason, 0, 6)

	if b.qualificationMatched {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonQualification,
			Reason: fmt.Sprintf("%s is an accepted qualification", profile.Qualification),
			Score:  qualificationWeight,
		})
	} else {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonQualification,
			Reason: fmt.Sprintf("%s is not among the accepted qualifications", profile.Qualification),
		})
	}

	if b.streamMatched {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonStream,
			Reason: fmt.Sprintf("%s is an accepted stream", profile.Stream),
			Score:  streamWeight,
		})
	} else {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonStream,
			Reason: fmt.Sprintf("%s is not among the accepted streams", profile.Stream),
		})
	}

	if b.cgpaSatisfied {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonCGPA,
			Reason: "CGPA requirement satisfied",
			Score:  cgpaWeight,
		})
	}

	if filters.ExperienceLevel != "" && job.ExperienceLevel == filters.ExperienceLevel {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonExperience,
			Reason: fmt.Sprintf("Experience level %s matches your filter", job.ExperienceLevel),
		})
	}

	if containsString(filters.Locations, job.Location) {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonLocation,
			Reason: fmt.Sprintf("%s work matches your preferred locations", job.Location),
			Score:  locationFilterBonus,
		})
	}

	if recent {
		reasons = append(reasons, types.DetailedMatchReason{
			Type:   types.ReasonRecency,
			Reason: "Posted within the last 7 days",
			Score:  recencyBonus,
		})
	}

	return reasons
}

// sortAdvanced orders results by the requested mode: relevance by advanced
// score, date by posting time, salary by the structured range with a
// free-text parse fallback (unparseable salaries sort last).
func sortAdvanced(results []types.AdvancedMatchResult, sortBy string) {
	switch sortBy {
	case types.SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].PostedAt.After(results[j].PostedAt)
		})
	case types.SortBySalary:
		sort.SliceStable(results, func(i, j int) bool {
			return salarySortValue(&results[i]) > salarySortValue(&results[j])
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].AdvancedMatchScore > results[j].AdvancedMatchScore
		})
	}
}

func salarySortValue(r *types.AdvancedMatchResult) int {
	if r.SalaryMax != nil {
		return *r.SalaryMax
	}
	return types.ParseSalary(r.Salary)
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
