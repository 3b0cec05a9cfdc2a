package types

import (
	"github.com/go-playground/validator/v10"
)

// Defaults applied by Normalize
const (
	DefaultRankLimit      = 20
	DefaultCandidateLimit = 50
	DefaultMinMatchScore  = 40
	DefaultMaxResults     = 15
	DefaultAdvancedLimit  = 20
	DefaultStatisticsTopN = 5
)

// Sort modes for advanced matching
const (
	SortByRelevance = "relevance"
	SortByDate      = "date"
	SortBySalary    = "salary"
)

// RecommendationPrefs configures the recommendation filter. Zero values mean
// "use the default": both job types, all three locations, minimum score 40,
// fifteen results.
type RecommendationPrefs struct {
	PreferredJobTypes  []string `json:"preferred_job_types,omitempty" validate:"omitempty,dive,oneof=job internship"`
	PreferredLocations []string `json:"preferred_locations,omitempty" validate:"omitempty,dive,oneof=remote onsite hybrid"`
	MinMatchScore      *int     `json:"min_match_score,omitempty" validate:"omitempty,min=0"`
	MaxResults         int      `json:"max_results,omitempty" validate:"omitempty,min=1,max=100"`
}

// Validate validates the RecommendationPrefs using the validator.
func (p *RecommendationPrefs) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Normalize returns a copy with documented defaults filled in.
func (p RecommendationPrefs) Normalize() RecommendationPrefs {
	out := p
	if len(out.PreferredJobTypes) == 0 {
		out.PreferredJobTypes = []string{JobTypeJob, JobTypeInternship}
	}
	if len(out.PreferredLocations) == 0 {
		out.PreferredLocations = []string{LocationRemote, LocationOnsite, LocationHybrid}
	}
	if out.MinMatchScore == nil {
		min := DefaultMinMatchScore
		out.MinMatchScore = &min
	}
	if out.MaxResults <= 0 {
		out.MaxResults = DefaultMaxResults
	}
	return out
}

// AdvancedFilters narrows the job population for advanced matching. Every
// field is optional; empty means "do not filter on this".
type AdvancedFilters struct {
	JobTypes        []string `json:"job_types,omitempty" validate:"omitempty,dive,oneof=job internship"`
	Locations       []string `json:"locations,omitempty" validate:"omitempty,dive,oneof=remote onsite hybrid"`
	Qualifications  []string `json:"qualifications,omitempty"`
	Streams         []string `json:"streams,omitempty"`
	MinSalary       *int     `json:"min_salary,omitempty" validate:"omitempty,min=0"`
	MaxSalary       *int     `json:"max_salary,omitempty" validate:"omitempty,min=0"`
	ExperienceLevel string   `json:"experience_level,omitempty" validate:"omitempty,oneof=fresher junior mid senior"`
}

// Validate validates the AdvancedFilters using the validator.
func (f *AdvancedFilters) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// AdvancedOptions controls pagination and ordering of advanced matches.
// Pagination applies to the filtered job population before scoring, so the
// ranking is relative to the requested page.
type AdvancedOptions struct {
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset int    `json:"offset,omitempty" validate:"omitempty,min=0"`
	SortBy string `json:"sort_by,omitempty" validate:"omitempty,oneof=relevance date salary"`
}

// Validate validates the AdvancedOptions using the validator.
func (o *AdvancedOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// Normalize returns a copy with documented defaults filled in.
func (o AdvancedOptions) Normalize() AdvancedOptions {
	out := o
	if out.Limit <= 0 {
		out.Limit = DefaultAdvancedLimit
	}
	if out.Offset < 0 {
		out.Offset = 0
	}
	if out.SortBy == "" {
		out.SortBy = SortByRelevance
	}
	return out
}
