package types

import (
	"time"

	"github.com/google/uuid"
)

// DetailedMatchReason type tags
const (
	ReasonQualification = "qualification"
	ReasonStream        = "stream"
	ReasonExperience    = "experience"
	ReasonLocation      = "location"
	ReasonCGPA          = "cgpa"
	ReasonRecency       = "recency"
)

// MatchResult is one scored job for a candidate. MatchReasons holds one
// human-readable entry per criterion in the fixed evaluation order
// qualification, stream, year, CGPA, then the bonus when it applies.
type MatchResult struct {
	JobID        uuid.UUID `json:"job_id"`
	MatchScore   int       `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`

	// Display snapshot of the job
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	JobType  string    `json:"job_type"`
	Location string    `json:"location"`
	Salary   string    `json:"salary,omitempty"`
	Deadline time.Time `json:"deadline"`
}

// UserMatch is one scored candidate for a job.
type UserMatch struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	UserID       uuid.UUID `json:"user_id"`
	MatchScore   int       `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`

	// Display snapshot of the candidate
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Qualification string   `json:"qualification"`
	Stream        string   `json:"stream"`
	YearOfPassout int      `json:"year_of_passout"`
	CGPA          *float64 `json:"cgpa,omitempty"`
}

// DetailedMatchReason is a typed explanation entry for advanced matches.
// The per-reason scores are illustrative annotations for UI breakdowns, not
// the source of truth for the numeric match score.
type DetailedMatchReason struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
	Score  int    `json:"score"`
}

// AdvancedMatchResult extends MatchResult with the unclamped base score, the
// bonus-adjusted advanced score (clamped to 100) and typed reason entries.
type AdvancedMatchResult struct {
	MatchResult

	BaseMatchScore     int                   `json:"base_match_score"`
	AdvancedMatchScore int                   `json:"advanced_match_score"`
	DetailedReasons    []DetailedMatchReason `json:"detailed_reasons"`
	PostedAt           time.Time             `json:"posted_at"`
	SalaryMin          *int                  `json:"salary_min,omitempty"`
	SalaryMax          *int                  `json:"salary_max,omitempty"`
}
