package types

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job type constants
const (
	JobTypeJob        = "job"
	JobTypeInternship = "internship"
)

// Location mode constants
const (
	LocationRemote = "remote"
	LocationOnsite = "onsite"
	LocationHybrid = "hybrid"
)

// Experience level constants
const (
	ExperienceFresher = "fresher"
	ExperienceJunior  = "junior"
	ExperienceMid     = "mid"
	ExperienceSenior  = "senior"
)

// JobEligibility holds the constraints a candidate must satisfy for a job.
// The three set fields are non-empty for well-formed jobs; the engine treats
// an empty set as a criterion no candidate can satisfy.
type JobEligibility struct {
	Qualifications []string `json:"qualifications"`
	Streams        []string `json:"streams"`
	PassoutYears   []int    `json:"passout_years"`
	MinCGPA        *float64 `json:"min_cgpa,omitempty"`
}

// Job represents a job or internship posting with its eligibility rules.
type Job struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	JobType  string    `json:"job_type"`
	Location string    `json:"location"`

	// Salary is the free-text field shown to users. SalaryMin/SalaryMax are
	// the structured range captured at entry; legacy rows may have only the
	// free text.
	Salary          string `json:"salary,omitempty"`
	SalaryMin       *int   `json:"salary_min,omitempty"`
	SalaryMax       *int   `json:"salary_max,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`

	Eligibility JobEligibility `json:"eligibility"`
	Deadline    time.Time      `json:"deadline"`
	Active      bool           `json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
}

// JobFilters holds the optional predicates a job listing query can apply.
// Zero-valued fields are not applied. Limit/Offset paginate the listing in
// creation order (newest first).
type JobFilters struct {
	JobTypes        []string
	Locations       []string
	Qualifications  []string
	Streams         []string
	MinSalary       *int
	MaxSalary       *int
	ExperienceLevel string
	DeadlineAfter   *time.Time
	Limit           int
	Offset          int
}

// SalarySortValue returns the numeric value used when sorting by salary.
// The structured maximum wins when present; otherwise the free-text salary is
// parsed. Rows with no parseable salary return 0 and sort last.
func (j *Job) SalarySortValue() int {
	if j.SalaryMax != nil {
		return *j.SalaryMax
	}
	return ParseSalary(j.Salary)
}

// ParseSalary extracts the first integer from a free-text salary string,
// ignoring digit group separators. Returns 0 when no number is present.
func ParseSalary(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}
