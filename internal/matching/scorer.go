package matching

import (
	"fmt"

	"github.com/gradhire/matchengine/internal/types"
)

// Criterion weights for the match score
const (
	qualificationWeight = 40
	streamWeight        = 30
	passoutYearWeight   = 20
	passoutYearPartial  = 10
	cgpaWeight          = 10
	perfectMatchBonus   = 5
)

// scoreBreakdown carries the per-criterion outcome of a single scoring pass.
// The advanced matcher reuses it to build typed reason entries.
type scoreBreakdown struct {
	qualificationMatched bool
	streamMatched        bool
	yearExact            bool
	yearPartial          bool
	cgpaSatisfied        bool
	bonusAwarded         bool
}

// Score computes the match score for one candidate-eligibility pair. It is a
// pure function: deterministic, no I/O, total over well-formed inputs.
//
// Criteria are evaluated in a fixed order (qualification, stream, passout
// year, CGPA) and each appends exactly one reason string whether or not it
// matched. A perfect match on the first three criteria earns a +5 bonus with
// a fifth reason. The result is not clamped here; a full match scores 105.
func Score(profile *types.CandidateProfile, eligibility types.JobEligibility) (int, []string) {
	score, reasons, _ := scoreWithBreakdown(profile, eligibility)
	return score, reasons
}

func scoreWithBreakdown(profile *types.CandidateProfile, eligibility types.JobEligibility) (int, []string, scoreBreakdown) {
	score := 0
	reasons := make([]string, 0, 5)
	var b scoreBreakdown

	// Qualification: 40 points. An empty accepted set can never match.
	if containsString(eligibility.Qualifications, profile.Qualification) {
		score += qualificationWeight
		b.qualificationMatched = true
		reasons = append(reasons, fmt.Sprintf("Qualification %s matches the job requirement", profile.Qualification))
	} else {
		reasons = append(reasons, fmt.Sprintf("Qualification %s does not match the required qualifications", profile.Qualification))
	}

	// Stream: 30 points
	if containsString(eligibility.Streams, profile.Stream) {
		score += streamWeight
		b.streamMatched = true
		reasons = append(reasons, fmt.Sprintf("Stream %s matches the job requirement", profile.Stream))
	} else {
		reasons = append(reasons, fmt.Sprintf("Stream %s does not match the required streams", profile.Stream))
	}

	// Passout year: 20 points exact, 10 within one year of the earliest
	// accepted year.
	if containsInt(eligibility.PassoutYears, profile.YearOfPassout) {
		score += passoutYearWeight
		b.yearExact = true
		reasons = append(reasons, fmt.Sprintf("Passout year %d is accepted for this job", profile.YearOfPassout))
	} else if minYear, ok := minInt(eligibility.PassoutYears); ok && absInt(profile.YearOfPassout-minYear) <= 1 {
		score += passoutYearPartial
		b.yearPartial = true
		reasons = append(reasons, fmt.Sprintf("Passout year %d is within acceptable range", profile.YearOfPassout))
	} else {
		reasons = append(reasons, fmt.Sprintf("Passout year %d is outside the accepted years", profile.YearOfPassout))
	}

	// CGPA: 10 points. A job with no minimum is automatically satisfied.
	switch {
	case eligibility.MinCGPA == nil:
		score += cgpaWeight
		b.cgpaSatisfied = true
		reasons = append(reasons, "No minimum CGPA requirement")
	case profile.CGPA != nil && *profile.CGPA >= *eligibility.MinCGPA:
		score += cgpaWeight
		b.cgpaSatisfied = true
		reasons = append(reasons, fmt.Sprintf("CGPA %.2f meets the minimum requirement of %.2f", *profile.CGPA, *eligibility.MinCGPA))
	case profile.CGPA != nil:
		reasons = append(reasons, fmt.Sprintf("CGPA %.2f is below the minimum requirement of %.2f", *profile.CGPA, *eligibility.MinCGPA))
	default:
		reasons = append(reasons, fmt.Sprintf("No CGPA on record to compare against the minimum of %.2f", *eligibility.MinCGPA))
	}

	// Bonus for a perfect match on qualification, stream and year,
	// independent of the CGPA outcome.
	if b.qualificationMatched && b.streamMatched && b.yearExact {
		score += perfectMatchBonus
		b.bonusAwarded = true
		reasons = append(reasons, "Perfect match on qualification, stream and passout year")
	}

	return score, reasons, b
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, n := range set {
		if n == v {
			return true
		}
	}
	return false
}

func minInt(set []int) (int, bool) {
	if len(set) == 0 {
		return 0, false
	}
	min := set[0]
	for _, n := range set[1:] {
		if n < min {
			min = n
		}
	}
	return min, true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
