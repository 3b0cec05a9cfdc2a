// Package types provides type definitions for structured data used throughout the matching engine.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Qualification category constants
const (
	QualificationBTech   = "B.Tech"
	QualificationMTech   = "M.Tech"
	QualificationBSc     = "B.Sc"
	QualificationMSc     = "M.Sc"
	QualificationBCA     = "BCA"
	QualificationMCA     = "MCA"
	QualificationDiploma = "Diploma"
	QualificationTwelfth = "12th"
)

// CandidateProfile represents a job-seeker's education record used as scoring input.
// Name and Email are carried through for result display only; they are never scored.
type CandidateProfile struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Qualification string    `json:"qualification"`
	Stream        string    `json:"stream"`
	YearOfPassout int       `json:"year_of_passout"`
	// CGPA is on a 0-10 scale for degree-level qualifications and a 0-100
	// percentage scale for pre-degree ones. Nil means not reported.
	CGPA      *float64  `json:"cgpa,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
