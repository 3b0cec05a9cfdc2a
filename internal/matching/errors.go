// Package matching implements the candidate-job matching and recommendation engine.
package matching

import "errors"

// Sentinel errors returned by engine operations. Any other error comes from
// the store and is propagated unchanged.
var (
	// ErrProfileNotFound means the candidate has no profile record.
	ErrProfileNotFound = errors.New("candidate profile not found")
	// ErrJobNotFound means the job id does not resolve to a job.
	ErrJobNotFound = errors.New("job not found")
)
