package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradhire/matchengine/internal/types"
)

// Store is the read-only accessor surface the engine needs. Point lookups
// return (nil, nil) when the record does not exist; the engine maps that onto
// its error taxonomy.
type Store interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*types.CandidateProfile, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error)
	ListActiveJobs(ctx context.Context, filters types.JobFilters) ([]types.Job, error)
	ListEligibleProfiles(ctx context.Context, eligibility types.JobEligibility, pool int) ([]types.CandidateProfile, error)

	CountProfiles(ctx context.Context) (int, error)
	CountActiveJobs(ctx context.Context) (int, error)
	QualificationCounts(ctx context.Context, top int) ([]types.FrequencyCount, error)
	StreamCounts(ctx context.Context, top int) ([]types.FrequencyCount, error)

	RecordMatchScores(ctx context.Context, scores []int) error
	AverageMatchScore(ctx context.Context, since time.Time) (float64, bool, error)
}

// Engine hosts the matching operations over a Store. It is stateless between
// invocations; every call fetches its own snapshot of profile/job data.
type Engine struct {
	store  Store
	logger *zap.Logger

	// maxPopulation caps how many jobs a single ranking call will fetch and
	// score. Zero means no cap.
	maxPopulation int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxPopulation caps the job population fetched per ranking call.
func WithMaxPopulation(n int) Option {
	return func(e *Engine) {
		e.maxPopulation = n
	}
}

// NewEngine creates an Engine over the given store.
func NewEngine(store Store, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{store: store, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// recordScores appends scores to the match log. Logging failures never fail
// the ranking operation that produced the scores.
func (e *Engine) recordScores(ctx context.Context, scores []int) {
	if len(scores) == 0 {
		return
	}
	if err := e.store.RecordMatchScores(ctx, scores); err != nil {
		e.logger.Warn("failed to record match scores", zap.Int("count", len(scores)), zap.Error(err))
	}
}
