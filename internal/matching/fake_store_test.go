package matching

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gradhire/matchengine/internal/types"
)

// fakeStore is an in-memory Store for engine tests. It returns canned data
// and records the arguments of the last listing calls.
type fakeStore struct {
	profiles map[uuid.UUID]*types.CandidateProfile
	jobs     []types.Job
	jobsByID map[uuid.UUID]*types.Job
	eligible []types.CandidateProfile

	profileCount int
	jobCount     int
	qualCounts   []types.FrequencyCount
	streamCounts []types.FrequencyCount
	avgScore     float64
	hasHistory   bool

	lastJobFilters  types.JobFilters
	lastEligibility types.JobEligibility
	lastPool        int
	recordedScores  [][]int

	listJobsErr error
	profileErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[uuid.UUID]*types.CandidateProfile),
		jobsByID: make(map[uuid.UUID]*types.Job),
	}
}

func (f *fakeStore) GetProfileByUserID(_ context.Context, userID uuid.UUID) (*types.CandidateProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profiles[userID], nil
}

func (f *fakeStore) GetJob(_ context.Context, jobID uuid.UUID) (*types.Job, error) {
	return f.jobsByID[jobID], nil
}

func (f *fakeStore) ListActiveJobs(_ context.Context, filters types.JobFilters) ([]types.Job, error) {
	f.lastJobFilters = filters
	if f.listJobsErr != nil {
		return nil, f.listJobsErr
	}
	return f.jobs, nil
}

func (f *fakeStore) ListEligibleProfiles(_ context.Context, eligibility types.JobEligibility, pool int) ([]types.CandidateProfile, error) {
	f.lastEligibility = eligibility
	f.lastPool = pool
	return f.eligible, nil
}

func (f *fakeStore) CountProfiles(_ context.Context) (int, error) {
	return f.profileCount, nil
}

func (f *fakeStore) CountActiveJobs(_ context.Context) (int, error) {
	return f.jobCount, nil
}

func (f *fakeStore) QualificationCounts(_ context.Context, _ int) ([]types.FrequencyCount, error) {
	return f.qualCounts, nil
}

func (f *fakeStore) StreamCounts(_ context.Context, _ int) ([]types.FrequencyCount, error) {
	return f.streamCounts, nil
}

func (f *fakeStore) RecordMatchScores(_ context.Context, scores []int) error {
	f.recordedScores = append(f.recordedScores, scores)
	return nil
}

func (f *fakeStore) AverageMatchScore(_ context.Context, _ time.Time) (float64, bool, error) {
	return f.avgScore, f.hasHistory, nil
}

// Test fixture helpers

func floatPtr(v float64) *float64 { return &v }

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		Qualification: "B.Tech",
		Stream:        "CSE",
		YearOfPassout: 2024,
		CGPA:          floatPtr(8.5),
	}
}

func testJob(title string, eligibility types.JobEligibility) types.Job {
	return types.Job{
		ID:          uuid.New(),
		Title:       title,
		Company:     "Acme Corp",
		JobType:     types.JobTypeJob,
		Location:    types.LocationOnsite,
		Eligibility: eligibility,
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		Active:      true,
		CreatedAt:   time.Now().Add(-48 * time.Hour),
	}
}

// perfectEligibility matches testProfile on every criterion.
func perfectEligibility() types.JobEligibility {
	return types.JobEligibility{
		Qualifications: []string{"B.Tech"},
		Streams:        []string{"CSE"},
		PassoutYears:   []int{2024},
		MinCGPA:        floatPtr(7.5),
	}
}
