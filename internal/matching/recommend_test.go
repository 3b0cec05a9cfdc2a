package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradhire/matchengine/internal/types"
)

func TestRecommend_NoProfileReturnsEmpty(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, nil)

	results, err := engine.Recommend(context.Background(), uuid.New(), types.RecommendationPrefs{})

	// Profile completion is optional here, so this degrades instead of failing
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommend_DefaultsAppliedToJobQuery(t *testing.T) {
	store := newFakeStore()
	profile := testProfile()
	store.profiles[profile.UserID] = profile

	engine := NewEngine(store, nil)
	_, err := engine.Recommend(context.Background(), profile.UserID, types.RecommendationPrefs{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{types.JobTypeJob, types.JobTypeInternship}, store.lastJobFilters.JobTypes)
	assert.ElementsMatch(t, []string{types.LocationRemote, types.LocationOnsite, types.LocationHybrid}, store.lastJobFilters.Locations)
	require.NotNil(t, store.lastJobFilters.DeadlineAfter, "only jobs with a future deadline are considered")
}

func TestRecommend_ThresholdApplied(t *testing.T) {
	store := newFakeStore()
	profile := testProfile()
	store.profiles[profile.UserID] = profile
	store.jobs = []types.Job{
		testJob("Strong", perfectEligibility()),
		// Stream match plus the automatic CGPA credit scores exactly 40,
		// right at the default threshold
		testJob("Borderline", types.JobEligibility{Streams: []string{"CSE"}}),
		testJob("Weak", types.JobEligibility{Qualifications: []string{"Diploma"}, MinCGPA: floatPtr(9.9)}),
	}

	engine := NewEngine(store, nil)
	results, err := engine.Recommend(context.Background(), profile.UserID, types.RecommendationPrefs{})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Strong", results[0].Title)
	assert.Equal(t, "Borderline", results[1].Title)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.MatchScore, types.DefaultMinMatchScore)
	}
}

func TestRecommend_UnreachableThresholdReturnsEmpty(t *testing.T) {
	store := newFakeStore()
	profile := testProfile()
	store.profiles[profile.UserID] = profile
	// Maximum achievable score here is 95 (CGPA requirement unmet)
	eligibility := perfectEligibility()
	eligibility.MinCGPA = floatPtr(9.9)
	store.jobs = []types.Job{testJob("Almost", eligibility)}

	min := 100
	engine := NewEngine(store, nil)
	results, err := engine.Recommend(context.Background(), profile.UserID, types.RecommendationPrefs{MinMatchScore: &min})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecommend_MaxResultsTruncates(t *testing.T) {
	store := newFakeStore()
	profile := testProfile()
	store.profiles[profile.UserID] = profile
	for i := 0; i < 10; i++ {
		store.jobs = append(store.jobs, testJob(fmt.Sprintf("Job %d", i), perfectEligibility()))
	}

	engine := NewEngine(store, nil)
	results, err := engine.Recommend(context.Background(), profile.UserID, types.RecommendationPrefs{MaxResults: 3})
	require.NoError(t, err)

	assert.Len(t, results, 3)
}

func TestRecommend_ExplicitZeroThresholdKeepsEverything(t *testing.T) {
	store := newFakeStore()
	profile := testProfile()
	store.profiles[profile.UserID] = profile
	store.jobs = []types.Job{
		testJob("None", types.JobEligibility{Qualifications: []string{"Diploma"}, Streams: []string{"Civil"}, PassoutYears: []int{2019}, MinCGPA: floatPtr(9.9)}),
	}

	min := 0
	engine := NewEngine(store, nil)
	results, err := engine.Recommend(context.Background(), profile.UserID, types.RecommendationPrefs{MinMatchScore: &min})
	require.NoError(t, err)

	assert.Len(t, results, 1)
}
