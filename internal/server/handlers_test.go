package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradhire/matchengine/internal/matching"
	"github.com/gradhire/matchengine/internal/types"
)

// stubEngine is a canned Matcher for handler tests.
type stubEngine struct {
	matches    []types.MatchResult
	candidates []types.UserMatch
	advanced   []types.AdvancedMatchResult
	stats      *types.MatchingStatistics
	err        error

	lastLimit int
	lastPrefs types.RecommendationPrefs
}

func (s *stubEngine) RankJobsForCandidate(_ context.Context, _ uuid.UUID, limit int) ([]types.MatchResult, error) {
	s.lastLimit = limit
	return s.matches, s.err
}

func (s *stubEngine) RankCandidatesForJob(_ context.Context, _ uuid.UUID, limit int) ([]types.UserMatch, error) {
	s.lastLimit = limit
	return s.candidates, s.err
}

func (s *stubEngine) Recommend(_ context.Context, _ uuid.UUID, prefs types.RecommendationPrefs) ([]types.MatchResult, error) {
	s.lastPrefs = prefs
	return s.matches, s.err
}

func (s *stubEngine) AdvancedMatch(_ context.Context, _ uuid.UUID, _ types.AdvancedFilters, _ types.AdvancedOptions) ([]types.AdvancedMatchResult, error) {
	return s.advanced, s.err
}

func (s *stubEngine) Statistics(_ context.Context) (*types.MatchingStatistics, error) {
	return s.stats, s.err
}

func newTestServer(engine Matcher) *Server {
	return New(engine, nil, Config{Port: 0})
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleRankJobs_OK(t *testing.T) {
	engine := &stubEngine{matches: []types.MatchResult{
		{JobID: uuid.New(), MatchScore: 105, Title: "Backend Engineer"},
	}}
	s := newTestServer(engine)

	rec := doRequest(s, http.MethodGet, "/candidates/"+uuid.NewString()+"/matches?limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 5, engine.lastLimit)
}

func TestHandleRankJobs_InvalidID(t *testing.T) {
	s := newTestServer(&stubEngine{})

	rec := doRequest(s, http.MethodGet, "/candidates/not-a-uuid/matches", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRankJobs_ProfileNotFound(t *testing.T) {
	s := newTestServer(&stubEngine{err: matching.ErrProfileNotFound})

	rec := doRequest(s, http.MethodGet, "/candidates/"+uuid.NewString()+"/matches", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile not found")
}

func TestHandleRankCandidates_JobNotFound(t *testing.T) {
	s := newTestServer(&stubEngine{err: matching.ErrJobNotFound})

	rec := doRequest(s, http.MethodGet, "/jobs/"+uuid.NewString()+"/candidates", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job not found")
}

func TestHandleRecommend_EmptyBodyUsesDefaults(t *testing.T) {
	engine := &stubEngine{matches: []types.MatchResult{}}
	s := newTestServer(engine)

	rec := doRequest(s, http.MethodPost, "/candidates/"+uuid.NewString()+"/recommendations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestHandleRecommend_InvalidPreferences(t *testing.T) {
	s := newTestServer(&stubEngine{})

	body := `{"preferred_job_types": ["freelance"]}`
	rec := doRequest(s, http.MethodPost, "/candidates/"+uuid.NewString()+"/recommendations", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid preferences")
}

func TestHandleRecommend_PassesPreferences(t *testing.T) {
	engine := &stubEngine{}
	s := newTestServer(engine)

	body := `{"preferred_job_types": ["internship"], "min_match_score": 60, "max_results": 5}`
	rec := doRequest(s, http.MethodPost, "/candidates/"+uuid.NewString()+"/recommendations", body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, engine.lastPrefs.MinMatchScore)
	assert.Equal(t, 60, *engine.lastPrefs.MinMatchScore)
	assert.Equal(t, []string{"internship"}, engine.lastPrefs.PreferredJobTypes)
	assert.Equal(t, 5, engine.lastPrefs.MaxResults)
}

func TestHandleAdvancedMatch_InvalidSortMode(t *testing.T) {
	s := newTestServer(&stubEngine{})

	body := `{"options": {"sort_by": "alphabetical"}}`
	rec := doRequest(s, http.MethodPost, "/candidates/"+uuid.NewString()+"/advanced-matches", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid options")
}

func TestHandleAdvancedMatch_OK(t *testing.T) {
	engine := &stubEngine{advanced: []types.AdvancedMatchResult{
		{
			MatchResult:        types.MatchResult{JobID: uuid.New(), Title: "Data Analyst"},
			BaseMatchScore:     70,
			AdvancedMatchScore: 83,
		},
	}}
	s := newTestServer(engine)

	body := `{"filters": {"locations": ["remote"]}, "options": {"sort_by": "salary"}}`
	rec := doRequest(s, http.MethodPost, "/candidates/"+uuid.NewString()+"/advanced-matches", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AdvancedMatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "salary", resp.SortBy)
}

func TestHandleStatistics_OK(t *testing.T) {
	s := newTestServer(&stubEngine{stats: &types.MatchingStatistics{
		TotalCandidates:    10,
		TotalActiveJobs:    4,
		MatchingEfficiency: types.EfficiencyHigh,
	}})

	rec := doRequest(s, http.MethodGet, "/statistics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats types.MatchingStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 10, stats.TotalCandidates)
	assert.Equal(t, types.EfficiencyHigh, stats.MatchingEfficiency)
}

func TestHealth(t *testing.T) {
	s := newTestServer(&stubEngine{})

	rec := doRequest(s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
