package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/gradhire/matchengine/internal/matching"
	"github.com/gradhire/matchengine/internal/types"
)

// MatchListResponse wraps a list of match results.
type MatchListResponse struct {
	Matches []types.MatchResult `json:"matches"`
	Count   int                 `json:"count"`
}

// CandidateListResponse wraps a list of candidate matches for a job.
type CandidateListResponse struct {
	Candidates []types.UserMatch `json:"candidates"`
	Count      int               `json:"count"`
}

// AdvancedMatchRequest is the body of an advanced match request.
type AdvancedMatchRequest struct {
	Filters types.AdvancedFilters `json:"filters"`
	Options types.AdvancedOptions `json:"options"`
}

// AdvancedMatchResponse wraps advanced match results.
type AdvancedMatchResponse struct {
	Matches []types.AdvancedMatchResult `json:"matches"`
	Count   int                         `json:"count"`
	SortBy  string                      `json:"sort_by"`
}

// handleRankJobs returns the top matching jobs for a candidate.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	limit := parseQueryInt(r, "limit", types.DefaultRankLimit, 100)

	matches, err := s.engine.RankJobsForCandidate(r.Context(), candidateID, limit)
	if err != nil {
		s.engineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchListResponse{Matches: matches, Count: len(matches)})
}

// handleRankCandidates returns the top matching candidates for a job.
func (s *Server) handleRankCandidates(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}
	limit := parseQueryInt(r, "limit", types.DefaultCandidateLimit, 200)

	candidates, err := s.engine.RankCandidatesForJob(r.Context(), jobID, limit)
	if err != nil {
		s.engineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, CandidateListResponse{Candidates: candidates, Count: len(candidates)})
}

// handleRecommend returns preference-filtered recommendations for a candidate.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var prefs types.RecommendationPrefs
	if err := decodeBody(r, &prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := prefs.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid preferences: "+err.Error())
		return
	}

	matches, err := s.engine.Recommend(r.Context(), candidateID, prefs)
	if err != nil {
		s.engineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchListResponse{Matches: matches, Count: len(matches)})
}

// handleAdvancedMatch returns filtered, bonus-scored matches for a candidate.
func (s *Server) handleAdvancedMatch(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req AdvancedMatchRequest
	if err := decodeBody(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Filters.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid filters: "+err.Error())
		return
	}
	if err := req.Options.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid options: "+err.Error())
		return
	}

	matches, err := s.engine.AdvancedMatch(r.Context(), candidateID, req.Filters, req.Options)
	if err != nil {
		s.engineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AdvancedMatchResponse{
		Matches: matches,
		Count:   len(matches),
		SortBy:  req.Options.Normalize().SortBy,
	})
}

// handleStatistics returns the population-level matching statistics.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.engine.Statistics(r.Context())
	if err != nil {
		s.engineError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// engineError maps engine errors onto HTTP statuses.
func (s *Server) engineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matching.ErrProfileNotFound):
		s.errorResponse(w, http.StatusNotFound, "Candidate profile not found")
	case errors.Is(err, matching.ErrJobNotFound):
		s.errorResponse(w, http.StatusNotFound, "Job not found")
	default:
		s.errorResponse(w, http.StatusInternalServerError, "Internal error: "+err.Error())
	}
}

// decodeBody decodes a JSON request body. An empty body decodes to the zero
// value so callers can rely on defaulting.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(v)
}

func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
