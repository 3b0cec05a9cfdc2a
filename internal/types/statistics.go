package types

// Matching efficiency labels derived from the recent average match score.
const (
	EfficiencyHigh    = "high"
	EfficiencyMedium  = "medium"
	EfficiencyLow     = "low"
	EfficiencyUnknown = "unknown"
)

// FrequencyCount is one entry of a grouped frequency distribution.
type FrequencyCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// MatchingStatistics is a point-in-time snapshot of the candidate/job
// population. AverageMatchScore is computed over the recent match log and is
// 0 with efficiency "unknown" when no matches have been logged yet.
type MatchingStatistics struct {
	TotalCandidates    int              `json:"total_candidates"`
	TotalActiveJobs    int              `json:"total_active_jobs"`
	AverageMatchScore  float64          `json:"average_match_score"`
	TopQualifications  []FrequencyCount `json:"top_qualifications"`
	TopStreams         []FrequencyCount `json:"top_streams"`
	MatchingEfficiency string           `json:"matching_efficiency"`
}
