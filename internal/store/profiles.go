package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gradhire/matchengine/internal/types"
)

// GetProfileByUserID retrieves a candidate profile by its owning user ID.
// Returns (nil, nil) when the user has no profile.
func (s *Store) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*types.CandidateProfile, error) {
	var p types.CandidateProfile
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, email, qualification, stream, year_of_passout, cgpa, created_at, updated_at
		 FROM candidate_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.Qualification, &p.Stream,
		&p.YearOfPassout, &p.CGPA, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// ListEligibleProfiles retrieves up to pool candidate profiles coarsely
// matching the eligibility sets. Empty sets are not applied as predicates.
// Candidates below the minimum CGPA are excluded; candidates with no CGPA on
// record are kept and left to the scorer.
func (s *Store) ListEligibleProfiles(ctx context.Context, eligibility types.JobEligibility, pool int) ([]types.CandidateProfile, error) {
	if pool <= 0 {
		pool = 2 * types.DefaultCandidateLimit
	}

	query := `SELECT id, user_id, name, email, qualification, stream, year_of_passout, cgpa, created_at, updated_at
		FROM candidate_profiles WHERE 1=1`
	args := []any{}
	argNum := 1

	if len(eligibility.Qualifications) > 0 {
		query += fmt.Sprintf(" AND qualification = ANY($%d::text[])", argNum)
		args = append(args, eligibility.Qualifications)
		argNum++
	}
	if len(eligibility.Streams) > 0 {
		query += fmt.Sprintf(" AND stream = ANY($%d::text[])", argNum)
		args = append(args, eligibility.Streams)
		argNum++
	}
	if len(eligibility.PassoutYears) > 0 {
		query += fmt.Sprintf(" AND year_of_passout = ANY($%d::int[])", argNum)
		args = append(args, eligibility.PassoutYears)
		argNum++
	}
	if eligibility.MinCGPA != nil {
		query += fmt.Sprintf(" AND (cgpa IS NULL OR cgpa >= $%d)", argNum)
		args = append(args, *eligibility.MinCGPA)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, pool)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.CandidateProfile
	for rows.Next() {
		var p types.CandidateProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.Qualification, &p.Stream,
			&p.YearOfPassout, &p.CGPA, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// CountProfiles returns the total number of candidate profiles.
func (s *Store) CountProfiles(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidate_profiles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return n, nil
}

// QualificationCounts returns the top qualifications across the candidate
// population by frequency descending.
func (s *Store) QualificationCounts(ctx context.Context, top int) ([]types.FrequencyCount, error) {
	return s.frequencyCounts(ctx, "qualification", top)
}

// StreamCounts returns the top streams across the candidate population by
// frequency descending.
func (s *Store) StreamCounts(ctx context.Context, top int) ([]types.FrequencyCount, error) {
	return s.frequencyCounts(ctx, "stream", top)
}

func (s *Store) frequencyCounts(ctx context.Context, column string, top int) ([]types.FrequencyCount, error) {
	if top <= 0 {
		top = types.DefaultStatisticsTopN
	}

	// column is one of two fixed identifiers, never user input
	query := fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM candidate_profiles GROUP BY %s ORDER BY COUNT(*) DESC, %s ASC LIMIT $1`,
		column, column, column)

	rows, err := s.pool.Query(ctx, query, top)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s counts: %w", column, err)
	}
	defer rows.Close()

	var counts []types.FrequencyCount
	for rows.Next() {
		var c types.FrequencyCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		counts = append(counts, c)
	}
	return counts, nil
}
