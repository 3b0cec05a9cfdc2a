package store

import (
	"context"
	"fmt"
	"time"
)

// RecordMatchScores appends a batch of match scores to the match log in a
// single statement.
func (s *Store) RecordMatchScores(ctx context.Context, scores []int) error {
	if len(scores) == 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO match_log (score) SELECT unnest($1::int[])`, scores)
	if err != nil {
		return fmt.Errorf("failed to record match scores: %w", err)
	}
	return nil
}

// AverageMatchScore returns the average logged match score since the given
// time. The boolean is false when no scores have been logged in the window.
func (s *Store) AverageMatchScore(ctx context.Context, since time.Time) (float64, bool, error) {
	var avg float64
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(score), 0), COUNT(*) FROM match_log WHERE created_at >= $1`,
		since,
	).Scan(&avg, &count)
	if err != nil {
		return 0, false, fmt.Errorf("failed to average match scores: %w", err)
	}
	return avg, count > 0, nil
}
