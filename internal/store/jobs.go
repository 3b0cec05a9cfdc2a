package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gradhire/matchengine/internal/types"
)

const jobColumns = `id, title, company, job_type, location, salary, salary_min, salary_max,
	experience_level, qualifications, streams, passout_years, min_cgpa, deadline, active, created_at`

// GetJob retrieves a job posting by ID. Returns (nil, nil) when the job does
// not exist.
func (s *Store) GetJob(ctx context.Context, jobID uuid.UUID) (*types.Job, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListActiveJobs retrieves active job postings matching the given filters,
// newest first. Zero-valued filter fields are not applied. Salary range
// filters keep legacy rows that have no structured salary.
func (s *Store) ListActiveJobs(ctx context.Context, filters types.JobFilters) ([]types.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE active = TRUE`
	args := []any{}
	argNum := 1

	if len(filters.JobTypes) > 0 {
		query += fmt.Sprintf(" AND job_type = ANY($%d::text[])", argNum)
		args = append(args, filters.JobTypes)
		argNum++
	}
	if len(filters.Locations) > 0 {
		query += fmt.Sprintf(" AND location = ANY($%d::text[])", argNum)
		args = append(args, filters.Locations)
		argNum++
	}
	if len(filters.Qualifications) > 0 {
		query += fmt.Sprintf(" AND qualifications && $%d::text[]", argNum)
		args = append(args, filters.Qualifications)
		argNum++
	}
	if len(filters.Streams) > 0 {
		query += fmt.Sprintf(" AND streams && $%d::text[]", argNum)
		args = append(args, filters.Streams)
		argNum++
	}
	if filters.MinSalary != nil {
		query += fmt.Sprintf(" AND (salary_max IS NULL OR salary_max >= $%d)", argNum)
		args = append(args, *filters.MinSalary)
		argNum++
	}
	if filters.MaxSalary != nil {
		query += fmt.Sprintf(" AND (salary_min IS NULL OR salary_min <= $%d)", argNum)
		args = append(args, *filters.MaxSalary)
		argNum++
	}
	if filters.ExperienceLevel != "" {
		query += fmt.Sprintf(" AND experience_level = $%d", argNum)
		args = append(args, filters.ExperienceLevel)
		argNum++
	}
	if filters.DeadlineAfter != nil {
		query += fmt.Sprintf(" AND deadline > $%d", argNum)
		args = append(args, *filters.DeadlineAfter)
		argNum++
	}

	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filters.Limit)
		argNum++
	}
	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, filters.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// CountActiveJobs returns the number of currently active job postings.
func (s *Store) CountActiveJobs(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE active = TRUE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return n, nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var j types.Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.JobType, &j.Location,
		&j.Salary, &j.SalaryMin, &j.SalaryMax, &j.ExperienceLevel,
		&j.Eligibility.Qualifications, &j.Eligibility.Streams, &j.Eligibility.PassoutYears,
		&j.Eligibility.MinCGPA, &j.Deadline, &j.Active, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
