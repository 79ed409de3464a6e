package db

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// QualityIssue is one row written by the auditor.
type QualityIssue struct {
	RunID      string    `json:"run_id"`
	Kind       string    `json:"kind"`
	Entity     string    `json:"entity"`
	RecordID   string    `json:"record_id"`
	Field      *string   `json:"field,omitempty"`
	Value      *string   `json:"value,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}

// IssueQuery holds filters for retrieving quality issues.
type IssueQuery struct {
	Kind     string
	RecordID string
	Limit    int
}

const latestIssuesBase = `
    SELECT run_id::text, kind, entity, record_id, field, value, detected_at
    FROM signage.quality_issues
    WHERE run_id = (
        SELECT run_id FROM signage.quality_runs ORDER BY started_at DESC LIMIT 1
    )
`

// LatestIssues returns the issues recorded by the most recent auditor run.
func (s *Store) LatestIssues(ctx context.Context, q IssueQuery) ([]QualityIssue, error) {
	args := []any{}
	clause := ""
	if q.Kind != "" {
		args = append(args, q.Kind)
		clause += " AND kind = $" + strconv.Itoa(len(args))
	}
	if q.RecordID != "" {
		args = append(args, q.RecordID)
		clause += " AND record_id = $" + strconv.Itoa(len(args))
	}
	order := " ORDER BY entity, record_id, kind"
	limit := ""
	if q.Limit > 0 {
		args = append(args, q.Limit)
		limit = " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, latestIssuesBase+clause+order+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := make([]QualityIssue, 0)
	for rows.Next() {
		var issue QualityIssue
		if err := rows.Scan(
			&issue.RunID,
			&issue.Kind,
			&issue.Entity,
			&issue.RecordID,
			&issue.Field,
			&issue.Value,
			&issue.DetectedAt,
		); err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
