package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qrsegnaletica/signage-tracker/services/auditor/internal/audit"
)

const schemaSQL = `
CREATE SCHEMA IF NOT EXISTS signage;

CREATE TABLE IF NOT EXISTS signage.quality_runs (
    run_id        uuid PRIMARY KEY,
    started_at    timestamptz NOT NULL,
    products      integer NOT NULL,
    maintenances  integer NOT NULL,
    issues        integer NOT NULL
);

CREATE TABLE IF NOT EXISTS signage.quality_issues (
    run_id       uuid NOT NULL REFERENCES signage.quality_runs (run_id) ON DELETE CASCADE,
    kind         text NOT NULL,
    entity       text NOT NULL,
    record_id    text NOT NULL,
    field        text,
    value        text,
    detected_at  timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS quality_issues_run_idx ON signage.quality_issues (run_id, kind);
`

// EnsureSchema creates the quality tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}

// Recorder writes audit reports to postgres.
type Recorder struct {
	pool *pgxpool.Pool
}

// NewRecorder creates a Recorder over pool.
func NewRecorder(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

// Record inserts the run row and every issue in a single batch.
func (r *Recorder) Record(ctx context.Context, report audit.Report) error {
	batch := &pgx.Batch{}
	batch.Queue(`INSERT INTO signage.quality_runs (run_id, started_at, products, maintenances, issues)
VALUES ($1,$2,$3,$4,$5)`,
		report.RunID, report.StartedAt, report.Products, report.Maintenances, len(report.Issues))

	query := `INSERT INTO signage.quality_issues (run_id, kind, entity, record_id, field, value, detected_at)
VALUES ($1,$2,$3,$4,NULLIF($5,''),NULLIF($6,''),$7)`

	for _, issue := range report.Issues {
		batch.Queue(query, report.RunID, string(issue.Kind), string(issue.Entity), issue.RecordID, issue.Field, issue.Value, report.StartedAt)
	}

	res := r.pool.SendBatch(ctx, batch)
	defer res.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}
