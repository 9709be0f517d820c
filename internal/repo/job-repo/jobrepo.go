package jobrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
)

const jobColumns = `id, account_id, service_tier, file_ref, duration_seconds, expedited, multispeaker,
		funding, state, queued, attempts, external_job_id, assignment_id, correlation_id, debit_entry_id,
		created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	funding, err := json.Marshal(job.Funding)
	if err != nil {
		return nil, err
	}

	query := `
        INSERT INTO jobs (account_id, service_tier, file_ref, duration_seconds, expedited, multispeaker,
            funding, state, queued, attempts, correlation_id, debit_entry_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at
    `
	err = r.db.QueryRow(ctx, query,
		job.AccountID, job.ServiceTier, job.FileRef, job.DurationSeconds,
		job.AddOns.Expedited, job.AddOns.Multispeaker, funding,
		job.State, job.Queued, job.Attempts, job.CorrelationID, job.DebitEntryID,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save job", zap.Error(err))
		return nil, err
	}
	return job, nil
}

func (r *Repository) FindByID(ctx context.Context, jobID int) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	row := r.db.QueryRow(ctx, query, jobID)

	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find job", zap.Error(err))
		return nil, err
	}
	return job, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *Repository) Update(ctx context.Context, job *domain.Job) error {
	query := `
        UPDATE jobs
        SET state = $1, queued = $2, attempts = $3, external_job_id = $4, assignment_id = $5, updated_at = NOW()
        WHERE id = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, job.State, job.Queued, job.Attempts, job.ExternalJobID, job.AssignmentID, job.ID)
		if err != nil {
			zap.L().Error("failed to update job", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateFromState writes the job only if the row still holds fromState.
// The pipeline polls with a copy of the job, and the copy can go stale
// while a request is in flight (a cancel refunds and terminates the job
// concurrently); matching on the prior state keeps such a late result
// from overwriting a transition the engine never saw. Returns false when
// the row moved on and the write was dropped.
func (r *Repository) UpdateFromState(ctx context.Context, job *domain.Job, fromState string) (bool, error) {
	query := `
        UPDATE jobs
        SET state = $1, queued = $2, attempts = $3, external_job_id = $4, assignment_id = $5, updated_at = NOW()
        WHERE id = $6 AND state = $7
    `
	var matched bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, job.State, job.Queued, job.Attempts, job.ExternalJobID, job.AssignmentID, job.ID, fromState)
		if err != nil {
			zap.L().Error("failed to update job from state", zap.Error(err))
			return err
		}
		matched = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return matched, nil
}

// FindForProcessing returns automated-path jobs waiting on the engine:
// pending submissions and in-flight jobs to poll. Queued jobs wait for
// a human worker instead and are fetched by FindQueued.
func (r *Repository) FindForProcessing(ctx context.Context, limit uint32) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
        FROM jobs
        WHERE service_tier IN ('AUTOMATED', 'REVIEWED')
          AND state IN ('PENDING', 'PROCESSING')
          AND queued = FALSE
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get jobs for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

// FindQueued returns jobs parked until a human worker becomes available.
func (r *Repository) FindQueued(ctx context.Context, limit uint32) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
        FROM jobs
        WHERE queued = TRUE
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get queued jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var funding []byte
	err := row.Scan(
		&job.ID, &job.AccountID, &job.ServiceTier, &job.FileRef, &job.DurationSeconds,
		&job.AddOns.Expedited, &job.AddOns.Multispeaker, &funding,
		&job.State, &job.Queued, &job.Attempts, &job.ExternalJobID, &job.AssignmentID,
		&job.CorrelationID, &job.DebitEntryID, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(funding, &job.Funding); err != nil {
		return nil, err
	}
	return &job, nil
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}
