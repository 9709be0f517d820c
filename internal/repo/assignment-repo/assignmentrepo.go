package assignmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	query := `
		INSERT INTO assignments (job_id, worker_id, status, estimated_seconds)
		VALUES ($1, $2, $3, $4)
		RETURNING id, assigned_at
	`
	err := r.db.QueryRow(ctx, query, assignment.JobID, assignment.WorkerID, assignment.Status, assignment.EstimatedSeconds).
		Scan(&assignment.ID, &assignment.AssignedAt)
	if err != nil {
		zap.L().Error("can't create assignment", zap.Error(err))
		return nil, err
	}
	return assignment, nil
}

func (r *Repository) FindByID(ctx context.Context, assignmentID int) (*domain.Assignment, error) {
	query := `
        SELECT id, job_id, worker_id, status, estimated_seconds, assigned_at, completed_at
        FROM assignments
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, assignmentID)

	var assignment domain.Assignment
	err := row.Scan(&assignment.ID, &assignment.JobID, &assignment.WorkerID, &assignment.Status,
		&assignment.EstimatedSeconds, &assignment.AssignedAt, &assignment.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find assignment", zap.Error(err))
		return nil, err
	}
	return &assignment, nil
}

func (r *Repository) Update(ctx context.Context, assignment *domain.Assignment) error {
	query := `
        UPDATE assignments
        SET status = $1, completed_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, assignment.Status, assignment.CompletedAt, assignment.ID)
	if err != nil {
		zap.L().Error("failed to update assignment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByWorker(ctx context.Context, workerID int) ([]domain.Assignment, error) {
	query := `
        SELECT id, job_id, worker_id, status, estimated_seconds, assigned_at, completed_at
        FROM assignments
        WHERE worker_id = $1
        ORDER BY assigned_at DESC
    `
	rows, err := r.db.Query(ctx, query, workerID)
	if err != nil {
		zap.L().Error("failed to fetch assignments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var assignment domain.Assignment
		err := rows.Scan(&assignment.ID, &assignment.JobID, &assignment.WorkerID, &assignment.Status,
			&assignment.EstimatedSeconds, &assignment.AssignedAt, &assignment.CompletedAt)
		if err != nil {
			zap.L().Error("failed to scan assignment row", zap.Error(err))
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

// OpenSecondsByWorker derives each worker's outstanding workload from
// its open assignments. Workload is never cached as a counter.
func (r *Repository) OpenSecondsByWorker(ctx context.Context) (map[int]int64, error) {
	query := `
        SELECT worker_id, COALESCE(SUM(estimated_seconds), 0)
        FROM assignments
        WHERE status IN ('assigned', 'in_progress')
        GROUP BY worker_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to derive worker load", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	load := make(map[int]int64)
	for rows.Next() {
		var workerID int
		var seconds int64
		if err := rows.Scan(&workerID, &seconds); err != nil {
			zap.L().Error("failed to scan worker load row", zap.Error(err))
			return nil, err
		}
		load[workerID] = seconds
	}
	return load, nil
}
