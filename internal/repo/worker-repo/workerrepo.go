package workerrepo

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

func (r *Repository) Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	query := `
		INSERT INTO workers (name, status, quality_rating)
		VALUES ($1, $2, $3)
		RETURNING id, registered_at
	`
	err := r.db.QueryRow(ctx, query, worker.Name, worker.Status, worker.QualityRating).
		Scan(&worker.ID, &worker.RegisteredAt)
	if err != nil {
		zap.L().Error("can't create worker", zap.Error(err))
		return nil, err
	}
	return worker, nil
}

func (r *Repository) FindByID(ctx context.Context, workerID int) (*domain.Worker, error) {
	query := `
        SELECT id, name, status, quality_rating, registered_at
        FROM workers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, workerID)

	var worker domain.Worker
	err := row.Scan(&worker.ID, &worker.Name, &worker.Status, &worker.QualityRating, &worker.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find worker", zap.Error(err))
		return nil, err
	}
	return &worker, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Worker, error) {
	return r.list(ctx, `
        SELECT id, name, status, quality_rating, registered_at
        FROM workers
        ORDER BY id ASC
    `)
}

// ListActive returns candidates for assignment, oldest registration first
// so that workload ties resolve deterministically.
func (r *Repository) ListActive(ctx context.Context) ([]domain.Worker, error) {
	return r.list(ctx, `
        SELECT id, name, status, quality_rating, registered_at
        FROM workers
        WHERE status = 'active'
        ORDER BY id ASC
    `)
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.Worker, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch workers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var workers []domain.Worker
	for rows.Next() {
		var worker domain.Worker
		err := rows.Scan(&worker.ID, &worker.Name, &worker.Status, &worker.QualityRating, &worker.RegisteredAt)
		if err != nil {
			zap.L().Error("failed to scan worker row", zap.Error(err))
			return nil, err
		}
		workers = append(workers, worker)
	}
	return workers, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, workerID int, status string) error {
	query := `
        UPDATE workers
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, workerID)
	if err != nil {
		zap.L().Error("failed to update worker status", zap.Error(err))
		return err
	}
	return nil
}
