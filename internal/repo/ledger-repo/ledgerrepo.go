package ledgerrepo

import (
	"context"
	"encoding/json"
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

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	breakdown, err := json.Marshal(entry.Breakdown)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO ledger_entries (account_id, kind, amount, job_id, ref_entry_id, breakdown)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = r.db.QueryRow(ctx, query, entry.AccountID, entry.Kind, entry.Amount, entry.JobID, entry.RefEntryID, breakdown).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetEntry(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, kind, amount, job_id, ref_entry_id, breakdown, created_at
        FROM ledger_entries
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, entryID)

	var entry domain.LedgerEntry
	var breakdown []byte
	err := row.Scan(&entry.ID, &entry.AccountID, &entry.Kind, &entry.Amount, &entry.JobID, &entry.RefEntryID, &breakdown, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ledger entry", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(breakdown, &entry.Breakdown); err != nil {
		zap.L().Error("can't decode ledger breakdown", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, kind, amount, job_id, ref_entry_id, breakdown, created_at
        FROM ledger_entries
        WHERE account_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		var breakdown []byte
		err := rows.Scan(&entry.ID, &entry.AccountID, &entry.Kind, &entry.Amount, &entry.JobID, &entry.RefEntryID, &breakdown, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(breakdown, &entry.Breakdown); err != nil {
			zap.L().Error("can't decode ledger breakdown", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// HasRefund reports whether a refund entry already references entryID.
func (r *Repository) HasRefund(ctx context.Context, entryID int64) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM ledger_entries
            WHERE kind = 'refund' AND ref_entry_id = $1
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, entryID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check for refund", zap.Error(err))
		return false, err
	}
	return exists, nil
}
