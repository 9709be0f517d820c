package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
)

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

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (trial_seconds_remaining, trial_expires_at, wallet_balance)
        VALUES ($1, $2, $3)
        RETURNING id, trial_seconds_remaining, trial_expires_at, wallet_balance, created_at
    `
	row := r.db.QueryRow(ctx, query, account.TrialSecondsRemaining, account.TrialExpiresAt, account.WalletBalance)
	var created domain.Account
	err := row.Scan(&created.ID, &created.TrialSecondsRemaining, &created.TrialExpiresAt, &created.WalletBalance, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT id, trial_seconds_remaining, trial_expires_at, wallet_balance, created_at
        FROM accounts
        WHERE id = $1
    `
	return r.scanAccount(r.db.QueryRow(ctx, query, accountID))
}

// GetAccountForUpdate locks the account row for the duration of the
// surrounding transaction. Must be called inside txManager.Begin.
func (r *Repository) GetAccountForUpdate(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `
        SELECT id, trial_seconds_remaining, trial_expires_at, wallet_balance, created_at
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanAccount(r.db.QueryRow(ctx, query, accountID))
}

func (r *Repository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.TrialSecondsRemaining, &account.TrialExpiresAt, &account.WalletBalance, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	query := `
        UPDATE accounts
        SET trial_seconds_remaining = $1, wallet_balance = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, account.TrialSecondsRemaining, account.WalletBalance, account.ID)
	if err != nil {
		zap.L().Error("failed to update account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPackages(ctx context.Context, accountID int) ([]domain.Package, error) {
	query := `
        SELECT id, account_id, service_tier, seconds_total, seconds_used, unit_rate, purchased_at, expires_at
        FROM packages
        WHERE account_id = $1
        ORDER BY unit_rate ASC, purchased_at ASC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var p domain.Package
		err := rows.Scan(&p.ID, &p.AccountID, &p.ServiceTier, &p.SecondsTotal, &p.SecondsUsed, &p.UnitRate, &p.PurchasedAt, &p.ExpiresAt)
		if err != nil {
			zap.L().Error("failed to scan package row", zap.Error(err))
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *Repository) CreatePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	query := `
        INSERT INTO packages (account_id, service_tier, seconds_total, seconds_used, unit_rate, purchased_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, pkg.AccountID, pkg.ServiceTier, pkg.SecondsTotal, pkg.SecondsUsed, pkg.UnitRate, pkg.PurchasedAt, pkg.ExpiresAt).Scan(&pkg.ID)
	if err != nil {
		zap.L().Error("failed to create package", zap.Error(err))
		return nil, err
	}
	return pkg, nil
}

func (r *Repository) UpdatePackageUsage(ctx context.Context, packageID int, secondsUsed int64) error {
	query := `
        UPDATE packages
        SET seconds_used = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, secondsUsed, packageID)
	if err != nil {
		zap.L().Error("failed to update package usage", zap.Error(err))
		return err
	}
	return nil
}
