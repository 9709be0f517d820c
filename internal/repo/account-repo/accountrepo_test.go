package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

func TestRepository_CreateAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expires := now.Add(14 * 24 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Account row is inserted and returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "trial_seconds_remaining", "trial_expires_at", "wallet_balance", "created_at"}).
					AddRow(1, int64(1800), expires, 0.0, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (trial_seconds_remaining, trial_expires_at, wallet_balance)`)).
					WithArgs(int64(1800), expires, 0.0).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (trial_seconds_remaining, trial_expires_at, wallet_balance)`)).
					WithArgs(int64(1800), expires, 0.0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.CreateAccount(context.Background(), &domain.Account{
				TrialSecondsRemaining: 1800,
				TrialExpiresAt:        expires,
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, account.ID)
				assert.Equal(t, int64(1800), account.TrialSecondsRemaining)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		accountID int
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:      "Existing account",
			accountID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "trial_seconds_remaining", "trial_expires_at", "wallet_balance", "created_at"}).
					AddRow(1, int64(1500), now, 22.5, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, trial_seconds_remaining, trial_expires_at, wallet_balance, created_at`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Account{ID: 1, TrialSecondsRemaining: 1500, TrialExpiresAt: now, WalletBalance: 22.5, CreatedAt: now},
		},
		{
			name:      "Missing account returns nil without error",
			accountID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, trial_seconds_remaining, trial_expires_at, wallet_balance, created_at`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:      "Database error",
			accountID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, trial_seconds_remaining, trial_expires_at, wallet_balance, created_at`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.GetAccount(context.Background(), tt.accountID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, account)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListPackages(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "service_tier", "seconds_total", "seconds_used", "unit_rate", "purchased_at", "expires_at"}).
		AddRow(1, 1, "HUMAN", int64(600), int64(0), 0.60, now, now).
		AddRow(2, 1, "HUMAN", int64(18000), int64(17700), 0.75, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, account_id, service_tier, seconds_total, seconds_used, unit_rate, purchased_at, expires_at`)).
		WithArgs(1).
		WillReturnRows(rows)

	packages, err := repo.ListPackages(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, packages, 2)
	assert.Equal(t, 0.60, packages[0].UnitRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAccount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts`)).
		WithArgs(int64(1500), 22.5, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateAccount(context.Background(), &domain.Account{ID: 1, TrialSecondsRemaining: 1500, WalletBalance: 22.5})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePackageUsage(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE packages`)).
		WithArgs(int64(600), 4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePackageUsage(context.Background(), 4, 600)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
