package workerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/voxgate/voxgate/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Worker row is inserted and returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "registered_at"}).AddRow(3, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO workers (name, status, quality_rating)`)).
					WithArgs("alice", domain.WorkerStatusActive, 4.8).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO workers (name, status, quality_rating)`)).
					WithArgs("alice", domain.WorkerStatusActive, 4.8).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			worker, err := repo.Create(context.Background(), &domain.Worker{
				Name:          "alice",
				Status:        domain.WorkerStatusActive,
				QualityRating: 4.8,
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, worker)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, worker.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
		expectErr bool
	}{
		{
			name: "Existing worker",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "status", "quality_rating", "registered_at"}).
					AddRow(3, "alice", domain.WorkerStatusActive, 4.8, now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, status, quality_rating, registered_at`)).
					WithArgs(3).
					WillReturnRows(rows)
			},
		},
		{
			name: "Missing worker returns nil without error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, status, quality_rating, registered_at`)).
					WithArgs(3).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, status, quality_rating, registered_at`)).
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectNil: true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			worker, err := repo.FindByID(context.Background(), 3)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, worker)
			} else {
				assert.Equal(t, "alice", worker.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "name", "status", "quality_rating", "registered_at"}).
		AddRow(1, "alice", domain.WorkerStatusActive, 4.8, now).
		AddRow(2, "bob", domain.WorkerStatusInactive, 4.1, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, status, quality_rating, registered_at`)).
		WillReturnRows(rows)

	workers, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, workers, 2)
	assert.Equal(t, "bob", workers[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "name", "status", "quality_rating", "registered_at"}).
		AddRow(1, "alice", domain.WorkerStatusActive, 4.8, now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'active'`)).
		WillReturnRows(rows)

	workers, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, workers, 1)
	assert.Equal(t, domain.WorkerStatusActive, workers[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE workers`)).
		WithArgs(domain.WorkerStatusInactive, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 3, domain.WorkerStatusInactive)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
