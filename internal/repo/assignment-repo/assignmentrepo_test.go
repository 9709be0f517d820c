package assignmentrepo

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
			name: "Assignment row is inserted and returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "assigned_at"}).AddRow(5, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO assignments (job_id, worker_id, status, estimated_seconds)`)).
					WithArgs(7, 3, domain.AssignmentStatusAssigned, int64(1920)).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO assignments (job_id, worker_id, status, estimated_seconds)`)).
					WithArgs(7, 3, domain.AssignmentStatusAssigned, int64(1920)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			assignment, err := repo.Create(context.Background(), &domain.Assignment{
				JobID:            7,
				WorkerID:         3,
				Status:           domain.AssignmentStatusAssigned,
				EstimatedSeconds: 1920,
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, assignment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, assignment.ID)
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
			name: "Existing assignment",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "job_id", "worker_id", "status", "estimated_seconds", "assigned_at", "completed_at"}).
					AddRow(5, 7, 3, domain.AssignmentStatusAssigned, int64(1920), now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, job_id, worker_id, status, estimated_seconds, assigned_at, completed_at`)).
					WithArgs(5).
					WillReturnRows(rows)
			},
		},
		{
			name: "Missing assignment returns nil without error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, job_id, worker_id, status, estimated_seconds, assigned_at, completed_at`)).
					WithArgs(5).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, job_id, worker_id, status, estimated_seconds, assigned_at, completed_at`)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectNil: true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			assignment, err := repo.FindByID(context.Background(), 5)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, assignment)
			} else {
				assert.Equal(t, 7, assignment.JobID)
				assert.Nil(t, assignment.CompletedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE assignments`)).
		WithArgs(domain.AssignmentStatusCompleted, &now, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.Assignment{
		ID:          5,
		Status:      domain.AssignmentStatusCompleted,
		CompletedAt: &now,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByWorker(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "job_id", "worker_id", "status", "estimated_seconds", "assigned_at", "completed_at"}).
		AddRow(6, 8, 3, domain.AssignmentStatusInProgress, int64(960), now, nil).
		AddRow(5, 7, 3, domain.AssignmentStatusCompleted, int64(1920), now, &now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE worker_id = $1`)).
		WithArgs(3).
		WillReturnRows(rows)

	assignments, err := repo.ListByWorker(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, assignments, 2)
	assert.Equal(t, domain.AssignmentStatusInProgress, assignments[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_OpenSecondsByWorker(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"worker_id", "coalesce"}).
		AddRow(3, int64(1920)).
		AddRow(4, int64(0))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE status IN ('assigned', 'in_progress')`)).
		WillReturnRows(rows)

	load, err := repo.OpenSecondsByWorker(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[int]int64{3: 1920, 4: 0}, load)
	assert.NoError(t, mock.ExpectationsWereMet())
}
