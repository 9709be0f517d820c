package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voxgate/voxgate/internal/config"
	"github.com/voxgate/voxgate/internal/pg"
	"github.com/voxgate/voxgate/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	cfg := &config.Config{
		RateAutomated:     0.25,
		RateReviewed:      1.25,
		RateHuman:         2.50,
		RateExpedited:     0.50,
		RateMultispeaker:  0.30,
		TrialGrantSeconds: 1800,
		TrialValidityDays: 14,
		HumanEffortFactor: 4,
	}
	repos := repo.New(mockDB, mockTxManager)

	services := New(cfg, repos, mockTxManager)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.JobService)
	assert.NotNil(t, services.WorkerService)
	assert.NotNil(t, services.Dispatcher)
}
