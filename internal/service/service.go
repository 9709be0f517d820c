package service

import (
	"time"

	"github.com/voxgate/voxgate/internal/handlers/balance"
	"github.com/voxgate/voxgate/internal/handlers/jobs"
	"github.com/voxgate/voxgate/internal/handlers/workers"

	"github.com/voxgate/voxgate/internal/config"
	"github.com/voxgate/voxgate/internal/pg"
	"github.com/voxgate/voxgate/internal/repo"
	fundingservice "github.com/voxgate/voxgate/internal/service/fundingservice"
	jobservice "github.com/voxgate/voxgate/internal/service/jobservice"
	ledgerservice "github.com/voxgate/voxgate/internal/service/ledgerservice"
	workerservice "github.com/voxgate/voxgate/internal/service/workerservice"
)

type Services struct {
	LedgerService balance.Service
	JobService    jobs.Service
	WorkerService workers.Service

	// Dispatcher is the workload balancer's routing surface, consumed
	// by the pipeline engine outside the HTTP layer.
	Dispatcher *workerservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	fundingService := fundingservice.New(fundingservice.NewRates(cfg))
	ledgerService := ledgerservice.New(
		repo.AccountRepo, repo.LedgerRepo, fundingService, txManager,
		cfg.TrialGrantSeconds, time.Duration(cfg.TrialValidityDays)*24*time.Hour,
	)
	workerService := workerservice.New(repo.WorkerRepo, repo.AssignmentRepo, repo.JobRepo, txManager, cfg.HumanEffortFactor)
	jobService := jobservice.New(repo.JobRepo, ledgerService, workerService)

	return &Services{
		LedgerService: ledgerService,
		JobService:    jobService,
		WorkerService: workerService,
		Dispatcher:    workerService,
	}
}
