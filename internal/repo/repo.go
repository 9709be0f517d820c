package repo

import (
	"github.com/voxgate/voxgate/internal/pg"
	accountrepo "github.com/voxgate/voxgate/internal/repo/account-repo"
	assignmentrepo "github.com/voxgate/voxgate/internal/repo/assignment-repo"
	jobrepo "github.com/voxgate/voxgate/internal/repo/job-repo"
	ledgerrepo "github.com/voxgate/voxgate/internal/repo/ledger-repo"
	workerrepo "github.com/voxgate/voxgate/internal/repo/worker-repo"
)

type Repositories struct {
	AccountRepo    *accountrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	JobRepo        *jobrepo.Repository
	WorkerRepo     *workerrepo.Repository
	AssignmentRepo *assignmentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo:    accountrepo.New(conn, txManager),
		LedgerRepo:     ledgerrepo.New(conn),
		JobRepo:        jobrepo.New(conn, txManager),
		WorkerRepo:     workerrepo.New(conn),
		AssignmentRepo: assignmentrepo.New(conn),
	}
}
