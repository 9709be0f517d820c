package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/voxgate/voxgate/docs"
	balancehandlers "github.com/voxgate/voxgate/internal/handlers/balance"
	jobshandlers "github.com/voxgate/voxgate/internal/handlers/jobs"
	workershandlers "github.com/voxgate/voxgate/internal/handlers/workers"
	"github.com/voxgate/voxgate/internal/service"
)

type BalanceHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
	VerifyLedger(w http.ResponseWriter, r *http.Request)
	PurchaseConfirmed(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	SubmitJob(w http.ResponseWriter, r *http.Request)
	GetJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	CancelJob(w http.ResponseWriter, r *http.Request)
}

type WorkerHandler interface {
	RegisterWorker(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	SetWorkerStatus(w http.ResponseWriter, r *http.Request)
	GetWorkerAssignments(w http.ResponseWriter, r *http.Request)
	StartAssignment(w http.ResponseWriter, r *http.Request)
	SubmitAssignment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BalanceHandler BalanceHandler
	JobHandler     JobHandler
	WorkerHandler  WorkerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		BalanceHandler: balancehandlers.New(s.LedgerService),
		JobHandler:     jobshandlers.New(s.JobService),
		WorkerHandler:  workershandlers.New(s.WorkerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", h.BalanceHandler.CreateAccount)
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/ledger", h.BalanceHandler.GetLedger)
				r.Get("/ledger/verify", h.BalanceHandler.VerifyLedger)
				r.Post("/jobs", h.JobHandler.SubmitJob)
				r.Get("/jobs", h.JobHandler.GetJobs)
			})
		})
		r.Route("/jobs/{jobID}", func(r chi.Router) {
			r.Get("/", h.JobHandler.GetJob)
			r.Post("/cancel", h.JobHandler.CancelJob)
		})
		r.Post("/payments/confirmed", h.BalanceHandler.PurchaseConfirmed)
		r.Route("/workers", func(r chi.Router) {
			r.Post("/", h.WorkerHandler.RegisterWorker)
			r.Get("/", h.WorkerHandler.ListWorkers)
			r.Route("/{workerID}", func(r chi.Router) {
				r.Patch("/status", h.WorkerHandler.SetWorkerStatus)
				r.Get("/assignments", h.WorkerHandler.GetWorkerAssignments)
			})
		})
		r.Route("/assignments/{assignmentID}", func(r chi.Router) {
			r.Post("/start", h.WorkerHandler.StartAssignment)
			r.Post("/submit", h.WorkerHandler.SubmitAssignment)
		})
	})

	return r
}
