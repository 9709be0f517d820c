package jobservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxgate/voxgate/internal/domain"
)

//go:generate mockgen -source=jobservice.go -destination=mock.go -package=jobservice

// MaxPipelineAttempts bounds retries on transient engine failures
// before a job is moved to ERROR.
const MaxPipelineAttempts = 3

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrUnknownTier       = errors.New("unknown service tier")
	ErrInvalidTransition = errors.New("illegal job state transition")
	ErrCancelNotAllowed  = errors.New("job can no longer be cancelled")
)

type Repo interface {
	Save(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, jobID int) (*domain.Job, error)
	FindByAccountID(ctx context.Context, accountID int) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.Job, error)
	FindQueued(ctx context.Context, limit uint32) ([]domain.Job, error)
}

// Executor is the ledger transaction executor's debit/refund surface.
type Executor interface {
	Debit(ctx context.Context, accountID int, tier string, requestedSeconds int64, addOns domain.AddOns) (*domain.LedgerEntry, *domain.FundingPlan, error)
	Refund(ctx context.Context, debitEntryID int64) (*domain.LedgerEntry, error)
}

// Dispatcher hands a job needing human work to the workload balancer.
// A false result with nil error means no worker is available.
type Dispatcher interface {
	Dispatch(ctx context.Context, job *domain.Job) (bool, error)
}

type Service struct {
	repo       Repo
	executor   Executor
	dispatcher Dispatcher
}

func New(repo Repo, executor Executor, dispatcher Dispatcher) *Service {
	return &Service{
		repo:       repo,
		executor:   executor,
		dispatcher: dispatcher,
	}
}

// Submit debits funding for the requested work unit and creates the job
// in pending. Routing happens after the debit and never rolls it back:
// a job that cannot be routed yet stays queued.
func (s *Service) Submit(ctx context.Context, accountID int, fileRef string, durationSeconds int64, tier string, addOns domain.AddOns) (*domain.Job, error) {
	switch tier {
	case domain.TierAutomated, domain.TierReviewed, domain.TierHuman:
	default:
		return nil, ErrUnknownTier
	}

	entry, plan, err := s.executor.Debit(ctx, accountID, tier, durationSeconds, addOns)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		AccountID:       accountID,
		ServiceTier:     tier,
		FileRef:         fileRef,
		DurationSeconds: durationSeconds,
		AddOns:          addOns,
		Funding:         plan.SourceBreakdown,
		State:           domain.JobStatePending,
		CorrelationID:   uuid.NewString(),
		DebitEntryID:    &entry.ID,
	}
	job, err = s.repo.Save(ctx, job)
	if err != nil {
		zap.L().Error("can't save job after debit",
			zap.Int("accountID", accountID),
			zap.Int64("debitEntryID", entry.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if tier == domain.TierHuman {
		if err := s.route(ctx, job); err != nil {
			zap.L().Error("routing failed, job stays pending",
				zap.Int("jobID", job.ID),
				zap.String("correlationID", job.CorrelationID),
				zap.Error(err),
			)
		}
	}

	return job, nil
}

// route attempts to obtain an assignment for a human-only job. With no
// active worker the job is parked queued, to be retried on the next
// worker-availability check.
func (s *Service) route(ctx context.Context, job *domain.Job) error {
	assigned, err := s.dispatcher.Dispatch(ctx, job)
	if err != nil {
		return err
	}
	if !assigned {
		job.Queued = true
		if err := s.repo.Update(ctx, job); err != nil {
			return err
		}
		zap.L().Info("no worker available, job queued", zap.Int("jobID", job.ID))
	}
	return nil
}

func (s *Service) GetJob(ctx context.Context, jobID int) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *Service) GetJobs(ctx context.Context, accountID int) ([]domain.Job, error) {
	jobs, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get jobs", zap.Error(err))
		return nil, err
	}
	return jobs, nil
}

// Transition moves a job along its tier's state graph.
func (s *Service) Transition(ctx context.Context, job *domain.Job, to string) error {
	if !CanTransition(job.ServiceTier, job.State, to) {
		zap.L().Error("illegal transition refused",
			zap.Int("jobID", job.ID),
			zap.String("tier", job.ServiceTier),
			zap.String("from", job.State),
			zap.String("to", to),
		)
		return ErrInvalidTransition
	}
	job.State = to
	return s.repo.Update(ctx, job)
}

// Cancel refunds and terminates a job. Allowed only before any human
// work exists: pending or processing, and never with an assignment.
func (s *Service) Cancel(ctx context.Context, jobID int) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.AssignmentID != nil {
		return nil, ErrCancelNotAllowed
	}
	if job.State != domain.JobStatePending && job.State != domain.JobStateProcessing {
		return nil, ErrCancelNotAllowed
	}

	if job.DebitEntryID != nil {
		if _, err := s.executor.Refund(ctx, *job.DebitEntryID); err != nil {
			return nil, err
		}
	}

	job.Queued = false
	if err := s.Transition(ctx, job, domain.JobStateCancelled); err != nil {
		return nil, err
	}
	return job, nil
}

// RetryOrFail counts a transient pipeline failure against the bounded
// retry budget; exhausting it moves the job to its terminal error
// state. The debit is kept: refunds on errored jobs are an external
// decision.
func (s *Service) RetryOrFail(ctx context.Context, job *domain.Job) error {
	job.Attempts++
	if job.Attempts >= MaxPipelineAttempts {
		zap.L().Error("pipeline retries exhausted, job errored",
			zap.Int("jobID", job.ID),
			zap.String("correlationID", job.CorrelationID),
		)
		job.State = domain.JobStateError
	}
	return s.repo.Update(ctx, job)
}
