package workerservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
)

//go:generate mockgen -source=workerservice.go -destination=mock.go -package=workerservice

var (
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAssignmentCompleted  = errors.New("assignment already completed")
	ErrJobNotAssignable     = errors.New("job does not accept an assignment")
	ErrAssignmentJobMissing = errors.New("assignment references missing job")
)

type WorkerRepo interface {
	Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	FindByID(ctx context.Context, workerID int) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	ListActive(ctx context.Context) ([]domain.Worker, error)
	UpdateStatus(ctx context.Context, workerID int, status string) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	FindByID(ctx context.Context, assignmentID int) (*domain.Assignment, error)
	Update(ctx context.Context, assignment *domain.Assignment) error
	ListByWorker(ctx context.Context, workerID int) ([]domain.Assignment, error)
	OpenSecondsByWorker(ctx context.Context) (map[int]int64, error)
}

type JobRepo interface {
	FindByID(ctx context.Context, jobID int) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
}

type Service struct {
	workerRepo     WorkerRepo
	assignmentRepo AssignmentRepo
	jobRepo        JobRepo
	txManager      pg.TXManager
	effortFactor   float64
}

func New(workerRepo WorkerRepo, assignmentRepo AssignmentRepo, jobRepo JobRepo, txManager pg.TXManager, effortFactor float64) *Service {
	return &Service{
		workerRepo:     workerRepo,
		assignmentRepo: assignmentRepo,
		jobRepo:        jobRepo,
		txManager:      txManager,
		effortFactor:   effortFactor,
	}
}

func (s *Service) RegisterWorker(ctx context.Context, name string, qualityRating float64) (*domain.Worker, error) {
	worker, err := s.workerRepo.Create(ctx, &domain.Worker{
		Name:          name,
		Status:        domain.WorkerStatusActive,
		QualityRating: qualityRating,
	})
	if err != nil {
		zap.L().Error("failed to register worker", zap.Error(err))
		return nil, err
	}
	return worker, nil
}

func (s *Service) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return s.workerRepo.List(ctx)
}

func (s *Service) SetWorkerStatus(ctx context.Context, workerID int, status string) error {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		return err
	}
	if worker == nil {
		return ErrWorkerNotFound
	}
	return s.workerRepo.UpdateStatus(ctx, workerID, status)
}

// SelectWorker picks the active worker with the lowest derived workload,
// computed at selection time from open assignments. Ties resolve to the
// earliest-registered worker so the policy is reproducible. A nil
// result with nil error means no worker is available — the queued-job
// condition, not an error. The read is deliberately unlocked: a
// concurrent assignment can skew the pick slightly, never corrupt it.
func (s *Service) SelectWorker(ctx context.Context) (*domain.Worker, error) {
	workers, err := s.workerRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, nil
	}

	load, err := s.assignmentRepo.OpenSecondsByWorker(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(workers, func(i, j int) bool {
		if load[workers[i].ID] != load[workers[j].ID] {
			return load[workers[i].ID] < load[workers[j].ID]
		}
		return workers[i].ID < workers[j].ID
	})

	return &workers[0], nil
}

// Dispatch selects a worker for the job and assigns it. Returns false
// when no worker is available.
func (s *Service) Dispatch(ctx context.Context, job *domain.Job) (bool, error) {
	worker, err := s.SelectWorker(ctx)
	if err != nil {
		return false, err
	}
	if worker == nil {
		return false, nil
	}
	if err := s.Assign(ctx, job, worker.ID); err != nil {
		return false, err
	}
	return true, nil
}

// Assign writes the assignment and the job's state change as one
// transaction so a crash cannot leave one without the other.
func (s *Service) Assign(ctx context.Context, job *domain.Job, workerID int) error {
	var nextState string
	switch {
	case job.ServiceTier == domain.TierHuman && job.State == domain.JobStatePending:
		nextState = domain.JobStateAssigned
	case job.ServiceTier == domain.TierReviewed && job.State == domain.JobStateHumanReview:
		nextState = domain.JobStateHumanReview
	default:
		return ErrJobNotAssignable
	}

	estimated := int64(float64(job.DurationSeconds) * s.effortFactor)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		assignment, err := s.assignmentRepo.Create(ctx, &domain.Assignment{
			JobID:            job.ID,
			WorkerID:         workerID,
			Status:           domain.AssignmentStatusAssigned,
			EstimatedSeconds: estimated,
		})
		if err != nil {
			return err
		}

		job.State = nextState
		job.Queued = false
		job.AssignmentID = &assignment.ID
		return s.jobRepo.Update(ctx, job)
	})
	if err != nil {
		zap.L().Error("failed to assign job",
			zap.Int("jobID", job.ID),
			zap.Int("workerID", workerID),
			zap.Error(err),
		)
		return err
	}

	zap.L().Info("job assigned",
		zap.Int("jobID", job.ID),
		zap.Int("workerID", workerID),
		zap.Int64("estimatedSeconds", estimated),
	)
	return nil
}

// Start marks an assignment in progress and advances a human-only job.
func (s *Service) Start(ctx context.Context, assignmentID int) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	if assignment.Status != domain.AssignmentStatusAssigned {
		return nil, ErrAssignmentCompleted
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		assignment.Status = domain.AssignmentStatusInProgress
		if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
			return err
		}

		job, err := s.jobRepo.FindByID(ctx, assignment.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return ErrAssignmentJobMissing
		}
		if job.ServiceTier == domain.TierHuman {
			job.State = domain.JobStateInProgress
			return s.jobRepo.Update(ctx, job)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// Submit completes an assignment and forwards the job: human-only jobs
// complete, reviewed jobs leave human review complete as well.
func (s *Service) Submit(ctx context.Context, assignmentID int) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	if assignment.Status == domain.AssignmentStatusCompleted {
		return nil, ErrAssignmentCompleted
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := time.Now()
		assignment.Status = domain.AssignmentStatusCompleted
		assignment.CompletedAt = &now
		if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
			return err
		}

		job, err := s.jobRepo.FindByID(ctx, assignment.JobID)
		if err != nil {
			return err
		}
		if job == nil {
			return ErrAssignmentJobMissing
		}
		job.State = domain.JobStateCompleted
		return s.jobRepo.Update(ctx, job)
	})
	if err != nil {
		zap.L().Error("failed to complete assignment",
			zap.Int("assignmentID", assignmentID),
			zap.Error(err),
		)
		return nil, err
	}
	return assignment, nil
}

func (s *Service) GetWorkerAssignments(ctx context.Context, workerID int) ([]domain.Assignment, error) {
	return s.assignmentRepo.ListByWorker(ctx, workerID)
}
