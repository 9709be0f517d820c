package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/voxgate/voxgate/internal/config"
	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/pkg/clients"
)

//go:generate mockgen -source=engine.go -destination=mock.go -package=engine

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	maxAttempts   = 3
)

var errUnexpectedStatus = errors.New("unexpected status code")

var processingJobs sync.Map

// SubmitRequest is the payload sent to the transcription engine.
type SubmitRequest struct {
	FileRef      string `json:"file_ref"`
	Multispeaker bool   `json:"multispeaker"`
	Expedited    bool   `json:"expedited"`
}

// Response is the engine's job representation.
type Response struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Engine job statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type JobRepo interface {
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.Job, error)
	FindQueued(ctx context.Context, limit uint32) ([]domain.Job, error)
	UpdateFromState(ctx context.Context, job *domain.Job, fromState string) (bool, error)
}

// Dispatcher routes a job needing human work to a worker; false means
// none is available right now.
type Dispatcher interface {
	Dispatch(ctx context.Context, job *domain.Job) (bool, error)
}

// Service drives the automated transcription pipeline: it submits
// pending jobs to the external engine, polls in-flight ones, and
// re-dispatches queued human jobs on every tick (the worker-
// availability check). It never touches funding: debits happened
// before a job ever reaches it.
type Service struct {
	url            string
	jobRepo        JobRepo
	dispatcher     Dispatcher
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, jobRepo JobRepo, dispatcher Dispatcher, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.EngineAddress,
		jobRepo:        jobRepo,
		dispatcher:     dispatcher,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Engine service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping engine service")
			return
		case <-ticker.C:
			s.dispatchQueued(ctx)
			s.processJobs(ctx)
		}
	}
}

// dispatchQueued retries jobs parked for lack of a human worker.
func (s *Service) dispatchQueued(ctx context.Context) {
	jobs, err := s.jobRepo.FindQueued(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch queued jobs", zap.Error(err))
		return
	}

	for _, job := range jobs {
		job := job
		assigned, err := s.dispatcher.Dispatch(ctx, &job)
		if err != nil {
			zap.L().Error("Failed to dispatch queued job", zap.Int("jobID", job.ID), zap.Error(err))
			continue
		}
		if !assigned {
			// still no worker, the rest of the queue can wait too
			return
		}
	}
}

func (s *Service) processJobs(ctx context.Context) {
	jobs, err := s.jobRepo.FindForProcessing(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch jobs for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, job := range jobs {
		job := job

		if _, loaded := processingJobs.LoadOrStore(job.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingJobs.Delete(job.ID)
				return s.handleJob(ctx, job)
			})
			if err != nil {
				processingJobs.Delete(job.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing jobs", zap.Error(err))
	}
}

func (s *Service) handleJob(ctx context.Context, job domain.Job) error {
	if job.ExternalJobID == nil {
		return s.submitJob(ctx, job)
	}
	return s.pollJob(ctx, job)
}

// submitJob hands a pending job to the engine and moves it to
// processing. Transient failures back off exponentially; exhausting
// the budget counts one pipeline attempt against the job.
func (s *Service) submitJob(ctx context.Context, job domain.Job) error {
	body, err := json.Marshal(SubmitRequest{
		FileRef:      job.FileRef,
		Multispeaker: job.AddOns.Multispeaker,
		Expedited:    job.AddOns.Expedited,
	})
	if err != nil {
		return err
	}

	var response Response
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryInterval))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		statusCode, respBody, respHeaders, err := s.client.Post(s.url+"/api/v1/jobs", nil, body)
		if err != nil {
			return retry.RetryableError(err)
		}

		switch statusCode {
		case http.StatusOK, http.StatusCreated:
			return json.Unmarshal(respBody, &response)
		case http.StatusTooManyRequests:
			s.waitRetryAfter(job, respHeaders)
			return retry.RetryableError(errUnexpectedStatus)
		default:
			if statusCode >= http.StatusInternalServerError {
				return retry.RetryableError(fmt.Errorf("engine returned %d", statusCode))
			}
			return fmt.Errorf("engine rejected job %d: status %d", job.ID, statusCode)
		}
	})
	if err != nil {
		return s.failAttempt(ctx, job, err)
	}

	job.ExternalJobID = &response.ID
	job.State = domain.JobStateProcessing
	ok, err := s.jobRepo.UpdateFromState(ctx, &job, domain.JobStatePending)
	if err != nil {
		return fmt.Errorf("failed to update job %d after submit: %w", job.ID, err)
	}
	if !ok {
		zap.L().Warn("Job left pending while submit was in flight, dropping result", zap.Int("jobID", job.ID))
		return nil
	}
	zap.L().Info("Job submitted to engine", zap.Int("jobID", job.ID), zap.String("externalJobID", response.ID))
	return nil
}

func (s *Service) pollJob(ctx context.Context, job domain.Job) error {
	url := s.url + "/api/v1/jobs/" + *job.ExternalJobID

	var response Response
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		statusCode, respBody, respHeaders, err := s.client.Get(url, nil)
		if err != nil {
			return retry.RetryableError(err)
		}

		switch statusCode {
		case http.StatusOK:
			return json.Unmarshal(respBody, &response)
		case http.StatusTooManyRequests:
			s.waitRetryAfter(job, respHeaders)
			return retry.RetryableError(errUnexpectedStatus)
		case http.StatusNoContent, http.StatusNotFound:
			zap.L().Warn("Job not found in engine, retrying", zap.Int("jobID", job.ID))
			return retry.RetryableError(errUnexpectedStatus)
		default:
			if statusCode >= http.StatusInternalServerError {
				return retry.RetryableError(fmt.Errorf("engine returned %d", statusCode))
			}
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("jobID", job.ID))
			return errUnexpectedStatus
		}
	})
	if err != nil {
		return s.failAttempt(ctx, job, err)
	}

	return s.processResult(ctx, job, response)
}

func (s *Service) processResult(ctx context.Context, job domain.Job, response Response) error {
	if response.ID != *job.ExternalJobID {
		return fmt.Errorf("engine job id mismatch: expected %s, got %s", *job.ExternalJobID, response.ID)
	}

	switch response.Status {
	case StatusQueued, StatusProcessing:
		return nil

	case StatusCompleted:
		if job.ServiceTier == domain.TierReviewed {
			return s.enterHumanReview(ctx, job)
		}
		job.State = domain.JobStateCompleted
		ok, err := s.jobRepo.UpdateFromState(ctx, &job, domain.JobStateProcessing)
		if err != nil {
			return fmt.Errorf("failed to complete job %d: %w", job.ID, err)
		}
		if !ok {
			zap.L().Warn("Job no longer processing, dropping engine result", zap.Int("jobID", job.ID))
			return nil
		}
		zap.L().Info("Job completed", zap.Int("jobID", job.ID))
		return nil

	case StatusFailed:
		// fatal engine verdict, terminal; refund is an external decision
		job.State = domain.JobStateError
		ok, err := s.jobRepo.UpdateFromState(ctx, &job, domain.JobStateProcessing)
		if err != nil {
			return fmt.Errorf("failed to mark job %d errored: %w", job.ID, err)
		}
		if !ok {
			zap.L().Warn("Job no longer processing, dropping engine verdict", zap.Int("jobID", job.ID))
			return nil
		}
		zap.L().Error("Engine failed job",
			zap.Int("jobID", job.ID),
			zap.String("correlationID", job.CorrelationID),
		)
		return nil

	default:
		zap.L().Warn("Unrecognized engine status", zap.Int("jobID", job.ID), zap.String("status", response.Status))
		return nil
	}
}

// enterHumanReview moves a reviewed-tier job to its human stage and
// tries to assign it right away; with no worker it waits queued.
func (s *Service) enterHumanReview(ctx context.Context, job domain.Job) error {
	job.State = domain.JobStateHumanReview
	ok, err := s.jobRepo.UpdateFromState(ctx, &job, domain.JobStateProcessing)
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Warn("Job no longer processing, skipping human review", zap.Int("jobID", job.ID))
		return nil
	}

	assigned, err := s.dispatcher.Dispatch(ctx, &job)
	if err != nil {
		zap.L().Error("Failed to dispatch review job", zap.Int("jobID", job.ID), zap.Error(err))
		err = nil
	}
	if !assigned {
		job.Queued = true
		if _, err := s.jobRepo.UpdateFromState(ctx, &job, domain.JobStateHumanReview); err != nil {
			return err
		}
		zap.L().Info("No worker available, review job queued", zap.Int("jobID", job.ID))
	}
	return err
}

// failAttempt burns one of the job's bounded pipeline attempts; on
// exhaustion the job is terminal.
func (s *Service) failAttempt(ctx context.Context, job domain.Job, cause error) error {
	fromState := job.State
	job.Attempts++
	if job.Attempts >= maxAttempts {
		job.State = domain.JobStateError
		zap.L().Error("Pipeline retries exhausted, job errored",
			zap.Int("jobID", job.ID),
			zap.String("correlationID", job.CorrelationID),
			zap.Error(cause),
		)
	} else {
		zap.L().Warn("Pipeline attempt failed",
			zap.Int("jobID", job.ID),
			zap.Int("attempt", job.Attempts),
			zap.Error(cause),
		)
	}
	if _, err := s.jobRepo.UpdateFromState(ctx, &job, fromState); err != nil {
		return fmt.Errorf("failed to record attempt for job %d: %w", job.ID, err)
	}
	return nil
}

func (s *Service) waitRetryAfter(job domain.Job, respHeaders http.Header) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, backing off",
		zap.Int("jobID", job.ID),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
