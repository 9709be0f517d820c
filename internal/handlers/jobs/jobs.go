package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/dto"
	fundingservice "github.com/voxgate/voxgate/internal/service/fundingservice"
	jobservice "github.com/voxgate/voxgate/internal/service/jobservice"
	ledgerservice "github.com/voxgate/voxgate/internal/service/ledgerservice"
	"github.com/voxgate/voxgate/pkg/utils"
)

//go:generate mockgen -source=jobs.go -destination=mock.go -package=jobs

type Service interface {
	Submit(ctx context.Context, accountID int, fileRef string, durationSeconds int64, tier string, addOns domain.AddOns) (*domain.Job, error)
	GetJob(ctx context.Context, jobID int) (*domain.Job, error)
	GetJobs(ctx context.Context, accountID int) ([]domain.Job, error)
	Cancel(ctx context.Context, jobID int) (*domain.Job, error)
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// SubmitJob godoc
//
//	@Summary		Submit a work unit
//	@Description	Debit funding for the uploaded media and create a transcription job. The job is accepted once the debit commits; routing happens asynchronously.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			request		body		dto.SubmitJobRequestDTO	true	"Work unit"
//	@Success		202			{object}	dto.JobResponseDTO		"Job accepted"
//	@Failure		400			{object}	utils.Response			"Invalid payload"
//	@Failure		402			{object}	utils.Response			"Insufficient funds, message carries the exact shortfall"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		409			{object}	utils.Response			"Concurrent balance modification"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/jobs [post]
func (h *JobHandler) SubmitJob(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req dto.SubmitJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FileRef == "" || req.DurationSeconds <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "file_ref and a positive duration are required")
		return
	}

	job, err := h.jobService.Submit(r.Context(), accountID, req.FileRef, req.DurationSeconds, req.ServiceTier, domain.AddOns{
		Expedited:    req.Expedited,
		Multispeaker: req.Multispeaker,
	})
	if err != nil {
		switch {
		case errors.Is(err, fundingservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, fundingservice.ErrUnknownTier), errors.Is(err, jobservice.ErrUnknownTier):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrConcurrentModification):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toJobDTO(job))
}

// GetJobs godoc
//
//	@Summary		List account jobs
//	@Description	All submitted work units for the account, newest first.
//	@Tags			Jobs
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Success		200	{array}		dto.JobResponseDTO
//	@Success		204	{object}	utils.Response	"No jobs"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/jobs [get]
func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	jobList, err := h.jobService.GetJobs(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	if len(jobList) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No jobs found")
		return
	}

	response := make([]dto.JobResponseDTO, len(jobList))
	for i, job := range jobList {
		response[i] = toJobDTO(&job)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetJob godoc
//
//	@Summary	Get one job
//	@Tags		Jobs
//	@Produce	json
//	@Param		jobID	path		int	true	"Job ID"
//	@Success	200		{object}	dto.JobResponseDTO
//	@Failure	404		{object}	utils.Response	"Job not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/jobs/{jobID} [get]
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.jobService.GetJob(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, jobservice.ErrJobNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// CancelJob godoc
//
//	@Summary		Cancel a job
//	@Description	Cancel a pending or processing job and refund its exact funding breakdown. Jobs with an active assignment cannot be cancelled.
//	@Tags			Jobs
//	@Produce		json
//	@Param			jobID	path		int	true	"Job ID"
//	@Success		200		{object}	dto.JobResponseDTO	"Cancelled job"
//	@Failure		404		{object}	utils.Response		"Job not found"
//	@Failure		409		{object}	utils.Response		"Job can no longer be cancelled"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/jobs/{jobID}/cancel [post]
func (h *JobHandler) CancelJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.jobService.Cancel(r.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, jobservice.ErrJobNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, jobservice.ErrCancelNotAllowed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

func toJobDTO(job *domain.Job) dto.JobResponseDTO {
	var packageSeconds int64
	for _, draw := range job.Funding.PackageDraws {
		packageSeconds += draw.Seconds
	}
	return dto.JobResponseDTO{
		ID:              job.ID,
		ServiceTier:     job.ServiceTier,
		FileRef:         job.FileRef,
		DurationSeconds: job.DurationSeconds,
		State:           job.State,
		Queued:          job.Queued,
		Funding: dto.FundingDTO{
			TrialSeconds:   job.Funding.TrialSeconds,
			PackageSeconds: packageSeconds,
			WalletSeconds:  job.Funding.WalletSeconds,
			WalletCost:     job.Funding.WalletCost,
			TotalCost:      job.Funding.WalletCost + packageCost(job),
		},
		CorrelationID: job.CorrelationID,
		CreatedAt:     job.CreatedAt,
	}
}

func packageCost(job *domain.Job) float64 {
	var cost float64
	for _, draw := range job.Funding.PackageDraws {
		cost += draw.Cost
	}
	return cost
}
