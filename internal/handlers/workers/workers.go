package workers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/dto"
	workerservice "github.com/voxgate/voxgate/internal/service/workerservice"
	"github.com/voxgate/voxgate/pkg/utils"
)

//go:generate mockgen -source=workers.go -destination=mock.go -package=workers

type Service interface {
	RegisterWorker(ctx context.Context, name string, qualityRating float64) (*domain.Worker, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	SetWorkerStatus(ctx context.Context, workerID int, status string) error
	Start(ctx context.Context, assignmentID int) (*domain.Assignment, error)
	Submit(ctx context.Context, assignmentID int) (*domain.Assignment, error)
	GetWorkerAssignments(ctx context.Context, workerID int) ([]domain.Assignment, error)
}

type WorkerHandler struct {
	workerService Service
}

func New(workerService Service) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
	}
}

// RegisterWorker godoc
//
//	@Summary		Register a worker
//	@Description	Add a transcriptionist to the pool. New workers start active with zero workload.
//	@Tags			Workers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterWorkerRequestDTO	true	"Worker profile"
//	@Success		201		{object}	dto.WorkerResponseDTO			"Registered worker"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/workers [post]
func (h *WorkerHandler) RegisterWorker(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterWorkerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name is required")
		return
	}

	worker, err := h.workerService.RegisterWorker(r.Context(), req.Name, req.QualityRating)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toWorkerDTO(worker))
}

// ListWorkers godoc
//
//	@Summary	List workers
//	@Tags		Workers
//	@Produce	json
//	@Success	200	{array}		dto.WorkerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/workers [get]
func (h *WorkerHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.ListWorkers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch workers")
		return
	}

	response := make([]dto.WorkerResponseDTO, len(workers))
	for i, worker := range workers {
		response[i] = toWorkerDTO(&worker)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetWorkerStatus godoc
//
//	@Summary		Change worker status
//	@Description	Mark a worker active or inactive. Inactive workers keep their open assignments but receive no new ones.
//	@Tags			Workers
//	@Accept			json
//	@Produce		json
//	@Param			workerID	path		int							true	"Worker ID"
//	@Param			request		body		dto.WorkerStatusRequestDTO	true	"New status"
//	@Success		200			{string}	string						"Status updated"
//	@Failure		400			{object}	utils.Response				"Invalid payload"
//	@Failure		404			{object}	utils.Response				"Worker not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/workers/{workerID}/status [patch]
func (h *WorkerHandler) SetWorkerStatus(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.Atoi(chi.URLParam(r, "workerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid worker id")
		return
	}

	var req dto.WorkerStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != domain.WorkerStatusActive && req.Status != domain.WorkerStatusInactive {
		utils.RespondWithError(w, http.StatusBadRequest, "status must be active or inactive")
		return
	}

	if err := h.workerService.SetWorkerStatus(r.Context(), workerID, req.Status); err != nil {
		if errors.Is(err, workerservice.ErrWorkerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "status updated")
}

// GetWorkerAssignments godoc
//
//	@Summary	List a worker's assignments
//	@Tags		Workers
//	@Produce	json
//	@Param		workerID	path	int	true	"Worker ID"
//	@Success	200	{array}		dto.AssignmentResponseDTO
//	@Success	204	{object}	utils.Response	"No assignments"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/workers/{workerID}/assignments [get]
func (h *WorkerHandler) GetWorkerAssignments(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.Atoi(chi.URLParam(r, "workerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid worker id")
		return
	}

	assignments, err := h.workerService.GetWorkerAssignments(r.Context(), workerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch assignments")
		return
	}
	if len(assignments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No assignments found")
		return
	}

	response := make([]dto.AssignmentResponseDTO, len(assignments))
	for i, assignment := range assignments {
		response[i] = toAssignmentDTO(&assignment)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// StartAssignment godoc
//
//	@Summary		Start an assignment
//	@Description	The worker begins the transcription. Human-only jobs move to IN_PROGRESS.
//	@Tags			Workers
//	@Produce		json
//	@Param			assignmentID	path		int	true	"Assignment ID"
//	@Success		200				{object}	dto.AssignmentResponseDTO
//	@Failure		404				{object}	utils.Response	"Assignment not found"
//	@Failure		409				{object}	utils.Response	"Assignment already started or completed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/assignments/{assignmentID}/start [post]
func (h *WorkerHandler) StartAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := strconv.Atoi(chi.URLParam(r, "assignmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	assignment, err := h.workerService.Start(r.Context(), assignmentID)
	if err != nil {
		respondAssignmentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAssignmentDTO(assignment))
}

// SubmitAssignment godoc
//
//	@Summary		Submit a finished assignment
//	@Description	The worker turns in the transcript. The assignment completes and the job advances to COMPLETED.
//	@Tags			Workers
//	@Produce		json
//	@Param			assignmentID	path		int	true	"Assignment ID"
//	@Success		200				{object}	dto.AssignmentResponseDTO
//	@Failure		404				{object}	utils.Response	"Assignment not found"
//	@Failure		409				{object}	utils.Response	"Assignment already completed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/assignments/{assignmentID}/submit [post]
func (h *WorkerHandler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := strconv.Atoi(chi.URLParam(r, "assignmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	assignment, err := h.workerService.Submit(r.Context(), assignmentID)
	if err != nil {
		respondAssignmentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAssignmentDTO(assignment))
}

func respondAssignmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workerservice.ErrAssignmentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, workerservice.ErrAssignmentCompleted):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toWorkerDTO(worker *domain.Worker) dto.WorkerResponseDTO {
	return dto.WorkerResponseDTO{
		ID:            worker.ID,
		Name:          worker.Name,
		Status:        worker.Status,
		QualityRating: worker.QualityRating,
		RegisteredAt:  worker.RegisteredAt,
	}
}

func toAssignmentDTO(assignment *domain.Assignment) dto.AssignmentResponseDTO {
	return dto.AssignmentResponseDTO{
		ID:               assignment.ID,
		JobID:            assignment.JobID,
		WorkerID:         assignment.WorkerID,
		Status:           assignment.Status,
		EstimatedSeconds: assignment.EstimatedSeconds,
		AssignedAt:       assignment.AssignedAt,
		CompletedAt:      assignment.CompletedAt,
	}
}
