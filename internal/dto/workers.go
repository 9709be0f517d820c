package dto

import "time"

type RegisterWorkerRequestDTO struct {
	Name          string  `json:"name" example:"a.petrova"`
	QualityRating float64 `json:"quality_rating" example:"4.8"`
}

type WorkerStatusRequestDTO struct {
	Status string `json:"status" example:"inactive"`
}

type WorkerResponseDTO struct {
	ID            int       `json:"id" example:"3"`
	Name          string    `json:"name" example:"a.petrova"`
	Status        string    `json:"status" example:"active"`
	QualityRating float64   `json:"quality_rating" example:"4.8"`
	RegisteredAt  time.Time `json:"registered_at" example:"2024-10-01T09:00:00+03:00"`
}

type AssignmentResponseDTO struct {
	ID               int        `json:"id" example:"5"`
	JobID            int        `json:"job_id" example:"7"`
	WorkerID         int        `json:"worker_id" example:"3"`
	Status           string     `json:"status" example:"assigned"`
	EstimatedSeconds int64      `json:"estimated_seconds" example:"1920"`
	AssignedAt       time.Time  `json:"assigned_at" example:"2024-12-09T16:09:57+03:00"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}
