package dto

import "time"

type SubmitJobRequestDTO struct {
	FileRef         string `json:"file_ref" example:"s3://uploads/interview-0042.mp3"`
	DurationSeconds int64  `json:"duration_seconds" example:"480"`
	ServiceTier     string `json:"service_tier" example:"AUTOMATED"`
	Expedited       bool   `json:"expedited" example:"false"`
	Multispeaker    bool   `json:"multispeaker" example:"true"`
}

type FundingDTO struct {
	TrialSeconds   int64   `json:"trial_seconds" example:"300"`
	PackageSeconds int64   `json:"package_seconds" example:"0"`
	WalletSeconds  int64   `json:"wallet_seconds" example:"180"`
	WalletCost     float64 `json:"wallet_cost" example:"3"`
	TotalCost      float64 `json:"total_cost" example:"3"`
}

type JobResponseDTO struct {
	ID              int        `json:"id" example:"7"`
	ServiceTier     string     `json:"service_tier" example:"AUTOMATED"`
	FileRef         string     `json:"file_ref" example:"s3://uploads/interview-0042.mp3"`
	DurationSeconds int64      `json:"duration_seconds" example:"480"`
	State           string     `json:"state" example:"PENDING"`
	Queued          bool       `json:"queued" example:"false"`
	Funding         FundingDTO `json:"funding"`
	CorrelationID   string     `json:"correlation_id" example:"7d9db493-5c53-4b2b-8f4a-7f1a01b2a6c1"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
