package dto

import "time"

type PackageDTO struct {
	ID               int       `json:"id" example:"1"`
	ServiceTier      string    `json:"service_tier" example:"HUMAN"`
	SecondsTotal     int64     `json:"seconds_total" example:"18000"`
	SecondsRemaining int64     `json:"seconds_remaining" example:"12000"`
	UnitRate         float64   `json:"unit_rate" example:"0.6"`
	PurchasedAt      time.Time `json:"purchased_at" example:"2024-11-02T10:00:00+03:00"`
	ExpiresAt        time.Time `json:"expires_at" example:"2025-11-02T10:00:00+03:00"`
	Active           bool      `json:"active" example:"true"`
}

type BalanceResponseDTO struct {
	AccountID             int          `json:"account_id" example:"1"`
	TrialSecondsRemaining int64        `json:"trial_seconds_remaining" example:"1500"`
	TrialExpiresAt        time.Time    `json:"trial_expires_at" example:"2024-12-09T16:09:57+03:00"`
	WalletBalance         float64      `json:"wallet_balance" example:"42.5"`
	Packages              []PackageDTO `json:"packages"`
}

type LedgerEntryDTO struct {
	ID        int64     `json:"id" example:"10"`
	Kind      string    `json:"kind" example:"debit"`
	Amount    float64   `json:"amount" example:"-3"`
	JobID     *int      `json:"job_id,omitempty" example:"7"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type VerifyResponseDTO struct {
	Consistent           bool    `json:"consistent" example:"true"`
	TrialSecondsExpected int64   `json:"trial_seconds_expected" example:"1500"`
	TrialSecondsActual   int64   `json:"trial_seconds_actual" example:"1500"`
	WalletExpected       float64 `json:"wallet_expected" example:"42.5"`
	WalletActual         float64 `json:"wallet_actual" example:"42.5"`
}
