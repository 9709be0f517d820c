package domain

import "time"

type Account struct {
	ID                    int       `db:"id"`
	TrialSecondsRemaining int64     `db:"trial_seconds_remaining"`
	TrialExpiresAt        time.Time `db:"trial_expires_at"`
	WalletBalance         float64   `db:"wallet_balance"`
	CreatedAt             time.Time `db:"created_at"`
}

// TrialRemaining returns the usable trial allowance at the given moment.
func (a *Account) TrialRemaining(now time.Time) int64 {
	if now.After(a.TrialExpiresAt) {
		return 0
	}
	return a.TrialSecondsRemaining
}

type Package struct {
	ID           int       `db:"id"`
	AccountID    int       `db:"account_id"`
	ServiceTier  string    `db:"service_tier"`
	SecondsTotal int64     `db:"seconds_total"`
	SecondsUsed  int64     `db:"seconds_used"`
	UnitRate     float64   `db:"unit_rate"`
	PurchasedAt  time.Time `db:"purchased_at"`
	ExpiresAt    time.Time `db:"expires_at"`
}

func (p *Package) SecondsRemaining() int64 {
	return p.SecondsTotal - p.SecondsUsed
}

func (p *Package) Active(now time.Time) bool {
	return p.SecondsRemaining() > 0 && now.Before(p.ExpiresAt)
}

type LedgerEntry struct {
	ID         int64           `db:"id"`
	AccountID  int             `db:"account_id"`
	Kind       string          `db:"kind"`
	Amount     float64         `db:"amount"`
	JobID      *int            `db:"job_id"`
	RefEntryID *int64          `db:"ref_entry_id"`
	Breakdown  SourceBreakdown `db:"breakdown"`
	CreatedAt  time.Time       `db:"created_at"`
}

// PackageDraw is the portion of a funding plan drawn from one package.
type PackageDraw struct {
	PackageID int     `json:"package_id"`
	Seconds   int64   `json:"seconds"`
	Cost      float64 `json:"cost"`
}

// SourceBreakdown records how many seconds and dollars each funding
// source contributed to one balance mutation.
type SourceBreakdown struct {
	TrialSeconds  int64         `json:"trial_seconds"`
	PackageDraws  []PackageDraw `json:"package_draws,omitempty"`
	WalletSeconds int64         `json:"wallet_seconds"`
	WalletCost    float64       `json:"wallet_cost"`
	AddOnCost     float64       `json:"addon_cost"`
}

// FundingPlan is the allocator's decision: the breakdown plus totals.
type FundingPlan struct {
	SourceBreakdown
	TotalCost float64 `json:"total_cost"`
}

type AddOns struct {
	Expedited    bool `json:"expedited"`
	Multispeaker bool `json:"multispeaker"`
}

type Job struct {
	ID              int             `db:"id"`
	AccountID       int             `db:"account_id"`
	ServiceTier     string          `db:"service_tier"`
	FileRef         string          `db:"file_ref"`
	DurationSeconds int64           `db:"duration_seconds"`
	AddOns          AddOns          `db:"-"`
	Funding         SourceBreakdown `db:"funding"`
	State           string          `db:"state"`
	Queued          bool            `db:"queued"`
	Attempts        int             `db:"attempts"`
	ExternalJobID   *string         `db:"external_job_id"`
	AssignmentID    *int            `db:"assignment_id"`
	CorrelationID   string          `db:"correlation_id"`
	DebitEntryID    *int64          `db:"debit_entry_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type Worker struct {
	ID            int       `db:"id"`
	Name          string    `db:"name"`
	Status        string    `db:"status"`
	QualityRating float64   `db:"quality_rating"`
	RegisteredAt  time.Time `db:"registered_at"`
}

type Assignment struct {
	ID               int        `db:"id"`
	JobID            int        `db:"job_id"`
	WorkerID         int        `db:"worker_id"`
	Status           string     `db:"status"`
	EstimatedSeconds int64      `db:"estimated_seconds"`
	AssignedAt       time.Time  `db:"assigned_at"`
	CompletedAt      *time.Time `db:"completed_at"`
}
