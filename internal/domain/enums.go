package domain

// Service tiers.
const (
	// TierAutomated machine transcription only.
	TierAutomated string = "AUTOMATED"
	// TierReviewed machine transcription followed by human review.
	TierReviewed string = "REVIEWED"
	// TierHuman transcription performed entirely by a human worker.
	TierHuman string = "HUMAN"
)

// Job states.
const (
	JobStatePending     string = "PENDING"
	JobStateProcessing  string = "PROCESSING"
	JobStateHumanReview string = "HUMAN_REVIEW"
	JobStateAssigned    string = "ASSIGNED"
	JobStateInProgress  string = "IN_PROGRESS"
	JobStateCompleted   string = "COMPLETED"
	JobStateError       string = "ERROR"
	JobStateCancelled   string = "CANCELLED"
)

// Ledger entry kinds.
const (
	LedgerKindPurchase   string = "purchase"
	LedgerKindDebit      string = "debit"
	LedgerKindRefund     string = "refund"
	LedgerKindAdjustment string = "adjustment"
)

// Worker statuses.
const (
	WorkerStatusActive   string = "active"
	WorkerStatusInactive string = "inactive"
)

// Assignment statuses.
const (
	AssignmentStatusAssigned   string = "assigned"
	AssignmentStatusInProgress string = "in_progress"
	AssignmentStatusCompleted  string = "completed"
)
