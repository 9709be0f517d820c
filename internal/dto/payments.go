package dto

// PurchaseConfirmedRequestDTO is the payment processor's confirmation
// event. Exactly one of package or top-up must be present.
type PurchaseConfirmedRequestDTO struct {
	AccountID       int     `json:"account_id" example:"1"`
	Reference       string  `json:"reference" example:"2377225624"`
	AmountConfirmed float64 `json:"amount_confirmed" example:"25"`

	Package *PackagePurchaseDTO `json:"package,omitempty"`
	TopUp   bool                `json:"top_up,omitempty" example:"false"`
}

type PackagePurchaseDTO struct {
	ServiceTier  string  `json:"service_tier" example:"HUMAN"`
	SecondsTotal int64   `json:"seconds_total" example:"18000"`
	UnitRate     float64 `json:"unit_rate" example:"0.6"`
	ValidityDays int     `json:"validity_days" example:"365"`
}
