package fundingservice

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/voxgate/voxgate/internal/config"
	"github.com/voxgate/voxgate/internal/domain"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownTier       = errors.New("unknown service tier")
)

// InsufficientFundsError carries the exact wallet shortfall so the
// caller can prompt a top-up.
type InsufficientFundsError struct {
	Shortfall float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: short $%.2f", e.Shortfall)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Rates holds the standard per-minute prices. Package draws ignore
// these and use each package's own rate.
type Rates struct {
	Automated    float64
	Reviewed     float64
	Human        float64
	Expedited    float64
	Multispeaker float64
}

func NewRates(cfg *config.Config) Rates {
	return Rates{
		Automated:    cfg.RateAutomated,
		Reviewed:     cfg.RateReviewed,
		Human:        cfg.RateHuman,
		Expedited:    cfg.RateExpedited,
		Multispeaker: cfg.RateMultispeaker,
	}
}

type Service struct {
	rates Rates
}

func New(rates Rates) *Service {
	return &Service{
		rates: rates,
	}
}

func (s *Service) TierRate(tier string) (float64, error) {
	switch tier {
	case domain.TierAutomated:
		return s.rates.Automated, nil
	case domain.TierReviewed:
		return s.rates.Reviewed, nil
	case domain.TierHuman:
		return s.rates.Human, nil
	default:
		return 0, ErrUnknownTier
	}
}

// Plan decides how requestedSeconds are funded. Precedence is fixed:
// trial allowance, then packages matching the tier (cheapest rate
// first, oldest purchase on ties), then wallet. Add-on surcharges
// apply only to the wallet-funded portion. Plan never mutates its
// inputs and performs no I/O.
func (s *Service) Plan(account *domain.Account, packages []domain.Package, tier string, requestedSeconds int64, addOns domain.AddOns, now time.Time) (*domain.FundingPlan, error) {
	rate, err := s.TierRate(tier)
	if err != nil {
		return nil, err
	}

	plan := &domain.FundingPlan{}
	remaining := requestedSeconds

	if trial := account.TrialRemaining(now); trial > 0 {
		plan.TrialSeconds = minInt64(trial, remaining)
		remaining -= plan.TrialSeconds
	}

	candidates := make([]domain.Package, 0, len(packages))
	for _, pkg := range packages {
		if pkg.ServiceTier == tier && pkg.Active(now) {
			candidates = append(candidates, pkg)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].UnitRate != candidates[j].UnitRate {
			return candidates[i].UnitRate < candidates[j].UnitRate
		}
		return candidates[i].PurchasedAt.Before(candidates[j].PurchasedAt)
	})

	for _, pkg := range candidates {
		if remaining == 0 {
			break
		}
		draw := minInt64(pkg.SecondsRemaining(), remaining)
		plan.PackageDraws = append(plan.PackageDraws, domain.PackageDraw{
			PackageID: pkg.ID,
			Seconds:   draw,
			Cost:      roundCents(minutes(draw) * pkg.UnitRate),
		})
		remaining -= draw
	}

	if remaining > 0 {
		plan.WalletSeconds = remaining
		if addOns.Expedited {
			plan.AddOnCost += roundCents(minutes(remaining) * s.rates.Expedited)
		}
		if addOns.Multispeaker {
			plan.AddOnCost += roundCents(minutes(remaining) * s.rates.Multispeaker)
		}
		plan.WalletCost = roundCents(minutes(remaining)*rate) + plan.AddOnCost

		if plan.WalletCost > account.WalletBalance {
			return nil, &InsufficientFundsError{
				Shortfall: roundCents(plan.WalletCost - account.WalletBalance),
			}
		}
	}

	plan.TotalCost = plan.WalletCost
	for _, draw := range plan.PackageDraws {
		plan.TotalCost = roundCents(plan.TotalCost + draw.Cost)
	}

	return plan, nil
}

func minutes(seconds int64) float64 {
	return float64(seconds) / 60
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
