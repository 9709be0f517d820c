package fundingservice

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voxgate/voxgate/internal/domain"
)

var testRates = Rates{
	Automated:    0.25,
	Reviewed:     1.25,
	Human:        2.50,
	Expedited:    0.50,
	Multispeaker: 0.30,
}

func TestTierRate(t *testing.T) {
	service := New(testRates)

	tests := []struct {
		name          string
		tier          string
		expectedRate  float64
		expectedError error
	}{
		{name: "Automated tier", tier: domain.TierAutomated, expectedRate: 0.25},
		{name: "Reviewed tier", tier: domain.TierReviewed, expectedRate: 1.25},
		{name: "Human tier", tier: domain.TierHuman, expectedRate: 2.50},
		{name: "Unknown tier", tier: "PLATINUM", expectedError: ErrUnknownTier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := service.TierRate(tt.tier)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRate, rate)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	service := New(testRates)
	now := time.Date(2024, 12, 9, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * 24 * time.Hour)

	tests := []struct {
		name             string
		account          *domain.Account
		packages         []domain.Package
		tier             string
		requestedSeconds int64
		addOns           domain.AddOns
		expectedPlan     *domain.FundingPlan
		expectedError    error
	}{
		{
			name: "Trial covers part, wallet funds the rest",
			account: &domain.Account{
				TrialSecondsRemaining: 300,
				TrialExpiresAt:        future,
				WalletBalance:         10,
			},
			tier:             domain.TierAutomated,
			requestedSeconds: 480,
			expectedPlan: &domain.FundingPlan{
				SourceBreakdown: domain.SourceBreakdown{
					TrialSeconds:  300,
					WalletSeconds: 180,
					WalletCost:    0.75,
				},
				TotalCost: 0.75,
			},
		},
		{
			name: "Cheapest package drains before the pricier one",
			account: &domain.Account{
				TrialExpiresAt: now.Add(-time.Hour),
			},
			packages: []domain.Package{
				{ID: 2, ServiceTier: domain.TierHuman, SecondsTotal: 18000, SecondsUsed: 17700, UnitRate: 0.75, PurchasedAt: now.Add(-48 * time.Hour), ExpiresAt: future},
				{ID: 1, ServiceTier: domain.TierHuman, SecondsTotal: 600, UnitRate: 0.60, PurchasedAt: now.Add(-24 * time.Hour), ExpiresAt: future},
			},
			tier:             domain.TierHuman,
			requestedSeconds: 900,
			expectedPlan: &domain.FundingPlan{
				SourceBreakdown: domain.SourceBreakdown{
					PackageDraws: []domain.PackageDraw{
						{PackageID: 1, Seconds: 600, Cost: 6},
						{PackageID: 2, Seconds: 300, Cost: 3.75},
					},
				},
				TotalCost: 9.75,
			},
		},
		{
			name: "Rate tie resolves to the oldest purchase",
			account: &domain.Account{
				TrialExpiresAt: now.Add(-time.Hour),
			},
			packages: []domain.Package{
				{ID: 5, ServiceTier: domain.TierReviewed, SecondsTotal: 1200, UnitRate: 0.90, PurchasedAt: now.Add(-time.Hour), ExpiresAt: future},
				{ID: 4, ServiceTier: domain.TierReviewed, SecondsTotal: 1200, UnitRate: 0.90, PurchasedAt: now.Add(-72 * time.Hour), ExpiresAt: future},
			},
			tier:             domain.TierReviewed,
			requestedSeconds: 600,
			expectedPlan: &domain.FundingPlan{
				SourceBreakdown: domain.SourceBreakdown{
					PackageDraws: []domain.PackageDraw{
						{PackageID: 4, Seconds: 600, Cost: 9},
					},
				},
				TotalCost: 9,
			},
		},
		{
			name: "Expired trial and foreign-tier packages are skipped",
			account: &domain.Account{
				TrialSecondsRemaining: 1800,
				TrialExpiresAt:        now.Add(-time.Minute),
				WalletBalance:         100,
			},
			packages: []domain.Package{
				{ID: 7, ServiceTier: domain.TierHuman, SecondsTotal: 18000, UnitRate: 0.60, PurchasedAt: now, ExpiresAt: future},
				{ID: 8, ServiceTier: domain.TierAutomated, SecondsTotal: 18000, UnitRate: 0.10, PurchasedAt: now, ExpiresAt: now.Add(-time.Hour)},
			},
			tier:             domain.TierAutomated,
			requestedSeconds: 600,
			expectedPlan: &domain.FundingPlan{
				SourceBreakdown: domain.SourceBreakdown{
					WalletSeconds: 600,
					WalletCost:    2.5,
				},
				TotalCost: 2.5,
			},
		},
		{
			name: "Surcharges apply to the wallet portion only",
			account: &domain.Account{
				TrialSecondsRemaining: 300,
				TrialExpiresAt:        future,
				WalletBalance:         100,
			},
			packages: []domain.Package{
				{ID: 3, ServiceTier: domain.TierReviewed, SecondsTotal: 300, UnitRate: 1.00, PurchasedAt: now, ExpiresAt: future},
			},
			tier:             domain.TierReviewed,
			requestedSeconds: 900,
			addOns:           domain.AddOns{Expedited: true, Multispeaker: true},
			expectedPlan: &domain.FundingPlan{
				SourceBreakdown: domain.SourceBreakdown{
					TrialSeconds: 300,
					PackageDraws: []domain.PackageDraw{
						{PackageID: 3, Seconds: 300, Cost: 5},
					},
					WalletSeconds: 300,
					WalletCost:    10.25,
					AddOnCost:     4,
				},
				TotalCost: 15.25,
			},
		},
		{
			name: "Insufficient wallet reports the exact shortfall",
			account: &domain.Account{
				TrialExpiresAt: now.Add(-time.Hour),
				WalletBalance:  5,
			},
			tier:             domain.TierHuman,
			requestedSeconds: 600,
			expectedError:    ErrInsufficientFunds,
		},
		{
			name:             "Unknown tier is rejected before any allocation",
			account:          &domain.Account{},
			tier:             "GOLD",
			requestedSeconds: 60,
			expectedError:    ErrUnknownTier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := service.Plan(tt.account, tt.packages, tt.tier, tt.requestedSeconds, tt.addOns, now)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, plan)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPlan, plan)

			var funded int64 = plan.TrialSeconds + plan.WalletSeconds
			total := plan.WalletCost
			for _, draw := range plan.PackageDraws {
				funded += draw.Seconds
				total += draw.Cost
			}
			assert.Equal(t, tt.requestedSeconds, funded)
			assert.InDelta(t, total, plan.TotalCost, 0.001)
		})
	}
}

func TestPlanShortfall(t *testing.T) {
	service := New(testRates)
	now := time.Now()

	account := &domain.Account{
		TrialExpiresAt: now.Add(-time.Hour),
		WalletBalance:  5,
	}

	// 10 minutes of human work costs $25, leaving a $20 gap.
	_, err := service.Plan(account, nil, domain.TierHuman, 600, domain.AddOns{}, now)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	var insufficientErr *InsufficientFundsError
	assert.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, 20.0, insufficientErr.Shortfall)
}

func TestPlanDoesNotMutateInputs(t *testing.T) {
	service := New(testRates)
	now := time.Now()
	future := now.Add(time.Hour)

	account := &domain.Account{
		TrialSecondsRemaining: 300,
		TrialExpiresAt:        future,
		WalletBalance:         50,
	}
	packages := []domain.Package{
		{ID: 1, ServiceTier: domain.TierAutomated, SecondsTotal: 600, UnitRate: 0.10, PurchasedAt: now, ExpiresAt: future},
	}

	_, err := service.Plan(account, packages, domain.TierAutomated, 1200, domain.AddOns{}, now)
	assert.NoError(t, err)

	assert.Equal(t, int64(300), account.TrialSecondsRemaining)
	assert.Equal(t, 50.0, account.WalletBalance)
	assert.Equal(t, int64(0), packages[0].SecondsUsed)
}
