package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
	"github.com/voxgate/voxgate/internal/service/fundingservice"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockLedgerRepo, *MockAllocator) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	allocator := NewMockAllocator(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(accountRepo, ledgerRepo, allocator, txManager, 1800, 14*24*time.Hour)
	defer ctrl.Finish()
	return service, accountRepo, ledgerRepo, allocator
}

func TestCreateAccount(t *testing.T) {
	service, accountRepo, ledgerRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Account opens with the trial grant on the ledger",
			prepareMock: func() {
				accountRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, account *domain.Account) (*domain.Account, error) {
						assert.Equal(t, int64(1800), account.TrialSecondsRemaining)
						account.ID = 1
						return account, nil
					})
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.LedgerKindAdjustment, entry.Kind)
						assert.Equal(t, int64(1800), entry.Breakdown.TrialSeconds)
						return entry, nil
					})
			},
		},
		{
			name: "Repo error aborts the account",
			prepareMock: func() {
				accountRepo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.CreateAccount(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1800), account.TrialSecondsRemaining)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		accountID     int
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Balance with packages",
			accountID: 1,
			prepareMock: func() {
				accountRepo.EXPECT().GetAccount(gomock.Any(), 1).Return(&domain.Account{ID: 1, WalletBalance: 25}, nil)
				accountRepo.EXPECT().ListPackages(gomock.Any(), 1).Return([]domain.Package{{ID: 2}}, nil)
			},
		},
		{
			name:      "Unknown account",
			accountID: 9,
			prepareMock: func() {
				accountRepo.EXPECT().GetAccount(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, packages, err := service.GetBalance(context.Background(), tt.accountID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.accountID, account.ID)
				assert.Len(t, packages, 1)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	future := time.Now().Add(time.Hour)

	plan := &domain.FundingPlan{
		SourceBreakdown: domain.SourceBreakdown{
			TrialSeconds:  300,
			PackageDraws:  []domain.PackageDraw{{PackageID: 4, Seconds: 120, Cost: 1.2}},
			WalletSeconds: 60,
			WalletCost:    2.5,
		},
		TotalCost: 3.7,
	}

	tests := []struct {
		name          string
		prepareMock   func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, allocator *MockAllocator)
		expectedError error
	}{
		{
			name: "Debit applies the plan and appends a ledger entry",
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo, allocator *MockAllocator) {
				account := &domain.Account{ID: 1, TrialSecondsRemaining: 300, TrialExpiresAt: future, WalletBalance: 10}
				packages := []domain.Package{{ID: 4, ServiceTier: domain.TierAutomated, SecondsTotal: 600, SecondsUsed: 480, UnitRate: 0.6, ExpiresAt: future}}

				accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).Return(account, nil)
				accountRepo.EXPECT().ListPackages(gomock.Any(), 1).Return(packages, nil)
				allocator.EXPECT().Plan(account, packages, domain.TierAutomated, int64(480), domain.AddOns{}, gomock.Any()).Return(plan, nil)
				accountRepo.EXPECT().UpdatePackageUsage(gomock.Any(), 4, int64(600)).Return(nil)
				accountRepo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, updated *domain.Account) error {
						assert.Equal(t, int64(0), updated.TrialSecondsRemaining)
						assert.Equal(t, 7.5, updated.WalletBalance)
						return nil
					})
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.LedgerKindDebit, entry.Kind)
						assert.Equal(t, -3.7, entry.Amount)
						assert.Equal(t, plan.SourceBreakdown, entry.Breakdown)
						entry.ID = 11
						return entry, nil
					})
			},
		},
		{
			name: "Unknown account",
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, _ *MockAllocator) {
				accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
		{
			name: "Planner rejection leaves the balance untouched",
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, allocator *MockAllocator) {
				account := &domain.Account{ID: 1, WalletBalance: 1}
				accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).Return(account, nil)
				accountRepo.EXPECT().ListPackages(gomock.Any(), 1).Return(nil, nil)
				allocator.EXPECT().Plan(account, nil, domain.TierAutomated, int64(480), domain.AddOns{}, gomock.Any()).
					Return(nil, errors.New("insufficient funds: short $1.00"))
			},
			expectedError: errors.New("insufficient funds: short $1.00"),
		},
		{
			name: "Lock conflicts exhaust retries",
			prepareMock: func(accountRepo *MockAccountRepo, _ *MockLedgerRepo, _ *MockAllocator) {
				accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).
					Return(nil, &pgconn.PgError{Code: "55P03"}).Times(maxTxRetries)
			},
			expectedError: ErrConcurrentModification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, allocator := NewMock(t)
			tt.prepareMock(accountRepo, ledgerRepo, allocator)

			entry, gotPlan, err := service.Debit(context.Background(), 1, domain.TierAutomated, 480, domain.AddOns{})
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, entry)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(11), entry.ID)
			assert.Equal(t, plan, gotPlan)
		})
	}
}

// TestDebitConcurrent races debits against a shared in-memory account.
// Begin serializes the closures the way the row lock does in Postgres
// and rolls the account back when a closure fails, so only the feasible
// subset of the racing debits may commit.
func TestDebitConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := NewMockAccountRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	allocator := fundingservice.New(fundingservice.Rates{Human: 2.5})
	service := New(accountRepo, ledgerRepo, allocator, txManager, 0, 0)

	var mu sync.Mutex
	state := domain.Account{ID: 1, TrialExpiresAt: time.Now().Add(-time.Hour), WalletBalance: 10}
	var entries []domain.LedgerEntry

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			mu.Lock()
			defer mu.Unlock()
			snapshot := state
			if err := fn(ctx); err != nil {
				state = snapshot
				return err
			}
			return nil
		},
	).AnyTimes()
	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).DoAndReturn(
		func(context.Context, int) (*domain.Account, error) {
			account := state
			return &account, nil
		},
	).AnyTimes()
	accountRepo.EXPECT().ListPackages(gomock.Any(), 1).Return(nil, nil).AnyTimes()
	accountRepo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *domain.Account) error {
			assert.GreaterOrEqual(t, updated.WalletBalance, 0.0)
			state = *updated
			return nil
		},
	).AnyTimes()
	ledgerRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			entry.ID = int64(len(entries) + 1)
			entries = append(entries, *entry)
			return entry, nil
		},
	).AnyTimes()

	// $10 wallet, five racing $5 debits (2 min of human work each):
	// exactly two can be funded.
	const debits = 5
	results := make(chan error, debits)
	for i := 0; i < debits; i++ {
		go func() {
			_, _, err := service.Debit(context.Background(), 1, domain.TierHuman, 120, domain.AddOns{})
			results <- err
		}()
	}

	var committed, rejected int
	for i := 0; i < debits; i++ {
		err := <-results
		switch {
		case err == nil:
			committed++
		case errors.Is(err, fundingservice.ErrInsufficientFunds):
			rejected++
		default:
			t.Fatalf("unexpected debit error: %v", err)
		}
	}

	assert.Equal(t, 2, committed)
	assert.Equal(t, 3, rejected)
	assert.Equal(t, 0.0, state.WalletBalance)
	assert.Len(t, entries, 2)
}

func TestRefund(t *testing.T) {
	debit := &domain.LedgerEntry{
		ID:        11,
		AccountID: 1,
		Kind:      domain.LedgerKindDebit,
		Amount:    -3.7,
		Breakdown: domain.SourceBreakdown{
			TrialSeconds:  300,
			PackageDraws:  []domain.PackageDraw{{PackageID: 4, Seconds: 120, Cost: 1.2}},
			WalletSeconds: 60,
			WalletCost:    2.5,
		},
	}

	tests := []struct {
		name          string
		prepareMock   func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo)
		expectedError error
	}{
		{
			name: "Refund restores every funding source exactly",
			prepareMock: func(accountRepo *MockAccountRepo, ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().GetEntry(gomock.Any(), int64(11)).Return(debit, nil)
				ledgerRepo.EXPECT().HasRefund(gomock.Any(), int64(11)).Return(false, nil)
				accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).
					Return(&domain.Account{ID: 1, TrialSecondsRemaining: 0, WalletBalance: 7.5}, nil)
				accountRepo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, updated *domain.Account) error {
						assert.Equal(t, int64(300), updated.TrialSecondsRemaining)
						assert.Equal(t, 10.0, updated.WalletBalance)
						return nil
					})
				accountRepo.EXPECT().ListPackages(gomock.Any(), 1).
					Return([]domain.Package{{ID: 4, SecondsTotal: 600, SecondsUsed: 600}}, nil)
				accountRepo.EXPECT().UpdatePackageUsage(gomock.Any(), 4, int64(480)).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.LedgerKindRefund, entry.Kind)
						assert.Equal(t, 3.7, entry.Amount)
						assert.Equal(t, int64(11), *entry.RefEntryID)
						return entry, nil
					})
			},
		},
		{
			name: "Second refund of the same debit is refused",
			prepareMock: func(_ *MockAccountRepo, ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().GetEntry(gomock.Any(), int64(11)).Return(debit, nil)
				ledgerRepo.EXPECT().HasRefund(gomock.Any(), int64(11)).Return(true, nil)
			},
			expectedError: ErrAlreadyRefunded,
		},
		{
			name: "Only debits can be refunded",
			prepareMock: func(_ *MockAccountRepo, ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().GetEntry(gomock.Any(), int64(11)).
					Return(&domain.LedgerEntry{ID: 11, Kind: domain.LedgerKindPurchase}, nil)
			},
			expectedError: ErrNotDebit,
		},
		{
			name: "Missing entry",
			prepareMock: func(_ *MockAccountRepo, ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().GetEntry(gomock.Any(), int64(11)).Return(nil, nil)
			},
			expectedError: ErrEntryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, _ := NewMock(t)
			tt.prepareMock(accountRepo, ledgerRepo)

			refund, err := service.Refund(context.Background(), 11)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, refund)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3.7, refund.Amount)
			}
		})
	}
}

func TestCreditTopUp(t *testing.T) {
	service, accountRepo, ledgerRepo, _ := NewMock(t)

	accountRepo.EXPECT().GetAccountForUpdate(gomock.Any(), 1).
		Return(&domain.Account{ID: 1, WalletBalance: 5}, nil)
	accountRepo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, updated *domain.Account) error {
			assert.Equal(t, 30.0, updated.WalletBalance)
			return nil
		})
	ledgerRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			assert.Equal(t, domain.LedgerKindPurchase, entry.Kind)
			assert.Equal(t, 25.0, entry.Breakdown.WalletCost)
			return entry, nil
		})

	entry, err := service.CreditTopUp(context.Background(), 1, 25)
	assert.NoError(t, err)
	assert.Equal(t, 25.0, entry.Amount)
}

func TestVerifyAccount(t *testing.T) {
	future := time.Now().Add(time.Hour)

	entries := []domain.LedgerEntry{
		{Kind: domain.LedgerKindAdjustment, Breakdown: domain.SourceBreakdown{TrialSeconds: 1800}},
		{Kind: domain.LedgerKindPurchase, Amount: 25, Breakdown: domain.SourceBreakdown{WalletCost: 25}},
		{Kind: domain.LedgerKindDebit, Amount: -3.7, Breakdown: domain.SourceBreakdown{TrialSeconds: 300, WalletCost: 2.5}},
	}

	tests := []struct {
		name          string
		account       *domain.Account
		expectedError error
		consistent    bool
	}{
		{
			name:       "Ledger reconciles",
			account:    &domain.Account{ID: 1, TrialSecondsRemaining: 1500, TrialExpiresAt: future, WalletBalance: 22.5},
			consistent: true,
		},
		{
			name:          "Drifted wallet is reported, never corrected",
			account:       &domain.Account{ID: 1, TrialSecondsRemaining: 1500, TrialExpiresAt: future, WalletBalance: 20},
			expectedError: ErrDataIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, ledgerRepo, _ := NewMock(t)
			accountRepo.EXPECT().GetAccount(gomock.Any(), 1).Return(tt.account, nil)
			ledgerRepo.EXPECT().ListByAccount(gomock.Any(), 1).Return(entries, nil)

			rec, err := service.VerifyAccount(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.NotNil(t, rec)
				assert.False(t, rec.Consistent)
				assert.Equal(t, 22.5, rec.WalletExpected)
				assert.Equal(t, 20.0, rec.WalletActual)
			} else {
				assert.NoError(t, err)
				assert.True(t, rec.Consistent)
			}
		})
	}
}

// Expiry zeroes the usable allowance at read time only; the stored
// column still has to match the ledger, so drift that predates the
// expiry keeps surfacing after the window closes.
func TestVerifyAccountExpiredTrial(t *testing.T) {
	service, accountRepo, ledgerRepo, _ := NewMock(t)

	entries := []domain.LedgerEntry{
		{Kind: domain.LedgerKindAdjustment, Breakdown: domain.SourceBreakdown{TrialSeconds: 1800}},
		{Kind: domain.LedgerKindPurchase, Amount: 25, Breakdown: domain.SourceBreakdown{WalletCost: 25}},
		{Kind: domain.LedgerKindDebit, Amount: -3.7, Breakdown: domain.SourceBreakdown{TrialSeconds: 300, WalletCost: 2.5}},
	}
	account := &domain.Account{
		ID:                    1,
		TrialSecondsRemaining: 1200,
		TrialExpiresAt:        time.Now().Add(-time.Hour),
		WalletBalance:         22.5,
	}

	accountRepo.EXPECT().GetAccount(gomock.Any(), 1).Return(account, nil)
	ledgerRepo.EXPECT().ListByAccount(gomock.Any(), 1).Return(entries, nil)

	rec, err := service.VerifyAccount(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDataIntegrity)
	assert.False(t, rec.Consistent)
	assert.Equal(t, int64(1500), rec.TrialSecondsExpected)
	assert.Equal(t, int64(1200), rec.TrialSecondsActual)
}
