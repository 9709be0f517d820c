package ledgerservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock.go -package=ledgerservice

const maxTxRetries = 3

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrEntryNotFound          = errors.New("ledger entry not found")
	ErrNotDebit               = errors.New("ledger entry is not a debit")
	ErrAlreadyRefunded        = errors.New("debit already refunded")
	ErrConcurrentModification = errors.New("concurrent balance modification")
	ErrDataIntegrity          = errors.New("balance does not reconcile with ledger")
)

type AccountRepo interface {
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID int) (*domain.Account, error)
	GetAccountForUpdate(ctx context.Context, accountID int) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
	ListPackages(ctx context.Context, accountID int) ([]domain.Package, error)
	CreatePackage(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	UpdatePackageUsage(ctx context.Context, packageID int, secondsUsed int64) error
}

type LedgerRepo interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	GetEntry(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.LedgerEntry, error)
	HasRefund(ctx context.Context, entryID int64) (bool, error)
}

type Allocator interface {
	Plan(account *domain.Account, packages []domain.Package, tier string, requestedSeconds int64, addOns domain.AddOns, now time.Time) (*domain.FundingPlan, error)
}

// Service is the ledger transaction executor: every balance mutation
// goes through it as one atomic read-modify-write plus ledger append.
type Service struct {
	accountRepo AccountRepo
	ledgerRepo  LedgerRepo
	allocator   Allocator
	txManager   pg.TXManager

	trialGrantSeconds int64
	trialValidity     time.Duration
}

func New(accountRepo AccountRepo, ledgerRepo LedgerRepo, allocator Allocator, txManager pg.TXManager, trialGrantSeconds int64, trialValidity time.Duration) *Service {
	return &Service{
		accountRepo:       accountRepo,
		ledgerRepo:        ledgerRepo,
		allocator:         allocator,
		txManager:         txManager,
		trialGrantSeconds: trialGrantSeconds,
		trialValidity:     trialValidity,
	}
}

// CreateAccount opens an account with the configured trial grant and
// records the grant as an adjustment entry so the ledger stays the
// source of truth for every balance component.
func (s *Service) CreateAccount(ctx context.Context) (*domain.Account, error) {
	var created *domain.Account
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.CreateAccount(ctx, &domain.Account{
			TrialSecondsRemaining: s.trialGrantSeconds,
			TrialExpiresAt:        time.Now().Add(s.trialValidity),
		})
		if err != nil {
			return err
		}
		_, err = s.ledgerRepo.CreateEntry(ctx, &domain.LedgerEntry{
			AccountID: account.ID,
			Kind:      domain.LedgerKindAdjustment,
			Amount:    0,
			Breakdown: domain.SourceBreakdown{TrialSeconds: s.trialGrantSeconds},
		})
		if err != nil {
			return err
		}
		created = account
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID int) (*domain.Account, []domain.Package, error) {
	account, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, ErrAccountNotFound
	}
	packages, err := s.accountRepo.ListPackages(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	return account, packages, nil
}

func (s *Service) GetLedger(ctx context.Context, accountID int) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.ListByAccount(ctx, accountID)
}

// Debit plans and applies a funding draw atomically. The plan is always
// recomputed against the row-locked balance, so a stale advisory check
// on the caller's side can never overdraw. Lock conflicts retry a
// bounded number of times before surfacing ErrConcurrentModification.
func (s *Service) Debit(ctx context.Context, accountID int, tier string, requestedSeconds int64, addOns domain.AddOns) (*domain.LedgerEntry, *domain.FundingPlan, error) {
	var entry *domain.LedgerEntry
	var plan *domain.FundingPlan

	var err error
	for attempt := 1; attempt <= maxTxRetries; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			account, txErr := s.accountRepo.GetAccountForUpdate(ctx, accountID)
			if txErr != nil {
				return txErr
			}
			if account == nil {
				return ErrAccountNotFound
			}
			packages, txErr := s.accountRepo.ListPackages(ctx, accountID)
			if txErr != nil {
				return txErr
			}

			plan, txErr = s.allocator.Plan(account, packages, tier, requestedSeconds, addOns, time.Now())
			if txErr != nil {
				return txErr
			}

			if txErr = s.applyDebit(ctx, account, packages, plan); txErr != nil {
				return txErr
			}

			entry, txErr = s.ledgerRepo.CreateEntry(ctx, &domain.LedgerEntry{
				AccountID: accountID,
				Kind:      domain.LedgerKindDebit,
				Amount:    -plan.TotalCost,
				Breakdown: plan.SourceBreakdown,
			})
			return txErr
		})
		if err == nil {
			return entry, plan, nil
		}
		if !isRetryable(err) {
			return nil, nil, err
		}
		zap.L().Warn("debit transaction conflict, retrying",
			zap.Int("accountID", accountID),
			zap.Int("attempt", attempt),
		)
	}

	zap.L().Error("debit failed after retries", zap.Int("accountID", accountID), zap.Error(err))
	return nil, nil, ErrConcurrentModification
}

func (s *Service) applyDebit(ctx context.Context, account *domain.Account, packages []domain.Package, plan *domain.FundingPlan) error {
	account.TrialSecondsRemaining -= plan.TrialSeconds
	account.WalletBalance = roundCents(account.WalletBalance - plan.WalletCost)
	if account.TrialSecondsRemaining < 0 || account.WalletBalance < 0 {
		zap.L().Error("debit would break balance invariants, refusing",
			zap.Int("accountID", account.ID),
			zap.Int64("trialSeconds", account.TrialSecondsRemaining),
			zap.Float64("walletBalance", account.WalletBalance),
		)
		return ErrDataIntegrity
	}

	byID := make(map[int]domain.Package, len(packages))
	for _, pkg := range packages {
		byID[pkg.ID] = pkg
	}
	for _, draw := range plan.PackageDraws {
		pkg, ok := byID[draw.PackageID]
		if !ok {
			return ErrDataIntegrity
		}
		used := pkg.SecondsUsed + draw.Seconds
		if used > pkg.SecondsTotal {
			zap.L().Error("package draw exceeds remainder, refusing",
				zap.Int("packageID", pkg.ID),
				zap.Int64("secondsUsed", used),
			)
			return ErrDataIntegrity
		}
		if err := s.accountRepo.UpdatePackageUsage(ctx, pkg.ID, used); err != nil {
			return err
		}
	}

	return s.accountRepo.UpdateAccount(ctx, account)
}

// Refund restores the exact per-source amounts of an earlier debit and
// appends a refund entry referencing it. A debit can be refunded once.
func (s *Service) Refund(ctx context.Context, debitEntryID int64) (*domain.LedgerEntry, error) {
	var refund *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		entry, err := s.ledgerRepo.GetEntry(ctx, debitEntryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return ErrEntryNotFound
		}
		if entry.Kind != domain.LedgerKindDebit {
			return ErrNotDebit
		}
		refunded, err := s.ledgerRepo.HasRefund(ctx, entry.ID)
		if err != nil {
			return err
		}
		if refunded {
			return ErrAlreadyRefunded
		}

		account, err := s.accountRepo.GetAccountForUpdate(ctx, entry.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		account.TrialSecondsRemaining += entry.Breakdown.TrialSeconds
		account.WalletBalance = roundCents(account.WalletBalance + entry.Breakdown.WalletCost)
		if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		packages, err := s.accountRepo.ListPackages(ctx, entry.AccountID)
		if err != nil {
			return err
		}
		byID := make(map[int]domain.Package, len(packages))
		for _, pkg := range packages {
			byID[pkg.ID] = pkg
		}
		for _, draw := range entry.Breakdown.PackageDraws {
			pkg, ok := byID[draw.PackageID]
			if !ok {
				return ErrDataIntegrity
			}
			used := pkg.SecondsUsed - draw.Seconds
			if used < 0 {
				zap.L().Error("refund would break package invariants, refusing",
					zap.Int("packageID", pkg.ID),
					zap.Int64("secondsUsed", used),
				)
				return ErrDataIntegrity
			}
			if err := s.accountRepo.UpdatePackageUsage(ctx, pkg.ID, used); err != nil {
				return err
			}
		}

		refund, err = s.ledgerRepo.CreateEntry(ctx, &domain.LedgerEntry{
			AccountID:  entry.AccountID,
			Kind:       domain.LedgerKindRefund,
			Amount:     -entry.Amount,
			JobID:      entry.JobID,
			RefEntryID: &entry.ID,
			Breakdown:  entry.Breakdown,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

// CreditPackage records a confirmed package purchase.
func (s *Service) CreditPackage(ctx context.Context, accountID int, tier string, secondsTotal int64, unitRate, amountConfirmed float64, validity time.Duration) (*domain.Package, error) {
	var created *domain.Package
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		now := time.Now()
		created, err = s.accountRepo.CreatePackage(ctx, &domain.Package{
			AccountID:    accountID,
			ServiceTier:  tier,
			SecondsTotal: secondsTotal,
			UnitRate:     unitRate,
			PurchasedAt:  now,
			ExpiresAt:    now.Add(validity),
		})
		if err != nil {
			return err
		}

		_, err = s.ledgerRepo.CreateEntry(ctx, &domain.LedgerEntry{
			AccountID: accountID,
			Kind:      domain.LedgerKindPurchase,
			Amount:    amountConfirmed,
			Breakdown: domain.SourceBreakdown{
				PackageDraws: []domain.PackageDraw{{PackageID: created.ID, Seconds: secondsTotal, Cost: amountConfirmed}},
			},
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit package", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// CreditTopUp records a confirmed wallet top-up.
func (s *Service) CreditTopUp(ctx context.Context, accountID int, amountConfirmed float64) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		account.WalletBalance = roundCents(account.WalletBalance + amountConfirmed)
		if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
			return err
		}

		entry, err = s.ledgerRepo.CreateEntry(ctx, &domain.LedgerEntry{
			AccountID: accountID,
			Kind:      domain.LedgerKindPurchase,
			Amount:    amountConfirmed,
			Breakdown: domain.SourceBreakdown{WalletCost: amountConfirmed},
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit top-up", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// Reconciliation compares the stored balance with the running total
// reconstructed from the ledger.
type Reconciliation struct {
	TrialSecondsExpected int64
	TrialSecondsActual   int64
	WalletExpected       float64
	WalletActual         float64
	Consistent           bool
}

// VerifyAccount recomputes the balance from the ledger. A mismatch is
// never auto-corrected: it is logged and reported as ErrDataIntegrity.
func (s *Service) VerifyAccount(ctx context.Context, accountID int) (*Reconciliation, error) {
	account, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	entries, err := s.ledgerRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var trial int64
	var wallet float64
	for _, entry := range entries {
		switch entry.Kind {
		case domain.LedgerKindDebit:
			trial -= entry.Breakdown.TrialSeconds
			wallet = roundCents(wallet - entry.Breakdown.WalletCost)
		case domain.LedgerKindRefund, domain.LedgerKindAdjustment:
			trial += entry.Breakdown.TrialSeconds
			wallet = roundCents(wallet + entry.Breakdown.WalletCost)
		case domain.LedgerKindPurchase:
			// package purchases do not touch the wallet; top-ups do
			wallet = roundCents(wallet + entry.Breakdown.WalletCost)
		}
	}

	// Expiry zeroes the usable allowance at read time, never the stored
	// column, so the ledger total must match the column even after the
	// trial window closes.
	rec := &Reconciliation{
		TrialSecondsExpected: trial,
		TrialSecondsActual:   account.TrialSecondsRemaining,
		WalletExpected:       wallet,
		WalletActual:         account.WalletBalance,
		Consistent:           trial == account.TrialSecondsRemaining && math.Abs(wallet-account.WalletBalance) < 0.005,
	}
	if !rec.Consistent {
		zap.L().Error("ledger does not reconcile with stored balance",
			zap.Int("accountID", accountID),
			zap.Int64("trialExpected", rec.TrialSecondsExpected),
			zap.Int64("trialActual", rec.TrialSecondsActual),
			zap.Float64("walletExpected", rec.WalletExpected),
			zap.Float64("walletActual", rec.WalletActual),
		)
		return rec, ErrDataIntegrity
	}
	return rec, nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected, lock_not_available
		return pgErr.Code == "40001" || pgErr.Code == "40P01" || pgErr.Code == "55P03"
	}
	return false
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
