package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/voxgate/voxgate/internal/domain"
	"github.com/voxgate/voxgate/internal/dto"
	ledgerservice "github.com/voxgate/voxgate/internal/service/ledgerservice"
	"github.com/voxgate/voxgate/pkg/utils"
	"github.com/voxgate/voxgate/pkg/validate"
)

//go:generate mockgen -source=balance.go -destination=mock.go -package=balance

type Service interface {
	CreateAccount(ctx context.Context) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID int) (*domain.Account, []domain.Package, error)
	GetLedger(ctx context.Context, accountID int) ([]domain.LedgerEntry, error)
	VerifyAccount(ctx context.Context, accountID int) (*ledgerservice.Reconciliation, error)
	CreditPackage(ctx context.Context, accountID int, tier string, secondsTotal int64, unitRate, amountConfirmed float64, validity time.Duration) (*domain.Package, error)
	CreditTopUp(ctx context.Context, accountID int, amountConfirmed float64) (*domain.LedgerEntry, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// CreateAccount godoc
//
//	@Summary		Create an account
//	@Description	Open a new account with the configured free-trial allowance.
//	@Tags			Accounts
//	@Produce		json
//	@Success		201	{object}	dto.BalanceResponseDTO	"Created account balance"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts [post]
func (h *BalanceHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledgerService.CreateAccount(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBalanceDTO(account, nil))
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Description	Current trial allowance, prepaid packages and wallet balance. Advisory only: the authoritative feasibility check happens inside the debit transaction.
//	@Tags			Balance
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		404			{object}	utils.Response			"Account not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	account, packages, err := h.ledgerService.GetBalance(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(account, packages))
}

// GetLedger godoc
//
//	@Summary		Get account ledger
//	@Description	Read-only audit log of every balance mutation for the account.
//	@Tags			Balance
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Success		200	{array}		dto.LedgerEntryDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response		"No entries"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/accounts/{accountID}/ledger [get]
func (h *BalanceHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	entries, err := h.ledgerService.GetLedger(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch ledger")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Ledger is empty")
		return
	}

	response := make([]dto.LedgerEntryDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.LedgerEntryDTO{
			ID:        entry.ID,
			Kind:      entry.Kind,
			Amount:    entry.Amount,
			JobID:     entry.JobID,
			CreatedAt: entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// VerifyLedger godoc
//
//	@Summary		Reconcile balance against ledger
//	@Description	Recompute the account balance from its ledger entries and compare with the stored balance.
//	@Tags			Balance
//	@Produce		json
//	@Param			accountID	path	int	true	"Account ID"
//	@Success		200	{object}	dto.VerifyResponseDTO	"Reconciliation result"
//	@Failure		409	{object}	dto.VerifyResponseDTO	"Balance does not reconcile"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/{accountID}/ledger/verify [get]
func (h *BalanceHandler) VerifyLedger(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	rec, err := h.ledgerService.VerifyAccount(r.Context(), accountID)
	if err != nil && !errors.Is(err, ledgerservice.ErrDataIntegrity) {
		if errors.Is(err, ledgerservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	code := http.StatusOK
	if !rec.Consistent {
		code = http.StatusConflict
	}
	utils.RespondWithJSON(w, code, dto.VerifyResponseDTO{
		Consistent:           rec.Consistent,
		TrialSecondsExpected: rec.TrialSecondsExpected,
		TrialSecondsActual:   rec.TrialSecondsActual,
		WalletExpected:       rec.WalletExpected,
		WalletActual:         rec.WalletActual,
	})
}

// PurchaseConfirmed godoc
//
//	@Summary		Record a confirmed purchase
//	@Description	Credit path for the payment processor's confirmation events: a prepaid package or a wallet top-up. Charges are never initiated here.
//	@Tags			Balance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseConfirmedRequestDTO	true	"Confirmed purchase event"
//	@Success		200		{string}	string							"Purchase recorded"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		404		{object}	utils.Response					"Account not found"
//	@Failure		422		{object}	utils.Response					"Invalid processor reference"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/confirmed [post]
func (h *BalanceHandler) PurchaseConfirmed(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseConfirmedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validate.IsLuhn(req.Reference) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid processor reference")
		return
	}
	if req.AmountConfirmed <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if (req.Package == nil) == !req.TopUp {
		utils.RespondWithError(w, http.StatusBadRequest, "exactly one of package or top_up is required")
		return
	}

	var err error
	if req.Package != nil {
		_, err = h.ledgerService.CreditPackage(r.Context(), req.AccountID,
			req.Package.ServiceTier, req.Package.SecondsTotal, req.Package.UnitRate,
			req.AmountConfirmed, time.Duration(req.Package.ValidityDays)*24*time.Hour)
	} else {
		_, err = h.ledgerService.CreditTopUp(r.Context(), req.AccountID, req.AmountConfirmed)
	}
	if err != nil {
		if errors.Is(err, ledgerservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "purchase recorded")
}

func toBalanceDTO(account *domain.Account, packages []domain.Package) dto.BalanceResponseDTO {
	now := time.Now()
	pkgDTOs := make([]dto.PackageDTO, len(packages))
	for i, pkg := range packages {
		pkgDTOs[i] = dto.PackageDTO{
			ID:               pkg.ID,
			ServiceTier:      pkg.ServiceTier,
			SecondsTotal:     pkg.SecondsTotal,
			SecondsRemaining: pkg.SecondsRemaining(),
			UnitRate:         pkg.UnitRate,
			PurchasedAt:      pkg.PurchasedAt,
			ExpiresAt:        pkg.ExpiresAt,
			Active:           pkg.Active(now),
		}
	}
	return dto.BalanceResponseDTO{
		AccountID:             account.ID,
		TrialSecondsRemaining: account.TrialRemaining(now),
		TrialExpiresAt:        account.TrialExpiresAt,
		WalletBalance:         account.WalletBalance,
		Packages:              pkgDTOs,
	}
}
