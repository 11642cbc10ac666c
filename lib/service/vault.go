package service

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/shopspring/decimal"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/common"
	"github.com/vaultbanking/vaulthub.go/projection"
)

// Savings-rate differences at or below 0.01 percentage points are
// display round-trip noise, not edits, and never trigger an account write.
var savingsRateDeadZone = decimal.NewFromFloat(0.01)

// VaultEdit holds the draft values of the edit surface at the moment the
// user commits the save. Reserve and hold are interpreted according to
// their unit tags; SavingsRate is a percentage (5.02 means 5.02%).
type VaultEdit struct {
	Nickname    string
	Reserve     decimal.Decimal
	Hold        decimal.Decimal
	ReserveType string
	HoldType    string
	SavingsRate decimal.Decimal
	IncomeDSCR  decimal.Decimal
	GrowthDSCR  decimal.Decimal
}

// SaveOutcome is the merged result of one orchestrated save. Vault starts
// from the caller's snapshot with the update payload overlaid; account
// fields are only overlaid when the account write actually happened.
type SaveOutcome struct {
	Status              string
	Vault               bank.Vault
	AvailableForLending decimal.Decimal
	AccountUpdated      bool
	VaultErr            error
	AccountErr          error
}

// StartVaultSave kicks off the save workflow and returns immediately so
// the edit surface can close optimistically. The progress notifier is
// started before this returns and is guaranteed to finish, after the
// configured settle delay, on every path. The returned channel delivers
// exactly one outcome.
func (svc *VaulthubService) StartVaultSave(token, bankRef string, current bank.Vault, edit VaultEdit) <-chan SaveOutcome {
	svc.Notifier.Start(context.Background(), "Saving vault")
	done := make(chan SaveOutcome, 1)
	go func() {
		// the surrounding request is already answered at this point, so
		// the save runs on its own context
		ctx := context.Background()
		outcome := svc.saveVault(ctx, token, bankRef, current, edit)
		svc.recordSaveAttempt(ctx, bankRef, current.ID, &outcome)
		svc.publishSaveEvent(ctx, bankRef, &current, &outcome)
		done <- outcome
		// settle delay keeps the indicator from flickering on fast saves
		time.Sleep(time.Duration(svc.Config.ProgressSettleDelayMs) * time.Millisecond)
		svc.Notifier.Finish(ctx)
	}()
	return done
}

func (svc *VaulthubService) saveVault(ctx context.Context, token, bankRef string, current bank.Vault, edit VaultEdit) SaveOutcome {
	if token == "" {
		// non-actionable precondition, not a user-facing error
		svc.Logger.Debugf("No session token available, skipping save for vault %s", current.ID)
		return SaveOutcome{Status: common.SaveStatusAborted, Vault: current}
	}

	edit = normalizeEdit(&current, edit)
	available := AvailableToLend(&current, edit.Reserve, edit.Hold, edit.ReserveType, edit.HoldType)
	svc.logTelemetry(&current, edit)

	update := buildVaultUpdate(&current, edit, available)
	if current.Kind() == bank.KindSuperVault {
		update.Projection = svc.fetchProjection(ctx, token, &current, edit)
	}

	_, err := svc.BankClient.UpdateVault(ctx, token, bankRef, current.ID, update)
	if err != nil {
		svc.Logger.Errorf("Failed to update vault %s: %v", current.ID, err)
		sentry.CaptureException(err)
		return SaveOutcome{
			Status:              common.SaveStatusError,
			Vault:               current,
			AvailableForLending: available,
			VaultErr:            err,
		}
	}

	outcome := SaveOutcome{
		Status:              common.SaveStatusSettled,
		AvailableForLending: available,
	}

	account, newRate, accErr := svc.maybeUpdateAccount(ctx, token, &current, edit)
	if accErr != nil {
		// the two writes are independent: the committed vault update is
		// not rolled back, the stale rate is corrected by a future edit
		svc.Logger.Errorf("Failed to update account %s of vault %s: %v", account.ID, current.ID, accErr)
		sentry.CaptureException(accErr)
		outcome.Status = common.SaveStatusPartial
		outcome.AccountErr = accErr
	}

	rateUpdated := account != nil && accErr == nil
	outcome.AccountUpdated = rateUpdated
	outcome.Vault = mergeVault(current, update, rateUpdated, account, newRate)
	return outcome
}

// normalizeEdit pins the allocation units of cash vaults and gateways to
// absolute amounts regardless of what the draft carried.
func normalizeEdit(vault *bank.Vault, edit VaultEdit) VaultEdit {
	if vault.IsCashLike() {
		edit.ReserveType = common.AllocationTypeAmount
		edit.HoldType = common.AllocationTypeAmount
	}
	return edit
}

func buildVaultUpdate(vault *bank.Vault, edit VaultEdit, available decimal.Decimal) bank.VaultUpdate {
	update := bank.VaultUpdate{
		Nickname:                  vault.DisplayNickname(edit.Nickname),
		Reserve:                   edit.Reserve,
		Hold:                      edit.Hold,
		ReserveType:               edit.ReserveType,
		HoldType:                  edit.HoldType,
		AvailableForLendingAmount: available,
		ModifiedAt:                time.Now(),
	}
	if vault.Kind() == bank.KindSuperVault {
		health := bank.Health{
			IncomeDSCR: edit.IncomeDSCR,
			GrowthDSCR: edit.GrowthDSCR,
		}
		if vault.Health != nil {
			health.Reserves = vault.Health.Reserves
			health.LoanToValue = vault.Health.LoanToValue
		}
		update.Health = &health
	}
	return update
}

// maybeUpdateAccount issues the dependent account write for cash vaults
// and gateways when the draft savings rate meaningfully differs from the
// stored one. It returns the matched account (nil when no write was
// needed), the new rate, and the write error if the attempt failed.
func (svc *VaulthubService) maybeUpdateAccount(ctx context.Context, token string, vault *bank.Vault, edit VaultEdit) (*bank.Account, decimal.NullDecimal, error) {
	var newRate decimal.NullDecimal
	if !vault.IsCashLike() || len(vault.Accounts) == 0 {
		return nil, newRate, nil
	}
	account := vault.CashAccount()
	if account == nil {
		return nil, newRate, nil
	}

	currentRate := decimal.Zero
	if account.AnnualInterestRate.Valid {
		currentRate = account.AnnualInterestRate.Decimal.Mul(hundred)
	}
	if currentRate.Sub(edit.SavingsRate).Abs().LessThanOrEqual(savingsRateDeadZone) {
		return nil, newRate, nil
	}

	newRate = decimal.NullDecimal{Decimal: edit.SavingsRate.Div(hundred), Valid: true}
	update := *account
	update.AnnualInterestRate = newRate
	update.ModifiedAt = time.Now()

	if _, err := svc.BankClient.UpdateAccount(ctx, token, account.ID, update); err != nil {
		return account, newRate, err
	}
	return account, newRate, nil
}

// mergeVault builds the snapshot handed back to the caller: the original
// vault with the update payload overlaid, plus the matched account's rate
// when the account write happened. Other accounts are untouched.
func mergeVault(current bank.Vault, update bank.VaultUpdate, rateUpdated bool, account *bank.Account, newRate decimal.NullDecimal) bank.Vault {
	merged := current
	merged.Nickname = update.Nickname
	merged.Reserve = update.Reserve
	merged.Hold = update.Hold
	merged.ReserveType = update.ReserveType
	merged.HoldType = update.HoldType
	merged.AvailableForLendingAmount = update.AvailableForLendingAmount
	merged.ModifiedAt = update.ModifiedAt
	if update.Health != nil {
		health := *update.Health
		merged.Health = &health
	}
	if rateUpdated && account != nil {
		accounts := make([]bank.Account, len(current.Accounts))
		copy(accounts, current.Accounts)
		for i := range accounts {
			if accounts[i].ID == account.ID {
				accounts[i].AnnualInterestRate = newRate
				accounts[i].ModifiedAt = update.ModifiedAt
			}
		}
		merged.Accounts = accounts
	}
	return merged
}

// fetchProjection asks the projection service for a payment projection to
// attach to a super vault update. Best effort: any failure is logged and
// the save proceeds without a projection.
func (svc *VaulthubService) fetchProjection(ctx context.Context, token string, vault *bank.Vault, edit VaultEdit) map[string]interface{} {
	if svc.ProjectionClient == nil {
		return nil
	}

	params := projection.Params{
		PolicyCap:  CreditLimit(vault),
		TargetDSCR: edit.IncomeDSCR,
	}
	if vault.Health != nil {
		params.MaxLoanToValue = vault.Health.LoanToValue
	}
	if asset := vault.AssetAccount(); asset != nil {
		params.StartingCashValue = asset.Balance
		if asset.AnnualInterestRate.Valid {
			params.GrowthRate = asset.AnnualInterestRate.Decimal
		}
	}
	if debt := vault.DebtAccount(); debt != nil {
		params.StartingLoanBalance = debt.Balance
		if debt.AnnualInterestRate.Valid {
			params.LoanRate = debt.AnnualInterestRate.Decimal
		}
	}

	proj, err := svc.ProjectionClient.FetchProjection(ctx, token, params)
	if err != nil {
		svc.Logger.Warnf("Failed to fetch projection for vault %s: %v", vault.ID, err)
		return nil
	}
	return proj
}
