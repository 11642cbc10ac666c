package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/common"
)

// TelemetrySnapshot is a read-only re-derivation of every intermediate of
// the availability computation. It never touches persisted state; it
// exists so the numbers behind a save (or a draft preview) can be
// inspected while a user is editing.
type TelemetrySnapshot struct {
	VaultId         string          `json:"vault_id"`
	Kind            bank.Kind       `json:"kind"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	ReserveAbs      decimal.Decimal `json:"reserve_abs"`
	HoldAbs         decimal.Decimal `json:"hold_abs"`
	DebtBalance     decimal.Decimal `json:"debt_balance"`
	AvailableToLend decimal.Decimal `json:"available_to_lend"`
}

func DebugSnapshot(vault *bank.Vault, edit VaultEdit) TelemetrySnapshot {
	edit = normalizeEdit(vault, edit)
	snapshot := TelemetrySnapshot{
		VaultId: vault.ID,
		Kind:    vault.Kind(),
	}
	if vault.Kind() == bank.KindSuperVault {
		snapshot.CreditLimit = CreditLimit(vault)
		snapshot.ReserveAbs = ResolveAllocation(edit.Reserve, edit.ReserveType, snapshot.CreditLimit)
		snapshot.HoldAbs = ResolveAllocation(edit.Hold, edit.HoldType, snapshot.CreditLimit)
		if debt := vault.DebtAccount(); debt != nil {
			snapshot.DebtBalance = decimal.Max(debt.Balance, decimal.Zero)
		}
	} else {
		snapshot.ReserveAbs = edit.Reserve
		snapshot.HoldAbs = edit.Hold
	}
	snapshot.AvailableToLend = AvailableToLend(vault, edit.Reserve, edit.Hold, edit.ReserveType, edit.HoldType)
	return snapshot
}

func (svc *VaulthubService) logTelemetry(vault *bank.Vault, edit VaultEdit) {
	if vault.Kind() != bank.KindSuperVault {
		return
	}
	snapshot := DebugSnapshot(vault, edit)
	svc.Logger.Debugf("Vault %s: credit limit %s, reserve %s, hold %s, debt %s, available to lend %s",
		vault.ID, snapshot.CreditLimit, snapshot.ReserveAbs, snapshot.HoldAbs, snapshot.DebtBalance, snapshot.AvailableToLend)
}

// VaultSaveEvent is published to the vault exchange after every
// orchestrated save, routed by outcome.
type VaultSaveEvent struct {
	VaultId             string          `json:"vault_id"`
	BankRef             string          `json:"bank_ref"`
	Status              string          `json:"status"`
	AvailableForLending decimal.Decimal `json:"available_for_lending"`
	AccountUpdated      bool            `json:"account_updated"`
	VaultError          string          `json:"vault_error,omitempty"`
	AccountError        string          `json:"account_error,omitempty"`
}

func (svc *VaulthubService) publishSaveEvent(ctx context.Context, bankRef string, vault *bank.Vault, outcome *SaveOutcome) {
	if svc.RabbitMQClient == nil || outcome.Status == common.SaveStatusAborted {
		return
	}
	event := VaultSaveEvent{
		VaultId:             vault.ID,
		BankRef:             bankRef,
		Status:              outcome.Status,
		AvailableForLending: outcome.AvailableForLending,
		AccountUpdated:      outcome.AccountUpdated,
	}
	if outcome.VaultErr != nil {
		event.VaultError = outcome.VaultErr.Error()
	}
	if outcome.AccountErr != nil {
		event.AccountError = outcome.AccountErr.Error()
	}
	err := svc.RabbitMQClient.PublishVaultEvent(ctx, "vault.save."+outcome.Status, event)
	if err != nil {
		// observability side channel, never blocks or fails a save
		svc.Logger.Errorf("Failed to publish save event for vault %s: %v", vault.ID, err)
	}
}
