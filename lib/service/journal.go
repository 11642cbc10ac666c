package service

import (
	"context"

	"github.com/vaultbanking/vaulthub.go/db/models"
)

// recordSaveAttempt journals the outcome of one orchestrated save. A
// partial status is the persisted marker for the accepted inconsistency
// window between the vault and account writes.
func (svc *VaulthubService) recordSaveAttempt(ctx context.Context, bankRef, vaultId string, outcome *SaveOutcome) {
	// the journal is observability, tools and unit tests run without it
	if svc.DB == nil {
		return
	}
	attempt := &models.SaveAttempt{
		VaultId:             vaultId,
		BankRef:             bankRef,
		Status:              outcome.Status,
		AvailableForLending: outcome.AvailableForLending,
		AccountUpdated:      outcome.AccountUpdated,
	}
	if outcome.VaultErr != nil {
		attempt.VaultError = outcome.VaultErr.Error()
	}
	if outcome.AccountErr != nil {
		attempt.AccountError = outcome.AccountErr.Error()
	}
	if _, err := svc.DB.NewInsert().Model(attempt).Exec(ctx); err != nil {
		svc.Logger.Errorf("Failed to journal save attempt for vault %s: %v", vaultId, err)
	}
}

// SaveAttemptsFor lists the most recent journaled saves, newest first.
// An empty vaultId lists across all vaults.
func (svc *VaulthubService) SaveAttemptsFor(ctx context.Context, vaultId string, limit int) ([]models.SaveAttempt, error) {
	attempts := []models.SaveAttempt{}
	query := svc.DB.NewSelect().Model(&attempts).Order("created_at DESC").Limit(limit)
	if vaultId != "" {
		query.Where("vault_id = ?", vaultId)
	}
	err := query.Scan(ctx)
	return attempts, err
}
