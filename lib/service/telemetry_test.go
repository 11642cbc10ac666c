package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/common"
)

func TestDebugSnapshotSuperVault(t *testing.T) {
	vault := superVaultFixture()
	snapshot := DebugSnapshot(&vault, VaultEdit{
		Reserve:     decimal.NewFromInt(10),
		Hold:        decimal.NewFromInt(5),
		ReserveType: common.AllocationTypePercentage,
		HoldType:    common.AllocationTypePercentage,
	})

	assert.Equal(t, bank.KindSuperVault, snapshot.Kind)
	assert.Equal(t, "160000", snapshot.CreditLimit.String())
	assert.Equal(t, "16000", snapshot.ReserveAbs.String())
	assert.Equal(t, "8000", snapshot.HoldAbs.String())
	assert.Equal(t, "20000", snapshot.DebtBalance.String())
	assert.Equal(t, "116000", snapshot.AvailableToLend.String())
}

func TestDebugSnapshotCashVaultPinsAllocationUnits(t *testing.T) {
	vault := cashVaultFixture(5000)
	// unit tags on the draft are ignored for cash vaults
	snapshot := DebugSnapshot(&vault, VaultEdit{
		Reserve:     decimal.NewFromInt(1000),
		Hold:        decimal.NewFromInt(500),
		ReserveType: common.AllocationTypePercentage,
		HoldType:    common.AllocationTypePercentage,
	})

	assert.Equal(t, bank.KindCashVault, snapshot.Kind)
	assert.True(t, snapshot.CreditLimit.IsZero())
	assert.Equal(t, "1000", snapshot.ReserveAbs.String())
	assert.Equal(t, "500", snapshot.HoldAbs.String())
	assert.Equal(t, "3500", snapshot.AvailableToLend.String())
}
