package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/common"
)

func cashVaultFixture(balance int64) bank.Vault {
	return bank.Vault{
		ID:   "vault-cash",
		Type: common.VaultTypeCash,
		Accounts: []bank.Account{
			{
				ID:      "acc-savings",
				Type:    common.AccountTypeSavings,
				Balance: decimal.NewFromInt(balance),
			},
		},
	}
}

func superVaultFixture() bank.Vault {
	return bank.Vault{
		ID:   "vault-super",
		Type: common.VaultTypeSuper,
		Accounts: []bank.Account{
			{
				ID:      "acc-asset",
				Type:    common.AccountTypeCash,
				Balance: decimal.NewFromInt(200000),
			},
			{
				ID:              "acc-loc",
				Type:            common.AccountTypeLineOfCredit,
				Balance:         decimal.NewFromInt(20000),
				CreditLimit:     decimal.NewFromInt(80),
				CreditLimitType: common.AllocationTypePercentage,
			},
		},
	}
}

func TestResolveAllocationAmountIsIdentity(t *testing.T) {
	resolved := ResolveAllocation(decimal.NewFromInt(1000), common.AllocationTypeAmount, decimal.NewFromInt(5))
	assert.Equal(t, "1000", resolved.String())
}

func TestResolveAllocationPercentageOfBase(t *testing.T) {
	resolved := ResolveAllocation(decimal.NewFromInt(10), common.AllocationTypePercentage, decimal.NewFromInt(160000))
	assert.Equal(t, "16000", resolved.String())
}

func TestCreditLimitPercentageOfAssetBalance(t *testing.T) {
	vault := superVaultFixture()
	assert.Equal(t, "160000", CreditLimit(&vault).String())
}

func TestCreditLimitAbsoluteAmount(t *testing.T) {
	vault := superVaultFixture()
	vault.Accounts[1].CreditLimit = decimal.NewFromInt(50000)
	vault.Accounts[1].CreditLimitType = common.AllocationTypeAmount
	assert.Equal(t, "50000", CreditLimit(&vault).String())
}

func TestCreditLimitZeroWithoutDebtAccount(t *testing.T) {
	vault := superVaultFixture()
	vault.Accounts = vault.Accounts[:1]
	assert.True(t, CreditLimit(&vault).IsZero())
}

func TestCreditLimitZeroWithoutAssetAccount(t *testing.T) {
	vault := superVaultFixture()
	vault.Accounts = vault.Accounts[1:]
	assert.True(t, CreditLimit(&vault).IsZero())
}

func TestAvailableToLendCashVault(t *testing.T) {
	vault := cashVaultFixture(5000)
	available := AvailableToLend(&vault, decimal.NewFromInt(1000), decimal.NewFromInt(500), common.AllocationTypeAmount, common.AllocationTypeAmount)
	assert.Equal(t, "3500", available.String())
}

func TestAvailableToLendCashVaultWithoutAccountsUsesVaultBalance(t *testing.T) {
	vault := cashVaultFixture(5000)
	vault.Accounts = nil
	vault.Balance = decimal.NewFromInt(2000)
	available := AvailableToLend(&vault, decimal.NewFromInt(500), decimal.Zero, common.AllocationTypeAmount, common.AllocationTypeAmount)
	assert.Equal(t, "1500", available.String())
}

func TestAvailableToLendNeverNegative(t *testing.T) {
	vault := cashVaultFixture(100)
	available := AvailableToLend(&vault, decimal.NewFromInt(1000000), decimal.Zero, common.AllocationTypeAmount, common.AllocationTypeAmount)
	assert.True(t, available.IsZero())
}

func TestAvailableToLendSuperVault(t *testing.T) {
	vault := superVaultFixture()
	// 160000 credit limit - 16000 reserve - 8000 hold - 20000 drawn
	available := AvailableToLend(&vault, decimal.NewFromInt(10), decimal.NewFromInt(5), common.AllocationTypePercentage, common.AllocationTypePercentage)
	assert.Equal(t, "116000", available.String())
}

func TestAvailableToLendSuperVaultIgnoresCreditBalance(t *testing.T) {
	vault := superVaultFixture()
	vault.Accounts[1].Balance = decimal.NewFromInt(-5000)
	available := AvailableToLend(&vault, decimal.NewFromInt(10), decimal.NewFromInt(5), common.AllocationTypePercentage, common.AllocationTypePercentage)
	assert.Equal(t, "136000", available.String())
}

func TestAvailableToLendSuperVaultClampedAtZero(t *testing.T) {
	vault := superVaultFixture()
	available := AvailableToLend(&vault, decimal.NewFromInt(100), decimal.NewFromInt(100), common.AllocationTypePercentage, common.AllocationTypePercentage)
	assert.True(t, available.IsZero())
}
