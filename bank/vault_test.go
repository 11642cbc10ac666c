package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaultbanking/vaulthub.go/common"
)

func TestKindGatewayWinsOverType(t *testing.T) {
	vault := &Vault{Type: common.VaultTypeSuper, IsGateway: true}
	assert.Equal(t, KindGateway, vault.Kind())
	assert.True(t, vault.IsCashLike())
}

func TestKindSuperVault(t *testing.T) {
	vault := &Vault{Type: common.VaultTypeSuper}
	assert.Equal(t, KindSuperVault, vault.Kind())
	assert.False(t, vault.IsCashLike())
}

func TestKindDefaultsToCashVault(t *testing.T) {
	vault := &Vault{Type: "something unrecognized"}
	assert.Equal(t, KindCashVault, vault.Kind())
	assert.True(t, vault.IsCashLike())
}

func TestCashAccountPrefersSavings(t *testing.T) {
	vault := &Vault{Accounts: []Account{
		{ID: "a", Type: common.AccountTypeCash},
		{ID: "b", Type: common.AccountTypeSavings},
	}}
	assert.Equal(t, "b", vault.CashAccount().ID)
}

func TestCashAccountFallsBackToCash(t *testing.T) {
	vault := &Vault{Accounts: []Account{
		{ID: "a", Type: common.AccountTypeLineOfCredit},
		{ID: "b", Type: common.AccountTypeCash},
	}}
	assert.Equal(t, "b", vault.CashAccount().ID)
}

func TestCashAccountFallsBackToFirstEntry(t *testing.T) {
	vault := &Vault{Accounts: []Account{
		{ID: "a", Type: "Brokerage"},
		{ID: "b", Type: "Brokerage"},
	}}
	assert.Equal(t, "a", vault.CashAccount().ID)
}

func TestCashAccountNilWithoutAccounts(t *testing.T) {
	vault := &Vault{}
	assert.Nil(t, vault.CashAccount())
}

func TestAssetAndDebtAccountSelection(t *testing.T) {
	vault := &Vault{Accounts: []Account{
		{ID: "loc", Type: common.AccountTypeLineOfCredit},
		{ID: "cash", Type: common.AccountTypeCash},
	}}
	assert.Equal(t, "cash", vault.AssetAccount().ID)
	assert.Equal(t, "loc", vault.DebtAccount().ID)
}

func TestAssetAndDebtAccountNilWhenAbsent(t *testing.T) {
	vault := &Vault{Accounts: []Account{
		{ID: "loc", Type: common.AccountTypeLineOfCredit},
	}}
	assert.Nil(t, vault.AssetAccount())

	vault = &Vault{Accounts: []Account{
		{ID: "cash", Type: common.AccountTypeCash},
	}}
	assert.Nil(t, vault.DebtAccount())
}

func TestDisplayNicknameFixedForGateways(t *testing.T) {
	gateway := &Vault{IsGateway: true}
	assert.Equal(t, common.GatewayNickname, gateway.DisplayNickname("whatever the user typed"))

	vault := &Vault{Type: common.VaultTypeCash}
	assert.Equal(t, "whatever the user typed", vault.DisplayNickname("whatever the user typed"))
}
