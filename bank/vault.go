package bank

import (
	"github.com/vaultbanking/vaulthub.go/common"
)

// Kind collapses the persisted type tag and the orthogonal gateway flag
// into a single closed variant set. All editability and calculation
// branching keys off this, never off raw field presence.
type Kind string

const (
	KindCashVault  Kind = "cash_vault"
	KindGateway    Kind = "gateway"
	KindSuperVault Kind = "super_vault"
)

func (v *Vault) Kind() Kind {
	if v.IsGateway {
		return KindGateway
	}
	if v.Type == common.VaultTypeSuper {
		return KindSuperVault
	}
	return KindCashVault
}

// IsCashLike reports whether the vault follows cash-vault allocation
// rules: allocation units pinned to absolute amounts and funds drawn from
// the account balance rather than a computed credit limit.
func (v *Vault) IsCashLike() bool {
	return v.Kind() != KindSuperVault
}

// AssetAccount returns the first non-debt account, nil if none exists.
func (v *Vault) AssetAccount() *Account {
	for i := range v.Accounts {
		if v.Accounts[i].Type != common.AccountTypeLineOfCredit {
			return &v.Accounts[i]
		}
	}
	return nil
}

// DebtAccount returns the first line-of-credit account, nil if none
// exists. A vault carries at most one.
func (v *Vault) DebtAccount() *Account {
	for i := range v.Accounts {
		if v.Accounts[i].Type == common.AccountTypeLineOfCredit {
			return &v.Accounts[i]
		}
	}
	return nil
}

// CashAccount resolves the account a cash vault or gateway draws funds
// from: a Savings account wins, then a Cash account, then a sole entry,
// then the first entry.
func (v *Vault) CashAccount() *Account {
	for i := range v.Accounts {
		if v.Accounts[i].Type == common.AccountTypeSavings {
			return &v.Accounts[i]
		}
	}
	for i := range v.Accounts {
		if v.Accounts[i].Type == common.AccountTypeCash {
			return &v.Accounts[i]
		}
	}
	if len(v.Accounts) >= 1 {
		return &v.Accounts[0]
	}
	return nil
}

// DisplayNickname returns the nickname the API payload must carry.
// Gateways have a fixed identity that is never user-editable.
func (v *Vault) DisplayNickname(draft string) string {
	if v.Kind() == KindGateway {
		return common.GatewayNickname
	}
	return draft
}
