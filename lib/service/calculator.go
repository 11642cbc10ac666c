package service

import (
	"github.com/shopspring/decimal"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/common"
)

var hundred = decimal.NewFromInt(100)

// ResolveAllocation converts a reserve or hold allocation, entered either
// as an absolute amount or as a percentage of the given base, into an
// absolute amount. No rounding is applied here, display formatting is a
// presentation concern.
func ResolveAllocation(magnitude decimal.Decimal, unit string, base decimal.Decimal) decimal.Decimal {
	if unit == common.AllocationTypePercentage {
		return magnitude.Div(hundred).Mul(base)
	}
	return magnitude
}

// CreditLimit derives the usable credit ceiling of a super vault from its
// paired asset and line-of-credit accounts. A partially configured vault
// (either account missing) has a credit limit of zero, not an error.
func CreditLimit(vault *bank.Vault) decimal.Decimal {
	asset := vault.AssetAccount()
	debt := vault.DebtAccount()
	if asset == nil || debt == nil {
		return decimal.Zero
	}
	if debt.CreditLimitType == common.AllocationTypePercentage {
		return debt.CreditLimit.Div(hundred).Mul(asset.Balance)
	}
	return debt.CreditLimit
}

// AvailableToLend computes the spendable lending capacity of a vault
// under the given draft reserve/hold values. The result is never
// negative, even when allocations exceed the available funds.
func AvailableToLend(vault *bank.Vault, reserve, hold decimal.Decimal, reserveType, holdType string) decimal.Decimal {
	if vault.Kind() == bank.KindSuperVault {
		creditLimit := CreditLimit(vault)
		reserveAbs := ResolveAllocation(reserve, reserveType, creditLimit)
		holdAbs := ResolveAllocation(hold, holdType, creditLimit)
		debtBalance := decimal.Zero
		if debt := vault.DebtAccount(); debt != nil {
			// a credit balance on the line of credit never increases capacity
			debtBalance = decimal.Max(debt.Balance, decimal.Zero)
		}
		return clampZero(creditLimit.Sub(reserveAbs).Sub(holdAbs).Sub(debtBalance))
	}

	totalAmount := vault.Balance
	if account := vault.CashAccount(); account != nil {
		totalAmount = account.Balance
	}
	// allocation units are pinned to absolute amounts for cash vaults and
	// gateways, so reserve and hold need no resolution here
	return clampZero(totalAmount.Sub(reserve).Sub(hold))
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	return decimal.Max(d, decimal.Zero)
}
