package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account : Monetary account nested under a vault. The vault is the sole
// owner of its accounts, there is no standalone account resource.
type Account struct {
	ID                 string              `json:"id"`
	Type               string              `json:"type"`
	Balance            decimal.Decimal     `json:"balance"`
	AnnualInterestRate decimal.NullDecimal `json:"annual_interest_rate"`
	CreditLimit        decimal.Decimal     `json:"credit_limit,omitempty"`
	CreditLimitType    string              `json:"credit_limit_type,omitempty"`
	ModifiedAt         time.Time           `json:"modified_at"`
}

// Health : Health targets tracked for super vaults only.
type Health struct {
	Reserves    decimal.Decimal `json:"reserves"`
	LoanToValue decimal.Decimal `json:"loanToValue"`
	IncomeDSCR  decimal.Decimal `json:"incomeDSCR"`
	GrowthDSCR  decimal.Decimal `json:"growthDSCR"`
}

// Vault : Vault Model as persisted by the core banking API.
type Vault struct {
	ID                        string          `json:"id"`
	Type                      string          `json:"type"`
	IsGateway                 bool            `json:"is_gateway"`
	Name                      string          `json:"name"`
	Nickname                  string          `json:"nickname"`
	Balance                   decimal.Decimal `json:"balance"`
	Reserve                   decimal.Decimal `json:"reserve"`
	Hold                      decimal.Decimal `json:"hold"`
	ReserveType               string          `json:"reserve_type"`
	HoldType                  string          `json:"hold_type"`
	Accounts                  []Account       `json:"accounts_json"`
	Health                    *Health         `json:"health,omitempty"`
	AvailableForLendingAmount decimal.Decimal `json:"available_for_lending_amount"`
	ModifiedAt                time.Time       `json:"modified_at"`
}

// VaultUpdate is the partial payload accepted by the core banking API on
// vault updates. Field casing must match the upstream API exactly.
type VaultUpdate struct {
	Nickname                  string                 `json:"nickname"`
	Reserve                   decimal.Decimal        `json:"reserve"`
	Hold                      decimal.Decimal        `json:"hold"`
	ReserveType               string                 `json:"reserve_type"`
	HoldType                  string                 `json:"hold_type"`
	AvailableForLendingAmount decimal.Decimal        `json:"available_for_lending_amount"`
	Health                    *Health                `json:"health,omitempty"`
	Projection                map[string]interface{} `json:"projection,omitempty"`
	ModifiedAt                time.Time              `json:"modified_at"`
}

// AccountUpdate carries the full account record: the upstream API expects
// every existing field to be resent, with only the interest rate and the
// modification timestamp rewritten.
type AccountUpdate = Account
