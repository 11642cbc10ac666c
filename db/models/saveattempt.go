package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// SaveAttempt : journal row for one orchestrated vault save. Status
// "partial" marks the window where the vault write committed but the
// dependent account write did not.
type SaveAttempt struct {
	ID                  int64           `json:"id" bun:",pk,autoincrement"`
	VaultId             string          `json:"vault_id" bun:",notnull"`
	BankRef             string          `json:"bank_ref" bun:",nullzero"`
	Status              string          `json:"status" bun:",notnull"`
	AvailableForLending decimal.Decimal `json:"available_for_lending"`
	AccountUpdated      bool            `json:"account_updated" bun:",nullzero"`
	VaultError          string          `json:"vault_error,omitempty" bun:",nullzero"`
	AccountError        string          `json:"account_error,omitempty" bun:",nullzero"`
	CreatedAt           time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

func (a *SaveAttempt) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery:
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now()
		}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*SaveAttempt)(nil)
