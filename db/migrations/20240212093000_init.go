package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vaultbanking/vaulthub.go/db/models"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*models.SaveAttempt)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*models.SaveAttempt)(nil)).
			Index("save_attempts_vault_id_idx").Column("vault_id").IfNotExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	}, nil)
}
