package migrations

import (
	"github.com/BOKA26/lovotech-nexus/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250102_create_user_roles",
		Name: "Create user_roles table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS user_roles (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id    UUID NOT NULL,
					role       TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					UNIQUE (user_id, role)
				);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_user_roles_user_id ON user_roles (user_id);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS user_roles;`).Error
		},
	})
}
