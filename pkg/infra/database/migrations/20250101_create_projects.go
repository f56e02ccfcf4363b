package migrations

import (
	"github.com/BOKA26/lovotech-nexus/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_create_projects",
		Name: "Create projects table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS projects (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					title       TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					image       TEXT NOT NULL DEFAULT '',
					tags        TEXT[],
					link        TEXT NOT NULL DEFAULT '',
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS projects;`).Error
		},
	})
}
