package infra

import (
	"fmt"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express on its own.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates the schema. Also used by integration tests against a
// throwaway database.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13; harmless otherwise.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Departamento{},
		&model.Funcionario{},
		&model.Perfil{},
		&model.HistoricoCargo{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS / conditional guards so re-running on an
// already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Cascade removal of perfil and historico when a funcionario goes away.
		// AutoMigrate only adds these FKs on fresh tables; patch existing DBs.
		// Guard on the column, not the name, so the GORM-created constraint
		// does not get duplicated.
		`DO $$ BEGIN
		  IF NOT EXISTS (
		    SELECT 1 FROM pg_constraint
		    WHERE conrelid = to_regclass('perfis') AND contype = 'f'
		  ) THEN
		    ALTER TABLE perfis
		      ADD CONSTRAINT fk_perfis_funcionario
		      FOREIGN KEY (funcionario_id) REFERENCES funcionarios(id) ON DELETE CASCADE;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (
		    SELECT 1 FROM pg_constraint
		    WHERE conrelid = to_regclass('historico_cargos') AND contype = 'f'
		  ) THEN
		    ALTER TABLE historico_cargos
		      ADD CONSTRAINT fk_historico_cargos_funcionario
		      FOREIGN KEY (funcionario_id) REFERENCES funcionarios(id) ON DELETE CASCADE;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
