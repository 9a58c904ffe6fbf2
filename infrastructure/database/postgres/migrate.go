package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vfg2006/sales-comparison-api/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations aplica as migrações pendentes usando uma conexão separada,
// já que o migrate fecha a conexão ao terminar
func RunMigrations(cfg config.Database) error {
	migrateDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão de migração: %w", err)
	}
	defer migrateDB.Close()

	driver, err := migratepostgres.WithInstance(migrateDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("erro ao ler migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância de migração: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao executar migrações: %w", err)
	}

	return nil
}
