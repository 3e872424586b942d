package postgresql

import (
	"context"
	"database/sql"
	"fmt"

	"lebonmeeple/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applique les migrations embarquées via goose.
// goose travaille sur database/sql, on ouvre donc une connexion stdlib séparée du pool.
func RunMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("ouverture de la connexion de migration: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("application des migrations: %w", err)
	}

	return nil
}
