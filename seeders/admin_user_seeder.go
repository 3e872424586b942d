package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"lebonmeeple/internal/entities"
	"lebonmeeple/pkg/config"
	"lebonmeeple/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	email := "admin@lebonmeeple.fr"

	var exists bool
	if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		log.Println("  - L'administrateur existe déjà. On passe.")
		return nil
	}

	hashedPassword, err := utils.HashPassword("ChangeMoi123!")
	if err != nil {
		return err
	}

	query := `INSERT INTO users (username, email, password, roles) VALUES ($1, $2, $3, $4)`
	roles := []string{entities.RoleAdmin, "USER"}
	if _, err := db.Exec(ctx, query, "admin", email, hashedPassword, roles); err != nil {
		return err
	}
	log.Println("  - Administrateur 'admin' créé (pensez à changer le mot de passe).")
	return nil
}
