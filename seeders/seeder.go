package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"lebonmeeple/pkg/config"
)

// SeedCatalog remplit le catalogue des jeux de société.
func SeedCatalog(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Remplissage du catalogue des jeux...")

	if err := seedGames(ctx, db); err != nil {
		log.Fatalf("❌ Échec du remplissage des jeux: %v", err)
	}
	log.Println("✅ Catalogue des jeux rempli !")
}

// SeedAdmin crée le compte administrateur initial.
func SeedAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("▶️  Création de l'administrateur...")

	if err := seedAdminUser(ctx, db, cfg); err != nil {
		log.Fatalf("❌ Échec de la création de l'administrateur: %v", err)
	}
	log.Println("✅ Administrateur prêt !")
}
