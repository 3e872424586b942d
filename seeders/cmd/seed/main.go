package main

import (
	"flag"
	"log"

	"lebonmeeple/pkg/config"
	"lebonmeeple/pkg/database/postgresql"
	"lebonmeeple/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	log.Println("======================================")
	log.Println("   🌱 Remplissage de la base           ")
	log.Println("======================================")

	runCatalog := flag.Bool("catalog", false, "Remplir le catalogue des jeux de société")
	runAdmin := flag.Bool("admin", false, "Créer le compte administrateur initial")
	runAll := flag.Bool("all", false, "Tout lancer (équivalent à -catalog -admin)")

	flag.Parse()

	if !*runCatalog && !*runAdmin && !*runAll {
		log.Println("❌ Aucun seeder sélectionné.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemples:")
		log.Println("  go run ./seeders/cmd/seed -catalog")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runAll || *runCatalog {
		seeders.SeedCatalog(db)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(db, cfg)
	}

	log.Println("🏁 Terminé.")
}
