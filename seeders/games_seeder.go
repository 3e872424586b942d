package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type gameSeed struct {
	Name        string
	Year        int
	Rating      float32
	Mechanics   []string
	Description string
	PlayersMin  int
	PlayersMax  int
	Duration    int
	Difficulty  int
}

var gamesCatalog = []gameSeed{
	{"Catan", 1995, 7.1, []string{"négociation", "placement"}, "Colonisez l'île de Catan en échangeant des ressources.", 3, 4, 90, 2},
	{"7 Wonders", 2010, 7.7, []string{"draft", "civilisation"}, "Bâtissez une merveille du monde antique en trois âges.", 2, 7, 30, 2},
	{"Terraforming Mars", 2016, 8.4, []string{"moteur de cartes", "gestion de ressources"}, "Rendez la planète rouge habitable, corporation après corporation.", 1, 5, 120, 3},
	{"Azul", 2017, 7.8, []string{"draft", "pose de tuiles"}, "Décorez les murs du palais royal d'Évora avec des azulejos.", 2, 4, 45, 1},
	{"Pandemic", 2008, 7.6, []string{"coopératif", "gestion de main"}, "Sauvez l'humanité de quatre maladies mortelles, ensemble.", 2, 4, 45, 2},
	{"Wingspan", 2019, 8.1, []string{"moteur de cartes", "collection"}, "Attirez les plus beaux oiseaux dans votre volière.", 1, 5, 70, 2},
	{"Carcassonne", 2000, 7.4, []string{"pose de tuiles", "contrôle de zones"}, "Construisez le paysage médiéval du sud de la France.", 2, 5, 35, 1},
	{"Root", 2018, 8.1, []string{"asymétrique", "contrôle de zones"}, "Des factions animales asymétriques se disputent la forêt.", 2, 4, 90, 4},
	{"Gloomhaven", 2017, 8.6, []string{"coopératif", "campagne"}, "Une campagne tactique monumentale dans un monde sombre.", 1, 4, 120, 4},
	{"Dixit", 2008, 7.2, []string{"ambiance", "narration"}, "Faites deviner vos cartes oniriques sans trop en dire.", 3, 6, 30, 1},
}

func seedGames(ctx context.Context, db *pgxpool.Pool) error {
	for _, g := range gamesCatalog {
		var exists bool
		if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM games WHERE name = $1)", g.Name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		query := `INSERT INTO games (name, year, rating, mechanics, description, players_min, players_max, duration, difficulty)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		if _, err := db.Exec(ctx, query, g.Name, g.Year, g.Rating, g.Mechanics, g.Description, g.PlayersMin, g.PlayersMax, g.Duration, g.Difficulty); err != nil {
			return err
		}
		log.Printf("  - Jeu '%s' inséré.", g.Name)
	}
	return nil
}
