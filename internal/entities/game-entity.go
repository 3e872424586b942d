package entities

import (
	"lebonmeeple/pkg/types"
)

// Game est un article du catalogue: lecture seule côté API.
type Game struct {
	ID          uint64   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Year        *int     `json:"year,omitempty" db:"year"`
	Rating      *float32 `json:"rating,omitempty" db:"rating"`
	Mechanics   []string `json:"mechanics" db:"mechanics"`
	Description *string  `json:"description,omitempty" db:"description"`
	Image       *string  `json:"image,omitempty" db:"image"`
	PlayersMin  *int     `json:"players_min,omitempty" db:"players_min"`
	PlayersMax  *int     `json:"players_max,omitempty" db:"players_max"`
	Duration    *int     `json:"duration,omitempty" db:"duration"`
	Difficulty  *int     `json:"difficulty,omitempty" db:"difficulty"`

	types.BaseEntity
}
