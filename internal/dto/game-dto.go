package dto

type GameDTO struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Year        *int     `json:"year,omitempty"`
	Rating      *float32 `json:"rating,omitempty"`
	Mechanics   []string `json:"mechanics"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	PlayersMin  *int     `json:"players_min,omitempty"`
	PlayersMax  *int     `json:"players_max,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Difficulty  *int     `json:"difficulty,omitempty"`
}
