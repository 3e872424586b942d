package dto

import "github.com/aarondl/null/v8"

type CreatePostDTO struct {
	Title   string   `json:"title" validate:"required,min=3,max=200"`
	Body    string   `json:"body" validate:"required"`
	Image   string   `json:"image" validate:"omitempty"`
	GameIDs []uint64 `json:"game_ids" validate:"omitempty,dive,gt=0"`
}

type UpdatePostDTO struct {
	Title   null.String `json:"title" validate:"omitempty,min=3,max=200"`
	Body    null.String `json:"body" validate:"omitempty"`
	Image   null.String `json:"image" validate:"omitempty"`
	GameIDs []uint64    `json:"game_ids" validate:"omitempty,dive,gt=0"`
}

type PostDTO struct {
	ID        uint64       `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Image     string       `json:"image"`
	UserID    uint64       `json:"user_id"`
	Author    ShortUserDTO `json:"author"`
	Comments  []CommentDTO `json:"comments,omitempty"`
	Games     []GameDTO    `json:"games,omitempty"`
	CreatedAt string       `json:"created_at,omitempty"`
	UpdatedAt string       `json:"updated_at,omitempty"`
}

// PostListDTO est l'enveloppe paginée attendue par le front.
type PostListDTO struct {
	Posts      []PostDTO `json:"posts"`
	Total      uint64    `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}
