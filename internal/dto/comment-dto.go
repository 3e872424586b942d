package dto

import "github.com/aarondl/null/v8"

type CreateCommentDTO struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

type UpdateCommentDTO struct {
	Body null.String `json:"body" validate:"omitempty,min=1,max=2000"`
}

type CommentDTO struct {
	ID        uint64       `json:"id"`
	Body      string       `json:"body"`
	UserID    uint64       `json:"user_id"`
	PostID    uint64       `json:"post_id"`
	Author    ShortUserDTO `json:"author"`
	CreatedAt string       `json:"created_at,omitempty"`
	UpdatedAt string       `json:"updated_at,omitempty"`
}
