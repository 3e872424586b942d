package entities

import (
	"lebonmeeple/pkg/types"
)

type Comment struct {
	ID     uint64 `json:"id" db:"id"`
	Body   string `json:"body" db:"body"`
	UserID uint64 `json:"user_id" db:"user_id"`
	PostID uint64 `json:"post_id" db:"post_id"`

	Author *User `json:"author,omitempty" db:"-"`

	types.BaseEntity
}
