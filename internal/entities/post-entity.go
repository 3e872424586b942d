package entities

import (
	"lebonmeeple/pkg/types"
)

type Post struct {
	ID     uint64 `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Body   string `json:"body" db:"body"`
	Image  string `json:"image" db:"image"`
	UserID uint64 `json:"user_id" db:"user_id"`

	// jointures chargées à la lecture
	Author   *User     `json:"author,omitempty" db:"-"`
	Comments []Comment `json:"comments,omitempty" db:"-"`
	Games    []Game    `json:"games,omitempty" db:"-"`

	types.BaseEntity
}
