// Fichier: internal/entities/user-entity.go
package entities

import (
	"lebonmeeple/pkg/types"
)

const RoleAdmin = "ADMIN"

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	Avatar *string  `json:"avatar,omitempty" db:"avatar"`
	Roles  []string `json:"roles" db:"roles"`

	types.BaseEntity
}

func (u *User) IsAdmin() bool {
	for _, role := range u.Roles {
		if role == RoleAdmin {
			return true
		}
	}
	return false
}
