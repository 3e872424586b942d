package dto

import "github.com/aarondl/null/v8"

type UpdateUserDTO struct {
	Username             null.String `json:"username" validate:"omitempty,username"`
	Email                null.String `json:"email" validate:"omitempty,custom_email"`
	Password             null.String `json:"password" validate:"omitempty,min=6"`
	PasswordConfirmation null.String `json:"passwordConfirmation" validate:"omitempty"`
	Avatar               null.String `json:"avatar" validate:"omitempty"`
}

type UserDTO struct {
	ID        uint64   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Avatar    *string  `json:"avatar,omitempty"`
	Roles     []string `json:"roles"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

type ShortUserDTO struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar,omitempty"`
}
