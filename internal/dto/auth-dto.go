package dto

type SignupDTO struct {
	Username             string `json:"username" validate:"required,username"`
	Email                string `json:"email" validate:"required,custom_email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
	Avatar               string `json:"avatar" validate:"omitempty,url"`
}

type SigninDTO struct {
	Email    string `json:"email" validate:"required,custom_email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponseDTO est la forme attendue par le front: le jeton et l'objet
// `userStorage` persisté en local storage. Jamais de mot de passe dedans.
type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"userStorage"`
}
