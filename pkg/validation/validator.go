package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator - enveloppe pour l'interface echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implémente l'interface echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New crée et configure le validateur
func New() *CustomValidator {
	v := validator.New()

	// 1. Support des types null (fichier types_adapter.go)
	registerNullTypes(v)

	// 2. Règles maison (fichier rules.go)
	// Si une règle critique ne s'enregistre pas, on panique: le serveur ne doit pas démarrer
	if err := registerRules(v); err != nil {
		panic("échec de l'enregistrement des règles de validation: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
