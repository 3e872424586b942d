package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT et jetons
	ErrInvalidSigningMethod = fmt.Errorf("méthode de signature du jeton invalide")
	ErrInvalidToken         = fmt.Errorf("jeton invalide")
	ErrTokenExpired         = fmt.Errorf("le jeton a expiré")
	ErrTokenNotYetValid     = fmt.Errorf("le jeton n'est pas encore actif")
	ErrTokenIsNotRefresh    = fmt.Errorf("le jeton n'est pas un jeton de rafraîchissement")
	ErrTokenIsNotAccess     = fmt.Errorf("un jeton d'accès est requis")

	// Authentification
	ErrEmptyAuthHeader    = fmt.Errorf("l'en-tête d'autorisation est manquant")
	ErrInvalidAuthHeader  = fmt.Errorf("format d'en-tête d'autorisation invalide")
	ErrInvalidCredentials = fmt.Errorf("identifiants invalides")
	ErrUnauthorized       = fmt.Errorf("non autorisé")
	ErrForbidden          = fmt.Errorf("accès refusé")

	// Contexte
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID introuvable dans le contexte de la requête")

	// Générales
	ErrNotFound   = fmt.Errorf("enregistrement introuvable")
	ErrConflict   = fmt.Errorf("l'enregistrement existe déjà")
	ErrBadRequest = fmt.Errorf("requête invalide")
)

// HttpError transporte le statut HTTP et le message destiné à l'utilisateur.
// L'erreur interne ne sert qu'aux logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Err: ErrBadRequest}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewUnauthorizedError(message string) *HttpError {
	return &HttpError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewConflictError(message string) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}
