package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT et jetons
	ErrInvalidSigningMethod = fmt.Errorf("méthode de signature du jeton invalide")
	ErrInvalidToken         = fmt.Errorf("jeton invalide")
	ErrTokenIsNotAccess     = fmt.Errorf("un jeton d'accès est requis")
	ErrTokenIsNotRefresh    = fmt.Errorf("un jeton de rafraîchissement est requis")

	// Authentification
	ErrEmptyAuthHeader    = fmt.Errorf("en-tête d'autorisation absent")
	ErrInvalidAuthHeader  = fmt.Errorf("format de l'en-tête d'autorisation invalide")
	ErrInvalidCredentials = fmt.Errorf("identifiants invalides")
	ErrUnauthorized       = fmt.Errorf("non authentifié")
	ErrForbidden          = fmt.Errorf("accès refusé")

	// Contexte
	ErrProfileNotFoundInContext = fmt.Errorf("profil absent du contexte de la requête")

	// Métier
	ErrNotFound     = fmt.Errorf("demande introuvable")
	ErrEtatInvalide = fmt.Errorf("opération impossible dans l'état actuel de la demande")
)

// ErrorList associe les erreurs sentinelles à leur statut HTTP.
var ErrorList = map[error]int{
	ErrInvalidSigningMethod:     http.StatusUnauthorized,
	ErrInvalidToken:             http.StatusUnauthorized,
	ErrTokenIsNotAccess:         http.StatusUnauthorized,
	ErrTokenIsNotRefresh:        http.StatusUnauthorized,
	ErrEmptyAuthHeader:          http.StatusUnauthorized,
	ErrInvalidAuthHeader:        http.StatusUnauthorized,
	ErrInvalidCredentials:       http.StatusUnauthorized,
	ErrUnauthorized:             http.StatusUnauthorized,
	ErrProfileNotFoundInContext: http.StatusUnauthorized,
	ErrForbidden:                http.StatusForbidden,
	ErrNotFound:                 http.StatusNotFound,
	ErrEtatInvalide:             http.StatusConflict,
}

// InvalidInputError : entrée mal formée ou hors référentiel, corrigeable côté client.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError porte un statut HTTP explicite avec la cause d'origine.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}
