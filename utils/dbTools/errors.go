package dbTools

import "errors"

// Erreurs typées du store, traduites en statut HTTP par les handlers.
// Une tâche qui ne vous appartient pas répond ErrNotFound, jamais autre
// chose : on ne révèle pas l'existence des ressources des autres comptes.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnableToLogin = errors.New("unable to login")
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }
