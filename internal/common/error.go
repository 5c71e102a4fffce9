package common

import "errors"

// Sentinel errors shared by services and repositories. Callers should use
// errors.Is to match these values.
var (
	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Validation errors raised before the backend is contacted. Messages are
	// user-facing and surfaced by the UI layer as-is.
	ErrorPasswordMismatch  = errors.New("as senhas não coincidem")
	ErrorPolicyNotAccepted = errors.New("é necessário aceitar a política de privacidade")
	ErrorMissingFields     = errors.New("preencha todos os campos obrigatórios")
	ErrorNotAuthenticated  = errors.New("você precisa estar logado")
)
