package controllers

import "errors"

// Domain failures returned by controllers. The HTTP layer owns the mapping
// to status codes and response bodies.
var (
	ErrForbidden      = errors.New("sem permissão para executar esta ação")
	ErrBadCredentials = errors.New("credenciais inválidas")
	ErrEmailTaken     = errors.New("o email já está em uso")
)

// ValidationError carries the user-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func (ve *ValidationError) Error() string { return ve.Message }

// NotFoundError carries the user-facing message for an absent entity.
type NotFoundError struct {
	Message string
}

func (nf *NotFoundError) Error() string { return nf.Message }

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func notFound(message string) error {
	return &NotFoundError{Message: message}
}
