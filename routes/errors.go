package routes

import (
	"errors"
	"net/http"

	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/services"
	"github.com/relato-cidadao/relato-cidadao-be/util"
	"github.com/sirupsen/logrus"
)

// mapErr converts a controller error to an HTTP error. fallback is the
// operation-specific message used for unexpected and upstream failures.
func mapErr(err error, fallback string) *util.HTTPError {
	var validationErr *controllers.ValidationError
	var notFoundErr *controllers.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return &util.HTTPError{Status: http.StatusBadRequest, Message: validationErr.Message}
	case errors.As(err, &notFoundErr):
		return &util.HTTPError{Status: http.StatusNotFound, Message: notFoundErr.Message}
	case errors.Is(err, controllers.ErrForbidden):
		return &util.HTTPError{Status: http.StatusForbidden, Message: "Você não tem permissão para executar esta ação."}
	case errors.Is(err, controllers.ErrBadCredentials):
		return &util.HTTPError{Status: http.StatusBadRequest, Message: "Credenciais inválidas."}
	case errors.Is(err, controllers.ErrEmailTaken):
		return &util.HTTPError{Status: http.StatusBadRequest, Message: "O email já está em uso."}
	case errors.Is(err, services.ErrUpstream):
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: fallback}
	default:
		logrus.WithError(err).Error("erro inesperado")
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: fallback}
	}
}
