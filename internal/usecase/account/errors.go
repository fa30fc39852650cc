package account

import (
	"errors"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

var (
	errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Credenciais inválidas.")
	errEmailTaken         = httperr.ErrDuplicate("email_already_registered", "Este e-mail já está cadastrado.")
	errUserNotFound       = httperr.ErrNotFound("user_not_found", "Usuário não encontrado.")
	errInvalidToken       = httperr.ErrValidation("invalid_token", "Token inválido ou expirado.")
)

func notFoundAs(err, nf error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nf
	}
	return err
}
