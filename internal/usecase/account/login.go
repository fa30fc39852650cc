package account

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
)

type Login struct {
	users  account.Repository
	tokens *auth.TokenService
}

func NewLogin(users account.Repository, tokens *auth.TokenService) *Login {
	return &Login{users: users, tokens: tokens}
}

// Execute never tells an unknown e-mail apart from a wrong password.
func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := uc.users.FindByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		return nil, notFoundAs(err, errInvalidCredentials)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	return newSession(uc.tokens, user)
}
