package account

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
)

type ConfirmEmail struct {
	users  account.Repository
	tokens *auth.TokenService
}

func NewConfirmEmail(users account.Repository, tokens *auth.TokenService) *ConfirmEmail {
	return &ConfirmEmail{users: users, tokens: tokens}
}

func (uc *ConfirmEmail) Execute(ctx context.Context, token string) error {
	userID, err := uc.tokens.ParseEmailConfirmation(token)
	if err != nil {
		return errInvalidToken
	}

	if err := uc.users.ConfirmEmail(ctx, userID); err != nil {
		return notFoundAs(err, errUserNotFound)
	}
	return nil
}
