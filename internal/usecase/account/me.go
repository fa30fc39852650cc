package account

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
)

type GetMe struct {
	users account.Repository
}

func NewGetMe(users account.Repository) *GetMe {
	return &GetMe{users: users}
}

func (uc *GetMe) Execute(ctx context.Context, id authz.Identity) (*dto.UserView, error) {
	user, err := uc.users.FindByID(ctx, id.UserID)
	if err != nil {
		return nil, notFoundAs(err, errUserNotFound)
	}

	view := dto.NewUserView(user)
	return &view, nil
}
