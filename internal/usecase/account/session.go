package account

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// Session is what register and login hand back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      dto.UserView
}

func newSession(tokens *auth.TokenService, u *models.User) (*Session, error) {
	token, claims, err := tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      dto.NewUserView(u),
	}, nil
}
