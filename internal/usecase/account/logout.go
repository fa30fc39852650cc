package account

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
)

type Logout struct {
	revoker auth.Revoker
}

func NewLogout(revoker auth.Revoker) *Logout {
	return &Logout{revoker: revoker}
}

// Execute revokes the session token until it would have expired anyway.
func (uc *Logout) Execute(ctx context.Context, claims *auth.Claims) error {
	if uc.revoker == nil || claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return uc.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
