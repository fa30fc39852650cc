package authz

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Identity is the authenticated requester, resolved once per request by the
// auth middleware and passed down explicitly.
type Identity struct {
	UserID         string
	Role           string
	EmailConfirmed bool
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) Owns(ownerID string) bool {
	return i.UserID != "" && i.UserID == ownerID
}

// ===============================
// Rules
// ===============================

// RequireConfirmed is the email-confirmation gate.
func RequireConfirmed(id Identity) error {
	if !id.EmailConfirmed {
		return httperr.ErrForbidden(
			"email_not_confirmed",
			"Por favor, confirme seu email antes de acessar este recurso.",
		)
	}
	return nil
}

func RequireAdmin(id Identity) error {
	if !id.IsAdmin() {
		return httperr.ErrForbidden("forbidden", "Usuário não autorizado a acessar esta rota.")
	}
	return nil
}

// CanAccess allows the owner, or an admin, to read or mutate an entity.
func CanAccess(id Identity, ownerID string) error {
	if id.Owns(ownerID) || id.IsAdmin() {
		return nil
	}
	return httperr.ErrForbidden("forbidden", "Usuário não autorizado a acessar este recurso.")
}

// RequireOwner allows the owner only; admins get no override.
func RequireOwner(id Identity, ownerID string) error {
	if id.Owns(ownerID) {
		return nil
	}
	return httperr.ErrForbidden("forbidden", "Usuário não autorizado a alterar este recurso.")
}

// ===============================
// Context
// ===============================

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
