package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

var (
	owner    = Identity{UserID: "u1", Role: RoleCustomer, EmailConfirmed: true}
	stranger = Identity{UserID: "u2", Role: RoleCustomer, EmailConfirmed: true}
	admin    = Identity{UserID: "a1", Role: RoleAdmin, EmailConfirmed: true}
)

func TestCanAccess(t *testing.T) {
	assert.NoError(t, CanAccess(owner, "u1"))
	assert.NoError(t, CanAccess(admin, "u1"))

	err := CanAccess(stranger, "u1")
	assert.True(t, httperr.IsBusiness(err, "forbidden"))
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestCanAccess_EmptyIdentityNeverOwns(t *testing.T) {
	assert.Error(t, CanAccess(Identity{}, ""))
}

func TestRequireOwner_NoAdminOverride(t *testing.T) {
	assert.NoError(t, RequireOwner(owner, "u1"))
	assert.Error(t, RequireOwner(admin, "u1"))
	assert.Error(t, RequireOwner(stranger, "u1"))
}

func TestRequireConfirmed(t *testing.T) {
	assert.NoError(t, RequireConfirmed(owner))

	err := RequireConfirmed(Identity{UserID: "u3", Role: RoleCustomer})
	assert.True(t, httperr.IsBusiness(err, "email_not_confirmed"))
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, RequireAdmin(admin))
	assert.True(t, httperr.IsBusiness(RequireAdmin(owner), "forbidden"))
}

func TestIdentityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), owner)
	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, owner, got)
}
