package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

var (
	owner = authz.Identity{UserID: "u1", Role: authz.RoleCustomer, EmailConfirmed: true}
	other = authz.Identity{UserID: "u2", Role: authz.RoleCustomer, EmailConfirmed: true}
	admin = authz.Identity{UserID: "a1", Role: authz.RoleAdmin, EmailConfirmed: true}
)

func TestCheckEligibility(t *testing.T) {
	completed := &models.Appointment{UserID: "u1", Status: "completed"}
	scheduled := &models.Appointment{UserID: "u1", Status: "scheduled"}

	tests := []struct {
		name     string
		id       authz.Identity
		ap       *models.Appointment
		wantCode string
	}{
		{"owner completed", owner, completed, ""},
		{"owner not completed", owner, scheduled, "appointment_not_completed"},
		{"stranger", other, completed, "forbidden"},
		{"admin has no override", admin, completed, "forbidden"},
		{"ownership checked before status", other, scheduled, "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEligibility(tt.id, tt.ap)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestCanUpdateAndDelete(t *testing.T) {
	r := &models.Review{UserID: "u1"}

	assert.NoError(t, CanUpdate(owner, r))
	assert.Error(t, CanUpdate(admin, r))
	assert.Error(t, CanUpdate(other, r))

	assert.NoError(t, CanDelete(owner, r))
	assert.NoError(t, CanDelete(admin, r))
	assert.Error(t, CanDelete(other, r))
}

func TestErrAlreadyReviewed(t *testing.T) {
	assert.True(t, httperr.IsKind(ErrAlreadyReviewed, httperr.KindDuplicate))
	assert.True(t, httperr.IsBusiness(ErrAlreadyReviewed, "already_reviewed"))
}
