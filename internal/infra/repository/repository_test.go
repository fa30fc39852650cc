package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	domainAppointment "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/testutil"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestUserGorm_DuplicateEmailAndNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	u := &models.User{Name: "Ana", Email: "ana@x.com", Phone: "1", PasswordHash: "h", Role: "customer"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	dup := &models.User{Name: "Ana 2", Email: "ana@x.com", Phone: "2", PasswordHash: "h", Role: "customer"}
	err := repo.Create(ctx, dup)
	assert.True(t, errors.Is(err, domain.ErrDuplicate), "got %v", err)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.ConfirmEmail(ctx, u.ID))
	got, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.True(t, got.EmailConfirmed)

	assert.ErrorIs(t, repo.ConfirmEmail(ctx, "missing"), domain.ErrNotFound)
}

func TestServiceGorm_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewServiceGormRepository(db)
	ctx := context.Background()

	testutil.CreateService(t, db, "Corte", "corte")
	barba := testutil.CreateService(t, db, "Barba", "barba")
	barba.Available = false
	require.NoError(t, repo.Update(ctx, barba))

	all, err := repo.List(ctx, catalog.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyBarba, err := repo.List(ctx, catalog.Filter{Type: "barba"})
	require.NoError(t, err)
	require.Len(t, onlyBarba, 1)
	assert.False(t, onlyBarba[0].Available)

	available := true
	open, err := repo.List(ctx, catalog.Filter{Available: &available})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Corte", open[0].Name)

	byID, err := repo.FindByIDs(ctx, []string{barba.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, byID, 1)

	require.NoError(t, repo.Delete(ctx, barba.ID))
	assert.ErrorIs(t, repo.Delete(ctx, barba.ID), domain.ErrNotFound)
}

func TestAppointmentGorm_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	ana := testutil.CreateUser(t, db, "Ana", "ana@x.com", "customer", true)
	bia := testutil.CreateUser(t, db, "Bia", "bia@x.com", "customer", true)
	svc := testutil.CreateService(t, db, "Corte", "corte")

	testutil.CreateAppointment(t, db, ana.ID, svc.ID, "scheduled", day(10))
	testutil.CreateAppointment(t, db, ana.ID, svc.ID, "canceled", day(11))
	testutil.CreateAppointment(t, db, bia.ID, svc.ID, "confirmed", day(11))

	mine, err := repo.List(ctx, domainAppointment.Filter{UserID: ana.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	from, to := day(11), day(12)
	active, err := repo.List(ctx, domainAppointment.Filter{
		Statuses: []string{"scheduled", "confirmed"},
		From:     &from,
		To:       &to,
	})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, bia.ID, active[0].UserID)
}

func TestReviewGorm_UniquePerUserAndAppointment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReviewGormRepository(db)
	ctx := context.Background()

	ana := testutil.CreateUser(t, db, "Ana", "ana@x.com", "customer", true)
	svc := testutil.CreateService(t, db, "Corte", "corte")
	ap := testutil.CreateAppointment(t, db, ana.ID, svc.ID, "completed", day(10))
	other := testutil.CreateAppointment(t, db, ana.ID, svc.ID, "completed", day(11))

	require.NoError(t, repo.Create(ctx, &models.Review{UserID: ana.ID, AppointmentID: ap.ID, Rating: 5}))

	err := repo.Create(ctx, &models.Review{UserID: ana.ID, AppointmentID: ap.ID, Rating: 4})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	exists, err := repo.Exists(ctx, ana.ID, ap.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	reviewed, err := repo.ReviewedAppointmentIDs(ctx, ana.ID, []string{ap.ID, other.ID})
	require.NoError(t, err)
	assert.True(t, reviewed[ap.ID])
	assert.False(t, reviewed[other.ID])

	list, err := repo.List(ctx, review.Filter{AppointmentID: ap.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAuditGorm_ListPaginates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewAuditGormRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, &models.AuditLog{Action: audit.ActionAppointmentCreated, Entity: audit.EntityAppointment}))
	}
	require.NoError(t, repo.Insert(ctx, &models.AuditLog{Action: audit.ActionReviewCreated, Entity: audit.EntityReview}))

	logs, total, err := repo.List(ctx, audit.Query{Entity: audit.EntityAppointment, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, logs, 2)

	logs, total, err = repo.List(ctx, audit.Query{Action: audit.ActionReviewCreated, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, logs, 1)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, IsDuplicateKey(translate(errors.New("UNIQUE constraint failed: x"))))
}
