package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/testutil"
)

type world struct {
	db        *gorm.DB
	store     *repository.Store
	audit     *audit.Dispatcher
	populator *Populator

	owner, other, admin authz.Identity
	service             *models.Service
}

func newWorld(t *testing.T) *world {
	t.Helper()

	db := testutil.NewTestDB(t)
	store := repository.NewGormStore(db)
	dispatcher := audit.NewDispatcher(audit.New(store.AuditLogs))
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	u := testutil.CreateUser(t, db, "Ana", "ana@x.com", authz.RoleCustomer, true)
	v := testutil.CreateUser(t, db, "Vitor", "vitor@x.com", authz.RoleCustomer, true)
	a := testutil.CreateUser(t, db, "Admin", "admin@x.com", authz.RoleAdmin, true)

	return &world{
		db:        db,
		store:     store,
		audit:     dispatcher,
		populator: NewPopulator(store.Users, store.Appointments, store.Services),
		owner:     authz.Identity{UserID: u.ID, Role: authz.RoleCustomer, EmailConfirmed: true},
		other:     authz.Identity{UserID: v.ID, Role: authz.RoleCustomer, EmailConfirmed: true},
		admin:     authz.Identity{UserID: a.ID, Role: authz.RoleAdmin, EmailConfirmed: true},
		service:   testutil.CreateService(t, db, "Corte", "corte"),
	}
}

func (w *world) appointment(t *testing.T, status string) *models.Appointment {
	t.Helper()
	return testutil.CreateAppointment(t, w.db, w.owner.UserID, w.service.ID, status,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
}

func (w *world) create() *CreateReview {
	return NewCreateReview(w.store.Reviews, w.store.Appointments, w.populator, w.audit)
}

func TestCreateReview_Eligibility(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	uc := w.create()

	done := w.appointment(t, "completed")
	open := w.appointment(t, "scheduled")

	_, err := uc.Execute(ctx, w.owner, CreateReviewInput{AppointmentID: "missing", Rating: 5})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = uc.Execute(ctx, w.other, CreateReviewInput{AppointmentID: done.ID, Rating: 5})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = uc.Execute(ctx, w.admin, CreateReviewInput{AppointmentID: done.ID, Rating: 5})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden), "no admin override on create")

	_, err = uc.Execute(ctx, w.owner, CreateReviewInput{AppointmentID: open.ID, Rating: 5})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_completed"))
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	_, err = uc.Execute(ctx, w.owner, CreateReviewInput{AppointmentID: done.ID, Rating: 6})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	view, err := uc.Execute(ctx, w.owner, CreateReviewInput{AppointmentID: done.ID, Rating: 5, Comment: " Ótimo "})
	require.NoError(t, err)
	assert.Equal(t, 5, view.Rating)
	assert.Equal(t, "Ótimo", view.Comment)
	require.NotNil(t, view.User)
	assert.Equal(t, "Ana", view.User.Name)
	require.NotNil(t, view.Appointment)
	require.NotNil(t, view.Appointment.Service)
	assert.Equal(t, "corte", view.Appointment.Service.Type)

	_, err = uc.Execute(ctx, w.owner, CreateReviewInput{AppointmentID: done.ID, Rating: 4})
	assert.True(t, httperr.IsBusiness(err, "already_reviewed"))
	assert.True(t, httperr.IsKind(err, httperr.KindDuplicate))
}

func TestUpdateAndDeleteReview_Permissions(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	done := w.appointment(t, "completed")

	created, err := w.create().Execute(ctx, w.owner, CreateReviewInput{AppointmentID: done.ID, Rating: 3})
	require.NoError(t, err)

	update := NewUpdateReview(w.store.Reviews, w.populator)
	four := 4
	comment := "melhorou"

	_, err = update.Execute(ctx, w.admin, created.ID, UpdateReviewInput{Rating: &four})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden), "admins cannot edit reviews")

	_, err = update.Execute(ctx, w.other, created.ID, UpdateReviewInput{Rating: &four})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	zero := 0
	_, err = update.Execute(ctx, w.owner, created.ID, UpdateReviewInput{Rating: &zero})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	updated, err := update.Execute(ctx, w.owner, created.ID, UpdateReviewInput{Rating: &four, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "melhorou", updated.Comment)

	del := NewDeleteReview(w.store.Reviews, w.audit)

	err = del.Execute(ctx, w.other, created.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	require.NoError(t, del.Execute(ctx, w.admin, created.ID))

	_, err = NewGetReview(w.store.Reviews, w.populator).Execute(ctx, w.owner, created.ID)
	assert.True(t, httperr.IsBusiness(err, "review_not_found"))
}

func TestListReviews(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	first := w.appointment(t, "completed")
	second := w.appointment(t, "completed")
	for _, ap := range []*models.Appointment{first, second} {
		_, err := w.create().Execute(ctx, w.owner, CreateReviewInput{AppointmentID: ap.ID, Rating: 5})
		require.NoError(t, err)
	}

	list := NewListReviews(w.store.Reviews, w.populator)

	all, err := list.Execute(ctx, w.admin, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := list.Execute(ctx, w.owner, "")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	one, err := list.Execute(ctx, w.owner, first.ID)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, first.ID, one[0].Appointment.ID)

	// someone else's reviews never show up, even filtered by appointment
	none, err := list.Execute(ctx, w.other, "")
	require.NoError(t, err)
	assert.Empty(t, none)

	none, err = list.Execute(ctx, w.other, first.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetReview_Ownership(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	done := w.appointment(t, "completed")
	created, err := w.create().Execute(ctx, w.owner, CreateReviewInput{AppointmentID: done.ID, Rating: 5})
	require.NoError(t, err)

	get := NewGetReview(w.store.Reviews, w.populator)

	_, err = get.Execute(ctx, w.other, created.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	got, err := get.Execute(ctx, w.owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = get.Execute(ctx, w.admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = get.Execute(ctx, w.owner, "missing")
	assert.True(t, httperr.IsBusiness(err, "review_not_found"))
}

func TestCreateReview_UniqueIndexIsTheGuarantee(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	done := w.appointment(t, "completed")

	// a row written behind the use case's back, as a concurrent request would
	require.NoError(t, w.store.Reviews.Create(ctx, &models.Review{
		UserID: w.owner.UserID, AppointmentID: done.ID, Rating: 2,
	}))

	err := w.store.Reviews.Create(ctx, &models.Review{
		UserID: w.owner.UserID, AppointmentID: done.ID, Rating: 5,
	})
	require.Error(t, err)
	assert.True(t, repository.IsDuplicateKey(err))
}
