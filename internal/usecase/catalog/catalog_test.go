package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
	"github.com/BruksfildServices01/barbearia-api/internal/testutil"
)

var (
	admin    = authz.Identity{UserID: "admin-1", Role: authz.RoleAdmin, EmailConfirmed: true}
	customer = authz.Identity{UserID: "user-1", Role: authz.RoleCustomer, EmailConfirmed: true}
)

func setup(t *testing.T) (*repository.Store, *storage.LocalStore) {
	t.Helper()
	store := repository.NewGormStore(testutil.NewTestDB(t))
	files, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return store, files
}

func TestCreateService_DefaultsAndAdminOnly(t *testing.T) {
	store, files := setup(t)
	uc := NewCreateService(store.Services, files)
	ctx := context.Background()

	in := CreateServiceInput{Name: "Corte", Description: "Corte tradicional", Price: 30, Type: "Corte"}

	_, err := uc.Execute(ctx, customer, in, nil)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	v, err := uc.Execute(ctx, admin, in, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, v.DurationMin)
	assert.True(t, v.Available)
	assert.Equal(t, "corte", v.Type)
	assert.Equal(t, models.DefaultServiceImage, v.Image)
	assert.Equal(t, "/uploads/servicos/"+models.DefaultServiceImage, v.ImageURL)
}

func TestCreateService_Validation(t *testing.T) {
	store, files := setup(t)
	uc := NewCreateService(store.Services, files)
	ctx := context.Background()

	zero := 0
	cases := []CreateServiceInput{
		{Name: "", Description: "d", Price: 10, Type: "corte"},
		{Name: "Corte", Description: "d", Price: 0, Type: "corte"},
		{Name: "Corte", Description: "d", Price: 10, Type: "sobrancelha"},
		{Name: "Corte", Description: "d", Price: 10, Type: "corte", DurationMin: &zero},
	}
	for _, in := range cases {
		_, err := uc.Execute(ctx, admin, in, nil)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation), "%+v", in)
	}
}

func TestServiceImageLifecycle(t *testing.T) {
	store, files := setup(t)
	ctx := context.Background()

	created, err := NewCreateService(store.Services, files).Execute(ctx, admin,
		CreateServiceInput{Name: "Barba", Description: "Barba completa", Price: 25, Type: "barba"},
		testutil.FileHeader(t, "barba.png", testutil.PNGBytes(t)),
	)
	require.NoError(t, err)
	first := created.Image
	assert.True(t, files.Exists(storage.KindServices, first))

	update := NewUpdateService(store.Services, files)
	price := 35.0
	updated, err := update.Execute(ctx, admin, created.ID, UpdateServiceInput{Price: &price},
		testutil.FileHeader(t, "barba2.png", testutil.PNGBytes(t)),
	)
	require.NoError(t, err)
	assert.Equal(t, 35.0, updated.Price)
	assert.NotEqual(t, first, updated.Image)
	assert.False(t, files.Exists(storage.KindServices, first), "old image removed")
	assert.True(t, files.Exists(storage.KindServices, updated.Image))

	_, err = update.Execute(ctx, admin, created.ID, UpdateServiceInput{},
		testutil.FileHeader(t, "notes.txt", []byte("not an image")),
	)
	assert.True(t, httperr.IsKind(err, httperr.KindUpload))

	del := NewDeleteService(store.Services, files)
	require.NoError(t, del.Execute(ctx, admin, created.ID))
	assert.False(t, files.Exists(storage.KindServices, updated.Image))

	_, err = NewGetService(store.Services, files).Execute(ctx, created.ID)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestUpdateService_Rejects(t *testing.T) {
	store, files := setup(t)
	ctx := context.Background()
	svc, err := NewCreateService(store.Services, files).Execute(ctx, admin,
		CreateServiceInput{Name: "Corte", Description: "c", Price: 30, Type: "corte"}, nil)
	require.NoError(t, err)
	update := NewUpdateService(store.Services, files)

	_, err = update.Execute(ctx, customer, svc.ID, UpdateServiceInput{}, nil)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	_, err = update.Execute(ctx, admin, "missing", UpdateServiceInput{}, nil)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	bad := "x"
	_, err = update.Execute(ctx, admin, svc.ID, UpdateServiceInput{Type: &bad}, nil)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestListServices_Filters(t *testing.T) {
	store, files := setup(t)
	ctx := context.Background()
	create := NewCreateService(store.Services, files)

	no := false
	for _, in := range []CreateServiceInput{
		{Name: "Corte", Description: "c", Price: 30, Type: "corte"},
		{Name: "Barba", Description: "b", Price: 20, Type: "barba"},
		{Name: "Combo", Description: "cb", Price: 45, Type: "combo", Available: &no},
	} {
		_, err := create.Execute(ctx, admin, in, nil)
		require.NoError(t, err)
	}

	list := NewListServices(store.Services, files)

	all, err := list.Execute(ctx, ListServicesInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	barba, err := list.Execute(ctx, ListServicesInput{Type: "barba"})
	require.NoError(t, err)
	require.Len(t, barba, 1)
	assert.Equal(t, "Barba", barba[0].Name)

	yes := true
	available, err := list.Execute(ctx, ListServicesInput{Available: &yes})
	require.NoError(t, err)
	assert.Len(t, available, 2)

	_, err = list.Execute(ctx, ListServicesInput{Type: "sobrancelha"})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}
