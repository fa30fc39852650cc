package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// mockMongo runs against the driver's mock deployment; every command gets
// the next queued response.
func mockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestReviewMongo_DuplicateIsTranslated(t *testing.T) {
	mt := mockMongo(t)

	mt.Run("duplicate review", func(mt *mtest.T) {
		repo := NewReviewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: barbearia.reviews index: usuario_1_agendamento_1",
		}))

		err := repo.Create(context.Background(), &models.Review{
			UserID:        "u1",
			AppointmentID: "a1",
			Rating:        5,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicate), "got %v", err)
		assert.True(t, IsDuplicateKey(err))
	})

	mt.Run("other write errors pass through", func(mt *mtest.T) {
		repo := NewReviewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		err := repo.Create(context.Background(), &models.Review{UserID: "u1", AppointmentID: "a1", Rating: 5})
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrDuplicate))
	})
}

func TestMongo_UpdateAndDeleteMissing(t *testing.T) {
	mt := mockMongo(t)
	notMatched := mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: 0},
		bson.E{Key: "nModified", Value: 0},
	)

	mt.Run("review update", func(mt *mtest.T) {
		mt.AddMockResponses(notMatched)
		err := NewReviewMongoRepository(mt.DB).Update(context.Background(), &models.Review{ID: "missing"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	mt.Run("user update", func(mt *mtest.T) {
		mt.AddMockResponses(notMatched)
		err := NewUserMongoRepository(mt.DB).Update(context.Background(), &models.User{ID: "missing"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	mt.Run("confirm email", func(mt *mtest.T) {
		mt.AddMockResponses(notMatched)
		err := NewUserMongoRepository(mt.DB).ConfirmEmail(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	mt.Run("appointment delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := NewAppointmentMongoRepository(mt.DB).Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	mt.Run("service update matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		err := NewServiceMongoRepository(mt.DB).Update(context.Background(), &models.Service{ID: "s1", Name: "Corte"})
		assert.NoError(t, err)
	})
}

func TestMongo_FindByIDMissing(t *testing.T) {
	mt := mockMongo(t)

	mt.Run("appointment", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "barbearia.appointments", mtest.FirstBatch))
		_, err := NewAppointmentMongoRepository(mt.DB).FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	mt.Run("user by email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "barbearia.users", mtest.FirstBatch))
		_, err := NewUserMongoRepository(mt.DB).FindByEmail(context.Background(), "nobody@x.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReviewMongo_ReviewedAppointmentIDs(t *testing.T) {
	mt := mockMongo(t)

	mt.Run("projects the appointment id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "barbearia.reviews", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "r1"}, {Key: "agendamento", Value: "a1"}},
			bson.D{{Key: "_id", Value: "r2"}, {Key: "agendamento", Value: "a3"}},
		))

		got, err := NewReviewMongoRepository(mt.DB).ReviewedAppointmentIDs(
			context.Background(), "u1", []string{"a1", "a2", "a3"},
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"a1": true, "a3": true}, got)

		cmd := mt.GetStartedEvent().Command
		_, err = cmd.LookupErr("projection", "agendamento")
		assert.NoError(t, err, "projection keeps only agendamento")
		user, err := cmd.LookupErr("filter", "usuario")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.StringValue())
	})

	mt.Run("no ids skips the query", func(mt *mtest.T) {
		got, err := NewReviewMongoRepository(mt.DB).ReviewedAppointmentIDs(context.Background(), "u1", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, mt.GetStartedEvent())
	})
}
