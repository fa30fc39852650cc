package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes on every collection", func(mt *mtest.T) {
		for i := 0; i < 5; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}

		require.NoError(t, EnsureIndexes(context.Background(), mt.DB))

		created := map[string]bool{}
		for _, ev := range mt.GetAllStartedEvents() {
			require.Equal(t, "createIndexes", ev.CommandName)
			created[ev.Command.Lookup("createIndexes").StringValue()] = true
		}
		assert.Equal(t, map[string]bool{
			UsersCollection:        true,
			ServicesCollection:     true,
			AppointmentsCollection: true,
			ReviewsCollection:      true,
			AuditLogsCollection:    true,
		}, created)
	})

	mt.Run("review index is unique", func(mt *mtest.T) {
		for i := 0; i < 5; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		require.NoError(t, EnsureIndexes(context.Background(), mt.DB))

		for _, ev := range mt.GetAllStartedEvents() {
			if ev.Command.Lookup("createIndexes").StringValue() != ReviewsCollection {
				continue
			}
			idx := ev.Command.Lookup("indexes").Array().Index(0).Value().Document()
			assert.True(t, idx.Lookup("unique").Boolean())

			var keys bson.D
			require.NoError(t, bson.Unmarshal(idx.Lookup("key").Document(), &keys))
			assert.Equal(t, "usuario", keys[0].Key)
			assert.Equal(t, "agendamento", keys[1].Key)
		}
	})

	mt.Run("reports the failing collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		err := EnsureIndexes(context.Background(), mt.DB)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create indexes on")
	})
}
