package db

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection        = "users"
	ServicesCollection     = "services"
	AppointmentsCollection = "appointments"
	ReviewsCollection      = "reviews"
	AuditLogsCollection    = "audit_logs"
)

// NewMongo connects, pings and makes sure the unique indexes exist.
func NewMongo(ctx context.Context, url, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	database := client.Database(dbName)
	if err := EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	log.WithField("database", dbName).Info("mongo connected")
	return client, database, nil
}

func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ServicesCollection: {
			{Keys: bson.D{{Key: "tipo", Value: 1}}},
		},
		AppointmentsCollection: {
			{Keys: bson.D{{Key: "usuario", Value: 1}}},
			{Keys: bson.D{{Key: "data", Value: 1}, {Key: "status", Value: 1}}},
		},
		ReviewsCollection: {
			{
				Keys:    bson.D{{Key: "usuario", Value: 1}, {Key: "agendamento", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		AuditLogsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
