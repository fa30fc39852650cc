package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type AuditMongoRepository struct {
	coll *mongo.Collection
}

var _ audit.Store = (*AuditMongoRepository)(nil)

func NewAuditMongoRepository(db *mongo.Database) *AuditMongoRepository {
	return &AuditMongoRepository{coll: db.Collection(dbpkg.AuditLogsCollection)}
}

func (r *AuditMongoRepository) Insert(ctx context.Context, l *models.AuditLog) error {
	if l.ID == "" {
		l.ID = models.NewID()
	}
	l.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, l)
	return err
}

func (r *AuditMongoRepository) List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	filter := bson.M{}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Entity != "" {
		filter["entity"] = q.Entity
	}
	if q.UserID != "" {
		filter["userId"] = q.UserID
	}

	created := bson.M{}
	if q.From != nil {
		created["$gte"] = *q.From
	}
	if q.To != nil {
		created["$lt"] = *q.To
	}
	if len(created) > 0 {
		filter["createdAt"] = created
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	logs, err := findAll[models.AuditLog](ctx, r.coll, filter,
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(int64(q.Offset())).
			SetLimit(int64(q.Limit)),
	)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
