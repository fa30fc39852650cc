package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ServiceMongoRepository struct {
	coll *mongo.Collection
}

var _ catalog.Repository = (*ServiceMongoRepository)(nil)

func NewServiceMongoRepository(db *mongo.Database) *ServiceMongoRepository {
	return &ServiceMongoRepository{coll: db.Collection(dbpkg.ServicesCollection)}
}

func (r *ServiceMongoRepository) Create(ctx context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = models.NewID()
	}
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, s)
	return translate(err)
}

func (r *ServiceMongoRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	return findOne[models.Service](ctx, r.coll, bson.M{"_id": id})
}

func (r *ServiceMongoRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.Service, error) {
	out := make(map[string]models.Service, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	services, err := findAll[models.Service](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		out[s.ID] = s
	}
	return out, nil
}

func (r *ServiceMongoRepository) List(ctx context.Context, f catalog.Filter) ([]models.Service, error) {
	filter := bson.M{}
	if f.Type != "" {
		filter["tipo"] = f.Type
	}
	if f.Available != nil {
		filter["disponivel"] = *f.Available
	}

	return findAll[models.Service](ctx, r.coll, filter,
		options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}),
	)
}

func (r *ServiceMongoRepository) Update(ctx context.Context, s *models.Service) error {
	s.UpdatedAt = time.Now()
	return replaceByID(ctx, r.coll, s.ID, s)
}

func (r *ServiceMongoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
