package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ReviewMongoRepository struct {
	coll *mongo.Collection
}

var _ review.Repository = (*ReviewMongoRepository)(nil)

func NewReviewMongoRepository(db *mongo.Database) *ReviewMongoRepository {
	return &ReviewMongoRepository{coll: db.Collection(dbpkg.ReviewsCollection)}
}

func (r *ReviewMongoRepository) Create(ctx context.Context, rv *models.Review) error {
	if rv.ID == "" {
		rv.ID = models.NewID()
	}
	now := time.Now()
	rv.CreatedAt, rv.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, rv)
	return translate(err)
}

func (r *ReviewMongoRepository) FindByID(ctx context.Context, id string) (*models.Review, error) {
	return findOne[models.Review](ctx, r.coll, bson.M{"_id": id})
}

func (r *ReviewMongoRepository) Exists(ctx context.Context, userID, appointmentID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx,
		bson.M{"usuario": userID, "agendamento": appointmentID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReviewMongoRepository) List(ctx context.Context, f review.Filter) ([]models.Review, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter["usuario"] = f.UserID
	}
	if f.AppointmentID != "" {
		filter["agendamento"] = f.AppointmentID
	}

	return findAll[models.Review](ctx, r.coll, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
}

func (r *ReviewMongoRepository) Update(ctx context.Context, rv *models.Review) error {
	rv.UpdatedAt = time.Now()
	return replaceByID(ctx, r.coll, rv.ID, rv)
}

func (r *ReviewMongoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}

func (r *ReviewMongoRepository) ReviewedAppointmentIDs(
	ctx context.Context,
	userID string,
	appointmentIDs []string,
) (map[string]bool, error) {

	out := make(map[string]bool, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return out, nil
	}

	filter := bson.M{"agendamento": bson.M{"$in": appointmentIDs}}
	if userID != "" {
		filter["usuario"] = userID
	}

	reviews, err := findAll[models.Review](ctx, r.coll, filter,
		options.Find().SetProjection(bson.M{"agendamento": 1}),
	)
	if err != nil {
		return nil, err
	}
	for _, rv := range reviews {
		out[rv.AppointmentID] = true
	}
	return out, nil
}
