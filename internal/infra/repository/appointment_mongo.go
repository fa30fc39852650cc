package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	domainAppointment "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type AppointmentMongoRepository struct {
	coll *mongo.Collection
}

var _ domainAppointment.Repository = (*AppointmentMongoRepository)(nil)

func NewAppointmentMongoRepository(db *mongo.Database) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{coll: db.Collection(dbpkg.AppointmentsCollection)}
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = models.NewID()
	}
	now := time.Now()
	ap.CreatedAt, ap.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, ap)
	return translate(err)
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	return findOne[models.Appointment](ctx, r.coll, bson.M{"_id": id})
}

func (r *AppointmentMongoRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.Appointment, error) {
	out := make(map[string]models.Appointment, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	list, err := findAll[models.Appointment](ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, ap := range list {
		out[ap.ID] = ap
	}
	return out, nil
}

func (r *AppointmentMongoRepository) List(
	ctx context.Context,
	f domainAppointment.Filter,
) ([]models.Appointment, error) {

	filter := bson.M{}
	if f.UserID != "" {
		filter["usuario"] = f.UserID
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}

	date := bson.M{}
	if f.From != nil {
		date["$gte"] = *f.From
	}
	if f.To != nil {
		date["$lt"] = *f.To
	}
	if len(date) > 0 {
		filter["data"] = date
	}

	return findAll[models.Appointment](ctx, r.coll, filter,
		options.Find().SetSort(bson.D{{Key: "data", Value: 1}, {Key: "horario", Value: 1}}),
	)
}

func (r *AppointmentMongoRepository) Update(ctx context.Context, ap *models.Appointment) error {
	ap.UpdatedAt = time.Now()
	return replaceByID(ctx, r.coll, ap.ID, ap)
}

func (r *AppointmentMongoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id)
}
