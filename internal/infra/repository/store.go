package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	domainAppointment "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/review"
)

// Store bundles one implementation of every repository port.
type Store struct {
	Users        account.Repository
	Services     catalog.Repository
	Appointments domainAppointment.Repository
	Reviews      review.Repository
	AuditLogs    audit.Store
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        NewUserGormRepository(db),
		Services:     NewServiceGormRepository(db),
		Appointments: NewAppointmentGormRepository(db),
		Reviews:      NewReviewGormRepository(db),
		AuditLogs:    NewAuditGormRepository(db),
	}
}

func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:        NewUserMongoRepository(db),
		Services:     NewServiceMongoRepository(db),
		Appointments: NewAppointmentMongoRepository(db),
		Reviews:      NewReviewMongoRepository(db),
		AuditLogs:    NewAuditMongoRepository(db),
	}
}
