package db

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// AllModels lists every persisted model; tests migrate sqlite with it.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.Service{},
		&models.Appointment{},
		&models.Review{},
		&models.AuditLog{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
