package models

import (
	"time"

	"gorm.io/gorm"
)

// Review rows are unique per (user_id, appointment_id); the index is the
// authority when two creates race.
type Review struct {
	ID string `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`

	UserID        string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_appointment" bson:"usuario" json:"usuario"`
	AppointmentID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_appointment;index" bson:"agendamento" json:"agendamento"`

	Rating  int    `gorm:"not null" bson:"nota" json:"nota" validate:"min=1,max=5"`
	Comment string `gorm:"size:500" bson:"comentario" json:"comentario" validate:"max=500"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewID()
	}
	return nil
}
