package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`

	UserID    string `gorm:"type:varchar(36);not null;index" bson:"usuario" json:"usuario" validate:"required"`
	ServiceID string `gorm:"type:varchar(36);not null;index" bson:"servico" json:"servico" validate:"required"`

	Date     time.Time `gorm:"not null;index" bson:"data" json:"data" validate:"required"`
	TimeSlot string    `gorm:"size:5;not null" bson:"horario" json:"horario" validate:"required,timeslot"`

	Status string `gorm:"size:20;not null;index" bson:"status" json:"status" validate:"required,oneof=scheduled confirmed canceled completed"`

	ReferenceImage *string `gorm:"size:255" bson:"imagemReferencia" json:"imagemReferencia"`
	Notes          string  `gorm:"size:500" bson:"observacoes" json:"observacoes" validate:"max=500"`

	ConfirmedAt *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CanceledAt  *time.Time `bson:"canceledAt,omitempty" json:"canceledAt,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}
