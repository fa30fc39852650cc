package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`

	Name           string `gorm:"size:50;not null" bson:"nome" json:"nome" validate:"required,max=50"`
	Email          string `gorm:"size:100;uniqueIndex;not null" bson:"email" json:"email" validate:"required,email"`
	Phone          string `gorm:"size:20;not null" bson:"telefone" json:"telefone" validate:"max=20"`
	PasswordHash   string `gorm:"size:255;not null" bson:"senha" json:"-" validate:"required"`
	Role           string `gorm:"size:20;not null" bson:"role" json:"role" validate:"oneof=customer admin"`
	EmailConfirmed bool   `gorm:"not null" bson:"emailConfirmado" json:"emailConfirmado"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
