package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultServiceImage is stored when a service is created without an upload.
// It is never removed from storage.
const DefaultServiceImage = "default-servico.jpg"

type Service struct {
	ID string `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`

	Name        string  `gorm:"size:50;not null" bson:"nome" json:"nome" validate:"required,max=50"`
	Description string  `gorm:"size:500;not null" bson:"descricao" json:"descricao" validate:"required,max=500"`
	Price       float64 `gorm:"not null" bson:"preco" json:"preco" validate:"gt=0"`
	DurationMin int     `gorm:"not null" bson:"duracao" json:"duracao" validate:"gt=0"`
	Type        string  `gorm:"size:20;not null;index" bson:"tipo" json:"tipo" validate:"required,oneof=corte barba combo"`
	Image       string  `gorm:"size:255;not null" bson:"imagem" json:"imagem"`
	Available   bool    `gorm:"not null" bson:"disponivel" json:"disponivel"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}
