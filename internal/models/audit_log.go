package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditLog struct {
	ID string `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`

	UserID *string `gorm:"type:varchar(36);index" bson:"userId,omitempty" json:"user_id"`
	Action string  `gorm:"size:50;not null;index" bson:"action" json:"action"`

	Entity   string  `gorm:"size:50" bson:"entity" json:"entity"`
	EntityID *string `gorm:"type:varchar(36)" bson:"entityId,omitempty" json:"entity_id"`
	Metadata string  `gorm:"type:text" bson:"metadata,omitempty" json:"metadata"`

	CreatedAt time.Time `gorm:"index" bson:"createdAt" json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = NewID()
	}
	return nil
}
