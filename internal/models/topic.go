package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is a free-text category shared across rooms. Topics are created
// implicitly when a room is created or edited with a new topic name.
type Topic struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
