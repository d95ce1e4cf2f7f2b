package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	HostID      uuid.UUID `gorm:"type:uuid;not null" json:"host_id"`
	TopicID     uuid.UUID `gorm:"type:uuid;not null" json:"topic_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Host         User      `gorm:"foreignKey:HostID" json:"host"`
	Topic        Topic     `gorm:"foreignKey:TopicID" json:"topic"`
	Participants []User    `gorm:"many2many:room_participants" json:"participants,omitempty"`
	Messages     []Message `gorm:"foreignKey:RoomID" json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsHost reports whether userID owns the room. The host is the only user
// allowed to update or delete it.
func (r *Room) IsHost(userID uuid.UUID) bool {
	return r.HostID == userID
}
