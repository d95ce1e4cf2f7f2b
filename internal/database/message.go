package database

import (
	"strings"

	"github.com/thereayou/studybud/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (d *Database) DeleteMessage(id string) error {
	return d.db.Delete(&models.Message{}, "id = ?", id).Error
}

// GetRoomMessages returns the room's full message history in chat order,
// oldest first.
func (d *Database) GetRoomMessages(roomID string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Preload("User").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetUserMessages returns every message the user authored, newest first.
func (d *Database) GetUserMessages(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// RecentMessages returns the newest messages whose room's topic name
// contains the query, capped at limit. The home page shows these as the
// activity sidebar for the current search.
func (d *Database) RecentMessages(query string, limit int) ([]models.Message, error) {
	var messages []models.Message
	q := "%" + escapeLike(strings.ToLower(query)) + "%"
	err := d.db.
		Joins("JOIN rooms ON rooms.id = messages.room_id").
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Where(`LOWER(topics.name) LIKE ? ESCAPE '\'`, q).
		Order("messages.created_at DESC").
		Limit(limit).
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// AllMessages returns the global activity feed, newest first.
func (d *Database) AllMessages() ([]models.Message, error) {
	var messages []models.Message
	err := d.db.
		Order("created_at DESC").
		Preload("User").
		Preload("Room").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
