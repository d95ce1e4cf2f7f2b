package database

import (
	"strings"

	"github.com/thereayou/studybud/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	err := d.db.
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// SearchRooms returns rooms where the query is a case-insensitive substring
// of the topic name, room name, description, or host username. The clauses
// are OR-combined, so an empty query matches everything. Most recently
// updated rooms come first.
func (d *Database) SearchRooms(query string) ([]models.Room, error) {
	var rooms []models.Room
	q := "%" + escapeLike(strings.ToLower(query)) + "%"
	err := d.db.
		Joins("JOIN topics ON topics.id = rooms.topic_id").
		Joins("JOIN users ON users.id = rooms.host_id").
		Where(
			`LOWER(topics.name) LIKE ? ESCAPE '\' OR LOWER(rooms.name) LIKE ? ESCAPE '\' OR LOWER(rooms.description) LIKE ? ESCAPE '\' OR LOWER(users.username) LIKE ? ESCAPE '\'`,
			q, q, q, q,
		).
		Order("rooms.updated_at DESC, rooms.created_at DESC").
		Preload("Host").
		Preload("Topic").
		Preload("Participants").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetHostedRooms returns every room the user hosts.
func (d *Database) GetHostedRooms(userID string) ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.
		Where("host_id = ?", userID).
		Order("updated_at DESC, created_at DESC").
		Preload("Host").
		Preload("Topic").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (d *Database) UpdateRoom(room *models.Room) error {
	return d.db.Save(room).Error
}

// AddParticipant appends the user to the room's participant set. The
// association append is a set union, so repeated posts from the same user
// are harmless.
func (d *Database) AddParticipant(roomID, userID string) error {
	var room models.Room
	var user models.User

	if err := d.db.First(&room, "id = ?", roomID).Error; err != nil {
		return err
	}

	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return d.db.Model(&room).Association("Participants").Append(&user)
}

// DeleteRoom removes the room, its messages, and its participant rows in
// one transaction.
func (d *Database) DeleteRoom(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&room).Association("Participants").Clear(); err != nil {
			return err
		}

		return tx.Delete(&room).Error
	})
}
