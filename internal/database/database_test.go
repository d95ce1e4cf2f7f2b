package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thereayou/studybud/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewDatabase(db)
}

func createTestUser(t *testing.T, d *Database, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		Name:         username,
		PasswordHash: "x",
	}
	if err := d.SaveUser(user); err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestRoom(t *testing.T, d *Database, host *models.User, topicName, name, description string) *models.Room {
	t.Helper()

	topic, err := d.GetOrCreateTopic(topicName)
	if err != nil {
		t.Fatalf("failed to create topic %s: %v", topicName, err)
	}

	room := &models.Room{
		HostID:      host.ID,
		TopicID:     topic.ID,
		Name:        name,
		Description: description,
	}
	if err := d.CreateRoom(room); err != nil {
		t.Fatalf("failed to create room %s: %v", name, err)
	}
	return room
}

func postTestMessage(t *testing.T, d *Database, room *models.Room, author *models.User, body string) *models.Message {
	t.Helper()

	message := &models.Message{
		RoomID: room.ID,
		UserID: author.ID,
		Body:   body,
	}
	if err := d.SaveMessage(message); err != nil {
		t.Fatalf("failed to post message: %v", err)
	}
	if err := d.AddParticipant(room.ID.String(), author.ID.String()); err != nil {
		t.Fatalf("failed to add participant: %v", err)
	}
	return message
}
