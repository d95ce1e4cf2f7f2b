package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/thereayou/studybud/internal/models"
)

// RoomResponse is the JSON shape of a room on the read-only API.
type RoomResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Topic        string      `json:"topic"`
	Host         string      `json:"host"`
	Participants []uuid.UUID `json:"participants"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func NewRoomResponse(room *models.Room) RoomResponse {
	participants := make([]uuid.UUID, len(room.Participants))
	for i, p := range room.Participants {
		participants[i] = p.ID
	}
	return RoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Description:  room.Description,
		Topic:        room.Topic.Name,
		Host:         room.Host.Username,
		Participants: participants,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

// UserResponse is the JSON shape of a user on the read-only API. The
// password hash is the only field held back.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
