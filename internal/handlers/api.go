package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/handlers/dto"
)

// APIHandler serves the read-only JSON surface. No write endpoints are
// exposed here.
type APIHandler struct {
	db *database.Database
}

func NewAPIHandler(db *database.Database) *APIHandler {
	return &APIHandler{db: db}
}

// Routes returns the documented route list.
func (h *APIHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, []string{
		"GET /api",
		"GET /api/rooms",
		"GET /api/rooms/:id",
		"GET /api/users",
	})
}

func (h *APIHandler) GetRooms(c *gin.Context) {
	rooms, err := h.db.SearchRooms("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rooms"})
		return
	}

	result := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		result[i] = dto.NewRoomResponse(&rooms[i])
	}

	c.JSON(http.StatusOK, result)
}

func (h *APIHandler) GetRoom(c *gin.Context) {
	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	c.JSON(http.StatusOK, dto.NewRoomResponse(room))
}

func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.db.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	result := make([]dto.UserResponse, len(users))
	for i := range users {
		result[i] = dto.NewUserResponse(&users[i])
	}

	c.JSON(http.StatusOK, result)
}
