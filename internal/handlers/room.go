package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/handlers/dto"
	"github.com/thereayou/studybud/internal/middleware"
	"github.com/thereayou/studybud/internal/models"
	"github.com/thereayou/studybud/internal/session"
)

type RoomHandler struct {
	db       *database.Database
	sessions session.Store
}

func NewRoomHandler(db *database.Database, sessions session.Store) *RoomHandler {
	return &RoomHandler{db: db, sessions: sessions}
}

// Home lists rooms matching the search query, the most recent topics, and
// the recent activity for the same query.
func (h *RoomHandler) Home(c *gin.Context) {
	query := c.Query("q")

	rooms, err := h.db.SearchRooms(query)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load rooms")
		return
	}

	topics, err := h.db.RecentTopics(5)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load topics")
		return
	}

	roomMessages, err := h.db.RecentMessages(query, 5)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load activity")
		return
	}

	c.HTML(http.StatusOK, "home.html", viewData(c, h.sessions, gin.H{
		"Rooms":        rooms,
		"RoomCount":    len(rooms),
		"Topics":       topics,
		"RoomMessages": roomMessages,
		"Query":        query,
	}))
}

// Room shows a room with its full message history and participant set.
func (h *RoomHandler) Room(c *gin.Context) {
	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	messages, err := h.db.GetRoomMessages(room.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load messages")
		return
	}

	c.HTML(http.StatusOK, "room.html", viewData(c, h.sessions, gin.H{
		"Room":         room,
		"RoomMessages": messages,
		"Participants": room.Participants,
	}))
}

// PostMessage appends a chat message from the room page form and adds the
// author to the participant set, then reloads the room.
func (h *RoomHandler) PostMessage(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	var form dto.MessageForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/room/"+room.ID.String())
		return
	}

	message := &models.Message{
		RoomID: room.ID,
		UserID: userID,
		Body:   form.Body,
	}
	if err := h.db.SaveMessage(message); err != nil {
		c.String(http.StatusInternalServerError, "failed to post message")
		return
	}

	if err := h.db.AddParticipant(room.ID.String(), userID.String()); err != nil {
		c.String(http.StatusInternalServerError, "failed to join room")
		return
	}

	c.Redirect(http.StatusFound, "/room/"+room.ID.String())
}

// CreateRoomPage renders the empty room form with the topic list for the
// picker.
func (h *RoomHandler) CreateRoomPage(c *gin.Context) {
	topics, err := h.db.ListTopics()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load topics")
		return
	}
	c.HTML(http.StatusOK, "room_form.html", viewData(c, h.sessions, gin.H{"Topics": topics}))
}

// CreateRoom creates a room with the requester as host. The topic is
// get-or-created by exact name; room names are not required to be unique.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var form dto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		topics, _ := h.db.ListTopics()
		c.HTML(http.StatusOK, "room_form.html", viewData(c, h.sessions, gin.H{
			"Topics":   topics,
			"Messages": []string{"Invalid room form"},
		}))
		return
	}

	topic, err := h.db.GetOrCreateTopic(form.Topic)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to save topic")
		return
	}

	room := &models.Room{
		HostID:      userID,
		TopicID:     topic.ID,
		Name:        form.Name,
		Description: form.Description,
	}
	if err := h.db.CreateRoom(room); err != nil {
		c.String(http.StatusInternalServerError, "failed to create room")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// UpdateRoomPage renders the room form prefilled. Host only.
func (h *RoomHandler) UpdateRoomPage(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	if !room.IsHost(userID) {
		deny(c)
		return
	}

	topics, err := h.db.ListTopics()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load topics")
		return
	}

	c.HTML(http.StatusOK, "room_form.html", viewData(c, h.sessions, gin.H{
		"Room":   room,
		"Topics": topics,
	}))
}

// UpdateRoom overwrites name, topic, and description. Host only; the
// ownership check runs before the payload is even looked at.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	if !room.IsHost(userID) {
		deny(c)
		return
	}

	var form dto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		topics, _ := h.db.ListTopics()
		c.HTML(http.StatusOK, "room_form.html", viewData(c, h.sessions, gin.H{
			"Room":     room,
			"Topics":   topics,
			"Messages": []string{"Invalid room form"},
		}))
		return
	}

	topic, err := h.db.GetOrCreateTopic(form.Topic)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to save topic")
		return
	}

	room.Name = form.Name
	room.TopicID = topic.ID
	room.Topic = *topic
	room.Description = form.Description

	if err := h.db.UpdateRoom(room); err != nil {
		c.String(http.StatusInternalServerError, "failed to update room")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteRoomPage renders the shared delete confirmation for a room. Host
// only.
func (h *RoomHandler) DeleteRoomPage(c *gin.Context) {
	room, ok := h.roomForDelete(c)
	if !ok {
		return
	}
	renderDeleteConfirm(c, h.sessions, deletable{
		ID:     room.ID,
		Label:  room.Name,
		Action: "/delete-room/" + room.ID.String(),
	})
}

// DeleteRoom deletes the room and everything in it after confirmation.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	room, ok := h.roomForDelete(c)
	if !ok {
		return
	}

	if err := h.db.DeleteRoom(room.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete room")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *RoomHandler) roomForDelete(c *gin.Context) (*models.Room, bool) {
	userID, _ := middleware.CurrentUserID(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c)
		return nil, false
	}

	if !room.IsHost(userID) {
		deny(c)
		return nil, false
	}

	return room, true
}
