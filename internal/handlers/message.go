package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/middleware"
	"github.com/thereayou/studybud/internal/models"
	"github.com/thereayou/studybud/internal/session"
)

type MessageHandler struct {
	db       *database.Database
	sessions session.Store
}

func NewMessageHandler(db *database.Database, sessions session.Store) *MessageHandler {
	return &MessageHandler{db: db, sessions: sessions}
}

// DeleteMessagePage renders the shared delete confirmation for a message.
// Author only.
func (h *MessageHandler) DeleteMessagePage(c *gin.Context) {
	message, ok := h.messageForDelete(c)
	if !ok {
		return
	}
	renderDeleteConfirm(c, h.sessions, deletable{
		ID:     message.ID,
		Label:  message.Body,
		Action: "/delete-message/" + message.ID.String(),
	})
}

// DeleteMessage deletes the message after confirmation.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	message, ok := h.messageForDelete(c)
	if !ok {
		return
	}

	if err := h.db.DeleteMessage(message.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete message")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *MessageHandler) messageForDelete(c *gin.Context) (*models.Message, bool) {
	userID, _ := middleware.CurrentUserID(c)

	message, err := h.db.GetMessage(c.Param("id"))
	if err != nil {
		notFound(c)
		return nil, false
	}

	if !message.IsAuthor(userID) {
		deny(c)
		return nil, false
	}

	return message, true
}
