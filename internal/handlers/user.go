package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/handlers/dto"
	"github.com/thereayou/studybud/internal/middleware"
	"github.com/thereayou/studybud/internal/session"
)

type UserHandler struct {
	db        *database.Database
	sessions  session.Store
	uploadDir string
}

func NewUserHandler(db *database.Database, sessions session.Store, uploadDir string) *UserHandler {
	return &UserHandler{db: db, sessions: sessions, uploadDir: uploadDir}
}

// Profile shows a user with the rooms they host, the messages they wrote,
// and the full topic list for navigation.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}

	rooms, err := h.db.GetHostedRooms(user.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load rooms")
		return
	}

	messages, err := h.db.GetUserMessages(user.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load messages")
		return
	}

	topics, err := h.db.ListTopics()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load topics")
		return
	}

	c.HTML(http.StatusOK, "profile.html", viewData(c, h.sessions, gin.H{
		"User":         user,
		"Rooms":        rooms,
		"RoomMessages": messages,
		"Topics":       topics,
	}))
}

// EditProfilePage renders the profile form. The form is always bound to
// the session user, never to an arbitrary id.
func (h *UserHandler) EditProfilePage(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		notFound(c)
		return
	}

	c.HTML(http.StatusOK, "update_user.html", viewData(c, h.sessions, gin.H{"User": user}))
}

// EditProfile updates the session user's own record and optionally stores
// a new avatar.
func (h *UserHandler) EditProfile(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.db.GetUser(userID.String())
	if err != nil {
		notFound(c)
		return
	}

	var form dto.UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "update_user.html", viewData(c, h.sessions, gin.H{
			"User":     user,
			"Messages": []string{"Invalid profile form"},
		}))
		return
	}

	user.Name = form.Name
	user.Username = strings.ToLower(form.Username)
	user.Email = strings.ToLower(form.Email)
	user.Bio = form.Bio

	if file, err := c.FormFile("avatar"); err == nil {
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
			c.String(http.StatusInternalServerError, "failed to save avatar")
			return
		}
		user.AvatarURL = "/uploads/" + filename
	}

	if err := h.db.UpdateUser(user); err != nil {
		c.HTML(http.StatusOK, "update_user.html", viewData(c, h.sessions, gin.H{
			"User":     user,
			"Messages": []string{"Could not update profile"},
		}))
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.ID.String())
}

// Topics lists topics filtered by name.
func (h *UserHandler) Topics(c *gin.Context) {
	query := c.Query("q")

	topics, err := h.db.SearchTopics(query)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load topics")
		return
	}

	c.HTML(http.StatusOK, "topics.html", viewData(c, h.sessions, gin.H{
		"Topics": topics,
		"Query":  query,
	}))
}

// Activity shows every message across all rooms, newest first.
func (h *UserHandler) Activity(c *gin.Context) {
	messages, err := h.db.AllMessages()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load activity")
		return
	}

	c.HTML(http.StatusOK, "activity.html", viewData(c, h.sessions, gin.H{
		"RoomMessages": messages,
	}))
}
