package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/studybud/internal/middleware"
	"github.com/thereayou/studybud/internal/session"
)

// notAllowed is the plain-text denial shown when a user tries to mutate
// content they do not own.
const notAllowed = "You are not allowed to do that!"

func deny(c *gin.Context) {
	c.String(http.StatusOK, notAllowed)
	c.Abort()
}

func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "not found")
	c.Abort()
}

// pushFlash queues a message for the next page the session renders. It is
// a no-op for anonymous requests, which re-render errors inline instead.
func pushFlash(c *gin.Context, store session.Store, message string) {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		return
	}
	_ = store.PushFlash(c.Request.Context(), token, message)
}

// viewData merges queued flash messages and the current user ID into the
// template data for a render.
func viewData(c *gin.Context, store session.Store, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	var messages []string
	if existing, ok := data["Messages"].([]string); ok {
		messages = existing
	}
	if token, ok := middleware.CurrentToken(c); ok {
		if flashes, err := store.PopFlashes(c.Request.Context(), token); err == nil {
			messages = append(flashes, messages...)
		}
	}
	data["Messages"] = messages
	if userID, ok := middleware.CurrentUserID(c); ok {
		data["UserID"] = userID
	}
	return data
}
