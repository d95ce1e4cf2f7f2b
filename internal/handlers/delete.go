package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/studybud/internal/session"
)

// deletable is what the shared delete-confirmation view needs to know about
// any entity: which one it is, what to call it, and where the confirming
// POST goes. Rooms and messages both render through it.
type deletable struct {
	ID     uuid.UUID
	Label  string
	Action string
}

func renderDeleteConfirm(c *gin.Context, store session.Store, obj deletable) {
	c.HTML(http.StatusOK, "delete.html", viewData(c, store, gin.H{"Obj": obj}))
}
