package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/studybud/internal/session"
	"github.com/thereayou/studybud/pkg/auth"
)

const (
	UserIDKey = "userID"
	TokenKey  = "sessionToken"
)

// CurrentUser resolves the session cookie into a user ID when present and
// valid. It never aborts; anonymous requests pass through so public pages
// can render either way.
func CurrentUser(jwtManager *auth.JWTManager, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromCookie(c.Request)
		if err != nil {
			c.Next()
			return
		}

		blacklisted, err := store.IsBlacklisted(c.Request.Context(), token)
		if err != nil || blacklisted {
			c.Next()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(UserIDKey); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID, if any.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// CurrentToken returns the raw session token for the request, if any.
func CurrentToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(TokenKey)
	if !ok {
		return "", false
	}
	return v.(string), true
}
