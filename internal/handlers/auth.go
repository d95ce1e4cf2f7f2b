package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/handlers/dto"
	"github.com/thereayou/studybud/internal/middleware"
	"github.com/thereayou/studybud/internal/models"
	"github.com/thereayou/studybud/internal/session"
	"github.com/thereayou/studybud/pkg/auth"
)

type AuthHandler struct {
	db         *database.Database
	jwtManager *auth.JWTManager
	sessions   session.Store
}

func NewAuthHandler(db *database.Database, jwtMgr *auth.JWTManager, sessions session.Store) *AuthHandler {
	return &AuthHandler{db: db, jwtManager: jwtMgr, sessions: sessions}
}

// LoginPage renders the sign-in form. Authenticated users are bounced home.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); ok {
		pushFlash(c, h.sessions, "You have logged in")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{"Page": "login"}))
}

// Login checks the submitted credentials and starts a session. The account
// lookup and the credential check are deliberately separate steps, matching
// the long-standing behavior: a missing account reports "User does not
// exist" and the sign-in attempt still runs, so both errors can show up on
// the same render.
func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUserID(c); ok {
		pushFlash(c, h.sessions, "You have logged in")
		c.Redirect(http.StatusFound, "/")
		return
	}

	var msgs []string

	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		msgs = append(msgs, "Username or Password is incorrect")
		c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{"Page": "login", "Messages": msgs}))
		return
	}

	email := strings.ToLower(form.Email)

	user, err := h.db.FindUserByEmail(email)
	if err != nil {
		msgs = append(msgs, "User does not exist")
	}

	if user != nil && bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)) == nil {
		h.startSession(c, user)
		c.Redirect(http.StatusFound, "/")
		return
	}

	msgs = append(msgs, "Username or Password is incorrect")
	c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{"Page": "login", "Messages": msgs}))
}

// RegisterPage renders the sign-up form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{"Page": "register"}))
}

// Register creates an account and logs it in right away.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{
			"Page":     "register",
			"Messages": []string{"An error occurred during registration"},
		}))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{
			"Page":     "register",
			"Messages": []string{"An error occurred during registration"},
		}))
		return
	}

	user := &models.User{
		Username:     strings.ToLower(form.Username),
		Email:        strings.ToLower(form.Email),
		Name:         form.Name,
		PasswordHash: string(hash),
	}

	if err := h.db.SaveUser(user); err != nil {
		c.HTML(http.StatusOK, "login_register.html", viewData(c, h.sessions, gin.H{
			"Page":     "register",
			"Messages": []string{"An error occurred during registration"},
		}))
		return
	}

	h.startSession(c, user)
	c.Redirect(http.StatusFound, "/")
}

// Logout revokes the session token and clears the cookie. No confirmation
// step.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := middleware.CurrentToken(c); ok {
		if exp, err := h.jwtManager.Expiry(token); err == nil {
			_ = h.sessions.Blacklist(c.Request.Context(), token, time.Until(exp))
		}
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) {
	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "could not start session")
		c.Abort()
		return
	}
	maxAge := int(h.jwtManager.Duration().Seconds())
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", false, true)
}
