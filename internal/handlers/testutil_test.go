package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thereayou/studybud/internal/database"
	"github.com/thereayou/studybud/internal/models"
	"github.com/thereayou/studybud/internal/server"
	"github.com/thereayou/studybud/pkg/auth"
)

// memStore is an in-memory session.Store so handler tests run without
// Redis.
type memStore struct {
	mu        sync.Mutex
	blacklist map[string]bool
	flashes   map[string][]string
}

func newMemStore() *memStore {
	return &memStore{
		blacklist: make(map[string]bool),
		flashes:   make(map[string][]string),
	}
}

func (s *memStore) Blacklist(_ context.Context, token string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blacklist[token] = true
	return nil
}

func (s *memStore) IsBlacklisted(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blacklist[token], nil
}

func (s *memStore) PushFlash(_ context.Context, token, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[token] = append(s.flashes[token], message)
	return nil
}

func (s *memStore) PopFlashes(_ context.Context, token string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.flashes[token]
	delete(s.flashes, token)
	return messages, nil
}

type testEnv struct {
	router *gin.Engine
	db     *database.Database
	jwt    *auth.JWTManager
	store  *memStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db := database.NewDatabase(gdb)
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)
	store := newMemStore()

	router := gin.New()
	router.LoadHTMLGlob("../../templates/*.html")
	server.Routes(router, jwtMgr, store, db, t.TempDir())

	return &testEnv{router: router, db: db, jwt: jwtMgr, store: store}
}

func (e *testEnv) createUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        strings.ToLower(email),
		Name:         username,
		PasswordHash: string(hash),
	}
	if err := e.db.SaveUser(user); err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createRoom(t *testing.T, host *models.User, topicName, name string) *models.Room {
	t.Helper()

	topic, err := e.db.GetOrCreateTopic(topicName)
	if err != nil {
		t.Fatalf("failed to create topic: %v", err)
	}
	room := &models.Room{HostID: host.ID, TopicID: topic.ID, Name: name}
	if err := e.db.CreateRoom(room); err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return room
}

// sessionCookie issues a signed session cookie for the user, the same way
// a successful login would.
func (e *testEnv) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, err := e.jwt.Generate(user.ID.String())
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

func (e *testEnv) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodGet, path, nil, cookie)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodPost, path, form, cookie)
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusFound, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("redirect = %q, want %q", got, location)
	}
}
