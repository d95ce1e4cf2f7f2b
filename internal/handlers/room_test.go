package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestCreateRoom(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	cookie := env.sessionCookie(t, alice)

	w := env.postForm(t, "/create-room", url.Values{
		"topic":       {"Python"},
		"name":        {"Python Basics"},
		"description": {"learn the basics"},
	}, cookie)
	assertRedirect(t, w, "/")

	rooms, err := env.db.SearchRooms("")
	if err != nil {
		t.Fatalf("SearchRooms() error = %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0].HostID != alice.ID {
		t.Errorf("host = %v, want %v", rooms[0].HostID, alice.ID)
	}
	if rooms[0].Topic.Name != "Python" {
		t.Errorf("topic = %q, want Python", rooms[0].Topic.Name)
	}
}

func TestCreateRoomAllowsDuplicateNames(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	cookie := env.sessionCookie(t, alice)

	form := url.Values{"topic": {"Python"}, "name": {"Python Basics"}}
	for i := 0; i < 2; i++ {
		w := env.postForm(t, "/create-room", form, cookie)
		assertRedirect(t, w, "/")
	}

	rooms, err := env.db.SearchRooms("")
	if err != nil {
		t.Fatalf("SearchRooms() error = %v", err)
	}
	if len(rooms) != 2 {
		t.Errorf("expected 2 rooms with the same name, got %d", len(rooms))
	}
}

func TestUpdateRoomHostOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	bob := env.createUser(t, "bob", "bob@example.com", "supersecret")
	room := env.createRoom(t, alice, "Python", "Python Basics")

	t.Run("non-host is denied before validation", func(t *testing.T) {
		// An empty payload would fail binding, but the ownership check
		// rejects first.
		w := env.postForm(t, "/update-room/"+room.ID.String(), url.Values{}, env.sessionCookie(t, bob))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "You are not allowed to do that!") {
			t.Error("expected the plain-text denial")
		}
	})

	t.Run("host can update", func(t *testing.T) {
		w := env.postForm(t, "/update-room/"+room.ID.String(), url.Values{
			"topic":       {"Golang"},
			"name":        {"Go Basics"},
			"description": {"renamed"},
		}, env.sessionCookie(t, alice))
		assertRedirect(t, w, "/")

		updated, err := env.db.GetRoom(room.ID.String())
		if err != nil {
			t.Fatalf("GetRoom() error = %v", err)
		}
		if updated.Name != "Go Basics" {
			t.Errorf("name = %q, want %q", updated.Name, "Go Basics")
		}
		if updated.Topic.Name != "Golang" {
			t.Errorf("topic = %q, want %q", updated.Topic.Name, "Golang")
		}
		if updated.Description != "renamed" {
			t.Errorf("description = %q, want %q", updated.Description, "renamed")
		}
	})
}

func TestDeleteRoomFlow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	bob := env.createUser(t, "bob", "bob@example.com", "supersecret")
	room := env.createRoom(t, alice, "Python", "Python Basics")

	t.Run("non-host cannot delete", func(t *testing.T) {
		w := env.postForm(t, "/delete-room/"+room.ID.String(), url.Values{}, env.sessionCookie(t, bob))
		if !strings.Contains(w.Body.String(), "You are not allowed to do that!") {
			t.Error("expected the plain-text denial")
		}
	})

	t.Run("host sees confirmation then deletes", func(t *testing.T) {
		cookie := env.sessionCookie(t, alice)

		confirm := env.get(t, "/delete-room/"+room.ID.String(), cookie)
		if confirm.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", confirm.Code)
		}
		if !strings.Contains(confirm.Body.String(), "Python Basics") {
			t.Error("expected the confirmation page to name the room")
		}

		w := env.postForm(t, "/delete-room/"+room.ID.String(), url.Values{}, cookie)
		assertRedirect(t, w, "/")

		rooms, err := env.db.SearchRooms("")
		if err != nil {
			t.Fatalf("SearchRooms() error = %v", err)
		}
		if len(rooms) != 0 {
			t.Errorf("expected room to be gone, got %d rooms", len(rooms))
		}
	})
}

func TestPostMessageAddsParticipant(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	bob := env.createUser(t, "bob", "bob@example.com", "supersecret")
	room := env.createRoom(t, alice, "Python", "Python Basics")
	cookie := env.sessionCookie(t, bob)

	for i := 0; i < 2; i++ {
		w := env.postForm(t, "/room/"+room.ID.String(), url.Values{"body": {"hi"}}, cookie)
		assertRedirect(t, w, "/room/"+room.ID.String())
	}

	got, err := env.db.GetRoom(room.ID.String())
	if err != nil {
		t.Fatalf("GetRoom() error = %v", err)
	}
	if len(got.Participants) != 1 {
		t.Fatalf("expected 1 participant after repeated posts, got %d", len(got.Participants))
	}
	if got.Participants[0].ID != bob.ID {
		t.Errorf("participant = %v, want bob", got.Participants[0].ID)
	}

	messages, err := env.db.GetRoomMessages(room.ID.String())
	if err != nil {
		t.Fatalf("GetRoomMessages() error = %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(messages))
	}
}

func TestRoomDetail(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	room := env.createRoom(t, alice, "Python", "Python Basics")

	w := env.postForm(t, "/room/"+room.ID.String(), url.Values{"body": {"hello world"}}, env.sessionCookie(t, alice))
	assertRedirect(t, w, "/room/"+room.ID.String())

	page := env.get(t, "/room/"+room.ID.String(), nil)
	if page.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", page.Code)
	}
	body := page.Body.String()
	if !strings.Contains(body, "Python Basics") {
		t.Error("expected the room name on the page")
	}
	if !strings.Contains(body, "hello world") {
		t.Error("expected the posted message on the page")
	}
	if !strings.Contains(body, "@alice") {
		t.Error("expected the participant list to include alice")
	}
}

func TestRoomDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/room/00000000-0000-0000-0000-000000000000", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHomeSearch(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com", "supersecret")
	env.createRoom(t, alice, "Python", "Python Basics")
	env.createRoom(t, alice, "Design", "Frontend Club")

	t.Run("empty query lists everything", func(t *testing.T) {
		w := env.get(t, "/", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Python Basics") || !strings.Contains(body, "Frontend Club") {
			t.Error("expected both rooms on the home page")
		}
		if !strings.Contains(body, "2 rooms available") {
			t.Error("expected the room count")
		}
	})

	t.Run("query filters rooms", func(t *testing.T) {
		w := env.get(t, "/?q=python", nil)
		body := w.Body.String()
		if !strings.Contains(body, "Python Basics") {
			t.Error("expected the matching room")
		}
		if strings.Contains(body, "Frontend Club") {
			t.Error("did not expect the non-matching room")
		}
	})
}
