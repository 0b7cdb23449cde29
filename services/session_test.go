package services

import (
	"context"
	"testing"

	"urban-threads/models"
	"urban-threads/storage"
)

func newTestSession(t *testing.T, store storage.Store) *SessionStore {
	t.Helper()
	auth, err := NewDemoAuthenticator(0)
	if err != nil {
		t.Fatalf("NewDemoAuthenticator: %v", err)
	}
	return NewSessionStore(store, auth, testLogger())
}

func TestLogin(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantRole string
		wantNil  bool
	}{
		{"admin account", "admin@urbanthreads.com", "admin123", models.RoleAdmin, false},
		{"user account", "user@urbanthreads.com", "user123", models.RoleUser, false},
		{"wrong password", "admin@urbanthreads.com", "wrong", "", true},
		{"unknown account", "nobody@x.com", "x", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := newTestSession(t, storage.NewMemoryStore())

			identity, err := sessions.Login(context.Background(), tc.email, tc.password)
			if err != nil {
				t.Fatalf("Login returned error: %v", err)
			}

			if tc.wantNil {
				if identity != nil {
					t.Fatalf("expected no match, got %+v", identity)
				}
				if sessions.Current() != nil {
					t.Fatal("failed login must not set a session")
				}
				return
			}

			if identity == nil {
				t.Fatal("expected identity, got no match")
			}
			if identity.Role != tc.wantRole {
				t.Fatalf("expected role %q, got %q", tc.wantRole, identity.Role)
			}
			if current := sessions.Current(); current == nil || current.Email != tc.email {
				t.Fatalf("session not set, got %+v", current)
			}
		})
	}
}

func TestSessionPersistsAcrossInstances(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSession(t, store)

	if _, err := sessions.Login(context.Background(), "user@urbanthreads.com", "user123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	reloaded := newTestSession(t, store)
	current := reloaded.Current()
	if current == nil {
		t.Fatal("identity lost across reload")
	}
	if current.Email != "user@urbanthreads.com" || current.Name != "Regular User" || current.Role != models.RoleUser {
		t.Fatalf("identity fields lost across reload: %+v", current)
	}
}

func TestLogout(t *testing.T) {
	store := storage.NewMemoryStore()
	sessions := newTestSession(t, store)

	if _, err := sessions.Login(context.Background(), "admin@urbanthreads.com", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	sessions.Logout()

	if sessions.Current() != nil {
		t.Fatal("expected logged out")
	}

	// The persisted identity is gone too.
	reloaded := newTestSession(t, store)
	if reloaded.Current() != nil {
		t.Fatal("identity survived logout in durable storage")
	}
}

func TestCorruptSessionTreatedAsLoggedOut(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set("user", []byte(`garbage{{`))

	sessions := newTestSession(t, store)
	if sessions.Current() != nil {
		t.Fatal("corrupt session data must mean logged out")
	}
}

func TestSessionSubscribe(t *testing.T) {
	sessions := newTestSession(t, storage.NewMemoryStore())

	calls := 0
	unsubscribe := sessions.Subscribe(func() { calls++ })
	defer unsubscribe()

	sessions.Login(context.Background(), "user@urbanthreads.com", "user123")
	sessions.Logout()

	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}
}
