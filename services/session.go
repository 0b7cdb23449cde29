package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"urban-threads/models"
	"urban-threads/storage"
)

// SessionStore owns the active identity, single-session: logging in
// replaces whoever was signed in before. The identity persists across
// restarts; unreadable persisted data means logged out.
type SessionStore struct {
	notifier

	mu      sync.Mutex
	store   storage.Store
	log     *slog.Logger
	auth    Authenticator
	current *models.Identity
}

func NewSessionStore(store storage.Store, auth Authenticator, log *slog.Logger) *SessionStore {
	s := &SessionStore{store: store, auth: auth, log: log}
	s.load()
	return s
}

func (s *SessionStore) load() {
	raw, err := s.store.Get(keyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("could not read session, treating as logged out", "error", err)
		}
		return
	}

	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.log.Warn("could not parse session, treating as logged out", "error", err)
		return
	}
	s.current = &identity
}

// Login resolves the credentials through the authenticator. No match
// returns (nil, nil); on success the identity is persisted and returned.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	identity, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.current = identity
	raw, marshalErr := json.Marshal(identity)
	if marshalErr != nil {
		s.log.Error("failed to serialize session", "error", marshalErr)
	} else if err := s.store.Set(keyUser, raw); err != nil {
		s.log.Error("failed to persist session", "error", err)
	}
	s.mu.Unlock()

	s.notify()
	out := *identity
	return &out, nil
}

func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.current = nil
	if err := s.store.Delete(keyUser); err != nil {
		s.log.Error("failed to clear persisted session", "error", err)
	}
	s.mu.Unlock()

	s.notify()
}

// Current returns the active identity, or nil when logged out.
func (s *SessionStore) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}
