package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"oviss-backend/models"
	"oviss-backend/storage"
)

// ErrNotLoggedIn is returned when an operation requires a current user and
// none is set.
var ErrNotLoggedIn = errors.New("no user logged in")

// Session owns the current user record. The record is written through to
// the key-value store on login and profile updates and deleted on logout.
type Session struct {
	mu    sync.Mutex
	store storage.KV
	user  *models.User
}

func NewSession(store storage.KV) *Session {
	return &Session{store: store}
}

// Load restores a previously saved user. A missing key or a corrupt blob
// both leave the session logged out.
func (s *Session) Load(ctx context.Context) {
	raw, err := s.store.Get(ctx, models.StoreKeyUser)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("session: load failed: %v", err)
		return
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("session: discarding corrupt stored user: %v", err)
		return
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

// Login sets the current user and persists the record.
func (s *Session) Login(ctx context.Context, user models.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.save(ctx, user)
}

// Logout clears the current user and removes the stored record.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Delete(ctx, models.StoreKeyUser); err != nil {
		log.Printf("session: clear failed: %v", err)
	}
}

// User returns a copy of the current user record.
func (s *Session) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// UpdateUser replaces the current user record and persists it. The id is
// kept from the existing record.
func (s *Session) UpdateUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	user.ID = s.user.ID
	s.user = &user
	s.mu.Unlock()
	s.save(ctx, user)
	return nil
}

func (s *Session) save(ctx context.Context, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		log.Printf("session: marshal failed: %v", err)
		return
	}
	if err := s.store.Set(ctx, models.StoreKeyUser, raw); err != nil {
		log.Printf("session: persist failed: %v", err)
	}
}
