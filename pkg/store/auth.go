package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"agrovision/pkg/auth/repository"
)

const (
	// AuthStorageKey is the session slot that holds the auth flag.
	AuthStorageKey = "agrovision_auth"
	// LoginPath is where a logged-out user is sent.
	LoginPath = "/login"
)

func (s *Store) IsAuthenticated() bool { return s.authenticated.Load() }

// Restore loads the auth flag from the session slot.
func (s *Store) Restore(ctx context.Context) error {
	v, err := s.slot.Get(ctx, AuthStorageKey)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.authenticated.Store(false)
		return nil
	case err != nil:
		return fmt.Errorf("restore session: %w", err)
	}
	s.authenticated.Store(v == "true")
	return nil
}

func (s *Store) Login(ctx context.Context) error {
	if err := s.slot.Set(ctx, AuthStorageKey, "true"); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.authenticated.Store(true)
	s.log.Info("login")
	s.publish(EventLogin, "")
	return nil
}

// Logout clears the flag and returns the path the caller should navigate to.
func (s *Store) Logout(ctx context.Context) (string, error) {
	if err := s.slot.Delete(ctx, AuthStorageKey); err != nil {
		return "", fmt.Errorf("clear session: %w", err)
	}
	s.authenticated.Store(false)
	s.log.Info("logout")
	s.publish(EventLogout, "")
	return LoginPath, nil
}

// memorySlot is the default session slot when nothing durable is wired.
type memorySlot struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemorySlot() *memorySlot { return &memorySlot{m: map[string]string{}} }

func (m *memorySlot) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.m[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (m *memorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.m[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memorySlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
	return nil
}
