package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session key not found")

// SessionRepository is a durable string slot store keyed by name.
type SessionRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
