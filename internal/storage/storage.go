package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/session"
)

// Storage holds live session state between requests. A missing session
// loads as (nil, nil), not an error.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Session operations
	SaveSession(ctx context.Context, id uuid.UUID, s *session.State) error
	LoadSession(ctx context.Context, id uuid.UUID) (*session.State, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
