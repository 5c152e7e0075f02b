package app

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist for the
// requesting owner.
var ErrNotFound = errors.New("not found")

// ErrStoreUnavailable wraps backend failures. Writes are never retried here;
// the failure surfaces to the caller and stored state is left untouched.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrEmailTaken is returned when registering an email that already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

// EventStore persists journeys, every operation scoped to the owning user.
type EventStore interface {
	// ListEvents returns all journeys owned by userID, ordered by day of
	// week then start time.
	ListEvents(ctx context.Context, userID string) ([]Event, error)
	// GetEvent returns one journey by id, or ErrNotFound.
	GetEvent(ctx context.Context, userID, id string) (*Event, error)
	// CreateEvent inserts a journey and returns its new id.
	CreateEvent(ctx context.Context, ev *Event) (string, error)
	// ReplaceEvent overwrites an existing journey whole, or ErrNotFound.
	ReplaceEvent(ctx context.Context, id string, ev *Event) error
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// UpsertGoogleUser finds or creates the account for a Google subject
	// and returns it.
	UpsertGoogleUser(ctx context.Context, sub, email string) (*User, error)
}
