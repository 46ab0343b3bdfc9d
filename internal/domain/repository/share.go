package repository

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// ErrNotFound is returned when a record is absent or logically expired.
// Callers treat it as a normal negative result, not a backend fault.
var ErrNotFound = errors.New("not found or expired")

// ItemRepository defines the durable-store operations for shared items.
// Every read takes the caller's notion of now and must filter out expired
// rows itself.
type ItemRepository interface {
	// Insert stores a new item
	Insert(ctx context.Context, item *entities.SharedItem) error

	// ListLive returns up to limit live items for a network, newest first
	ListLive(ctx context.Context, networkID string, now time.Time, limit int) ([]*entities.SharedItem, error)

	// GetLive returns a live item by id, or ErrNotFound
	GetLive(ctx context.Context, id string, now time.Time) (*entities.SharedItem, error)

	// Delete removes an item by id; ErrNotFound when nothing matched
	Delete(ctx context.Context, id string) error

	// IncrementDownloads bumps the informational download counter
	IncrementDownloads(ctx context.Context, id string) error

	// LiveUsage returns the live item count and aggregate byte size for a network
	LiveUsage(ctx context.Context, networkID string, now time.Time) (*entities.NetworkUsage, error)

	// LiveStats aggregates share count, download count and stored bytes
	LiveStats(ctx context.Context, networkID string, now time.Time) (*entities.ShareStats, error)

	// DeleteExpired removes items whose expiry has passed
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// DeleteCreatedBefore removes items older than an absolute ceiling,
	// regardless of their expiry timestamp
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SessionRepository defines the durable-store operations for presence
// sessions.
type SessionRepository interface {
	// Upsert creates or refreshes the session for (networkId, clientIp)
	Upsert(ctx context.Context, session *entities.Session) error

	// CountActive counts sessions for a network seen since the cutoff
	CountActive(ctx context.Context, networkID string, cutoff time.Time) (int, error)

	// DeleteSeenBefore removes sessions last seen before the cutoff
	DeleteSeenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// BlobStore stores raw file payloads and returns a publicly fetchable URL.
// The durable store only ever holds that reference, never the bytes.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, body io.ReadSeeker) (string, error)
}
