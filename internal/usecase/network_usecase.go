package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
)

// NetworkUseCase groups clients on the same subnet under one opaque
// identity and tracks their presence sessions.
type NetworkUseCase struct {
	sessions repository.SessionRepository
	now      func() time.Time
}

// NewNetworkUseCase creates a new network use case
func NewNetworkUseCase(sessions repository.SessionRepository) *NetworkUseCase {
	return &NetworkUseCase{
		sessions: sessions,
		now:      time.Now,
	}
}

// DeriveNetworkID maps a client address to its network identity. IPv4
// addresses group by /24 subnet (first three octets); anything else is
// keyed on the address with its trailing segment removed, or the whole
// address when no separator is present. The digest is one-way and
// fixed-length, so the identity reveals nothing about the subnet itself.
func DeriveNetworkID(addr string) string {
	var base string
	if parts := strings.Split(addr, "."); len(parts) == 4 {
		base = strings.Join(parts[:3], ".")
	} else if idx := strings.LastIndex(addr, ":"); idx > 0 {
		base = addr[:idx]
	} else {
		base = addr
	}
	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])
}

// Resolve derives the caller's network identity, refreshes its presence
// session, reclaims sessions past the active window and counts the
// remaining connected users.
func (u *NetworkUseCase) Resolve(ctx context.Context, clientIP string, userAgent string) (*entities.NetworkInfo, error) {
	now := u.now()
	networkID := DeriveNetworkID(clientIP)

	session := &entities.Session{
		NetworkID: networkID,
		ClientIP:  clientIP,
		UserAgent: userAgent,
		LastSeen:  now,
	}
	if err := u.sessions.Upsert(ctx, session); err != nil {
		return nil, err
	}

	cutoff := now.Add(-SessionActiveWindow)
	if _, err := u.sessions.DeleteSeenBefore(ctx, cutoff); err != nil {
		return nil, err
	}

	connected, err := u.sessions.CountActive(ctx, networkID, cutoff)
	if err != nil {
		return nil, err
	}

	return &entities.NetworkInfo{
		NetworkID:      networkID,
		ConnectedUsers: connected,
		ClientIP:       clientIP,
		Timestamp:      now,
	}, nil
}
