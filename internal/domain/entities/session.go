package entities

import (
	"time"
)

// Session is an ephemeral presence record, not a user account. One row
// exists per (networkId, clientIp) pair and is refreshed on every
// identity resolution.
type Session struct {
	NetworkID string
	ClientIP  string
	UserAgent string
	LastSeen  time.Time
}

// Active reports whether the session counts toward connected users.
func (s *Session) Active(now time.Time, window time.Duration) bool {
	return now.Sub(s.LastSeen) < window
}

// NetworkInfo is the result of resolving a client address to its network
// identity.
type NetworkInfo struct {
	NetworkID      string    `json:"networkId"`
	ConnectedUsers int       `json:"connectedUsers"`
	ClientIP       string    `json:"clientIp"`
	Timestamp      time.Time `json:"timestamp"`
}

// ShareStats aggregates live activity for one network.
type ShareStats struct {
	TotalShares    int   `json:"totalShares"`
	TotalDownloads int   `json:"totalDownloads"`
	StorageUsed    int64 `json:"storageUsed"`
	ActiveUsers    int   `json:"activeUsers"`
}

// CleanupStats reports how many records a sweep removed, per category.
type CleanupStats struct {
	ExpiredItems  int64 `json:"expiredItems"`
	StaleSessions int64 `json:"oldSessions"`
	VeryOldItems  int64 `json:"veryOldItems"`
}
