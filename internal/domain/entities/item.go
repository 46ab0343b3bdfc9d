package entities

import (
	"time"
)

// ItemType distinguishes inline text snippets from uploaded files
type ItemType string

const (
	ItemTypeText ItemType = "text"
	ItemTypeFile ItemType = "file"
)

// SharedItem represents a single shared record visible to one network
type SharedItem struct {
	ID            string    `json:"id"`
	Type          ItemType  `json:"type"`
	Content       string    `json:"content"`
	FileName      string    `json:"fileName,omitempty"`
	FileSize      int64     `json:"fileSize,omitempty"`
	MimeType      string    `json:"mimeType,omitempty"`
	BlobURL       string    `json:"-"`
	NetworkID     string    `json:"networkId"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	DownloadCount int       `json:"downloadCount"`
}

// Live reports whether the item is still visible at the given instant.
// Read paths must apply this cutoff themselves; physical deletion by the
// sweeper is only a backstop.
func (i *SharedItem) Live(now time.Time) bool {
	return now.Before(i.ExpiresAt)
}

// NetworkUsage is the live footprint of one network, used for quota checks
// and for user-facing quota messages
type NetworkUsage struct {
	ItemCount  int
	TotalBytes int64
}
