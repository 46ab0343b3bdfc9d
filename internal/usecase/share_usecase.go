package usecase

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
	"github.com/lanshare/lanshare/pkg/validation"
)

// ShareUseCase implements the item lifecycle: quota-checked creation with
// a fixed expiry, expiry-filtered reads, deletion and download tracking.
//
// The quota check and the insert are two separate store calls; concurrent
// writers from the same network can transiently overshoot the ceilings.
// That race is accepted.
type ShareUseCase struct {
	items    repository.ItemRepository
	sessions repository.SessionRepository
	blobs    repository.BlobStore
	now      func() time.Time
}

// NewShareUseCase creates a new share use case
func NewShareUseCase(items repository.ItemRepository, sessions repository.SessionRepository, blobs repository.BlobStore) *ShareUseCase {
	return &ShareUseCase{
		items:    items,
		sessions: sessions,
		blobs:    blobs,
		now:      time.Now,
	}
}

// CreateText admits a sanitized text snippet under the item-count quota.
func (u *ShareUseCase) CreateText(ctx context.Context, networkID string, content string) (*entities.SharedItem, error) {
	content = validation.SanitizeText(content)
	if content == "" {
		return nil, validationErrorf("content required")
	}
	if utf8.RuneCountInString(content) > MaxTextLength {
		return nil, validationErrorf("text content too long (max %d characters)", MaxTextLength)
	}

	now := u.now()
	usage, err := u.items.LiveUsage(ctx, networkID, now)
	if err != nil {
		return nil, err
	}
	if usage.ItemCount >= MaxItemsPerNetwork {
		return nil, &QuotaError{
			Usage: *usage,
			msg:   fmt.Sprintf("network item limit reached (%d items max)", MaxItemsPerNetwork),
		}
	}

	item := &entities.SharedItem{
		ID:        uuid.NewString(),
		Type:      entities.ItemTypeText,
		Content:   content,
		NetworkID: networkID,
		CreatedAt: now,
		ExpiresAt: now.Add(ItemTTL),
	}
	if err := u.items.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// CreateFile validates an upload, stores the payload in the blob store and
// admits the item under both the count and byte-size quotas.
func (u *ShareUseCase) CreateFile(ctx context.Context, networkID string, fileName string, mimeType string, size int64, body io.ReadSeeker) (*entities.SharedItem, error) {
	if err := validation.CheckFile(fileName, mimeType, size, MaxFileSize, AllowedMimeTypes); err != nil {
		return nil, &ValidationError{msg: err.Error()}
	}

	now := u.now()
	usage, err := u.items.LiveUsage(ctx, networkID, now)
	if err != nil {
		return nil, err
	}
	if usage.ItemCount >= MaxItemsPerNetwork {
		return nil, &QuotaError{
			Usage: *usage,
			msg:   fmt.Sprintf("network item limit reached (%d items max)", MaxItemsPerNetwork),
		}
	}
	if usage.TotalBytes+size >= MaxNetworkStorage {
		return nil, &QuotaError{
			Usage: *usage,
			msg: fmt.Sprintf("network storage limit would be exceeded (current %s, limit %s)",
				humanize.IBytes(uint64(usage.TotalBytes)), humanize.IBytes(uint64(MaxNetworkStorage))),
		}
	}

	url, err := u.blobs.Put(ctx, blobKey(networkID, fileName, now), mimeType, body)
	if err != nil {
		return nil, err
	}

	item := &entities.SharedItem{
		ID:        uuid.NewString(),
		Type:      entities.ItemTypeFile,
		Content:   url,
		FileName:  fileName,
		FileSize:  size,
		MimeType:  mimeType,
		BlobURL:   url,
		NetworkID: networkID,
		CreatedAt: now,
		ExpiresAt: now.Add(ItemTTL),
	}
	if err := u.items.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the live items for a network, newest first.
func (u *ShareUseCase) List(ctx context.Context, networkID string) ([]*entities.SharedItem, error) {
	return u.items.ListLive(ctx, networkID, u.now(), ListLimit)
}

// Delete removes an item by id.
func (u *ShareUseCase) Delete(ctx context.Context, id string) error {
	return u.items.Delete(ctx, id)
}

// TrackDownload bumps the informational download counter.
func (u *ShareUseCase) TrackDownload(ctx context.Context, id string) error {
	return u.items.IncrementDownloads(ctx, id)
}

// DownloadURL returns the blob URL of a live file item.
func (u *ShareUseCase) DownloadURL(ctx context.Context, id string) (string, error) {
	item, err := u.items.GetLive(ctx, id, u.now())
	if err != nil {
		return "", err
	}
	if item.Type != entities.ItemTypeFile || item.BlobURL == "" {
		return "", repository.ErrNotFound
	}
	return item.BlobURL, nil
}

// PreviewURL returns the blob URL of a live image item.
func (u *ShareUseCase) PreviewURL(ctx context.Context, id string) (string, error) {
	item, err := u.items.GetLive(ctx, id, u.now())
	if err != nil {
		return "", err
	}
	if item.Type != entities.ItemTypeFile || item.BlobURL == "" {
		return "", repository.ErrNotFound
	}
	if !strings.HasPrefix(item.MimeType, "image/") {
		return "", validationErrorf("preview not available for this file type")
	}
	return item.BlobURL, nil
}

// Stats aggregates live share activity and connected users for a network.
func (u *ShareUseCase) Stats(ctx context.Context, networkID string) (*entities.ShareStats, error) {
	now := u.now()
	stats, err := u.items.LiveStats(ctx, networkID, now)
	if err != nil {
		return nil, err
	}
	active, err := u.sessions.CountActive(ctx, networkID, now.Add(-SessionActiveWindow))
	if err != nil {
		return nil, err
	}
	stats.ActiveUsers = active
	return stats, nil
}

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// blobKey namespaces uploads per network and keeps names unique without
// leaking the full network identity.
func blobKey(networkID string, fileName string, now time.Time) string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = suffixCharset[rand.Intn(len(suffixCharset))]
	}
	return fmt.Sprintf("%s/%d_%s_%s", networkID[:8], now.UnixMilli(), suffix, fileName)
}
