package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
	"github.com/lanshare/lanshare/internal/usecase/mocks"
)

const testNetworkID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newShareUseCaseForTest(items *mocks.MockItemRepository, sessions *mocks.MockSessionRepository, blobs *mocks.MockBlobStore, now time.Time) *ShareUseCase {
	u := NewShareUseCase(items, sessions, blobs)
	u.now = func() time.Time { return now }
	return u
}

func TestShareUseCase_CreateText_Quota(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		liveCount   int
		wantAdmit   bool
	}{
		{name: "one below the ceiling is admitted", liveCount: MaxItemsPerNetwork - 1, wantAdmit: true},
		{name: "at the ceiling is rejected", liveCount: MaxItemsPerNetwork, wantAdmit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(mocks.MockItemRepository)
			items.On("LiveUsage", mock.Anything, testNetworkID, now).
				Return(&entities.NetworkUsage{ItemCount: tt.liveCount}, nil)
			if tt.wantAdmit {
				items.On("Insert", mock.Anything, mock.AnythingOfType("*entities.SharedItem")).Return(nil)
			}

			u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
			item, err := u.CreateText(context.Background(), testNetworkID, "hello world")

			if tt.wantAdmit {
				require.NoError(t, err)
				assert.Equal(t, entities.ItemTypeText, item.Type)
				assert.Equal(t, now, item.CreatedAt)
				assert.Equal(t, now.Add(ItemTTL), item.ExpiresAt)
				assert.True(t, item.ExpiresAt.After(item.CreatedAt))
			} else {
				var quotaErr *QuotaError
				require.ErrorAs(t, err, &quotaErr)
				assert.Equal(t, tt.liveCount, quotaErr.Usage.ItemCount)
			}
			items.AssertExpectations(t)
		})
	}
}

func TestShareUseCase_CreateText_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty after sanitization", content: "   <>   "},
		{name: "over the length limit", content: strings.Repeat("a", MaxTextLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(mocks.MockItemRepository)
			u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)

			_, err := u.CreateText(context.Background(), testNetworkID, tt.content)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			// Rejected before any store call
			items.AssertNotCalled(t, "LiveUsage", mock.Anything, mock.Anything, mock.Anything)
			items.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestShareUseCase_CreateText_Sanitizes(t *testing.T) {
	now := time.Now()
	items := new(mocks.MockItemRepository)
	items.On("LiveUsage", mock.Anything, testNetworkID, now).
		Return(&entities.NetworkUsage{}, nil)
	items.On("Insert", mock.Anything, mock.MatchedBy(func(item *entities.SharedItem) bool {
		return item.Content == "hello bworld/b"
	})).Return(nil)

	u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
	_, err := u.CreateText(context.Background(), testNetworkID, "  hello   <b>world</b>  ")

	require.NoError(t, err)
	items.AssertExpectations(t)
}

func TestShareUseCase_CreateFile_ByteQuota(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		totalBytes int64
		fileSize   int64
		wantAdmit  bool
	}{
		{name: "within the byte ceiling", totalBytes: 1 << 20, fileSize: 1 << 20, wantAdmit: true},
		{name: "two bytes past the ceiling", totalBytes: MaxNetworkStorage - 1, fileSize: 2, wantAdmit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(mocks.MockItemRepository)
			blobs := new(mocks.MockBlobStore)
			items.On("LiveUsage", mock.Anything, testNetworkID, now).
				Return(&entities.NetworkUsage{ItemCount: 1, TotalBytes: tt.totalBytes}, nil)
			if tt.wantAdmit {
				blobs.On("Put", mock.Anything, mock.AnythingOfType("string"), "image/png", mock.Anything).
					Return("http://blobs.local/lanshare/key", nil)
				items.On("Insert", mock.Anything, mock.MatchedBy(func(item *entities.SharedItem) bool {
					return item.Type == entities.ItemTypeFile &&
						item.BlobURL == "http://blobs.local/lanshare/key" &&
						item.FileSize == tt.fileSize
				})).Return(nil)
			}

			u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), blobs, now)
			_, err := u.CreateFile(context.Background(), testNetworkID, "photo.png", "image/png",
				tt.fileSize, strings.NewReader("x"))

			if tt.wantAdmit {
				require.NoError(t, err)
			} else {
				var quotaErr *QuotaError
				require.ErrorAs(t, err, &quotaErr)
				assert.Equal(t, tt.totalBytes, quotaErr.Usage.TotalBytes)
				blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			items.AssertExpectations(t)
			blobs.AssertExpectations(t)
		})
	}
}

func TestShareUseCase_CreateFile_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		fileName string
		mimeType string
		size     int64
	}{
		{name: "oversized file", fileName: "big.png", mimeType: "image/png", size: MaxFileSize + 1},
		{name: "disallowed type", fileName: "app.exe", mimeType: "application/x-msdownload", size: 100},
		{name: "suspicious file name", fileName: "a<b>.png", mimeType: "image/png", size: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := new(mocks.MockItemRepository)
			u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)

			_, err := u.CreateFile(context.Background(), testNetworkID, tt.fileName, tt.mimeType,
				tt.size, strings.NewReader("x"))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			items.AssertNotCalled(t, "LiveUsage", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestShareUseCase_DownloadURL(t *testing.T) {
	now := time.Now()

	t.Run("expired item is a negative result", func(t *testing.T) {
		items := new(mocks.MockItemRepository)
		items.On("GetLive", mock.Anything, "some-id", now).Return(nil, repository.ErrNotFound)

		u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
		_, err := u.DownloadURL(context.Background(), "some-id")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("text item has no download", func(t *testing.T) {
		items := new(mocks.MockItemRepository)
		items.On("GetLive", mock.Anything, "some-id", now).Return(&entities.SharedItem{
			ID:   "some-id",
			Type: entities.ItemTypeText,
		}, nil)

		u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
		_, err := u.DownloadURL(context.Background(), "some-id")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("live file item resolves to its blob URL", func(t *testing.T) {
		items := new(mocks.MockItemRepository)
		items.On("GetLive", mock.Anything, "some-id", now).Return(&entities.SharedItem{
			ID:      "some-id",
			Type:    entities.ItemTypeFile,
			BlobURL: "http://blobs.local/lanshare/key",
		}, nil)

		u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
		url, err := u.DownloadURL(context.Background(), "some-id")

		require.NoError(t, err)
		assert.Equal(t, "http://blobs.local/lanshare/key", url)
	})
}

func TestShareUseCase_PreviewURL_NonImage(t *testing.T) {
	now := time.Now()
	items := new(mocks.MockItemRepository)
	items.On("GetLive", mock.Anything, "some-id", now).Return(&entities.SharedItem{
		ID:       "some-id",
		Type:     entities.ItemTypeFile,
		MimeType: "application/pdf",
		BlobURL:  "http://blobs.local/lanshare/key",
	}, nil)

	u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
	_, err := u.PreviewURL(context.Background(), "some-id")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestShareUseCase_Stats(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := new(mocks.MockItemRepository)
	sessions := new(mocks.MockSessionRepository)
	items.On("LiveStats", mock.Anything, testNetworkID, now).Return(&entities.ShareStats{
		TotalShares:    3,
		TotalDownloads: 7,
		StorageUsed:    1024,
	}, nil)
	sessions.On("CountActive", mock.Anything, testNetworkID, now.Add(-SessionActiveWindow)).Return(2, nil)

	u := newShareUseCaseForTest(items, sessions, new(mocks.MockBlobStore), now)
	stats, err := u.Stats(context.Background(), testNetworkID)

	require.NoError(t, err)
	assert.Equal(t, &entities.ShareStats{
		TotalShares:    3,
		TotalDownloads: 7,
		StorageUsed:    1024,
		ActiveUsers:    2,
	}, stats)
}

func TestShareUseCase_BackendFailure(t *testing.T) {
	now := time.Now()
	backendErr := errors.New("datastore unavailable")
	items := new(mocks.MockItemRepository)
	items.On("LiveUsage", mock.Anything, testNetworkID, now).Return(nil, backendErr)

	u := newShareUseCaseForTest(items, new(mocks.MockSessionRepository), new(mocks.MockBlobStore), now)
	_, err := u.CreateText(context.Background(), testNetworkID, "hello")

	assert.ErrorIs(t, err, backendErr)
	var quotaErr *QuotaError
	assert.False(t, errors.As(err, &quotaErr))
}
