package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/domain/repository"
)

// ItemRepository is the sqlite-backed implementation of
// repository.ItemRepository.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Insert(ctx context.Context, item *entities.SharedItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shared_items
		 (id, type, content, file_name, file_size, mime_type, blob_url, network_id, created_at, expires_at, download_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, string(item.Type), item.Content, item.FileName, item.FileSize,
		item.MimeType, item.BlobURL, item.NetworkID,
		item.CreatedAt.Unix(), item.ExpiresAt.Unix(), item.DownloadCount,
	)
	return err
}

const itemColumns = `id, type, content, file_name, file_size, mime_type, blob_url, network_id, created_at, expires_at, download_count`

func scanItem(row interface{ Scan(...any) error }) (*entities.SharedItem, error) {
	var (
		item               entities.SharedItem
		itemType           string
		createdAt, expires int64
	)
	err := row.Scan(&item.ID, &itemType, &item.Content, &item.FileName,
		&item.FileSize, &item.MimeType, &item.BlobURL, &item.NetworkID,
		&createdAt, &expires, &item.DownloadCount)
	if err != nil {
		return nil, err
	}
	item.Type = entities.ItemType(itemType)
	item.CreatedAt = time.Unix(createdAt, 0).UTC()
	item.ExpiresAt = time.Unix(expires, 0).UTC()
	return &item, nil
}

func (r *ItemRepository) ListLive(ctx context.Context, networkID string, now time.Time, limit int) ([]*entities.SharedItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM shared_items
		 WHERE network_id = ? AND expires_at > ?
		 ORDER BY created_at DESC, id LIMIT ?`,
		networkID, now.Unix(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entities.SharedItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetLive(ctx context.Context, id string, now time.Time) (*entities.SharedItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM shared_items WHERE id = ? AND expires_at > ?`,
		id, now.Unix(),
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return item, err
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shared_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) IncrementDownloads(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE shared_items SET download_count = download_count + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) LiveUsage(ctx context.Context, networkID string, now time.Time) (*entities.NetworkUsage, error) {
	var usage entities.NetworkUsage
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM shared_items
		 WHERE network_id = ? AND expires_at > ?`,
		networkID, now.Unix(),
	).Scan(&usage.ItemCount, &usage.TotalBytes)
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

func (r *ItemRepository) LiveStats(ctx context.Context, networkID string, now time.Time) (*entities.ShareStats, error) {
	var stats entities.ShareStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(download_count), 0), COALESCE(SUM(file_size), 0)
		 FROM shared_items WHERE network_id = ? AND expires_at > ?`,
		networkID, now.Unix(),
	).Scan(&stats.TotalShares, &stats.TotalDownloads, &stats.StorageUsed)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ItemRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM shared_items WHERE expires_at < ?`, now.Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *ItemRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM shared_items WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
