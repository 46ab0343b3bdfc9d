package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lanshare/lanshare/internal/domain/entities"
)

// SessionRepository is the sqlite-backed implementation of
// repository.SessionRepository.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Upsert(ctx context.Context, session *entities.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_sessions (network_id, client_ip, user_agent, last_seen)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(network_id, client_ip)
		 DO UPDATE SET user_agent = excluded.user_agent, last_seen = excluded.last_seen`,
		session.NetworkID, session.ClientIP, session.UserAgent, session.LastSeen.Unix(),
	)
	return err
}

func (r *SessionRepository) CountActive(ctx context.Context, networkID string, cutoff time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_sessions WHERE network_id = ? AND last_seen >= ?`,
		networkID, cutoff.Unix(),
	).Scan(&count)
	return count, err
}

func (r *SessionRepository) DeleteSeenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM user_sessions WHERE last_seen < ?`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
