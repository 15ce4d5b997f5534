package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MySQLStore implements Store using MySQL, for deployments where several
// gateway instances share one session database.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates a MySQL session store on an existing connection.
func NewMySQLStore(db *sql.DB) (*MySQLStore, error) {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id VARCHAR(80) PRIMARY KEY,
		token TEXT NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		user_name VARCHAR(255) NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		avatar_url VARCHAR(512) NOT NULL DEFAULT '',
		balance INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		INDEX idx_sessions_expires_at (expires_at)
	)`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

// Create persists a new session.
func (s *MySQLStore) Create(ctx context.Context, sess *Session) error {
	query := `
		INSERT INTO sessions (id, token, user_id, user_name, user_email, avatar_url, balance, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		sess.ID, sess.Token,
		sess.User.ID, sess.User.Name, sess.User.Email, sess.User.AvatarURL, sess.User.VbucksBalance,
		sess.CreatedAt.UTC(), sess.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (s *MySQLStore) Get(ctx context.Context, id string) (*Session, error) {
	query := `
		SELECT id, token, user_id, user_name, user_email, avatar_url, balance, created_at, expires_at
		FROM sessions WHERE id = ? LIMIT 1`

	sess, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if sess.IsExpired() || sess.Token == "" {
		return nil, ErrNotFound
	}
	return sess, nil
}

// UpdateBalance overwrites the user's balance. A missing row is a no-op.
func (s *MySQLStore) UpdateBalance(ctx context.Context, id string, balance int) error {
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET balance = ? WHERE id = ?`, balance, id)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// Delete removes a session by ID.
func (s *MySQLStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes all expired sessions.
func (s *MySQLStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	removed, _ := res.RowsAffected()
	return removed, nil
}

// Close closes the database connection.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
