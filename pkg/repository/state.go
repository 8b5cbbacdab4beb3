package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// well-known state keys
const (
	StateLastAutoPost     = "last_auto_post"    // RFC3339 time of the last auto-post
	StateLastNotification = "last_notification" // id of the newest handled notification
)

// StateRepository stores small runtime state values between sessions
type StateRepository struct {
	db *sqlx.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *sqlx.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves a state value, empty string when unset
func (r *StateRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM state WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get state: %w", err)
	}
	return value, nil
}

// Set stores a state value
func (r *StateRepository) Set(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO state (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`
		_, err := r.db.ExecContext(ctx, query, key, value)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set state: %w", err)}
		}
		return nil
	})
}
