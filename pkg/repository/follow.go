package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/VanillaDeath/Wilbot/pkg/domain"
)

// FollowRepository tracks accounts whose public posts the bot learns from
type FollowRepository struct {
	db *sqlx.DB
}

// followSQL represents a followed account row
type followSQL struct {
	AccountID string    `db:"account_id"`
	Acct      string    `db:"acct"`
	CreatedAt time.Time `db:"created_at"`
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *sqlx.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Add records a followed account. Idempotent, repeated follow commands
// from the same account leave a single row.
func (r *FollowRepository) Add(ctx context.Context, accountID, acct string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO follows (account_id, acct) VALUES (?, ?)
			ON CONFLICT(account_id) DO UPDATE SET acct = excluded.acct
		`
		_, err := r.db.ExecContext(ctx, query, accountID, acct)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add follow: %w", err)}
		}
		return nil
	})
}

// Remove deletes a followed account, no-op when absent
func (r *FollowRepository) Remove(ctx context.Context, accountID string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM follows WHERE account_id = ?", accountID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("remove follow: %w", err)}
		}
		return nil
	})
}

// Contains reports whether the account is in the followed set
func (r *FollowRepository) Contains(ctx context.Context, accountID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM follows WHERE account_id = ?", accountID)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return count > 0, nil
}

// List returns all followed accounts ordered by handle
func (r *FollowRepository) List(ctx context.Context) ([]domain.Account, error) {
	var rows []followSQL
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM follows ORDER BY acct")
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}

	accounts := make([]domain.Account, len(rows))
	for i, row := range rows {
		accounts[i] = domain.Account{ID: row.AccountID, Acct: row.Acct}
	}
	return accounts, nil
}

// Count returns the number of followed accounts
func (r *FollowRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM follows"); err != nil {
		return 0, fmt.Errorf("count follows: %w", err)
	}
	return count, nil
}
