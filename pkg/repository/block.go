package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// BlockKind distinguishes account blocks from domain blocks
type BlockKind string

// block kinds
const (
	BlockAccount BlockKind = "account"
	BlockDomain  BlockKind = "domain"
)

// Block is a blocked account or domain
type Block struct {
	Target    string    `db:"target"` // account id or domain name
	Kind      BlockKind `db:"kind"`
	Acct      string    `db:"acct"` // handle for account blocks, empty for domains
	CreatedAt time.Time `db:"created_at"`
}

// BlockRepository tracks accounts and domains the bot refuses to interact with
type BlockRepository struct {
	db *sqlx.DB
}

// NewBlockRepository creates a new block repository
func NewBlockRepository(db *sqlx.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// Add records a block, idempotent on repeats
func (r *BlockRepository) Add(ctx context.Context, target string, kind BlockKind, acct string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO blocks (target, kind, acct) VALUES (?, ?, ?)
			ON CONFLICT(target, kind) DO UPDATE SET acct = excluded.acct
		`
		_, err := r.db.ExecContext(ctx, query, target, kind, acct)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("add block: %w", err)}
		}
		return nil
	})
}

// Remove deletes a block, no-op when absent
func (r *BlockRepository) Remove(ctx context.Context, target string, kind BlockKind) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM blocks WHERE target = ? AND kind = ?", target, kind)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("remove block: %w", err)}
		}
		return nil
	})
}

// Contains reports whether the target is blocked
func (r *BlockRepository) Contains(ctx context.Context, target string, kind BlockKind) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM blocks WHERE target = ? AND kind = ?", target, kind)
	if err != nil {
		return false, fmt.Errorf("check block: %w", err)
	}
	return count > 0, nil
}

// List returns all blocks of the given kind ordered by target
func (r *BlockRepository) List(ctx context.Context, kind BlockKind) ([]Block, error) {
	var blocks []Block
	err := r.db.SelectContext(ctx, &blocks, "SELECT * FROM blocks WHERE kind = ? ORDER BY target", kind)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	return blocks, nil
}
