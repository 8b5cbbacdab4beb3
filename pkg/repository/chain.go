package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// Transition is a persisted markov chain edge: prefix window -> next word
type Transition struct {
	Prefix string `db:"prefix"`
	Word   string `db:"word"`
	Count  int    `db:"count"`
}

// Start is a persisted sentence-start prefix
type Start struct {
	Prefix string `db:"prefix"`
	Count  int    `db:"count"`
}

// ChainStats summarizes the persisted chain
type ChainStats struct {
	Prefixes    int
	Transitions int
	Starts      int
}

// ChainRepository persists the markov chain so the brain survives restarts
type ChainRepository struct {
	db *sqlx.DB
}

// NewChainRepository creates a new chain repository
func NewChainRepository(db *sqlx.DB) *ChainRepository {
	return &ChainRepository{db: db}
}

// ApplyDeltas merges in-memory count increments into the persisted chain
// in a single transaction. Called by the engine's Sync.
func (r *ChainRepository) ApplyDeltas(ctx context.Context, transitions []Transition, starts []Start) error {
	if len(transitions) == 0 && len(starts) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin chain tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		transQuery := `
			INSERT INTO chain_transitions (prefix, word, count) VALUES (?, ?, ?)
			ON CONFLICT(prefix, word) DO UPDATE SET count = count + excluded.count
		`
		for _, t := range transitions {
			if _, err := tx.ExecContext(ctx, transQuery, t.Prefix, t.Word, t.Count); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("upsert transition: %w", err)}
			}
		}

		startQuery := `
			INSERT INTO chain_starts (prefix, count) VALUES (?, ?)
			ON CONFLICT(prefix) DO UPDATE SET count = count + excluded.count
		`
		for _, s := range starts {
			if _, err := tx.ExecContext(ctx, startQuery, s.Prefix, s.Count); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("upsert start: %w", err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit chain tx: %w", err)}
		}
		return nil
	})
}

// LoadTransitions returns the full persisted transition set
func (r *ChainRepository) LoadTransitions(ctx context.Context) ([]Transition, error) {
	var transitions []Transition
	err := r.db.SelectContext(ctx, &transitions, "SELECT * FROM chain_transitions")
	if err != nil {
		return nil, fmt.Errorf("load transitions: %w", err)
	}
	return transitions, nil
}

// LoadStarts returns the full persisted start set
func (r *ChainRepository) LoadStarts(ctx context.Context) ([]Start, error) {
	var starts []Start
	err := r.db.SelectContext(ctx, &starts, "SELECT * FROM chain_starts")
	if err != nil {
		return nil, fmt.Errorf("load starts: %w", err)
	}
	return starts, nil
}

// Stats returns summary counters for the persisted chain
func (r *ChainRepository) Stats(ctx context.Context) (ChainStats, error) {
	var stats ChainStats
	if err := r.db.GetContext(ctx, &stats.Prefixes, "SELECT COUNT(DISTINCT prefix) FROM chain_transitions"); err != nil {
		return stats, fmt.Errorf("count prefixes: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.Transitions, "SELECT COUNT(*) FROM chain_transitions"); err != nil {
		return stats, fmt.Errorf("count transitions: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.Starts, "SELECT COUNT(*) FROM chain_starts"); err != nil {
		return stats, fmt.Errorf("count starts: %w", err)
	}
	return stats, nil
}
