package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguahub/moderation-service/internal/domain"
)

// ModerationStore persists a moderation decision: the ticket status and the
// reported user's status/lockout land together or not at all.
type ModerationStore interface {
	ApplyDecision(ctx context.Context, ticket *domain.ReportTicket, user *domain.User) error
}

type moderationStore struct {
	pool *pgxpool.Pool
}

// NewModerationStore builds a Postgres-backed store.
func NewModerationStore(pool *pgxpool.Pool) ModerationStore {
	return &moderationStore{pool: pool}
}

// ApplyDecision writes both records inside one transaction. Concurrent
// decisions on the same ticket are last-write-wins; there is no version
// check at the row level.
func (s *moderationStore) ApplyDecision(ctx context.Context, ticket *domain.ReportTicket, user *domain.User) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const userQuery = `
        UPDATE users SET status=$1, lockout_state=$2, lockout_until=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := tx.Exec(ctx, userQuery, user.Status, user.Lockout.State, user.Lockout.Until, user.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	const ticketQuery = `
        UPDATE report_tickets SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err = tx.Exec(ctx, ticketQuery, ticket.Status, ticket.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}
