package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguahub/moderation-service/internal/domain"
)

// AuditRepository stores immutable audit entries. Append and read only.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository builds the repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO audit_log (admin_email, action, target_user, details)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.AdminEmail,
		entry.Action,
		entry.TargetUser,
		entry.Details,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *auditRepository) List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, admin_email, action, target_user, details, created_at
        FROM audit_log ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.AdminEmail,
			&entry.Action,
			&entry.TargetUser,
			&entry.Details,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
