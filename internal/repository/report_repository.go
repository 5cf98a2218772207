package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguahub/moderation-service/internal/domain"
)

// ReportFilter captures admin listing parameters.
type ReportFilter struct {
	ReporterID     *string
	ReportedUserID *string
	Statuses       []domain.ReportStatus
	Limit          int
	Offset         int
}

// ReportRepository encapsulates report ticket persistence.
type ReportRepository interface {
	Create(ctx context.Context, ticket *domain.ReportTicket) error
	GetByID(ctx context.Context, id string) (*domain.ReportTicket, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReportStatus) error
	Delete(ctx context.Context, id string) error
	ListRows(ctx context.Context, filter ReportFilter) ([]domain.ReportRow, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository instantiates the repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) Create(ctx context.Context, ticket *domain.ReportTicket) error {
	const query = `
        INSERT INTO report_tickets (reporter_id, reported_user_id, reason, message_id, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.ReporterID,
		ticket.ReportedUserID,
		ticket.Reason,
		ticket.MessageID,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.ReportTicket, error) {
	const query = `
        SELECT id, reporter_id, reported_user_id, reason, message_id, status, created_at, updated_at
        FROM report_tickets WHERE id=$1`

	var ticket domain.ReportTicket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ReporterID,
		&ticket.ReportedUserID,
		&ticket.Reason,
		&ticket.MessageID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id string, status domain.ReportStatus) error {
	const query = `UPDATE report_tickets SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM report_tickets WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListRows joins tickets with reporter/reported display names, newest first.
// Each call runs a fresh query.
func (r *reportRepository) ListRows(ctx context.Context, filter ReportFilter) ([]domain.ReportRow, error) {
	base := `SELECT t.id, reporter.full_name, reported.full_name, t.reason, t.status, t.created_at
             FROM report_tickets t
             JOIN users reporter ON reporter.id = t.reporter_id
             JOIN users reported ON reported.id = t.reported_user_id`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ReporterID != nil {
		args = append(args, *filter.ReporterID)
		clauses = append(clauses, fmt.Sprintf("t.reporter_id=$%d", len(args)))
	}
	if filter.ReportedUserID != nil {
		args = append(args, *filter.ReportedUserID)
		clauses = append(clauses, fmt.Sprintf("t.reported_user_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("t.status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY t.created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ReportRow
	for rows.Next() {
		var row domain.ReportRow
		if err := rows.Scan(
			&row.ID,
			&row.ReporterName,
			&row.ReportedUserName,
			&row.Reason,
			&row.Status,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
