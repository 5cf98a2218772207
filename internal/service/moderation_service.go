package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/events"
	"github.com/linguahub/moderation-service/internal/repository"
	apperrors "github.com/linguahub/moderation-service/pkg/util"
)

// Actor identifies the acting admin. It is threaded explicitly into every
// audit-producing operation.
type Actor struct {
	UserID string
	Email  string
}

// LockoutCache mirrors lockout decisions into a fast store so suspensions
// take effect on live sessions immediately. Implemented by auth.LockoutCache.
type LockoutCache interface {
	Bar(ctx context.Context, userID string, until *time.Time) error
	Clear(ctx context.Context, userID string) error
}

// ModerationService applies admin decisions to report tickets and the users
// they reference. Every mutation is audited.
//
// Concurrent decisions against the same ticket are not guarded: the store is
// last-write-wins at the row level.
type ModerationService struct {
	reports    repository.ReportRepository
	users      repository.UserRepository
	store      repository.ModerationStore
	audit      *AuditService
	lockouts   LockoutCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ModerationDependencies bundles collaborators for the moderation engine.
type ModerationDependencies struct {
	ReportRepo repository.ReportRepository
	UserRepo   repository.UserRepository
	Store      repository.ModerationStore
	Audit      *AuditService
	Lockouts   LockoutCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewModerationService constructs the service.
func NewModerationService(deps ModerationDependencies) *ModerationService {
	return &ModerationService{
		reports:    deps.ReportRepo,
		users:      deps.UserRepo,
		store:      deps.Store,
		audit:      deps.Audit,
		lockouts:   deps.Lockouts,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ModerationDetail is the single-ticket admin view.
type ModerationDetail struct {
	Ticket       *domain.ReportTicket
	ReportedUser *domain.User
	ReporterName string
}

// ApplyAction applies an admin decision to a ticket and its reported user.
// Mute sets the user Muted; Suspend sets the user Suspended with an
// indefinite lockout; ResolveOnly touches only the ticket. The ticket always
// lands Resolved. Both writes happen in one transaction.
func (s *ModerationService) ApplyAction(ctx context.Context, actor Actor, ticketID, rawAction string) (*domain.ReportTicket, error) {
	action, ok := domain.ParseModerationAction(rawAction)
	if !ok {
		return nil, apperrors.NewInvalidAction(rawAction)
	}

	ticket, err := s.reports.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapFetchErr(err, "report ticket", ticketID)
	}
	user, err := s.users.GetByID(ctx, ticket.ReportedUserID)
	if err != nil {
		return nil, mapFetchErr(err, "reported user", ticket.ReportedUserID)
	}

	var auditAction string
	switch action {
	case domain.ActionMute:
		user.Status = domain.UserStatusMuted
		auditAction = "Muted user"
	case domain.ActionSuspend:
		user.Status = domain.UserStatusSuspended
		user.Lockout = domain.IndefiniteLockout()
		auditAction = "Suspended user"
	case domain.ActionResolveOnly:
		auditAction = "Resolved report"
	}
	ticket.Status = domain.ReportStatusResolved

	if err := s.store.ApplyDecision(ctx, ticket, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.NewStoreError(err)
	}

	if action == domain.ActionSuspend {
		if err := s.lockouts.Bar(ctx, user.ID, nil); err != nil {
			s.logger.Warn("lockout cache update failed", zap.String("user_id", user.ID), zap.Error(err))
		}
	}

	details := fmt.Sprintf("report %s: %s", ticket.ID, stringPreview(ticket.Reason, 120))
	if err := s.audit.Record(ctx, actor.Email, auditAction, user.Email, details); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventModerationActionApplied,
		Actor: events.Actor{UserID: actor.UserID, Email: actor.Email},
		Payload: events.ModerationActionAppliedPayload{
			TicketID:       ticket.ID,
			Action:         action,
			ReportedUserID: user.ID,
			UserStatus:     user.Status,
		},
	})
	return ticket, nil
}

// UpdateTicketStatus overrides the ticket status. Transitions are
// unrestricted; a Resolved ticket can be reopened.
func (s *ModerationService) UpdateTicketStatus(ctx context.Context, actor Actor, ticketID, rawStatus string) (*domain.ReportTicket, error) {
	status, ok := domain.ParseReportStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid report status %q", rawStatus), map[string]any{"status": rawStatus})
	}

	ticket, err := s.reports.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapFetchErr(err, "report ticket", ticketID)
	}

	oldStatus := ticket.Status
	if err := s.reports.UpdateStatus(ctx, ticketID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("report ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.NewStoreError(err)
	}
	ticket.Status = status

	details := fmt.Sprintf("report %s: %s -> %s", ticket.ID, oldStatus, status)
	if err := s.audit.Record(ctx, actor.Email, "Updated report status", ticket.ReportedUserID, details); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventReportStatusChanged,
		Actor: events.Actor{UserID: actor.UserID, Email: actor.Email},
		Payload: events.ReportStatusChangedPayload{
			TicketID:  ticket.ID,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, nil
}

// DeleteTicket permanently removes a ticket. Irreversible, and audited:
// destroying a complaint record is precisely what the audit trail is for.
func (s *ModerationService) DeleteTicket(ctx context.Context, actor Actor, ticketID string) error {
	ticket, err := s.reports.GetByID(ctx, ticketID)
	if err != nil {
		return mapFetchErr(err, "report ticket", ticketID)
	}

	if err := s.reports.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("report ticket", map[string]any{"ticket_id": ticketID})
		}
		return apperrors.NewStoreError(err)
	}

	details := fmt.Sprintf("report %s: %s", ticket.ID, stringPreview(ticket.Reason, 120))
	if err := s.audit.Record(ctx, actor.Email, "Deleted report ticket", ticket.ReportedUserID, details); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventReportDeleted,
		Actor:   events.Actor{UserID: actor.UserID, Email: actor.Email},
		Payload: events.ReportDeletedPayload{TicketID: ticket.ID},
	})
	return nil
}

// ListReports returns tickets joined with display names, newest first. Each
// call is a fresh query, not a live cursor.
func (s *ModerationService) ListReports(ctx context.Context, filter repository.ReportFilter) ([]domain.ReportRow, error) {
	rows, err := s.reports.ListRows(ctx, filter)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return rows, nil
}

// TicketDetail resolves a single ticket with its involved users.
func (s *ModerationService) TicketDetail(ctx context.Context, ticketID string) (*ModerationDetail, error) {
	ticket, err := s.reports.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapFetchErr(err, "report ticket", ticketID)
	}

	reported, err := s.users.GetByID(ctx, ticket.ReportedUserID)
	if err != nil {
		return nil, mapFetchErr(err, "reported user", ticket.ReportedUserID)
	}

	reporterName := "Unknown"
	if reporter, err := s.users.GetByID(ctx, ticket.ReporterID); err == nil {
		reporterName = reporter.FullName
	}

	return &ModerationDetail{
		Ticket:       ticket,
		ReportedUser: reported,
		ReporterName: reporterName,
	}, nil
}

// AuditTrail returns the audit log, newest first.
func (s *ModerationService) AuditTrail(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	return s.audit.List(ctx, limit, offset)
}

func (s *ModerationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func mapFetchErr(err error, resource, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return apperrors.NewStoreError(err)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
