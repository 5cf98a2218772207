package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/events"
	"github.com/linguahub/moderation-service/internal/repository"
	apperrors "github.com/linguahub/moderation-service/pkg/util"
)

// ReportService accepts complaints from authenticated users.
type ReportService struct {
	reports    repository.ReportRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	validate   *validator.Validate
}

// NewReportService constructs the service.
func NewReportService(reports repository.ReportRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ReportService {
	return &ReportService{
		reports:    reports,
		users:      users,
		dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// SubmitReportInput describes a complaint payload.
type SubmitReportInput struct {
	ReportedUserID string `validate:"required"`
	Reason         string `validate:"required"`
	MessageID      *string
}

// Submit creates a ticket with status Open and the current timestamp. Repeated
// reports between the same pair are allowed.
func (s *ReportService) Submit(ctx context.Context, reporterID string, input SubmitReportInput) (*domain.ReportTicket, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.NewValidationError("reported user and reason are required", nil)
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("reason is required", nil)
	}
	if utf8.RuneCountInString(reason) > domain.ReasonMaxLen {
		return nil, apperrors.NewValidationError("reason exceeds maximum length",
			map[string]any{"max_length": domain.ReasonMaxLen})
	}
	if reporterID == input.ReportedUserID {
		return nil, apperrors.NewValidationError("cannot report yourself", nil)
	}

	if _, err := s.users.GetByID(ctx, input.ReportedUserID); err != nil {
		return nil, mapFetchErr(err, "reported user", input.ReportedUserID)
	}

	ticket := &domain.ReportTicket{
		ReporterID:     reporterID,
		ReportedUserID: input.ReportedUserID,
		Reason:         reason,
		MessageID:      input.MessageID,
		Status:         domain.ReportStatusOpen,
	}
	if err := s.reports.Create(ctx, ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("reported user", map[string]any{"id": input.ReportedUserID})
		}
		return nil, apperrors.NewStoreError(err)
	}

	s.publish(ctx, events.Event{
		Type:  events.EventReportSubmitted,
		Actor: events.Actor{UserID: reporterID},
		Payload: events.ReportSubmittedPayload{
			TicketID:       ticket.ID,
			ReportedUserID: ticket.ReportedUserID,
			ReasonPreview:  stringPreview(reason, 120),
			MessageID:      ticket.MessageID,
		},
	})
	return ticket, nil
}

func (s *ReportService) publish(ctx context.Context, event events.Event) {
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
