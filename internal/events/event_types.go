package events

import (
	"time"

	"github.com/linguahub/moderation-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReportSubmitted         EventType = "report_submitted"
	EventReportStatusChanged     EventType = "report_status_changed"
	EventReportDeleted           EventType = "report_deleted"
	EventModerationActionApplied EventType = "moderation_action_applied"
	EventUserRoleChanged         EventType = "user_role_changed"
	EventUserStatusChanged       EventType = "user_status_changed"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReportSubmittedPayload payload.
type ReportSubmittedPayload struct {
	TicketID       string  `json:"ticket_id"`
	ReportedUserID string  `json:"reported_user_id"`
	ReasonPreview  string  `json:"reason_preview"`
	MessageID      *string `json:"message_id,omitempty"`
}

// ReportStatusChangedPayload payload.
type ReportStatusChangedPayload struct {
	TicketID  string              `json:"ticket_id"`
	OldStatus domain.ReportStatus `json:"old_status"`
	NewStatus domain.ReportStatus `json:"new_status"`
}

// ReportDeletedPayload payload.
type ReportDeletedPayload struct {
	TicketID string `json:"ticket_id"`
}

// ModerationActionAppliedPayload payload.
type ModerationActionAppliedPayload struct {
	TicketID       string                  `json:"ticket_id"`
	Action         domain.ModerationAction `json:"action"`
	ReportedUserID string                  `json:"reported_user_id"`
	UserStatus     domain.UserStatus       `json:"user_status"`
}

// UserRoleChangedPayload payload.
type UserRoleChangedPayload struct {
	UserID  string      `json:"user_id"`
	OldRole domain.Role `json:"old_role"`
	NewRole domain.Role `json:"new_role"`
}

// UserStatusChangedPayload payload.
type UserStatusChangedPayload struct {
	UserID    string             `json:"user_id"`
	OldStatus domain.UserStatus  `json:"old_status"`
	NewStatus domain.UserStatus  `json:"new_status"`
	Lockout   domain.LockoutState `json:"lockout"`
}
