package domain

import (
	"strings"
	"time"
)

// ReportStatus enumerates lifecycle states for report tickets.
type ReportStatus string

const (
	ReportStatusOpen        ReportStatus = "OPEN"
	ReportStatusUnderReview ReportStatus = "UNDER_REVIEW"
	ReportStatusResolved    ReportStatus = "RESOLVED"
	ReportStatusDismissed   ReportStatus = "DISMISSED"
)

// ParseReportStatus normalizes and validates a caller-supplied status.
func ParseReportStatus(raw string) (ReportStatus, bool) {
	candidate := ReportStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate == "UNDERREVIEW" {
		candidate = ReportStatusUnderReview
	}
	switch candidate {
	case ReportStatusOpen, ReportStatusUnderReview, ReportStatusResolved, ReportStatusDismissed:
		return candidate, true
	}
	return "", false
}

// ReasonMaxLen bounds the free-text complaint reason.
const ReasonMaxLen = 500

// ReportTicket records one user's complaint against another.
type ReportTicket struct {
	ID             string
	ReporterID     string
	ReportedUserID string
	Reason         string
	MessageID      *string
	Status         ReportStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReportRow is the admin listing view: a ticket joined with the display
// names of the involved users.
type ReportRow struct {
	ID               string
	ReporterName     string
	ReportedUserName string
	Reason           string
	Status           ReportStatus
	CreatedAt        time.Time
}

// ModerationAction enumerates admin decisions applicable to a ticket.
type ModerationAction string

const (
	ActionMute        ModerationAction = "MUTE"
	ActionSuspend     ModerationAction = "SUSPEND"
	ActionResolveOnly ModerationAction = "RESOLVE_ONLY"
)

// ParseModerationAction normalizes and validates a caller-supplied action.
func ParseModerationAction(raw string) (ModerationAction, bool) {
	candidate := ModerationAction(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate == "RESOLVEONLY" {
		candidate = ActionResolveOnly
	}
	switch candidate {
	case ActionMute, ActionSuspend, ActionResolveOnly:
		return candidate, true
	}
	return "", false
}
