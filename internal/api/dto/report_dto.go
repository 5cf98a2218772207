package dto

import (
	"time"

	"github.com/linguahub/moderation-service/internal/domain"
)

// SubmitReportRequest payload for filing a complaint.
type SubmitReportRequest struct {
	ReportedUserID string  `json:"reported_user_id"`
	Reason         string  `json:"reason"`
	MessageID      *string `json:"message_id,omitempty"`
}

// ReportResponse renders a ticket.
type ReportResponse struct {
	ID             string              `json:"id"`
	ReporterID     string              `json:"reporter_id"`
	ReportedUserID string              `json:"reported_user_id"`
	Reason         string              `json:"reason"`
	MessageID      *string             `json:"message_id,omitempty"`
	Status         domain.ReportStatus `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// ReportRowResponse renders an admin listing row.
type ReportRowResponse struct {
	ID               string              `json:"id"`
	ReporterName     string              `json:"reporter_name"`
	ReportedUserName string              `json:"reported_user_name"`
	Reason           string              `json:"reason"`
	Status           domain.ReportStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
}

// UpdateReportStatusRequest payload for direct status overrides.
type UpdateReportStatusRequest struct {
	Status string `json:"status"`
}

// TakeActionRequest payload for moderation decisions.
type TakeActionRequest struct {
	Action string `json:"action"`
}

// NewReportResponse maps a ticket.
func NewReportResponse(ticket *domain.ReportTicket) ReportResponse {
	return ReportResponse{
		ID:             ticket.ID,
		ReporterID:     ticket.ReporterID,
		ReportedUserID: ticket.ReportedUserID,
		Reason:         ticket.Reason,
		MessageID:      ticket.MessageID,
		Status:         ticket.Status,
		CreatedAt:      ticket.CreatedAt,
	}
}

// NewReportRowResponses maps listing rows.
func NewReportRowResponses(rows []domain.ReportRow) []ReportRowResponse {
	result := make([]ReportRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, ReportRowResponse{
			ID:               row.ID,
			ReporterName:     row.ReporterName,
			ReportedUserName: row.ReportedUserName,
			Reason:           row.Reason,
			Status:           row.Status,
			CreatedAt:        row.CreatedAt,
		})
	}
	return result
}
