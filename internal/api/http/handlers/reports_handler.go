package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linguahub/moderation-service/internal/api/dto"
	"github.com/linguahub/moderation-service/internal/auth"
	"github.com/linguahub/moderation-service/internal/service"
)

// ReportsHandler lets authenticated users file complaints.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reportService}
}

// Submit handles POST /reports. The reporter is always the authenticated
// caller, never taken from the payload.
func (h *ReportsHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	ticket, err := h.reports.Submit(c.Context(), principal.User.ID, service.SubmitReportInput{
		ReportedUserID: req.ReportedUserID,
		Reason:         req.Reason,
		MessageID:      req.MessageID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewReportResponse(ticket),
	})
}
