package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/linguahub/moderation-service/internal/api/dto"
	"github.com/linguahub/moderation-service/internal/auth"
	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/repository"
	"github.com/linguahub/moderation-service/internal/service"
)

// ModerationHandler exposes the admin moderation surface.
type ModerationHandler struct {
	moderation *service.ModerationService
}

// NewModerationHandler constructs handler.
func NewModerationHandler(moderationService *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderationService}
}

func actorFromContext(c *fiber.Ctx) (service.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return service.Actor{}, fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return service.Actor{UserID: principal.User.ID, Email: principal.User.Email}, nil
}

// List handles GET /admin/reports.
func (h *ModerationHandler) List(c *fiber.Ctx) error {
	filter := repository.ReportFilter{
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, ok := domain.ParseReportStatus(part)
			if !ok {
				return fiber.NewError(http.StatusBadRequest, "invalid status filter")
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	rows, err := h.moderation.ListReports(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportRowResponses(rows)})
}

// Detail handles GET /admin/reports/:id.
func (h *ModerationHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.moderation.TicketDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"ticket":        dto.NewReportResponse(detail.Ticket),
			"reported_user": dto.NewUserResponse(detail.ReportedUser),
			"reporter_name": detail.ReporterName,
		},
	})
}

// TakeAction handles POST /admin/reports/:id/action.
func (h *ModerationHandler) TakeAction(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.TakeActionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	ticket, err := h.moderation.ApplyAction(c.Context(), actor, c.Params("id"), req.Action)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(ticket)})
}

// UpdateStatus handles POST /admin/reports/:id/status.
func (h *ModerationHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdateReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	ticket, err := h.moderation.UpdateTicketStatus(c.Context(), actor, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReportResponse(ticket)})
}

// Delete handles DELETE /admin/reports/:id.
func (h *ModerationHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.moderation.DeleteTicket(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AuditHistory handles GET /admin/audit.
func (h *ModerationHandler) AuditHistory(c *fiber.Ctx) error {
	entries, err := h.moderation.AuditTrail(c.Context(), c.QueryInt("limit", 100), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAuditEntryResponses(entries)})
}
