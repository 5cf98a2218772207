package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linguahub/moderation-service/internal/api/dto"
	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/repository"
	"github.com/linguahub/moderation-service/internal/service"
)

// UsersHandler exposes the admin user management surface.
type UsersHandler struct {
	directory *service.DirectoryService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directoryService *service.DirectoryService) *UsersHandler {
	return &UsersHandler{directory: directoryService}
}

// List handles GET /admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("role"); raw != "" {
		role, ok := domain.ParseRole(raw)
		if !ok {
			return fiber.NewError(http.StatusBadRequest, "invalid role filter")
		}
		filter.Role = &role
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseUserStatus(raw)
		if !ok {
			return fiber.NewError(http.StatusBadRequest, "invalid status filter")
		}
		filter.Status = &status
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	users, err := h.directory.ListUsers(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponses(users)})
}

// Create handles POST /admin/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.directory.CreateUser(c.Context(), actor, service.CreateUserInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		BaseLanguage:   req.BaseLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// ChangeRole handles POST /admin/users/:id/role.
func (h *UsersHandler) ChangeRole(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.directory.ChangeRole(c.Context(), actor, c.Params("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateStatus handles POST /admin/users/:id/status.
func (h *UsersHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.directory.UpdateStatus(c.Context(), actor, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
