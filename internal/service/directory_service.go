package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/linguahub/moderation-service/internal/auth"
	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/events"
	"github.com/linguahub/moderation-service/internal/repository"
	apperrors "github.com/linguahub/moderation-service/pkg/util"
)

// DirectoryService is the role/status façade over the user directory.
type DirectoryService struct {
	users      repository.UserRepository
	audit      *AuditService
	lockouts   LockoutCache
	dispatcher events.Dispatcher
	bcryptCost int
	validate   *validator.Validate
	logger     *zap.Logger
}

// DirectoryDependencies bundles collaborators for the directory façade.
type DirectoryDependencies struct {
	UserRepo   repository.UserRepository
	Audit      *AuditService
	Lockouts   LockoutCache
	Dispatcher events.Dispatcher
	BcryptCost int
	Logger     *zap.Logger
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		users:      deps.UserRepo,
		audit:      deps.Audit,
		lockouts:   deps.Lockouts,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
		validate:   validator.New(),
		logger:     deps.Logger,
	}
}

// ChangeRole replaces the user's role wholesale. An admin may not change
// their own role away from Admin.
func (s *DirectoryService) ChangeRole(ctx context.Context, actor Actor, userID, rawRole string) (*domain.User, error) {
	role, ok := domain.ParseRole(rawRole)
	if !ok {
		return nil, apperrors.NewInvalidRole(rawRole)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapFetchErr(err, "user", userID)
	}
	if actor.UserID == user.ID && user.Role == domain.RoleAdmin && role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("admins cannot remove their own admin role")
	}

	oldRole := user.Role
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, apperrors.NewStoreError(err)
	}

	details := fmt.Sprintf("%s -> %s", oldRole, role)
	if err := s.audit.Record(ctx, actor.Email, "Changed role", user.Email, details); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventUserRoleChanged,
		Actor: events.Actor{UserID: actor.UserID, Email: actor.Email},
		Payload: events.UserRoleChangedPayload{
			UserID:  user.ID,
			OldRole: oldRole,
			NewRole: role,
		},
	})
	return user, nil
}

// UpdateStatus sets the account status. Suspended forces an indefinite
// lockout; any other status clears the lockout.
func (s *DirectoryService) UpdateStatus(ctx context.Context, actor Actor, userID, rawStatus string) (*domain.User, error) {
	status, ok := domain.ParseUserStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid user status %q", rawStatus), map[string]any{"status": rawStatus})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapFetchErr(err, "user", userID)
	}

	oldStatus := user.Status
	user.Status = status
	if status == domain.UserStatusSuspended {
		user.Lockout = domain.IndefiniteLockout()
	} else {
		user.Lockout = domain.NoLockout()
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, apperrors.NewStoreError(err)
	}

	var cacheErr error
	if status == domain.UserStatusSuspended {
		cacheErr = s.lockouts.Bar(ctx, user.ID, nil)
	} else {
		cacheErr = s.lockouts.Clear(ctx, user.ID)
	}
	if cacheErr != nil {
		s.logger.Warn("lockout cache update failed", zap.String("user_id", user.ID), zap.Error(cacheErr))
	}

	details := fmt.Sprintf("%s -> %s", oldStatus, status)
	if err := s.audit.Record(ctx, actor.Email, "Updated user status", user.Email, details); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventUserStatusChanged,
		Actor: events.Actor{UserID: actor.UserID, Email: actor.Email},
		Payload: events.UserStatusChangedPayload{
			UserID:    user.ID,
			OldStatus: oldStatus,
			NewStatus: status,
			Lockout:   user.Lockout.State,
		},
	})
	return user, nil
}

// CreateUserInput describes an admin-created account.
type CreateUserInput struct {
	FullName       string `validate:"required,min=2,max=100"`
	Email          string `validate:"required,email"`
	Password       string `validate:"required,min=8"`
	Role           string `validate:"required"`
	BaseLanguage   *string
	TargetLanguage *string
}

// CreateUser creates an account with the given role and status Active.
// Constraint violations surface as a credential error carrying every
// sub-error, so the caller can render them all at once.
func (s *DirectoryService) CreateUser(ctx context.Context, actor Actor, input CreateUserInput) (*domain.User, error) {
	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return nil, apperrors.NewInvalidRole(input.Role)
	}

	if err := s.validate.Struct(input); err != nil {
		details := map[string]any{}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				details[fe.Field()] = fmt.Sprintf("failed %q constraint", fe.Tag())
			}
		}
		return nil, apperrors.NewCredentialError("account creation failed validation", details)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewCredentialError("email already registered", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewStoreError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		FullName:       input.FullName,
		Email:          input.Email,
		PasswordHash:   hash,
		Role:           role,
		Status:         domain.UserStatusActive,
		Lockout:        domain.NoLockout(),
		BaseLanguage:   input.BaseLanguage,
		TargetLanguage: input.TargetLanguage,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	if err := s.audit.Record(ctx, actor.Email, "Created user", user.Email, fmt.Sprintf("role %s", role)); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns directory entries for the admin dashboard.
func (s *DirectoryService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return users, nil
}

func (s *DirectoryService) publish(ctx context.Context, event events.Event) {
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
