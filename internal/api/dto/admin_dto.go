package dto

import (
	"time"

	"github.com/linguahub/moderation-service/internal/domain"
)

// CreateUserRequest payload for admin account creation.
type CreateUserRequest struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
	BaseLanguage   *string `json:"base_language,omitempty"`
	TargetLanguage *string `json:"target_language,omitempty"`
}

// ChangeRoleRequest payload for promotion/demotion.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserStatusRequest payload for user governance.
type UpdateUserStatusRequest struct {
	Status string `json:"status"`
}

// UserResponse renders a directory entry.
type UserResponse struct {
	ID             string              `json:"id"`
	FullName       string              `json:"full_name"`
	Email          string              `json:"email"`
	Role           domain.Role         `json:"role"`
	Status         domain.UserStatus   `json:"status"`
	Lockout        domain.LockoutState `json:"lockout"`
	LockoutUntil   *time.Time          `json:"lockout_until,omitempty"`
	BaseLanguage   *string             `json:"base_language,omitempty"`
	TargetLanguage *string             `json:"target_language,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// AuditEntryResponse renders an audit log entry.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	AdminEmail string    `json:"admin_email"`
	Action     string    `json:"action"`
	TargetUser string    `json:"target_user"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewUserResponse maps a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		FullName:       user.FullName,
		Email:          user.Email,
		Role:           user.Role,
		Status:         user.Status,
		Lockout:        user.Lockout.State,
		LockoutUntil:   user.Lockout.Until,
		BaseLanguage:   user.BaseLanguage,
		TargetLanguage: user.TargetLanguage,
		CreatedAt:      user.CreatedAt,
	}
}

// NewUserResponses maps directory entries.
func NewUserResponses(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, NewUserResponse(&users[i]))
	}
	return result
}

// NewAuditEntryResponses maps audit entries.
func NewAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	result := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, AuditEntryResponse{
			ID:         entry.ID,
			AdminEmail: entry.AdminEmail,
			Action:     entry.Action,
			TargetUser: entry.TargetUser,
			Details:    entry.Details,
			Timestamp:  entry.Timestamp,
		})
	}
	return result
}
