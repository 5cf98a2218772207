package domain

import (
	"strings"
	"time"
)

// Role enumerates platform roles. Role assignment is single-valued: changing
// a role replaces the previous one wholesale.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleLanguageExpert Role = "LANGUAGE_EXPERT"
	RoleLearner        Role = "LEARNER"
)

// Roles lists every assignable role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleLanguageExpert, RoleLearner}
}

// ParseRole normalizes and validates a caller-supplied role name.
func ParseRole(raw string) (Role, bool) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate == "LANGUAGEEXPERT" {
		candidate = RoleLanguageExpert
	}
	switch candidate {
	case RoleAdmin, RoleLanguageExpert, RoleLearner:
		return candidate, true
	}
	return "", false
}

// UserStatus represents moderation states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusFlagged   UserStatus = "FLAGGED"
	UserStatusMuted     UserStatus = "MUTED"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// ParseUserStatus normalizes and validates a caller-supplied status.
func ParseUserStatus(raw string) (UserStatus, bool) {
	candidate := UserStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch candidate {
	case UserStatusActive, UserStatusFlagged, UserStatusMuted, UserStatusSuspended:
		return candidate, true
	}
	return "", false
}

// LockoutState discriminates the lockout tri-state.
type LockoutState string

const (
	LockoutNone       LockoutState = "NONE"
	LockoutUntil      LockoutState = "UNTIL"
	LockoutIndefinite LockoutState = "INDEFINITE"
)

// Lockout describes whether an account is barred from authenticating.
// Until is set only when State is LockoutUntil.
type Lockout struct {
	State LockoutState
	Until *time.Time
}

// NoLockout returns the cleared lockout value.
func NoLockout() Lockout {
	return Lockout{State: LockoutNone}
}

// IndefiniteLockout bars authentication until explicitly lifted.
func IndefiniteLockout() Lockout {
	return Lockout{State: LockoutIndefinite}
}

// TimedLockout bars authentication until the given instant.
func TimedLockout(until time.Time) Lockout {
	return Lockout{State: LockoutUntil, Until: &until}
}

// Barred reports whether authentication is refused at the given instant.
func (l Lockout) Barred(now time.Time) bool {
	switch l.State {
	case LockoutIndefinite:
		return true
	case LockoutUntil:
		return l.Until != nil && now.Before(*l.Until)
	}
	return false
}

// User is the domain model for platform accounts, learners and admins alike.
type User struct {
	ID             string
	FullName       string
	Email          string
	PasswordHash   string
	Role           Role
	Status         UserStatus
	Lockout        Lockout
	BaseLanguage   *string
	TargetLanguage *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
