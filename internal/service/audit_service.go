package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/repository"
	apperrors "github.com/linguahub/moderation-service/pkg/util"
)

// AuditService appends immutable records of administrative actions. It is
// write-only from the engines' perspective and read-only from the façade's.
type AuditService struct {
	entries repository.AuditRepository
	logger  *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(entries repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{entries: entries, logger: logger}
}

// Record appends one entry with the current timestamp. The actor identity is
// always passed explicitly by the caller, never read from ambient state.
func (s *AuditService) Record(ctx context.Context, adminEmail, action, targetUser, details string) error {
	entry := &domain.AuditEntry{
		AdminEmail: adminEmail,
		Action:     action,
		TargetUser: targetUser,
		Details:    details,
	}
	if err := s.entries.Append(ctx, entry); err != nil {
		return apperrors.NewStoreError(err)
	}
	s.logger.Info("audit",
		zap.String("admin", adminEmail),
		zap.String("action", action),
		zap.String("target", targetUser),
	)
	return nil
}

// List returns entries newest first.
func (s *AuditService) List(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	entries, err := s.entries.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return entries, nil
}
