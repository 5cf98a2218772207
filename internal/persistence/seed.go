package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/linguahub/moderation-service/internal/auth"
	"github.com/linguahub/moderation-service/internal/config"
	"github.com/linguahub/moderation-service/internal/domain"
	"github.com/linguahub/moderation-service/internal/repository"
)

// Seed bootstraps the initial admin account, and sample accounts in
// development, so a fresh deployment has someone able to moderate.
func Seed(ctx context.Context, cfg config.Config, users repository.UserRepository, logger *zap.Logger) error {
	if !cfg.Seed.Enabled {
		return nil
	}
	if cfg.Seed.AdminPassword == "" {
		logger.Warn("SEED_ADMIN_PASSWORD not set; skipping seed")
		return nil
	}

	if err := seedUser(ctx, users, cfg.Auth.BcryptCost, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, domain.RoleAdmin, logger); err != nil {
		return err
	}

	if cfg.App.Env != "development" {
		return nil
	}
	if err := seedUser(ctx, users, cfg.Auth.BcryptCost, "Abebe Kebede", "learner@linguahub.example", cfg.Seed.AdminPassword, domain.RoleLearner, logger); err != nil {
		return err
	}
	return seedUser(ctx, users, cfg.Auth.BcryptCost, "Dr. Martha Smith", "expert@linguahub.example", cfg.Seed.AdminPassword, domain.RoleLanguageExpert, logger)
}

func seedUser(ctx context.Context, users repository.UserRepository, bcryptCost int, name, email, password string, role domain.Role, logger *zap.Logger) error {
	if _, err := users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}
	user := &domain.User{
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.UserStatusActive,
		Lockout:      domain.NoLockout(),
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}
	logger.Info("seeded account", zap.String("email", email), zap.String("role", string(role)))
	return nil
}
