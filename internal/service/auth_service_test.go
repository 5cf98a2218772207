package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/linguahub/moderation-service/internal/config"
	"github.com/linguahub/moderation-service/internal/domain"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}}
	return NewAuthService(cfg, users)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	user, token, _, err := svc.Register(context.Background(), "Abebe Kebede", "learner@test.example", "str0ngpass", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleLearner, user.Role)
	assert.NotEmpty(t, token)

	loggedIn, token, _, err := svc.Login(context.Background(), "learner@test.example", "str0ngpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, _, err := svc.Register(context.Background(), "A", "dup@test.example", "str0ngpass", nil, nil)
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), "B", "dup@test.example", "str0ngpass", nil, nil)
	assert.Equal(t, "CREDENTIAL_ERROR", errCode(t, err))
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, _, err := svc.Register(context.Background(), "A", "a@test.example", "str0ngpass", nil, nil)
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "a@test.example", "wrongpass")
	assert.Equal(t, "UNAUTHORIZED", errCode(t, err))
}

func TestLoginSuspendedAccountBarred(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	user, _, _, err := svc.Register(context.Background(), "A", "a@test.example", "str0ngpass", nil, nil)
	require.NoError(t, err)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	stored.Status = domain.UserStatusSuspended
	stored.Lockout = domain.IndefiniteLockout()
	require.NoError(t, users.Update(context.Background(), stored))

	_, _, _, err = svc.Login(context.Background(), "a@test.example", "str0ngpass")
	assert.Equal(t, "UNAUTHORIZED", errCode(t, err))
}
