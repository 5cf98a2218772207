package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguahub/moderation-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)

	token, exp, err := tm.GenerateToken("user-1", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.SubjectID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 5)
	other := NewTokenManager("secret-b", 5)

	token, _, err := tm.GenerateToken("user-1", domain.RoleLearner)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
