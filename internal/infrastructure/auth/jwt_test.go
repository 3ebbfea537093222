package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasa-app/darasa/internal/shared/authorization"
)

func TestJWTGenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate("usr_abc123def456", authorization.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc123def456", claims.UserSID)
	assert.Equal(t, authorization.RoleStudent, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 15, 7)
	other := NewJWTService("secret-b", 15, 7)

	pair, err := svc.Generate("usr_abc123def456", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTVerifyGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Verify("hunter2", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}
