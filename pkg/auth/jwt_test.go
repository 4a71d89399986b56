package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelo/inventario-api/internal/domain/user"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Maria", "maria@example.com", "secret123", user.RoleSalesRep)
	require.NoError(t, err)
	return u
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	svc, err := NewJWTService()
	require.NoError(t, err)

	u := newTestUser(t)
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, string(user.RoleSalesRep), claims.Role)
	assert.Equal(t, "inventario-api", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret-a")
	svcA, err := NewJWTService()
	require.NoError(t, err)

	token, err := svcA.GenerateToken(newTestUser(t))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "secret-b")
	svcB, err := NewJWTService()
	require.NoError(t, err)

	_, err = svcB.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
