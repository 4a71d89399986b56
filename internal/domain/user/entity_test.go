package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Maria", "maria@example.com", "secret123", RoleSalesRep)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, StatusActive, u.Status)
	assert.NotEqual(t, "secret123", u.Password, "a senha deve ser armazenada com hash")
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("errada"))
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "maria@example.com", "secret123", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Maria", "", "secret123", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("Maria", "maria@example.com", "123", RoleStaff)
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = NewUser("Maria", "maria@example.com", "secret123", Role("SUPERUSER"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleSalesRep, RoleInventoryController, RoleStaff} {
		assert.True(t, ValidRole(r), string(r))
	}
	assert.False(t, ValidRole(Role("root")))
}
