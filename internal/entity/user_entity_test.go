package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	role, ok := ParseUserRole("ADMIN")
	assert.True(t, ok)
	assert.Equal(t, UserRoleAdmin, role)

	role, ok = ParseUserRole("USER")
	assert.True(t, ok)
	assert.Equal(t, UserRoleUser, role)

	_, ok = ParseUserRole("admin")
	assert.False(t, ok)

	_, ok = ParseUserRole("SUPERUSER")
	assert.False(t, ok)
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: UserRoleUser}).IsAdmin())
}
