package console_test

import (
	"testing"

	"github.com/goliatone/go-console"
	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, console.IsValidRole(console.RoleAssistant))
	assert.True(t, console.IsValidRole(console.RoleDoctor))
	assert.True(t, console.IsValidRole(console.RoleAdmin))
	assert.False(t, console.IsValidRole("superuser"))
	assert.False(t, console.IsValidRole(""))
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     console.UserRole
		minRole  console.UserRole
		expected bool
	}{
		{"admin meets doctor", console.RoleAdmin, console.RoleDoctor, true},
		{"doctor meets doctor", console.RoleDoctor, console.RoleDoctor, true},
		{"assistant below doctor", console.RoleAssistant, console.RoleDoctor, false},
		{"doctor below admin", console.RoleDoctor, console.RoleAdmin, false},
		{"admin meets assistant", console.RoleAdmin, console.RoleAssistant, true},
		{"unknown role never passes", "superuser", console.RoleAssistant, false},
		{"unknown minimum never passes", console.RoleAdmin, "superuser", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, console.RoleAtLeast(tt.role, tt.minRole))
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := console.ParseRole("doctor")
	assert.True(t, ok)
	assert.Equal(t, console.RoleDoctor, role)

	_, ok = console.ParseRole("receptionist")
	assert.False(t, ok)
}

func TestGetAllRoles(t *testing.T) {
	roles := console.GetAllRoles()
	assert.Equal(t, []console.UserRole{console.RoleAssistant, console.RoleDoctor, console.RoleAdmin}, roles)
}
