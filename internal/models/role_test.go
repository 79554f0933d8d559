package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{"admin", RoleAdmin, true},
		{"nonadmin", RoleNonAdmin, true},
		{"empty", Role(""), false},
		{"wrong case", Role("Admin"), false},
		{"unknown", Role("moderator"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsValid())
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("nonadmin")
	require.NoError(t, err)
	assert.Equal(t, RoleNonAdmin, r)

	_, err = ParseRole("root")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")
}

func TestRole_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Role Role `json:"role"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"role":"admin"}`), &w))
	assert.Equal(t, RoleAdmin, w.Role)

	err := json.Unmarshal([]byte(`{"role":"superuser"}`), &w)
	require.Error(t, err)
}

func TestUser_IsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.False(t, (&User{Role: RoleNonAdmin}).IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
}
