package utils

import (
	"testing"

	"scambase-bot/model"

	"github.com/stretchr/testify/assert"
)

func testRoles() model.RoleConfig {
	return model.RoleConfig{
		OwnerID:       1,
		SpecialAdmins: []int64{22},
		Admins:        []int64{333},
	}
}

func TestRoleOf(t *testing.T) {
	roles := testRoles()

	tests := []struct {
		name     string
		identity string
		want     Role
	}{
		{"owner", "1", RoleOwner},
		{"special admin", "22", RoleSpecialAdmin},
		{"admin", "333", RoleAdmin},
		{"plain user", "4444", RoleUser},
		{"non-numeric identity", "someuser", RoleUser},
		{"empty identity", "", RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleOf(roles, tt.identity))
		})
	}
}

func TestRoleOfZeroOwnerNeverMatches(t *testing.T) {
	roles := model.RoleConfig{}
	assert.Equal(t, RoleUser, RoleOf(roles, "0"))
}

func TestHasPermission(t *testing.T) {
	roles := testRoles()

	assert.True(t, HasPermission(roles, "1", RoleOwner))
	assert.True(t, HasPermission(roles, "1", RoleAdmin))
	assert.True(t, HasPermission(roles, "22", RoleSpecialAdmin))
	assert.False(t, HasPermission(roles, "22", RoleOwner))
	assert.True(t, HasPermission(roles, "333", RoleAdmin))
	assert.False(t, HasPermission(roles, "333", RoleSpecialAdmin))
	assert.True(t, HasPermission(roles, "4444", RoleUser))
	assert.False(t, HasPermission(roles, "4444", RoleAdmin))
}

func TestIsAdmin(t *testing.T) {
	roles := testRoles()

	assert.True(t, IsAdmin(roles, "1"))
	assert.True(t, IsAdmin(roles, "22"))
	assert.True(t, IsAdmin(roles, "333"))
	assert.False(t, IsAdmin(roles, "4444"))
}

func TestCanAddScammer(t *testing.T) {
	roles := testRoles()
	const adminChannel = "900"

	tests := []struct {
		name     string
		identity string
		channel  string
		want     bool
	}{
		{"owner in admin channel", "1", adminChannel, true},
		{"owner anywhere", "1", "123", true},
		{"special admin in admin channel", "22", adminChannel, true},
		{"special admin elsewhere", "22", "123", false},
		{"admin in admin channel", "333", adminChannel, true},
		{"admin elsewhere", "333", "123", false},
		{"user in admin channel", "4444", adminChannel, false},
		{"user elsewhere", "4444", "123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAddScammer(roles, tt.identity, tt.channel, adminChannel))
		})
	}
}

func TestCanAddScammerNoAdminChannelConfigured(t *testing.T) {
	roles := testRoles()

	assert.True(t, CanAddScammer(roles, "1", "123", ""), "the owner is never blocked")
	assert.False(t, CanAddScammer(roles, "333", "123", ""), "admins need a configured channel")
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "owner", RoleOwner.String())
	assert.Equal(t, "special admin", RoleSpecialAdmin.String())
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "user", RoleUser.String())
}
