package utils

import (
	"scambase-bot/model"
	"strconv"
)

// Role is the closed set of permission levels, totally ordered.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
	RoleSpecialAdmin
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleSpecialAdmin:
		return "special admin"
	case RoleAdmin:
		return "admin"
	default:
		return "user"
	}
}

// RoleOf resolves the role of an identity against the configured role sets.
// Identities that do not parse as numeric IDs are plain users.
func RoleOf(roles model.RoleConfig, identity string) Role {
	id, err := strconv.ParseInt(identity, 10, 64)
	if err != nil {
		return RoleUser
	}
	switch {
	case id == roles.OwnerID && roles.OwnerID != 0:
		return RoleOwner
	case containsInt64(roles.SpecialAdmins, id):
		return RoleSpecialAdmin
	case containsInt64(roles.Admins, id):
		return RoleAdmin
	default:
		return RoleUser
	}
}

// HasPermission reports whether identity holds at least the required role.
func HasPermission(roles model.RoleConfig, identity string, required Role) bool {
	return RoleOf(roles, identity) >= required
}

// IsAdmin reports whether identity is an administrator of any rank.
func IsAdmin(roles model.RoleConfig, identity string) bool {
	return RoleOf(roles, identity) >= RoleAdmin
}

// CanAddScammer decides whether identity may register a scammer from the
// given channel. The owner may add from anywhere; every other admin rank is
// restricted to the configured admin channel. Plain users may never add.
func CanAddScammer(roles model.RoleConfig, identity, channelID, adminChannelID string) bool {
	role := RoleOf(roles, identity)
	if role == RoleOwner {
		return true
	}
	if adminChannelID != "" && channelID == adminChannelID {
		return role >= RoleAdmin
	}
	return false
}

func containsInt64(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
