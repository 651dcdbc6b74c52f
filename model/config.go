package model

import (
	"encoding/json"
	"os"
)

// Image slot names for the configured result images.
const (
	ImageScammerFound = "scammer_found"
	ImageUserClean    = "user_clean"
	ImageWarning      = "warning"
	ImageAdmin        = "admin"
)

// RoleConfig holds the three administrator identity sets. The sets are
// pairwise disjoint at all times; the owner never appears in either slice.
type RoleConfig struct {
	OwnerID       int64   `json:"owner_id" mapstructure:"owner_id"`
	SpecialAdmins []int64 `json:"special_admins" mapstructure:"special_admins"`
	Admins        []int64 `json:"admins" mapstructure:"admins"`
}

// Config stores the application configuration. Secrets come from the
// environment and are never written back to the config file.
type Config struct {
	BotToken     string `json:"-" mapstructure:"-"`
	AppID        string `json:"-" mapstructure:"-"`
	LogChannelID string `json:"-" mapstructure:"-"`

	Roles RoleConfig `json:"roles" mapstructure:"roles"`

	// AdminChannelID is the only channel where non-owner admins may add
	// scammers.
	AdminChannelID string `json:"admin_channel_id" mapstructure:"admin_channel_id"`
	GuildID        string `json:"guild_id" mapstructure:"guild_id"`

	// RequiredGuildID gates ordinary users: they must be a member of this
	// guild to use the bot. Empty disables the gate regardless of the toggle.
	RequiredGuildID   string `json:"required_guild_id" mapstructure:"required_guild_id"`
	CheckSubscription bool   `json:"check_subscription" mapstructure:"check_subscription"`

	// Images maps a result type to the image URL shown on its embed.
	Images map[string]string `json:"images" mapstructure:"images"`

	DatabasePath string `json:"database_path" mapstructure:"database_path"`
	AuditDBPath  string `json:"audit_db_path" mapstructure:"audit_db_path"`
}

// DefaultConfig returns the built-in configuration a partially-specified
// config file is merged over.
func DefaultConfig() *Config {
	return &Config{
		Roles: RoleConfig{
			SpecialAdmins: []int64{},
			Admins:        []int64{},
		},
		CheckSubscription: true,
		Images: map[string]string{
			ImageScammerFound: "",
			ImageUserClean:    "",
			ImageWarning:      "",
			ImageAdmin:        "",
		},
		DatabasePath: "data/scammers_db.json",
		AuditDBPath:  "data/audit.db",
	}
}

// SaveConfig writes the mutable part of the configuration back to disk.
func SaveConfig(config *Config, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(config)
}
