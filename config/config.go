package config

import (
	"fmt"
	"log"
	"os"
	"scambase-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath is the config file location relative to the working directory.
const DefaultPath = "config.json"

// Load loads the configuration: secrets from the environment (optionally via
// a .env file) and everything else from the JSON config file merged over the
// built-in defaults, so a partially-specified file remains valid.
//
// A missing config file is seeded with the defaults. An unparsable file is a
// hard error: starting with an empty configuration would silently drop every
// administrator, so the process must not come up.
func Load(path string) (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.BotToken = token
	cfg.AppID = appID
	cfg.LogChannelID = logChannelID
	return cfg, nil
}

// loadFile reads the config file at path merged over the defaults.
func loadFile(path string) (*model.Config, error) {
	defaults := model.DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Config file not found at %s, creating it with defaults.", path)
		if err := model.SaveConfig(defaults, path); err != nil {
			return nil, fmt.Errorf("error creating default config file %s: %w", path, err)
		}
		return defaults, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v, defaults)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", path, err)
	}

	if cfg.Images == nil {
		cfg.Images = defaults.Images
	}
	if cfg.Roles.SpecialAdmins == nil {
		cfg.Roles.SpecialAdmins = []int64{}
	}
	if cfg.Roles.Admins == nil {
		cfg.Roles.Admins = []int64{}
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, defaults *model.Config) {
	v.SetDefault("roles.owner_id", defaults.Roles.OwnerID)
	v.SetDefault("roles.special_admins", defaults.Roles.SpecialAdmins)
	v.SetDefault("roles.admins", defaults.Roles.Admins)
	v.SetDefault("check_subscription", defaults.CheckSubscription)
	v.SetDefault("images", defaults.Images)
	v.SetDefault("database_path", defaults.DatabasePath)
	v.SetDefault("audit_db_path", defaults.AuditDBPath)
}
