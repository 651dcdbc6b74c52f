package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileSeedsMissingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := loadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.CheckSubscription)
	assert.Equal(t, "data/scammers_db.json", cfg.DatabasePath)

	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults are written back to disk")
}

func TestLoadFileMergesPartialConfigOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	partial := `{
		"roles": {"owner_id": 42},
		"admin_channel_id": "555"
	}`
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))

	cfg, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Roles.OwnerID)
	assert.Equal(t, "555", cfg.AdminChannelID)
	assert.True(t, cfg.CheckSubscription, "unset keys fall back to defaults")
	assert.Equal(t, "data/scammers_db.json", cfg.DatabasePath)
	assert.NotNil(t, cfg.Images)
	assert.NotNil(t, cfg.Roles.Admins)
	assert.NotNil(t, cfg.Roles.SpecialAdmins)
}

func TestLoadFileKeepsRoleAssignments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"roles": {
			"owner_id": 1,
			"special_admins": [222],
			"admins": [111, 333]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := loadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{222}, cfg.Roles.SpecialAdmins)
	assert.Equal(t, []int64{111, 333}, cfg.Roles.Admins)
}

func TestLoadFileRejectsCorruptConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := loadFile(path)
	assert.Error(t, err)
}
