package scam

import (
	"path/filepath"
	"testing"

	"scambase-bot/model"
	"scambase-bot/registry"
	"scambase-bot/resolver"
	"scambase-bot/utils/database"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	result resolver.Result
	err    error
}

func (s stubResolver) Resolve(raw string) (resolver.Result, error) {
	return s.result, s.err
}

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Open(filepath.Join(t.TempDir(), "db.json"), nil)
	require.NoError(t, err)
	return reg
}

func TestResolveTargetUsesDirectory(t *testing.T) {
	reg := newTestRegistry(t)
	res := stubResolver{result: resolver.Result{ID: "123", Handle: "someuser"}}

	userID, username := resolveTarget(res, reg, "<@123>")
	assert.Equal(t, "123", userID)
	assert.Equal(t, "someuser", username)
}

func TestResolveTargetFallsBackToRegistryHandle(t *testing.T) {
	reg := newTestRegistry(t)
	_, _, err := reg.AddOrMerge(registry.AddInput{
		UserID:   "123",
		Username: "badguy",
		Reason:   "fake seller",
	})
	require.NoError(t, err)

	res := stubResolver{err: resolver.ErrUnresolved}
	userID, username := resolveTarget(res, reg, "@badguy")
	assert.Equal(t, "123", userID)
	assert.Equal(t, "badguy", username)
}

func TestResolveTargetFallsBackToRawIdentifier(t *testing.T) {
	reg := newTestRegistry(t)
	res := stubResolver{err: resolver.ErrUnresolved}

	userID, username := resolveTarget(res, reg, "@unknownuser")
	assert.Equal(t, "unknownuser", userID)
	assert.Equal(t, "unknownuser", username)
}

func TestFindRecord(t *testing.T) {
	reg := newTestRegistry(t)
	_, _, err := reg.AddOrMerge(registry.AddInput{
		UserID:   "123",
		Username: "badguy",
		Reason:   "fake seller",
	})
	require.NoError(t, err)

	assert.NotNil(t, findRecord(reg, "123"))
	assert.NotNil(t, findRecord(reg, "@badguy"))
	assert.NotNil(t, findRecord(reg, "<@123>"))
	assert.Nil(t, findRecord(reg, "999"))
}

type stubBot struct {
	db *sqlx.DB
}

func (b stubBot) GetConfig() *model.Config       { return model.DefaultConfig() }
func (b stubBot) GetSession() *discordgo.Session { return nil }
func (b stubBot) GetAuditDB() *sqlx.DB           { return b.db }

func TestAuditTrailRoundTrip(t *testing.T) {
	db, err := database.InitAuditDB(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	b := stubBot{db: db}

	audit(b, model.AuditActionAdd, "1", "123", "fake seller", "900")
	audit(b, model.AuditActionRemove, "2", "123", "", "900")

	history := auditHistory(b, "123")
	assert.Contains(t, history, "add by 1")
	assert.Contains(t, history, "remove by 2")
	assert.Empty(t, auditHistory(b, "999"))
}

func TestAuditWithoutDatabaseIsNoOp(t *testing.T) {
	b := stubBot{}
	audit(b, model.AuditActionAdd, "1", "123", "fake seller", "900")
	assert.Empty(t, auditHistory(b, "123"))
}

func TestMessagePermalink(t *testing.T) {
	assert.Equal(t,
		"https://discord.com/channels/700/800/900",
		messagePermalink("700", "800", "900"))
	assert.Equal(t,
		"https://discord.com/channels/@me/800/900",
		messagePermalink("", "800", "900"),
		"DM interactions have no guild segment")
}

func TestDisplayHandle(t *testing.T) {
	assert.Equal(t, "@badguy", displayHandle("badguy"))
	assert.Equal(t, "@badguy", displayHandle("@badguy"))
	assert.Equal(t, "@unknown", displayHandle(""))
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "🇷🇺 Russia", countryName("RU"))
	assert.Equal(t, "XX", countryName("XX"), "unknown codes pass through")
}
