package database

import (
	"path/filepath"
	"testing"

	"scambase-bot/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := InitAuditDB(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddAndQueryAuditRecords(t *testing.T) {
	db := newTestDB(t)

	records := []model.AuditRecord{
		{Action: model.AuditActionAdd, ActorID: "1", TargetID: "123", Detail: "fake seller", ChannelID: "900", Timestamp: 100},
		{Action: model.AuditActionUpdate, ActorID: "1", TargetID: "123", Detail: "stole deposit", ChannelID: "900", Timestamp: 200},
		{Action: model.AuditActionRemove, ActorID: "2", TargetID: "456", ChannelID: "900", Timestamp: 300},
	}
	for _, r := range records {
		require.NoError(t, AddAuditRecord(db, r))
	}

	byTarget, err := GetAuditRecordsByTargetID(db, "123")
	require.NoError(t, err)
	require.Len(t, byTarget, 2)
	assert.Equal(t, model.AuditActionUpdate, byTarget[0].Action, "newest first")
	assert.Equal(t, model.AuditActionAdd, byTarget[1].Action)

	recent, err := GetRecentAuditRecords(db, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "456", recent[0].TargetID)
}

func TestAddAuditRecordDefaultsTimestamp(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, AddAuditRecord(db, model.AuditRecord{
		Action:   model.AuditActionErase,
		ActorID:  "1",
		TargetID: "123",
	}))

	records, err := GetAuditRecordsByTargetID(db, "123")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotZero(t, records[0].Timestamp)
}
