package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"scambase-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scammers_db.json")
	r, err := Open(path, nil)
	require.NoError(t, err)
	return r
}

func report(userID, username, reason, proof string) AddInput {
	return AddInput{
		UserID:    userID,
		Username:  username,
		Reason:    reason,
		ProofLink: proof,
		AddedBy:   "1",
		ChannelID: "900",
	}
}

func TestAddOrMergeCreatesFreshRecord(t *testing.T) {
	r := newTestRegistry(t)

	record, created, err := r.AddOrMerge(report("123", "badguy", "fake seller", "https://proof/1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "123", record.UserID)
	assert.Equal(t, "badguy", record.Username)
	assert.Equal(t, []string{"fake seller"}, record.Reasons)
	assert.Equal(t, []string{"https://proof/1"}, record.Proofs)
	assert.Equal(t, 100, record.ScamChance)
	assert.Equal(t, 1, record.Reports)
	assert.Equal(t, model.StatusActive, record.Status)
	assert.NotEmpty(t, record.AddedDate)
}

func TestAddOrMergeMergesIntoActiveRecord(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "fake seller", "https://proof/1"))
	require.NoError(t, err)

	record, created, err := r.AddOrMerge(report("123", "newname", "stole deposit", "https://proof/2"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, record.Reports)
	assert.Equal(t, []string{"fake seller", "stole deposit"}, record.Reasons)
	assert.Equal(t, []string{"https://proof/1", "https://proof/2"}, record.Proofs)
	assert.Equal(t, "newname", record.Username, "username refreshes on merge")
}

func TestAddOrMergeDeduplicatesReasonAndProof(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "fake seller", "https://proof/1"))
	require.NoError(t, err)

	record, created, err := r.AddOrMerge(report("123", "badguy", "fake seller", "https://proof/1"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, record.Reports, "report counter increments even for a duplicate")
	assert.Len(t, record.Reasons, 1)
	assert.Len(t, record.Proofs, 1)
}

func TestAddOrMergeRejectsAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	r, err := Open(path, func(identity string) bool { return identity == "555" })
	require.NoError(t, err)

	_, _, err = r.AddOrMerge(report("555", "admin", "revenge report", ""))
	assert.ErrorIs(t, err, ErrTargetIsAdmin)
	assert.Nil(t, r.LookupActive("555"))
}

func TestAddOrMergeEmptyUsernameFallsBackToID(t *testing.T) {
	r := newTestRegistry(t)

	record, _, err := r.AddOrMerge(report("123", "", "fake seller", ""))
	require.NoError(t, err)
	assert.Equal(t, "id123", record.Username)
}

func TestSoftDeleteHidesFromActiveLookups(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "fake seller", ""))
	require.NoError(t, err)

	require.True(t, r.SoftDelete("123"))
	assert.Nil(t, r.LookupActive("123"))
	assert.Nil(t, r.LookupByHandle("badguy"))

	stats := r.Stats()
	assert.Equal(t, 0, stats.ActiveScammers)
	assert.Equal(t, 1, stats.RemovedScammers)
	assert.Equal(t, 1, stats.TotalInDB)
}

func TestSoftDeleteAbsentRecord(t *testing.T) {
	r := newTestRegistry(t)
	assert.False(t, r.SoftDelete("123"))
}

func TestReAddAfterRemovalStartsFresh(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "first reason", "https://proof/1"))
	require.NoError(t, err)
	_, _, err = r.AddOrMerge(report("123", "badguy", "second reason", ""))
	require.NoError(t, err)
	require.True(t, r.SoftDelete("123"))

	record, created, err := r.AddOrMerge(report("123", "badguy", "back at it", ""))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, record.Reports)
	assert.Equal(t, []string{"back at it"}, record.Reasons)
	assert.Empty(t, record.Proofs)
	assert.Equal(t, model.StatusActive, record.Status)
}

func TestHardDeleteRemovesEntirely(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "fake seller", ""))
	require.NoError(t, err)

	require.True(t, r.HardDelete("123"))
	assert.Nil(t, r.LookupActive("123"))
	assert.Nil(t, r.LookupByHandle("badguy"))
	assert.Equal(t, 0, r.Stats().TotalInDB)

	assert.False(t, r.HardDelete("123"))
}

func TestLookupByHandle(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "BadGuy", "fake seller", ""))
	require.NoError(t, err)

	assert.NotNil(t, r.LookupByHandle("badguy"))
	assert.NotNil(t, r.LookupByHandle("@BadGuy"))
	assert.NotNil(t, r.LookupByHandle("123"), "the raw key matches too")
	assert.Nil(t, r.LookupByHandle("someoneelse"))
}

func TestSetCountry(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "fake seller", ""))
	require.NoError(t, err)

	r.SetCountry("123", "🇷🇺 Russia")
	assert.Equal(t, "🇷🇺 Russia", r.LookupActive("123").Country)

	r.SetCountry("999", "🇺🇦 Ukraine") // absent: no-op
}

func TestSearchByCountryIgnoresCase(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("1", "a", "x", ""))
	require.NoError(t, err)
	_, _, err = r.AddOrMerge(report("2", "b", "y", ""))
	require.NoError(t, err)
	r.SetCountry("1", "Russia")
	r.SetCountry("2", "Ukraine")
	require.True(t, r.SoftDelete("2"))

	records := r.SearchByCountry("russia")
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].UserID)
	assert.Empty(t, r.SearchByCountry("ukraine"), "removed records are excluded")
}

func TestRecentActiveNewestFirst(t *testing.T) {
	r := newTestRegistry(t)
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, id := range []string{"1", "2", "3"} {
		_, _, err := r.AddOrMerge(report(id, "u"+id, "reason", ""))
		require.NoError(t, err)
	}
	require.True(t, r.SoftDelete("2"))

	records := r.RecentActive(10)
	require.Len(t, records, 2)
	assert.Equal(t, "3", records[0].UserID)
	assert.Equal(t, "1", records[1].UserID)

	assert.Len(t, r.RecentActive(1), 1)
}

func TestStats(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("1", "a", "x", ""))
	require.NoError(t, err)
	_, _, err = r.AddOrMerge(report("1", "a", "y", ""))
	require.NoError(t, err)
	_, _, err = r.AddOrMerge(report("2", "b", "z", ""))
	require.NoError(t, err)
	require.True(t, r.SoftDelete("2"))

	stats := r.Stats()
	assert.Equal(t, 1, stats.ActiveScammers)
	assert.Equal(t, 2, stats.TotalReports)
	assert.Equal(t, 1, stats.RemovedScammers)
	assert.Equal(t, 2, stats.TotalInDB)
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	r, err := Open(path, nil)
	require.NoError(t, err)
	_, _, err = r.AddOrMerge(report("123", "badguy", "fake seller", "https://proof/1"))
	require.NoError(t, err)
	require.True(t, r.SoftDelete("123"))

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	assert.Nil(t, reopened.LookupActive("123"))
	stats := reopened.Stats()
	assert.Equal(t, 1, stats.RemovedScammers)
	assert.Equal(t, 1, stats.TotalInDB)
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Open(path, nil)
	assert.Error(t, err)
}

func TestLookupReturnsCopies(t *testing.T) {
	r := newTestRegistry(t)

	_, _, err := r.AddOrMerge(report("123", "badguy", "fake seller", ""))
	require.NoError(t, err)

	record := r.LookupActive("123")
	record.Reasons[0] = "tampered"
	record.Reports = 99

	fresh := r.LookupActive("123")
	assert.Equal(t, "fake seller", fresh.Reasons[0])
	assert.Equal(t, 1, fresh.Reports)
}
