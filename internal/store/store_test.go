package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(t.TempDir())
}

func TestProfileNamesMaterializesDefault(t *testing.T) {
	st := newTestStore(t)
	names, err := st.ProfileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultProfile}, names)
	assert.True(t, st.HasProfile(DefaultProfile))
}

func TestAddProfile(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.AddProfile("Acme"))
	assert.True(t, st.HasProfile("Acme"))

	err := st.AddProfile("Acme")
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUpsertEntryAppendsAndAssignsID(t *testing.T) {
	st := newTestStore(t)
	e, err := st.UpsertEntry("Acme", model.Entry{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:00"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)

	entries := st.Entries("Acme")
	require.Len(t, entries, 1)
	assert.Equal(t, e, entries[0])
}

func TestUpsertEntryReplacesByKeyKeepingID(t *testing.T) {
	st := newTestStore(t)
	first, err := st.UpsertEntry("Acme", model.Entry{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:00"})
	require.NoError(t, err)

	updated, err := st.UpsertEntry("Acme", model.Entry{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "18:00", BreakMinutes: 45})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)

	entries := st.Entries("Acme")
	require.Len(t, entries, 1)
	assert.Equal(t, "18:00", entries[0].ClockOut)
	assert.Equal(t, 45, entries[0].BreakMinutes)
}

func TestDeleteEntries(t *testing.T) {
	st := newTestStore(t)
	a, err := st.UpsertEntry("Acme", model.Entry{Date: "2024-06-03", ClockIn: "09:00"})
	require.NoError(t, err)
	_, err = st.UpsertEntry("Acme", model.Entry{Date: "2024-06-04", ClockIn: "09:00"})
	require.NoError(t, err)

	removed, err := st.DeleteEntries("Acme", a.ID, "no-such-id")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries := st.Entries("Acme")
	require.Len(t, entries, 1)
	assert.Equal(t, "2024-06-04", entries[0].Date)
}

func TestRenameProfileMigratesAllSections(t *testing.T) {
	st := newTestStore(t)
	_, err := st.UpsertEntry("Old", model.Entry{Date: "2024-06-03", ClockIn: "09:00"})
	require.NoError(t, err)
	require.NoError(t, st.SetLastClock("Old", &model.LastClock{Action: "in", Date: "2024-06-03", Time: "09:00"}))
	require.NoError(t, st.SetVacationDays("Old", "2024", 30))
	require.NoError(t, st.SetRole("Old", "Engineer"))

	require.NoError(t, st.RenameProfile("Old", "New"))

	assert.False(t, st.HasProfile("Old"))
	assert.Len(t, st.Entries("New"), 1)
	require.NotNil(t, st.LastClock("New"))
	assert.Equal(t, "09:00", st.LastClock("New").Time)
	days, ok := st.VacationAllowance("New", "2024")
	assert.True(t, ok)
	assert.Equal(t, 30, days)
	assert.Equal(t, "Engineer", st.Role("New"))
}

func TestRenameProfileErrors(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.AddProfile("A"))
	require.NoError(t, st.AddProfile("B"))

	assert.ErrorIs(t, st.RenameProfile("Missing", "C"), ErrNoProfile)
	assert.ErrorIs(t, st.RenameProfile("A", "B"), ErrProfileExists)
}

func TestDeleteProfileRefusesLast(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.AddProfile("Only"))
	err := st.DeleteProfile("Only")
	assert.True(t, errors.Is(err, ErrLastProfile))

	require.NoError(t, st.AddProfile("Second"))
	require.NoError(t, st.DeleteProfile("Only"))
	assert.False(t, st.HasProfile("Only"))
	assert.True(t, st.HasProfile("Second"))
}

func TestLastClockClearedWithNil(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetLastClock("Acme", &model.LastClock{Action: "in", Date: "2024-06-03", Time: "09:00"}))
	require.NotNil(t, st.LastClock("Acme"))

	require.NoError(t, st.SetLastClock("Acme", nil))
	assert.Nil(t, st.LastClock("Acme"))
}

func TestSetVacationDaysClamps(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SetVacationDays("Acme", "2024", -5))
	days, _ := st.VacationAllowance("Acme", "2024")
	assert.Equal(t, 0, days)

	require.NoError(t, st.SetVacationDays("Acme", "2024", 1000))
	days, _ = st.VacationAllowance("Acme", "2024")
	assert.Equal(t, 365, days)
}

func TestLoadBacksUpCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	st := Open(dir)
	assert.Empty(t, st.Entries("Acme"))

	_, err := os.Stat(path + ".corrupt")
	assert.NoError(t, err)
}

func TestSaveWritesValidJSON(t *testing.T) {
	dir := t.TempDir()
	st := Open(dir)
	_, err := st.UpsertEntry("Acme", model.Entry{Date: "2024-06-03", ClockIn: "09:00"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "profiles")
}
