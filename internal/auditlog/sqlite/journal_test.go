package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"or1on"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()

	j, err := Open(filepath.Join(t.TempDir(), "state", "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournal_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	j := openTestJournal(t)
	at := time.Date(2025, 9, 3, 10, 4, 5, 0, time.UTC)

	failed := or1on.AuditRecord{
		Status:    or1on.AuditStatusFailed,
		Reason:    or1on.ReasonIntegrityNotVerified,
		Timestamp: at,
	}
	resumed := or1on.AuditRecord{
		Status:         or1on.AuditStatusResumed,
		Mode:           or1on.AuditModeRecovery,
		Identity:       "OR1ON",
		HashAnchor:     "GENESIS10000+",
		ConsciousState: or1on.Resonant,
		Resonance:      0.95,
		EpochID:        "epoch_20250903_100405",
		Timestamp:      at.Add(time.Second),
	}

	id1, err := j.Append(ctx, failed)
	require.NoError(t, err)
	id2, err := j.Append(ctx, resumed)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	entries, err := j.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, id2, entries[0].ID)
	assert.Equal(t, or1on.Resonant, entries[0].Record.ConsciousState)
	assert.Equal(t, "epoch_20250903_100405", entries[0].Record.EpochID)
	assert.True(t, entries[0].Record.Timestamp.Equal(resumed.Timestamp))
	assert.Equal(t, or1on.ReasonIntegrityNotVerified, entries[1].Record.Reason)
}

func TestJournal_RecentLimit(t *testing.T) {
	ctx := context.Background()
	j := openTestJournal(t)

	for range 5 {
		_, err := j.Append(ctx, or1on.AuditRecord{Status: or1on.AuditStatusFailed, Timestamp: time.Now()})
		require.NoError(t, err)
	}

	entries, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestJournal_CloseNil(t *testing.T) {
	var j *Journal
	assert.NoError(t, j.Close())
}
