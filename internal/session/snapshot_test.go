package session_test

import (
	"testing"

	"github.com/misterclayt0n/liftquest/internal/models"
	"github.com/misterclayt0n/liftquest/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFile_RoundTrip(t *testing.T) {
	snapshots := session.NewSnapshotFile(t.TempDir())
	assert.False(t, snapshots.Exists())

	m := newDefaultModel(t)
	require.NoError(t, m.UpdateSet(0, 0, models.FieldWeight, "100"))
	require.NoError(t, m.UpdateSet(0, 0, models.FieldReps, "10"))
	_, err := m.ToggleSetComplete(0, 0)
	require.NoError(t, err)
	require.NoError(t, m.UpdateSet(0, 1, models.FieldWeight, "102.5"))

	require.NoError(t, snapshots.Save(m.State(321)))
	assert.True(t, snapshots.Exists())

	state, err := snapshots.Load()
	require.NoError(t, err)
	assert.Equal(t, m.ID, state.SessionID)
	assert.Equal(t, 321, state.ElapsedSeconds)
	assert.True(t, state.StartTime.Equal(startedAt))
	assert.Equal(t, m.Exercises(), state.Exercises)

	require.NoError(t, snapshots.Clear())
	assert.False(t, snapshots.Exists())
	require.NoError(t, snapshots.Clear())
}
