package storage

import (
	"os"
	"path/filepath"
	"testing"

	"webdrill/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState_RoundTrip(t *testing.T) {
	store, err := NewSessionState(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)

	state, err := store.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, state)

	require.NoError(t, store.SaveSession(entities.SessionState{
		ServerURL: "http://localhost:4444/wd/hub",
		SessionID: "abc123",
	}))

	state, err = store.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "abc123", state.SessionID)
	assert.Equal(t, "http://localhost:4444/wd/hub", state.ServerURL)
	assert.False(t, state.SavedAt.IsZero())

	require.NoError(t, store.ClearSession())
	state, err = store.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, state)

	// clearing twice is fine
	require.NoError(t, store.ClearSession())
}

func TestSessionState_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionStateFile), []byte("{nope"), 0644))

	store, err := NewSessionState(dir)
	require.NoError(t, err)

	_, err = store.LoadSession()
	assert.Error(t, err)
}
