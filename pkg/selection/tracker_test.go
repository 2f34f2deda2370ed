package selection

import (
	"sync"
	"testing"

	"github.com/arthur-debert/pathte/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_EmptyStateIsSignaled(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Active())
	assert.Nil(t, tr.Snapshot())

	assert.ErrorIs(t, tr.Advance(), ErrNoSelection)
	assert.ErrorIs(t, tr.Retreat(), ErrNoSelection)

	_, err := tr.CurrentText()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSelection))

	_, ok := tr.Dismiss()
	assert.False(t, ok)
}

func TestTracker_Lifecycle(t *testing.T) {
	tr := NewTracker()

	require.True(t, tr.Create(`C:\Users\test\file.txt`))
	assert.True(t, tr.Active())

	require.NoError(t, tr.Advance())
	text, err := tr.CurrentText()
	require.NoError(t, err)
	assert.Equal(t, "C:/Users/test/file.txt", text)

	require.NoError(t, tr.Retreat())
	require.NoError(t, tr.Retreat())
	snap := tr.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 2, snap.Selected)

	dismissed, ok := tr.Dismiss()
	assert.True(t, ok)
	assert.Equal(t, "/mnt/c/Users/test/file.txt", dismissed)
	assert.False(t, tr.Active())
}

func TestTracker_CreateReplacesState(t *testing.T) {
	tr := NewTracker()
	require.True(t, tr.Create("/mnt/c/a"))
	first := tr.Snapshot().ID

	require.True(t, tr.Create("/mnt/d/b"))
	assert.NotEqual(t, first, tr.Snapshot().ID)

	// a failed create leaves the tracker empty rather than keeping stale state
	assert.False(t, tr.Create("not a path"))
	assert.False(t, tr.Active())
}

func TestTracker_ConcurrentReaders(t *testing.T) {
	tr := NewTracker()
	require.True(t, tr.Create(`C:\x`))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if snap := tr.Snapshot(); snap != nil {
					assert.Less(t, snap.Selected, len(snap.Options))
				}
			}
		}()
	}

	for i := 0; i < 300; i++ {
		_ = tr.Advance()
	}
	wg.Wait()
}
