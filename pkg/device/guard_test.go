package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardDoAfterClose(t *testing.T) {
	var g Guard
	calls := 0
	op := func() error {
		calls++
		return nil
	}

	require.NoError(t, g.Do(op))
	require.Equal(t, 1, calls)

	require.NoError(t, g.Close(func() error { return nil }))

	err := g.Do(op)
	require.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, 1, calls, "op must not run after close")
}

func TestGuardCloseIdempotent(t *testing.T) {
	var g Guard
	releases := 0
	release := func() error {
		releases++
		return errors.New("release failed")
	}

	require.Error(t, g.Close(release))
	require.NoError(t, g.Close(release), "second close is a no-op")
	require.NoError(t, g.Close(release))
	assert.Equal(t, 1, releases)
	assert.True(t, g.Closed())
}
