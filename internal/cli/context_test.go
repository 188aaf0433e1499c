package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

func TestNewApp(t *testing.T) {
	t.Run("builds against a fresh home", func(t *testing.T) {
		setTestHome(t)
		var buf bytes.Buffer

		a, err := newApp(context.Background(), testFlags(), &buf)
		require.NoError(t, err)
		require.NotNil(t, a.manager)
		assert.Equal(t, "dracula", a.theme.Name)
		assert.Empty(t, buf.String())
	})

	t.Run("corrupted data file warns and proceeds", func(t *testing.T) {
		home := setTestHome(t)
		require.NoError(t, writeRawStoreFile(home, []byte("{not json")))

		var buf bytes.Buffer
		a, err := newApp(context.Background(), testFlags(), &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "corrupted")

		groups, err := a.manager.Groups(context.Background())
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("canceled context aborts immediately", func(t *testing.T) {
		setTestHome(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		_, err := newApp(ctx, testFlags(), &buf)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("file flag overrides the configured store path", func(t *testing.T) {
		home := setTestHome(t)
		custom := home + "/elsewhere.json"

		flags := testFlags()
		flags.File = custom

		var buf bytes.Buffer
		a, err := newApp(context.Background(), flags, &buf)
		require.NoError(t, err)

		_, err = a.manager.AddTasks(context.Background(), "chores", []string{"buy milk"})
		require.NoError(t, err)
		assert.FileExists(t, custom)
		assert.NoFileExists(t, storePath(home))
	})
}

func TestWarnPersistFailure(t *testing.T) {
	setTestHome(t)
	var buf bytes.Buffer

	a, err := newApp(context.Background(), testFlags(), &buf)
	require.NoError(t, err)

	a.warnPersistFailure(dkterrors.Wrap(dkterrors.ErrPersistFailed, "disk full"))
	assert.Contains(t, buf.String(), "could not be written")
}

func TestConfirmFunc(t *testing.T) {
	setTestHome(t)

	t.Run("yes flag answers affirmatively", func(t *testing.T) {
		flags := testFlags()
		flags.Yes = true

		ok, err := confirmFunc(flags, testTheme())(context.Background(), "sure?")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("without a terminal the prompt errors", func(t *testing.T) {
		ok, err := confirmFunc(testFlags(), testTheme())(context.Background(), "sure?")
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("canceled context short-circuits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		flags := testFlags()
		flags.Yes = true
		ok, err := confirmFunc(flags, testTheme())(ctx, "sure?")
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})
}
