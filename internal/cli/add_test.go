package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

func TestRunAdd(t *testing.T) {
	t.Run("adds tasks and persists", func(t *testing.T) {
		home := setTestHome(t)
		var buf bytes.Buffer

		err := runAdd(context.Background(), testFlags(), &buf, "chores", []string{"buy milk", "walk dog"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Added 2 tasks")

		groups := readStoreFile(t, storePath(home))
		require.Len(t, groups["chores"], 2)
		assert.Equal(t, 1, groups["chores"][0].ID)
		assert.Equal(t, "buy milk", groups["chores"][0].Description)
		assert.Equal(t, 2, groups["chores"][1].ID)
	})

	t.Run("single task uses singular wording", func(t *testing.T) {
		setTestHome(t)
		var buf bytes.Buffer

		require.NoError(t, runAdd(context.Background(), testFlags(), &buf, "chores", []string{"buy milk"}))
		assert.Contains(t, buf.String(), "Added 1 task to")
	})

	t.Run("no descriptions without a terminal is a usage error", func(t *testing.T) {
		home := setTestHome(t)
		var buf bytes.Buffer

		err := runAdd(context.Background(), testFlags(), &buf, "chores", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, dkterrors.ErrEmptyBatch)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
		assert.NoFileExists(t, storePath(home))
	})

	t.Run("rejects invalid group name", func(t *testing.T) {
		setTestHome(t)
		var buf bytes.Buffer

		err := runAdd(context.Background(), testFlags(), &buf, "bad/name", []string{"x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, dkterrors.ErrInvalidGroupName)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("rejects batch with one bad description", func(t *testing.T) {
		home := setTestHome(t)
		var buf bytes.Buffer

		err := runAdd(context.Background(), testFlags(), &buf, "chores", []string{
			"fine",
			"see https://example.com",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, dkterrors.ErrInvalidDescription)

		// Atomic batch: nothing was written.
		assert.NoFileExists(t, storePath(home))
	})

	t.Run("rejects oversize description", func(t *testing.T) {
		setTestHome(t)
		var buf bytes.Buffer

		err := runAdd(context.Background(), testFlags(), &buf, "chores", []string{strings.Repeat("a", 201)})
		assert.ErrorIs(t, err, dkterrors.ErrInvalidDescription)
	})

	t.Run("json output", func(t *testing.T) {
		setTestHome(t)
		var buf bytes.Buffer
		flags := testFlags()
		flags.Output = OutputJSON

		require.NoError(t, runAdd(context.Background(), flags, &buf, "chores", []string{"buy milk"}))
		assert.Contains(t, buf.String(), `"group": "chores"`)
		assert.Contains(t, buf.String(), `"added": 1`)
	})

	t.Run("file flag overrides store path", func(t *testing.T) {
		home := setTestHome(t)
		custom := home + "/custom.json"
		var buf bytes.Buffer
		flags := testFlags()
		flags.File = custom

		require.NoError(t, runAdd(context.Background(), flags, &buf, "chores", []string{"buy milk"}))
		assert.FileExists(t, custom)
		assert.NoFileExists(t, storePath(home))
	})
}

func TestValidateDescriptionEntry(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"finish word", "done", false},
		{"ordinary description", "buy milk", false},
		{"empty", "", true},
		{"url", "see https://example.com", true},
		{"too long", strings.Repeat("x", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDescriptionEntry(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, dkterrors.ErrInvalidDescription)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
