package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/docket/internal/domain"
)

func TestRunRm(t *testing.T) {
	t.Run("removes the named tasks", func(t *testing.T) {
		home := setTestHome(t)
		writeStoreFile(t, storePath(home), domain.Groups{
			"chores": {
				{ID: 1, Description: "buy milk"},
				{ID: 2, Description: "walk dog"},
				{ID: 3, Description: "mow lawn"},
			},
		})

		var buf bytes.Buffer
		require.NoError(t, runRm(context.Background(), testFlags(), &buf, "chores", "1,3"))

		groups := readStoreFile(t, storePath(home))
		require.Len(t, groups["chores"], 1)
		assert.Equal(t, 2, groups["chores"][0].ID)
	})

	t.Run("lenient id parsing drops junk entries", func(t *testing.T) {
		home := setTestHome(t)
		writeStoreFile(t, storePath(home), domain.Groups{
			"chores": {
				{ID: 1, Description: "buy milk"},
				{ID: 2, Description: "walk dog"},
			},
		})

		var buf bytes.Buffer
		require.NoError(t, runRm(context.Background(), testFlags(), &buf, "chores", "junk,2,-5"))

		groups := readStoreFile(t, storePath(home))
		require.Len(t, groups["chores"], 1)
		assert.Equal(t, 1, groups["chores"][0].ID)
	})

	t.Run("unknown group warns without failing", func(t *testing.T) {
		setTestHome(t)
		var buf bytes.Buffer

		err := runRm(context.Background(), testFlags(), &buf, "nope", "1")
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "not found")
	})

	t.Run("emptying the group keeps it when prompt declined", func(t *testing.T) {
		home := setTestHome(t)
		writeStoreFile(t, storePath(home), domain.Groups{
			"chores": {{ID: 1, Description: "buy milk"}},
		})

		var buf bytes.Buffer
		require.NoError(t, runRm(context.Background(), testFlags(), &buf, "chores", "1"))

		// Save prunes empty groups, so on disk the group is gone even
		// though the decline kept it in memory for the session.
		groups := readStoreFile(t, storePath(home))
		assert.NotContains(t, groups, "chores")
	})

	t.Run("yes flag deletes the emptied group", func(t *testing.T) {
		home := setTestHome(t)
		writeStoreFile(t, storePath(home), domain.Groups{
			"chores": {{ID: 1, Description: "buy milk"}},
			"errand": {{ID: 1, Description: "post office"}},
		})

		var buf bytes.Buffer
		flags := testFlags()
		flags.Yes = true
		require.NoError(t, runRm(context.Background(), flags, &buf, "chores", "1"))

		groups := readStoreFile(t, storePath(home))
		assert.NotContains(t, groups, "chores")
		assert.Contains(t, groups, "errand")
	})
}
