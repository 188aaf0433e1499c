package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/task"
)

func TestParseIDs(t *testing.T) {
	t.Run("parses a simple list", func(t *testing.T) {
		ids, err := task.ParseIDs("1,2,3")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("trims whitespace around entries", func(t *testing.T) {
		ids, err := task.ParseIDs(" 1, 2 ,3 ")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("parses a single id", func(t *testing.T) {
		ids, err := task.ParseIDs("7")
		require.NoError(t, err)
		assert.Equal(t, []int{7}, ids)
	})

	t.Run("keeps duplicate ids", func(t *testing.T) {
		ids, err := task.ParseIDs("2,2")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2}, ids)
	})

	t.Run("fails the whole parse on a non-numeric entry", func(t *testing.T) {
		ids, err := task.ParseIDs("1,two,3")
		require.ErrorIs(t, err, dkterrors.ErrInvalidTaskID)
		assert.Contains(t, err.Error(), `"two"`)
		assert.Nil(t, ids)
	})

	t.Run("fails on empty entries", func(t *testing.T) {
		_, err := task.ParseIDs("1,,3")
		require.ErrorIs(t, err, dkterrors.ErrInvalidTaskID)

		_, err = task.ParseIDs("")
		require.ErrorIs(t, err, dkterrors.ErrInvalidTaskID)
	})

	t.Run("fails on zero and negative ids", func(t *testing.T) {
		_, err := task.ParseIDs("0")
		require.ErrorIs(t, err, dkterrors.ErrInvalidTaskID)

		_, err = task.ParseIDs("-1")
		require.ErrorIs(t, err, dkterrors.ErrInvalidTaskID)
	})
}

func TestParseIDsLenient(t *testing.T) {
	t.Run("parses a simple list", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, task.ParseIDsLenient("1,2,3"))
	})

	t.Run("drops non-numeric entries silently", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, task.ParseIDsLenient("1,two,3"))
		assert.Equal(t, []int{5}, task.ParseIDsLenient("x, 5 ,-2,0"))
	})

	t.Run("yields no ids for garbage input", func(t *testing.T) {
		assert.Empty(t, task.ParseIDsLenient("a,b,c"))
		assert.Empty(t, task.ParseIDsLenient(""))
	})
}
