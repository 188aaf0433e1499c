package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/docket/internal/domain"
)

func TestGroupsNextID(t *testing.T) {
	t.Run("missing group starts at one", func(t *testing.T) {
		g := domain.Groups{}
		assert.Equal(t, 1, g.NextID("chores"))
	})

	t.Run("continues past the highest id", func(t *testing.T) {
		g := domain.Groups{
			"chores": {
				{ID: 1, Description: "wash dishes"},
				{ID: 2, Description: "take out trash"},
			},
		}
		assert.Equal(t, 3, g.NextID("chores"))
	})

	t.Run("gaps from deletions are never refilled", func(t *testing.T) {
		g := domain.Groups{
			"chores": {
				{ID: 1, Description: "wash dishes"},
				{ID: 5, Description: "mow lawn"},
			},
		}
		assert.Equal(t, 6, g.NextID("chores"))
	})

	t.Run("other groups do not influence the id", func(t *testing.T) {
		g := domain.Groups{
			"errands": {{ID: 9, Description: "post office"}},
		}
		assert.Equal(t, 1, g.NextID("chores"))
	})
}

func TestGroupsNames(t *testing.T) {
	t.Run("returns sorted names", func(t *testing.T) {
		g := domain.Groups{
			"zoo":     {{ID: 1}},
			"errands": {{ID: 1}},
			"chores":  {{ID: 1}},
		}
		assert.Equal(t, []string{"chores", "errands", "zoo"}, g.Names())
	})

	t.Run("empty document yields empty slice", func(t *testing.T) {
		g := domain.Groups{}
		assert.Empty(t, g.Names())
	})
}

func TestGroupsClone(t *testing.T) {
	t.Run("copy is independent of the original", func(t *testing.T) {
		g := domain.Groups{
			"chores": {{ID: 1, Description: "wash dishes"}},
		}

		clone := g.Clone()
		clone["chores"][0].Completed = true
		clone["errands"] = []domain.Task{{ID: 1, Description: "post office"}}

		assert.False(t, g["chores"][0].Completed, "mutating the clone must not touch the original")
		assert.NotContains(t, g, "errands")
	})

	t.Run("nil document clones to nil", func(t *testing.T) {
		var g domain.Groups
		assert.Nil(t, g.Clone())
	})
}

func TestAllCompleted(t *testing.T) {
	t.Run("true when every task is done", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Completed: true},
			{ID: 2, Completed: true},
		}
		assert.True(t, domain.AllCompleted(tasks))
	})

	t.Run("false when any task is open", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Completed: true},
			{ID: 2, Completed: false},
		}
		assert.False(t, domain.AllCompleted(tasks))
	})

	t.Run("empty list counts as completed", func(t *testing.T) {
		assert.True(t, domain.AllCompleted(nil))
	})
}
