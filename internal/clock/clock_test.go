package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed_Now(t *testing.T) {
	moment := time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)
	c := Fixed{Time: moment}

	assert.Equal(t, moment, c.Now())
	assert.Equal(t, moment, c.Now(), "repeated reads stay pinned")
}
