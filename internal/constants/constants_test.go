package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationConstants(t *testing.T) {
	t.Run("MaxDescriptionLength matches the documented cap", func(t *testing.T) {
		assert.Equal(t, 200, MaxDescriptionLength)
	})
}

func TestLockingConstants(t *testing.T) {
	t.Run("LockRetryInterval is reasonable", func(t *testing.T) {
		assert.Equal(t, 50*time.Millisecond, LockRetryInterval)
		assert.Less(t, LockRetryInterval, time.Second, "should retry quickly")
	})

	t.Run("LockTimeout allows several retries", func(t *testing.T) {
		assert.Equal(t, 5*time.Second, LockTimeout)
		assert.Greater(t, int64(LockTimeout/LockRetryInterval), int64(10), "should attempt the lock many times before giving up")
	})
}

func TestFileNameConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"StoreFileName", StoreFileName, "todo_list.json"},
		{"CLILogFileName", CLILogFileName, "docket.log"},
		{"GlobalConfigName", GlobalConfigName, "config.yaml"},
		{"ProjectConfigName", ProjectConfigName, ".docket.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant)
		})
	}
}

func TestDisplayConstants(t *testing.T) {
	t.Run("DefaultTheme is one of the shipped themes", func(t *testing.T) {
		assert.Equal(t, "dracula", DefaultTheme)
	})
}
