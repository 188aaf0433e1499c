package cli

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    zerolog.Level
	}{
		{"default", false, false, zerolog.InfoLevel},
		{"verbose", true, false, zerolog.DebugLevel},
		{"quiet", false, true, zerolog.WarnLevel},
		{"verbose wins over quiet", true, true, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectLevel(tt.verbose, tt.quiet))
		})
	}
}

func TestInitLoggerWithWriter(t *testing.T) {
	t.Run("carries a run id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := InitLoggerWithWriter(false, false, &buf)

		logger.Info().Msg("hello")
		assert.Contains(t, buf.String(), `"run_id"`)
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("quiet drops info entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger := InitLoggerWithWriter(false, true, &buf)

		logger.Info().Msg("quiet info")
		assert.Empty(t, buf.String())

		logger.Warn().Msg("still warns")
		assert.Contains(t, buf.String(), "still warns")
	})

	t.Run("verbose enables debug entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger := InitLoggerWithWriter(true, false, &buf)

		logger.Debug().Msg("debug detail")
		assert.Contains(t, buf.String(), "debug detail")
	})

	t.Run("flags url-bearing entries", func(t *testing.T) {
		var buf bytes.Buffer
		logger := InitLoggerWithWriter(false, false, &buf)

		logger.Info().Msg("rejected https://example.com/secret")
		assert.Contains(t, buf.String(), `"contains_filtered_data":true`)
	})
}

func TestNewRunID(t *testing.T) {
	a := newRunID()
	b := newRunID()

	require.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
