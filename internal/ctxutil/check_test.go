package ctxutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/docket/internal/ctxutil"
)

func TestCanceled(t *testing.T) {
	t.Run("live context", func(t *testing.T) {
		assert.NoError(t, ctxutil.Canceled(context.Background()))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, ctxutil.Canceled(ctx), context.Canceled)
	})

	t.Run("expired deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		assert.ErrorIs(t, ctxutil.Canceled(ctx), context.DeadlineExceeded)
	})
}
