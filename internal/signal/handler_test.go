package signal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_SignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal()

	require.Error(t, h.Context().Err())
	assert.Equal(t, context.Canceled, h.Context().Err())

	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed after a signal")
	}
}

func TestHandler_RepeatedSignalsHandledOnce(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal()
	h.handleSignal()
	h.handleSignal()

	require.Error(t, h.Context().Err())
	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed")
	}
}

func TestHandler_Stop(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()

	assert.Error(t, h.Context().Err())
}

func TestHandler_ExternalCancelStopsListener(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHandler(ctx)
	defer h.Stop()

	cancel()

	assert.Error(t, h.Context().Err())
	select {
	case <-h.Interrupted():
		t.Fatal("external cancel must not report an interrupt")
	default:
	}
}
