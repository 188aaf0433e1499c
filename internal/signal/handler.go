// Package signal wires SIGINT and SIGTERM into context cancellation so
// long-running commands (the watch view, the interactive menu) shut down
// cleanly on Ctrl+C.
//
// The package depends on the standard library only; nothing internal may
// be imported here.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler cancels a derived context when an interrupt signal arrives.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns this context's lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal
}

// NewHandler starts listening for SIGINT and SIGTERM. The first signal
// cancels the derived context and closes the Interrupted channel.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	ctx = h.Context()
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffer of 1 so Notify never drops a signal while listen is busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the interruptible context.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel that closes once a signal has been received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Stop unregisters the signal listener and cancels the context. Safe to
// call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handleSignal reacts to the first signal only; later signals are drained
// but ignored.
func (h *Handler) handleSignal() {
	h.once.Do(func() {
		h.cancel()
		close(h.interrupted)
	})
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case <-h.sigChan:
			h.handleSignal()
		}
	}
}
