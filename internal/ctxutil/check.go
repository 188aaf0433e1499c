// Package ctxutil holds the one context helper the store shares.
package ctxutil

import "context"

// Canceled reports the context's error, if any. Manager operations call
// it on entry so a canceled command never begins a read-modify-write
// cycle. ctx.Err() is already nil while the context is live, so no
// select is needed.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
