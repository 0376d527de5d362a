// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the API client: obeying
// server-requested backoff and falling back from TLS verification.
package httputil

import (
	"context"
	"time"
)

// BackoffUnit is the length of one backoff second. Tests override this to
// avoid real sleeps.
var BackoffUnit = time.Second

// BackoffDuration returns how long to pause for a server backoff hint of
// the given number of seconds. One extra unit is added so the next call
// lands strictly after the server's window closes.
func BackoffDuration(seconds int) time.Duration {
	if seconds < 0 {
		seconds = 0
	}
	return time.Duration(seconds+1) * BackoffUnit
}

// WaitBackoff blocks for BackoffDuration(seconds). If the context is
// cancelled during the wait it returns ctx.Err().
func WaitBackoff(ctx context.Context, seconds int) error {
	t := time.NewTimer(BackoffDuration(seconds))
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
