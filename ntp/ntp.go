// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ntp supplies authoritative time from an SNTP server and delivers
// sync notifications to a single registered listener. The provider is an
// external collaborator; this package only queries it, records the synced
// instant and forwards it.
package ntp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beevik/ntp"

	"github.com/skycal/almanac/civil"
)

// SyncFunc receives the synced UTC instant. Closures subsume both the plain
// callback and capturing-callable registration paths.
type SyncFunc func(syncedAt civil.Instant)

// Provider queries an NTP server for the current time. Implementations may
// be called from any goroutine.
type Provider interface {
	Sync(ctx context.Context, server string) (civil.Instant, error)
}

// IntervalSetter is optionally implemented by providers that support
// configuring a background sync interval. SetSyncInterval reports whether
// the interval was applied; false is a capability signal, not an error.
type IntervalSetter interface {
	SetSyncInterval(d time.Duration) bool
}

// Client is the default Provider, backed by github.com/beevik/ntp.
type Client struct {
	// Timeout bounds each query; zero uses the library default.
	Timeout time.Duration
}

// Sync queries the server and returns the offset-corrected current instant.
// A deadline on ctx tightens the query timeout.
func (c *Client) Sync(ctx context.Context, server string) (civil.Instant, error) {
	opts := ntp.QueryOptions{Timeout: c.Timeout}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); opts.Timeout == 0 || remaining < opts.Timeout {
			opts.Timeout = remaining
		}
	}
	resp, err := ntp.QueryWithOptions(server, opts)
	if err != nil {
		return 0, fmt.Errorf("ntp query %s: %w", server, err)
	}
	if err := resp.Validate(); err != nil {
		return 0, fmt.Errorf("ntp response from %s: %w", server, err)
	}
	return civil.FromUnix(time.Now().Add(resp.ClockOffset).Unix()), nil
}

// Registry holds at most one active sync listener and the last synced
// instant. Set transfers ownership of the listener slot: registering a new
// listener replaces the previous one, and Set(nil) clears the slot. Deliver
// may run concurrently with any other method; last-sync state is guarded
// for the single-writer/occasional-reader pattern of sync delivery.
type Registry struct {
	mu       sync.Mutex
	listener SyncFunc
	lastSync civil.Instant
	hasSync  bool
}

// Set installs fn as the single active listener, replacing any previous
// registration. A nil fn clears the slot.
func (r *Registry) Set(fn SyncFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = fn
}

// Deliver records the synced instant and invokes the active listener, if
// any. The listener runs outside the registry lock.
func (r *Registry) Deliver(at civil.Instant) {
	r.mu.Lock()
	r.lastSync = at
	r.hasSync = true
	fn := r.listener
	r.mu.Unlock()
	if fn != nil {
		fn(at)
	}
}

// HasLastSync reports whether a sync has been delivered.
func (r *Registry) HasLastSync() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasSync
}

// LastSync returns the most recently delivered instant, zero before the
// first delivery.
func (r *Registry) LastSync() civil.Instant {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSync
}

// Reset clears the listener and last-sync state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = nil
	r.lastSync = 0
	r.hasSync = false
}
