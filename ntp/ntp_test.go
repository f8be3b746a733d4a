// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ntp_test

import (
	"testing"

	"github.com/skycal/almanac/civil"
	"github.com/skycal/almanac/ntp"
)

func TestRegistryDeliver(t *testing.T) {
	var r ntp.Registry
	if r.HasLastSync() {
		t.Errorf("fresh registry should have no sync")
	}
	var got []int64
	r.Set(func(at civil.Instant) { got = append(got, at.Unix()) })
	r.Deliver(civil.FromUnix(1717243200))
	r.Deliver(civil.FromUnix(1717243260))
	if want := []int64{1717243200, 1717243260}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
	if !r.HasLastSync() {
		t.Errorf("sync should be recorded")
	}
	if got, want := r.LastSync().Unix(), int64(1717243260); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegistryReplaceAndClear(t *testing.T) {
	var r ntp.Registry
	first, second := 0, 0
	r.Set(func(civil.Instant) { first++ })
	r.Set(func(civil.Instant) { second++ })
	r.Deliver(civil.FromUnix(1))
	if first != 0 || second != 1 {
		t.Errorf("got (%v, %v), want (0, 1)", first, second)
	}
	r.Set(nil)
	r.Deliver(civil.FromUnix(2))
	if second != 1 {
		t.Errorf("cleared listener still invoked")
	}
	// Delivery without a listener still records the sync.
	if got, want := r.LastSync().Unix(), int64(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegistryReset(t *testing.T) {
	var r ntp.Registry
	calls := 0
	r.Set(func(civil.Instant) { calls++ })
	r.Deliver(civil.FromUnix(100))
	r.Reset()
	if r.HasLastSync() {
		t.Errorf("reset should clear sync state")
	}
	if got, want := r.LastSync().Unix(), int64(0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	r.Deliver(civil.FromUnix(200))
	if calls != 1 {
		t.Errorf("reset should clear the listener")
	}
}
