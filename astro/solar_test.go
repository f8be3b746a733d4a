// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro_test

import (
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/skycal/almanac/astro"
	"github.com/skycal/almanac/civil"
)

var budapest = astro.Coordinate{Lat: 47.4979, Lon: 19.0402}

const cet = "CET-1CEST,M3.5.0/2,M10.5.0/3"

func near(t *testing.T, got, want civil.Instant, tolerance int64) {
	t.Helper()
	d := got.Unix() - want.Unix()
	if d < -tolerance || d > tolerance {
		t.Errorf("got %v, want %v (±%vs)", got.Unix(), want.Unix(), tolerance)
	}
}

func TestSunEventBudapest(t *testing.T) {
	rise := astro.SunEvent(true, 2024, 6, 1, budapest, 120)
	if !rise.OK {
		t.Fatal("no sunrise")
	}
	near(t, rise.At, civil.FromUnix(1717210200), 120) // 2024-06-01 ~06:50 CEST
	set := astro.SunEvent(false, 2024, 6, 1, budapest, 120)
	if !set.OK {
		t.Fatal("no sunset")
	}
	near(t, set.At, civil.FromUnix(1717266840), 120) // ~22:34 CEST
	if rise.At >= set.At {
		t.Errorf("sunrise %v not before sunset %v", rise.At, set.At)
	}
}

func TestSunEventPathsAgree(t *testing.T) {
	// The explicit-date, instant-plus-offset and zone-rule paths must
	// produce the same instants for the same day and offset.
	at := civil.FromUnix(1717243200) // 2024-06-01T12:00:00Z, CEST in effect
	byDate := astro.SunEvent(true, 2024, 6, 1, budapest, 120)
	byInstant := astro.SunEventAt(true, at, budapest, 120)
	byZone := astro.SunEventZone(true, at, budapest, cet)
	if !byDate.OK || !byInstant.OK || !byZone.OK {
		t.Fatal("missing event")
	}
	if byDate.At != byInstant.At {
		t.Errorf("instant path got %v, want %v", byInstant.At, byDate.At)
	}
	if byDate.At != byZone.At {
		t.Errorf("zone path got %v, want %v", byZone.At, byDate.At)
	}
}

func TestSunEventAgainstReference(t *testing.T) {
	// Cross-check a spread of dates and places against the reference
	// implementation. The algorithms differ slightly so allow a few
	// minutes.
	for _, tc := range []struct {
		name             string
		c                astro.Coordinate
		year, month, day int
	}{
		{"budapest summer", budapest, 2024, 6, 1},
		{"budapest winter", budapest, 2024, 12, 21},
		{"sydney", astro.Coordinate{Lat: -33.8688, Lon: 151.2093}, 2024, 3, 15},
		{"quito", astro.Coordinate{Lat: -0.1807, Lon: -78.4678}, 2024, 9, 22},
		{"reykjavik", astro.Coordinate{Lat: 64.1466, Lon: -21.9426}, 2024, 1, 15},
	} {
		rise := astro.SunEvent(true, tc.year, tc.month, tc.day, tc.c, 0)
		set := astro.SunEvent(false, tc.year, tc.month, tc.day, tc.c, 0)
		wantRise, wantSet := sunrise.SunriseSunset(tc.c.Lat, tc.c.Lon, tc.year, time.Month(tc.month), tc.day)
		if !rise.OK || !set.OK {
			t.Errorf("%v: missing event", tc.name)
			continue
		}
		near(t, rise.At, civil.FromUnix(wantRise.Unix()), 300)
		near(t, set.At, civil.FromUnix(wantSet.Unix()), 300)
	}
}

func TestSunEventPolar(t *testing.T) {
	tromso := astro.Coordinate{Lat: 69.6496, Lon: 18.9560}
	// Midnight sun: no rise or set.
	if e := astro.SunEvent(true, 2024, 6, 21, tromso, 120); e.OK {
		t.Errorf("unexpected sunrise during midnight sun: %v", e.At)
	}
	if e := astro.SunEvent(false, 2024, 6, 21, tromso, 120); e.OK {
		t.Errorf("unexpected sunset during midnight sun: %v", e.At)
	}
	// Polar night.
	if e := astro.SunEvent(true, 2024, 12, 21, tromso, 60); e.OK {
		t.Errorf("unexpected sunrise during polar night: %v", e.At)
	}
}

func TestSunEventRejects(t *testing.T) {
	if e := astro.SunEvent(true, 2024, 6, 1, astro.Coordinate{Lat: 91, Lon: 0}, 0); e.OK {
		t.Errorf("latitude out of range should yield no event")
	}
	if e := astro.SunEvent(true, 2024, 6, 1, astro.Coordinate{Lat: 0, Lon: 181}, 0); e.OK {
		t.Errorf("longitude out of range should yield no event")
	}
	if e := astro.SunEvent(true, 10001, 6, 1, budapest, 0); e.OK {
		t.Errorf("year out of range should yield no event")
	}
}

func TestIsDay(t *testing.T) {
	noonUTC := civil.FromUnix(1717243200) // 2024-06-01T12:00:00Z
	if !astro.IsDay(noonUTC, budapest, cet, 0, 0) {
		t.Errorf("midday should be day")
	}
	midnight := civil.FromUnix(1717200000) // 2024-06-01T00:00:00Z, 02:00 CEST
	if astro.IsDay(midnight, budapest, cet, 0, 0) {
		t.Errorf("night should not be day")
	}
	// Offsets that invert the window report false rather than wrapping.
	if astro.IsDay(noonUTC, budapest, cet, 12*3600, -12*3600) {
		t.Errorf("inverted window should be false")
	}
	// A large negative rise offset widens the window into the night.
	if !astro.IsDay(midnight, budapest, cet, -6*3600, 0) {
		t.Errorf("widened window should cover early morning")
	}
}

func TestApparentSolarNoon(t *testing.T) {
	noon := astro.ApparentSolarNoon(2024, 6, 1, budapest)
	if !noon.OK {
		t.Fatal("no solar noon")
	}
	rise := astro.SunEvent(true, 2024, 6, 1, budapest, 0)
	set := astro.SunEvent(false, 2024, 6, 1, budapest, 0)
	if !(rise.At < noon.At && noon.At < set.At) {
		t.Errorf("noon %v outside rise %v .. set %v", noon.At, rise.At, set.At)
	}
}

func TestSolstices(t *testing.T) {
	for _, tc := range []struct {
		got  civil.Instant
		want int64
	}{
		{astro.March(2024), 1710903960},     // 2024-03-20T03:06Z
		{astro.June(2024), 1718916660},      // 2024-06-20T20:51Z
		{astro.September(2024), 1727009040}, // 2024-09-22T12:44Z
		{astro.December(2024), 1734772800},  // 2024-12-21T09:20Z
	} {
		near(t, tc.got, civil.FromUnix(tc.want), 600)
	}
}
