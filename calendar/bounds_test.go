// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"testing"

	"github.com/skycal/almanac/calendar"
	"github.com/skycal/almanac/civil"
)

const cet = "CET-1CEST,M3.5.0/2,M10.5.0/3"

func TestBoundsUTC(t *testing.T) {
	at := civil.FromUnix(1721039445) // 2024-07-15T10:30:45Z
	for _, tc := range []struct {
		got  civil.Instant
		want int64
	}{
		{calendar.StartOfDayUTC(at), 1721001600},   // 2024-07-15T00:00:00Z
		{calendar.EndOfDayUTC(at), 1721087999},     // 2024-07-15T23:59:59Z
		{calendar.StartOfMonthUTC(at), 1719792000}, // 2024-07-01
		{calendar.EndOfMonthUTC(at), 1722470399},   // 2024-07-31T23:59:59Z
		{calendar.StartOfYearUTC(at), 1704067200},  // 2024-01-01
	} {
		if tc.got.Unix() != tc.want {
			t.Errorf("got %v, want %v", tc.got.Unix(), tc.want)
		}
	}
}

func TestSetTimeOfDayUTC(t *testing.T) {
	at := civil.FromUnix(1721039445)
	got := calendar.SetTimeOfDayUTC(at, 6, 15, 0)
	if want := int64(1721024100); got.Unix() != want { // 2024-07-15T06:15:00Z
		t.Errorf("got %v, want %v", got.Unix(), want)
	}
	// Invalid clock fields leave the instant unchanged.
	if got := calendar.SetTimeOfDayUTC(at, 24, 0, 0); got != at {
		t.Errorf("got %v, want %v", got, at)
	}
}

func TestBoundsLocal(t *testing.T) {
	// 2024-07-15T10:30:45Z is 12:30:45 CEST; local midnight is 22:00Z the
	// previous day.
	at := civil.FromUnix(1721039445)
	if got, want := calendar.StartOfDayLocal(at, cet).Unix(), int64(1720994400); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.EndOfDayLocal(at, cet).Unix(), int64(1721080799); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.StartOfMonthLocal(at, cet).Unix(), int64(1719784800); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.StartOfYearLocal(at, cet).Unix(), int64(1704063600); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEndOfMonthLocalDSTBoundary(t *testing.T) {
	// October under CET ends after the fall-back transition, so the local
	// month is an hour longer than its UTC counterpart.
	at := civil.FromUnix(1728950400) // 2024-10-15T00:00:00Z
	got := calendar.EndOfMonthLocal(at, cet)
	if want := int64(1730415599); got.Unix() != want { // 2024-10-31T22:59:59Z
		t.Errorf("got %v, want %v", got.Unix(), want)
	}
}

func TestNextDailyAtLocal(t *testing.T) {
	// 08:00 UTC slots around a 2025-06-15T08:30Z anchor.
	from := civil.FromUnix(1749976200)
	if got, want := calendar.NextDailyAtLocal(9, 0, 0, from, "UTC0").Unix(), int64(1749978000); got != want {
		t.Errorf("today's later slot: got %v, want %v", got, want)
	}
	if got, want := calendar.NextDailyAtLocal(8, 0, 0, from, "UTC0").Unix(), int64(1750060800); got != want {
		t.Errorf("tomorrow's slot: got %v, want %v", got, want)
	}
	// An exact hit returns from itself.
	at := civil.FromUnix(1749978000)
	if got := calendar.NextDailyAtLocal(9, 0, 0, at, "UTC0"); got != at {
		t.Errorf("got %v, want %v", got, at)
	}
}

func TestNextWeekdayAtLocal(t *testing.T) {
	// From Wednesday 2025-03-05T06:59Z to Monday 09:30.
	from := civil.FromUnix(1741157940)
	if got, want := calendar.NextWeekdayAtLocal(1, 9, 30, 0, from, "UTC0").Unix(), int64(1741599000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Same weekday, slot already passed: a full week ahead.
	monday := civil.FromUnix(1741599000) // Monday 09:30
	if got, want := calendar.NextWeekdayAtLocal(1, 9, 0, 0, monday, "UTC0").Unix(), int64(1742202000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Same weekday, slot still ahead today.
	if got, want := calendar.NextWeekdayAtLocal(1, 10, 0, 0, monday, "UTC0").Unix(), int64(1741600800); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
