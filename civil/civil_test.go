// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil_test

import (
	"testing"

	"github.com/skycal/almanac/civil"
)

func TestUTCDecomposition(t *testing.T) {
	for _, tc := range []struct {
		unix int64
		want civil.Fields
	}{
		{0, civil.Fields{1970, 1, 1, 0, 0, 0}},
		{1704067200, civil.Fields{2024, 1, 1, 0, 0, 0}},
		{1735689600, civil.Fields{2025, 1, 1, 0, 0, 0}},
		{1767225570, civil.Fields{2025, 12, 31, 23, 59, 30}},
		{951782400, civil.Fields{2000, 2, 29, 0, 0, 0}},
		{1721039445, civil.Fields{2024, 7, 15, 10, 30, 45}},
		{-86400, civil.Fields{1969, 12, 31, 0, 0, 0}},
	} {
		f, ok := civil.FromUnix(tc.unix).UTC()
		if !ok {
			t.Errorf("%v: decomposition failed", tc.unix)
			continue
		}
		if got, want := f, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.unix, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Sweep day boundaries across several leap configurations.
	for _, year := range []int{0, 1, 1600, 1900, 1970, 2000, 2024, 2100, 9999} {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 28, civil.DaysInMonth(year, month)} {
				at := civil.Date(year, month, day)
				f, ok := at.UTC()
				if !ok {
					t.Fatalf("%04d-%02d-%02d: decomposition failed", year, month, day)
				}
				if f.Year != year || f.Month != month || f.Day != day {
					t.Errorf("%04d-%02d-%02d: got %04d-%02d-%02d", year, month, day, f.Year, f.Month, f.Day)
				}
				if got, want := civil.FromFields(f), at; got != want {
					t.Errorf("%04d-%02d-%02d: re-encode got %v, want %v", year, month, day, got, want)
				}
			}
		}
	}
}

func TestYearRange(t *testing.T) {
	if _, ok := civil.Date(0, 1, 1).UTC(); !ok {
		t.Errorf("year 0 should decompose")
	}
	if _, ok := civil.Date(9999, 12, 31).UTC(); !ok {
		t.Errorf("year 9999 should decompose")
	}
	if _, ok := (civil.Date(0, 1, 1) - 1).UTC(); ok {
		t.Errorf("instant before year 0 should fail")
	}
	if _, ok := (civil.Date(9999, 12, 31) + civil.Instant(civil.SecondsPerDay)).UTC(); ok {
		t.Errorf("instant after year 9999 should fail")
	}
}

func TestLeap(t *testing.T) {
	for _, tc := range []struct {
		year int
		want bool
	}{
		{2000, true},
		{2024, true},
		{1900, false},
		{2023, false},
		{2100, false},
		{1600, true},
	} {
		if got, want := civil.IsLeap(tc.year), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := civil.DaysInFeb(2024), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.DaysInFeb(2023), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.DaysInMonth(2024, 13), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.DaysInMonth(2024, 0), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeClampsDay(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
		want             int64
	}{
		{2025, 2, 30, 1740700800}, // clamps to Feb 28
		{2024, 2, 30, 1709164800}, // leap year, clamps to Feb 29
		{2024, 4, 31, 1714435200}, // clamps to Apr 30
	} {
		if got, want := civil.Time(tc.year, tc.month, tc.day, 0, 0, 0).Unix(), tc.want; got != want {
			t.Errorf("%04d-%02d-%02d: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
	}
}

func TestTimeRejectsInvalid(t *testing.T) {
	for _, tc := range []struct {
		year, month, day, hour, minute, second int
	}{
		{-1, 1, 1, 0, 0, 0},
		{10000, 1, 1, 0, 0, 0},
		{2024, 0, 1, 0, 0, 0},
		{2024, 13, 1, 0, 0, 0},
		{2024, 1, 1, 24, 0, 0},
		{2024, 1, 1, 0, 60, 0},
		{2024, 1, 1, 0, 0, 61},
	} {
		if got := civil.Time(tc.year, tc.month, tc.day, tc.hour, tc.minute, tc.second); got != 0 {
			t.Errorf("%+v: got %v, want 0", tc, got)
		}
	}
}

func TestWeekday(t *testing.T) {
	for _, tc := range []struct {
		unix int64
		want int
	}{
		{0, 4},           // 1970-01-01 Thursday
		{1721001600, 1},  // 2024-07-15 Monday
		{1704067200, 1},  // 2024-01-01 Monday
		{1735689600, 3},  // 2025-01-01 Wednesday
		{-86400, 3},      // 1969-12-31 Wednesday
	} {
		if got, want := civil.FromUnix(tc.unix).Weekday(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.unix, got, want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got, want := civil.MonthName(1), "January"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.MonthName(12), "December"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civil.MonthName(0), ""; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
