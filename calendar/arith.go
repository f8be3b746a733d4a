// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar implements calendar-safe arithmetic on instants: exact
// linear shifts, month and year addition with end-of-month day clamping,
// day/month/year boundary derivation and next-occurrence searches.
package calendar

import (
	"github.com/skycal/almanac/civil"
)

// AddSeconds shifts the instant by the given number of seconds. Linear
// shifts are exact and reversible: AddSeconds(AddSeconds(x, n), -n) == x.
func AddSeconds(at civil.Instant, seconds int64) civil.Instant {
	return at + civil.Instant(seconds)
}

// AddMinutes shifts the instant by whole minutes.
func AddMinutes(at civil.Instant, minutes int64) civil.Instant {
	return AddSeconds(at, minutes*civil.SecondsPerMinute)
}

// AddHours shifts the instant by whole hours.
func AddHours(at civil.Instant, hours int64) civil.Instant {
	return AddSeconds(at, hours*civil.SecondsPerHour)
}

// AddDays shifts the instant by whole days of 86400 seconds.
func AddDays(at civil.Instant, days int) civil.Instant {
	return AddSeconds(at, int64(days)*civil.SecondsPerDay)
}

// AddMonths shifts the instant's UTC civil date by the given number of
// months, clamping the day to the target month's length: Jan 31 plus one
// month is Feb 29 in a leap year and Feb 28 otherwise. The time of day is
// preserved. The instant is returned unchanged when it cannot be decomposed.
func AddMonths(at civil.Instant, months int) civil.Instant {
	f, ok := at.UTC()
	if !ok {
		return at
	}
	total := f.Month - 1 + months
	yearsDelta := floorDiv(total, 12)
	f.Year += yearsDelta
	f.Month = floorMod(total, 12) + 1
	f.Day = civil.ClampDay(f.Year, f.Month, f.Day)
	return civil.FromFields(f)
}

// AddYears shifts the year, clamping Feb 29 to Feb 28 in non-leap years.
func AddYears(at civil.Instant, years int) civil.Instant {
	f, ok := at.UTC()
	if !ok {
		return at
	}
	f.Year += years
	f.Day = civil.ClampDay(f.Year, f.Month, f.Day)
	return civil.FromFields(f)
}

// Subtraction is addition with the negated amount throughout.

func SubSeconds(at civil.Instant, seconds int64) civil.Instant { return AddSeconds(at, -seconds) }

func SubMinutes(at civil.Instant, minutes int64) civil.Instant { return AddMinutes(at, -minutes) }

func SubHours(at civil.Instant, hours int64) civil.Instant { return AddHours(at, -hours) }

func SubDays(at civil.Instant, days int) civil.Instant { return AddDays(at, -days) }

func SubMonths(at civil.Instant, months int) civil.Instant { return AddMonths(at, -months) }

func SubYears(at civil.Instant, years int) civil.Instant { return AddYears(at, -years) }

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
