// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"github.com/skycal/almanac/civil"
	"github.com/skycal/almanac/local"
)

// StartOfDayUTC returns midnight of the instant's UTC calendar day.
func StartOfDayUTC(at civil.Instant) civil.Instant {
	f, ok := at.UTC()
	if !ok {
		return at
	}
	return civil.Date(f.Year, f.Month, f.Day)
}

// EndOfDayUTC returns 23:59:59 of the instant's UTC calendar day, exactly
// StartOfDayUTC plus 86399 seconds.
func EndOfDayUTC(at civil.Instant) civil.Instant {
	return AddSeconds(StartOfDayUTC(at), civil.SecondsPerDay-1)
}

// StartOfMonthUTC returns midnight of the first day of the instant's UTC
// month.
func StartOfMonthUTC(at civil.Instant) civil.Instant {
	f, ok := at.UTC()
	if !ok {
		return at
	}
	return civil.Date(f.Year, f.Month, 1)
}

// EndOfMonthUTC returns the last second of the instant's UTC month.
func EndOfMonthUTC(at civil.Instant) civil.Instant {
	return SubSeconds(AddMonths(StartOfMonthUTC(at), 1), 1)
}

// StartOfYearUTC returns midnight of January 1 of the instant's UTC year.
func StartOfYearUTC(at civil.Instant) civil.Instant {
	f, ok := at.UTC()
	if !ok {
		return at
	}
	return civil.Date(f.Year, 1, 1)
}

// SetTimeOfDayUTC replaces the clock fields of the instant's UTC civil date.
// The instant is returned unchanged when the clock fields are invalid.
func SetTimeOfDayUTC(at civil.Instant, hour, minute, second int) civil.Instant {
	if !civil.ValidClock(hour, minute, second) {
		return at
	}
	f, ok := at.UTC()
	if !ok {
		return at
	}
	return civil.Time(f.Year, f.Month, f.Day, hour, minute, second)
}

func resolveOr(at civil.Instant, rule string) (local.Resolution, bool) {
	r := local.Resolve(at, rule)
	return r, r.OK
}

// StartOfDayLocal returns midnight of the instant's local calendar day under
// the rule. An empty rule selects the ambient rule.
func StartOfDayLocal(at civil.Instant, rule string) civil.Instant {
	r, ok := resolveOr(at, rule)
	if !ok {
		return at
	}
	f := r.Fields
	f.Hour, f.Minute, f.Second = 0, 0, 0
	return composeOr(f, rule, at)
}

// EndOfDayLocal returns the last second of the instant's local calendar day.
func EndOfDayLocal(at civil.Instant, rule string) civil.Instant {
	return AddSeconds(StartOfDayLocal(at, rule), civil.SecondsPerDay-1)
}

// StartOfMonthLocal returns local midnight of the first day of the
// instant's local month.
func StartOfMonthLocal(at civil.Instant, rule string) civil.Instant {
	r, ok := resolveOr(at, rule)
	if !ok {
		return at
	}
	f := r.Fields
	f.Day, f.Hour, f.Minute, f.Second = 1, 0, 0, 0
	return composeOr(f, rule, at)
}

// EndOfMonthLocal returns the last second of the instant's local month,
// derived as local midnight of the next month minus one second so that
// days-in-month never needs re-deriving under local civil semantics.
func EndOfMonthLocal(at civil.Instant, rule string) civil.Instant {
	start := StartOfMonthLocal(at, rule)
	r, ok := resolveOr(start, rule)
	if !ok {
		return start
	}
	f := r.Fields
	f.Month++
	if f.Month > 12 {
		f.Month = 1
		f.Year++
	}
	return SubSeconds(composeOr(f, rule, start), 1)
}

// StartOfYearLocal returns local midnight of January 1 of the instant's
// local year.
func StartOfYearLocal(at civil.Instant, rule string) civil.Instant {
	r, ok := resolveOr(at, rule)
	if !ok {
		return at
	}
	f := r.Fields
	f.Month, f.Day, f.Hour, f.Minute, f.Second = 1, 1, 0, 0, 0
	return composeOr(f, rule, at)
}

// SetTimeOfDayLocal replaces the clock fields of the instant's local civil
// date under the rule. The instant is returned unchanged when the clock
// fields are invalid.
func SetTimeOfDayLocal(at civil.Instant, rule string, hour, minute, second int) civil.Instant {
	if !civil.ValidClock(hour, minute, second) {
		return at
	}
	r, ok := resolveOr(at, rule)
	if !ok {
		return at
	}
	f := r.Fields
	f.Hour, f.Minute, f.Second = hour, minute, second
	return composeOr(f, rule, at)
}

// composeOr composes local fields with the rule deciding DST, falling back
// to the given instant when composition fails.
func composeOr(f civil.Fields, rule string, fallback civil.Instant) civil.Instant {
	if at, ok := local.Compose(f, rule, local.Auto); ok {
		return at
	}
	return fallback
}
