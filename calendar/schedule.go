// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"github.com/skycal/almanac/civil"
	"github.com/skycal/almanac/local"
)

// NextDailyAtLocal returns the next instant at which the local wall clock
// under the rule reads hour:minute:second, at or after from. When today's
// slot has already passed the result falls on the following day. from is
// returned unchanged for invalid clock fields.
func NextDailyAtLocal(hour, minute, second int, from civil.Instant, rule string) civil.Instant {
	if !civil.ValidClock(hour, minute, second) {
		return from
	}
	candidate := SetTimeOfDayLocal(from, rule, hour, minute, second)
	if !IsAfter(from, candidate) {
		return candidate
	}
	return SetTimeOfDayLocal(AddDays(from, 1), rule, hour, minute, second)
}

// NextWeekdayAtLocal returns the next instant falling on the given local
// weekday (0=Sunday) at the given local time, strictly after from when
// today's slot has passed. from is returned unchanged for invalid fields.
func NextWeekdayAtLocal(weekday, hour, minute, second int, from civil.Instant, rule string) civil.Instant {
	if !civil.ValidClock(hour, minute, second) || weekday < 0 || weekday > 6 {
		return from
	}
	current := local.Weekday(from, rule)
	daysAhead := (weekday - current + 7) % 7
	candidate := SetTimeOfDayLocal(AddDays(from, daysAhead), rule, hour, minute, second)
	if daysAhead == 0 && IsAfter(from, candidate) {
		candidate = SetTimeOfDayLocal(AddDays(from, 7), rule, hour, minute, second)
	}
	return candidate
}
