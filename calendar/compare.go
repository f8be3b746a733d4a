// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "github.com/skycal/almanac/civil"

// DifferenceInSeconds returns a minus b in seconds.
func DifferenceInSeconds(a, b civil.Instant) int64 {
	return a.Unix() - b.Unix()
}

// DifferenceInMinutes returns a minus b in whole minutes, truncated.
func DifferenceInMinutes(a, b civil.Instant) int64 {
	return DifferenceInSeconds(a, b) / civil.SecondsPerMinute
}

// DifferenceInHours returns a minus b in whole hours, truncated.
func DifferenceInHours(a, b civil.Instant) int64 {
	return DifferenceInSeconds(a, b) / civil.SecondsPerHour
}

// DifferenceInDays returns a minus b in whole days, truncated.
func DifferenceInDays(a, b civil.Instant) int64 {
	return DifferenceInSeconds(a, b) / civil.SecondsPerDay
}

func IsBefore(a, b civil.Instant) bool { return a < b }

func IsAfter(a, b civil.Instant) bool { return a > b }

func IsEqual(a, b civil.Instant) bool { return a == b }

// EqualMinutes reports whether a and b fall into the same epoch minute.
// This is a floor division of epoch seconds by 60, not a local-time concept.
func EqualMinutes(a, b civil.Instant) bool {
	return floorDiv64(a.Unix(), civil.SecondsPerMinute) == floorDiv64(b.Unix(), civil.SecondsPerMinute)
}

// SameDayUTC reports whether a and b fall on the same UTC calendar day.
func SameDayUTC(a, b civil.Instant) bool {
	return StartOfDayUTC(a) == StartOfDayUTC(b)
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
