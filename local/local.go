// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package local resolves instants to local civil fields under a POSIX TZ
// rule and composes local wall-clock fields back into instants. An empty
// rule string selects the ambient rule (see package tz).
package local

import (
	"errors"

	"github.com/skycal/almanac/civil"
	"github.com/skycal/almanac/tz"
)

var errNotResolved = errors.New("resolution is not valid")

// DSTPolicy controls how Compose treats fields near a daylight-saving
// transition.
type DSTPolicy int

const (
	// Auto lets the zone rule decide. Nonexistent wall-clock times
	// (inside the spring-forward gap) resolve with the standard offset,
	// which rolls the clock forward across the gap; doubled times (the
	// repeated autumn hour) resolve to the earlier, daylight-saving
	// instant.
	Auto DSTPolicy = -1
	// Standard interprets the fields as standard time unconditionally.
	Standard DSTPolicy = 0
)

// Resolution is the local-time view of an instant: the civil fields on the
// local wall clock, the UTC offset in minutes (positive when local time is
// ahead of UTC) and the source instant. OK is false when the shifted instant
// falls outside the supported civil year range.
type Resolution struct {
	OK            bool
	Fields        civil.Fields
	OffsetMinutes int
	DST           bool
	Instant       civil.Instant
}

// Resolve decomposes the instant into local civil fields under the rule.
// Interpreting the resulting fields as if they were UTC and subtracting the
// instant recovers the offset exactly; the offset is reported in whole
// minutes.
func Resolve(at civil.Instant, rule string) Resolution {
	r, err := tz.Resolve(rule)
	if err != nil {
		return Resolution{}
	}
	offset, dst := r.Lookup(at)
	f, ok := (at + civil.Instant(offset)).UTC()
	if !ok {
		return Resolution{}
	}
	return Resolution{
		OK:            true,
		Fields:        f,
		OffsetMinutes: offset / 60,
		DST:           dst,
		Instant:       at,
	}
}

// Compose converts local wall-clock fields under the rule into an instant.
// It fails (ok=false) when the fields are out of range or the rule does not
// parse. The day is clamped to the month's length first, matching the civil
// encoder.
func Compose(f civil.Fields, rule string, policy DSTPolicy) (civil.Instant, bool) {
	r, err := tz.Resolve(rule)
	if err != nil {
		return 0, false
	}
	if f.Year < civil.MinYear || f.Year > civil.MaxYear ||
		f.Month < 1 || f.Month > 12 || !civil.ValidClock(f.Hour, f.Minute, f.Second) {
		return 0, false
	}
	f.Day = civil.ClampDay(f.Year, f.Month, f.Day)
	asUTC := civil.FromFields(f)
	if policy == Standard || r.StdOffset() == r.DSTOffset() {
		return asUTC - civil.Instant(r.StdOffset()), true
	}

	stdCandidate := asUTC - civil.Instant(r.StdOffset())
	dstCandidate := asUTC - civil.Instant(r.DSTOffset())
	_, stdIsDST := r.Lookup(stdCandidate)
	_, dstIsDST := r.Lookup(dstCandidate)
	stdValid := !stdIsDST
	dstValid := dstIsDST
	switch {
	case stdValid && dstValid:
		// The doubled autumn hour: both readings exist. The DST reading
		// is the earlier instant.
		return dstCandidate, true
	case dstValid:
		return dstCandidate, true
	case stdValid:
		return stdCandidate, true
	default:
		// Neither reading exists: the time falls in the spring-forward
		// gap. The standard offset lands past the gap.
		return stdCandidate, true
	}
}

// IsDST reports whether daylight saving is in effect at the instant under
// the rule.
func IsDST(at civil.Instant, rule string) bool {
	r, err := tz.Resolve(rule)
	if err != nil {
		return false
	}
	_, dst := r.Lookup(at)
	return dst
}

// Weekday returns the local day of the week, 0=Sunday through 6=Saturday.
func Weekday(at civil.Instant, rule string) int {
	r, err := tz.Resolve(rule)
	if err != nil {
		return at.Weekday()
	}
	offset, _ := r.Lookup(at)
	return (at + civil.Instant(offset)).Weekday()
}

// Format renders the resolution's fields using a named style; the ISO8601
// style trails the numeric UTC offset.
func (r Resolution) Format(style civil.Style) (string, error) {
	return r.FormatPattern(style.LocalPattern())
}

// FormatPattern renders the resolution's fields with a strftime pattern.
func (r Resolution) FormatPattern(pattern string) (string, error) {
	if !r.OK {
		return "", errNotResolved
	}
	return civil.FormatFields(r.Fields, r.OffsetMinutes*60, pattern)
}
