// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tz parses POSIX-style TZ rule strings (for example
// "CET-1CEST,M3.5.0/2,M10.5.0/3") and evaluates the UTC offset and daylight
// saving state they imply for an instant. No timezone database is consulted;
// a rule string is the complete description of a zone's behaviour.
package tz

import (
	"errors"
	"fmt"

	"github.com/skycal/almanac/civil"
)

// ErrInvalidRule is wrapped by all parse failures.
var ErrInvalidRule = errors.New("invalid TZ rule")

const defaultRuleSeconds = 2 * 60 * 60 // transitions default to 02:00:00 wall time

type dateKind int

const (
	dateMonthWeekDay dateKind = iota // Mm.w.d
	dateJulianNoLeap                 // Jn, 1-365, Feb 29 never counted
	dateZeroBased                    // n, 0-365, Feb 29 counted
)

// transition is one switch point of a rule, expressed as a recurring date
// plus a wall-clock time of day.
type transition struct {
	kind    dateKind
	month   int // 1-12 for dateMonthWeekDay
	week    int // 1-5, 5 meaning last
	day     int // 0=Sunday for dateMonthWeekDay, day number otherwise
	seconds int // wall-clock seconds after midnight, may be negative or >24h
}

// Rule is a parsed POSIX TZ rule. The zero value is not usable; obtain one
// from Parse.
type Rule struct {
	src       string
	stdAbbr   string
	dstAbbr   string
	stdOffset int // seconds east of UTC (local - UTC); sign flipped from POSIX
	dstOffset int
	hasDST    bool
	start     transition // standard time -> DST, wall time in standard time
	end       transition // DST -> standard time, wall time in DST
}

// String returns the rule as parsed.
func (r *Rule) String() string { return r.src }

// StdOffset returns the standard-time offset in seconds, local minus UTC.
func (r *Rule) StdOffset() int { return r.stdOffset }

// DSTOffset returns the daylight-saving offset in seconds, local minus UTC.
// For rules without a DST part it equals StdOffset.
func (r *Rule) DSTOffset() int {
	if !r.hasDST {
		return r.stdOffset
	}
	return r.dstOffset
}

// UTC is the fixed rule used when no other rule is configured.
var UTC = mustParse("UTC0")

func mustParse(s string) *Rule {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse parses a POSIX TZ rule string: std offset [dst [offset]][,start[/time],end[/time]].
// A rule naming a DST zone without transition dates uses the common libc
// default of M3.2.0,M11.1.0 (US rules).
func Parse(s string) (*Rule, error) {
	p := &parser{s: s}
	r := &Rule{src: s}
	var err error
	if r.stdAbbr, err = p.abbr(); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidRule)
	}
	off, err := p.offset(24 * 3600)
	if err != nil {
		return nil, fmt.Errorf("%q: standard offset: %v: %w", s, err, ErrInvalidRule)
	}
	r.stdOffset = -off // POSIX offsets are west-positive
	if p.done() {
		return r, nil
	}
	if p.peek() != ',' {
		if r.dstAbbr, err = p.abbr(); err != nil {
			return nil, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidRule)
		}
		r.hasDST = true
		r.dstOffset = r.stdOffset + 3600
		if !p.done() && p.peek() != ',' {
			if off, err = p.offset(24 * 3600); err != nil {
				return nil, fmt.Errorf("%q: dst offset: %v: %w", s, err, ErrInvalidRule)
			}
			r.dstOffset = -off
		}
	}
	if p.done() {
		if r.hasDST {
			r.start = transition{kind: dateMonthWeekDay, month: 3, week: 2, day: 0, seconds: defaultRuleSeconds}
			r.end = transition{kind: dateMonthWeekDay, month: 11, week: 1, day: 0, seconds: defaultRuleSeconds}
		}
		return r, nil
	}
	if !r.hasDST {
		return nil, fmt.Errorf("%q: transition dates without a dst zone: %w", s, ErrInvalidRule)
	}
	if err = p.expect(','); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidRule)
	}
	if r.start, err = p.transition(); err != nil {
		return nil, fmt.Errorf("%q: start rule: %v: %w", s, err, ErrInvalidRule)
	}
	if err = p.expect(','); err != nil {
		return nil, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidRule)
	}
	if r.end, err = p.transition(); err != nil {
		return nil, fmt.Errorf("%q: end rule: %v: %w", s, err, ErrInvalidRule)
	}
	if !p.done() {
		return nil, fmt.Errorf("%q: trailing text %q: %w", s, p.rest(), ErrInvalidRule)
	}
	return r, nil
}

// Lookup returns the UTC offset in seconds (local minus UTC) and whether
// daylight saving is in effect at the given instant.
func (r *Rule) Lookup(at civil.Instant) (offsetSeconds int, dst bool) {
	if !r.hasDST {
		return r.stdOffset, false
	}
	f, ok := at.UTC()
	if !ok {
		return r.stdOffset, false
	}
	start := r.transitionInstant(f.Year, r.start, r.stdOffset)
	end := r.transitionInstant(f.Year, r.end, r.dstOffset)
	var active bool
	if start <= end {
		active = at >= start && at < end
	} else {
		// Southern hemisphere: DST spans the year boundary.
		active = at >= start || at < end
	}
	if active {
		return r.dstOffset, true
	}
	return r.stdOffset, false
}

// OffsetMinutes returns the offset at the instant rounded to whole minutes.
func (r *Rule) OffsetMinutes(at civil.Instant) int {
	off, _ := r.Lookup(at)
	return off / 60
}

// transitionInstant resolves a recurring transition to the UTC instant it
// occurs at in the given year. offset is the offset in effect as the
// transition is approached (standard for the start rule, DST for the end).
func (r *Rule) transitionInstant(year int, tr transition, offset int) civil.Instant {
	var month, day int
	switch tr.kind {
	case dateMonthWeekDay:
		month = tr.month
		first := civil.Date(year, month, 1).Weekday()
		day = 1 + (tr.day-first+7)%7 + (tr.week-1)*7
		if day > civil.DaysInMonth(year, month) {
			day -= 7
		}
	case dateJulianNoLeap:
		month, day = monthDayFromJulian(tr.day)
	case dateZeroBased:
		// Zero-based day numbers count Feb 29 when the year has one.
		n := tr.day
		switch {
		case civil.IsLeap(year) && n == 59:
			month, day = 2, 29
		case civil.IsLeap(year) && n > 59:
			month, day = monthDayFromJulian(n)
		default:
			month, day = monthDayFromJulian(n + 1)
		}
	}
	midnight := civil.Date(year, month, day)
	return midnight + civil.Instant(tr.seconds) - civil.Instant(offset)
}

// monthDayFromJulian maps a 1-365 day number (no leap day) to month and day.
func monthDayFromJulian(n int) (month, day int) {
	for m := 1; m <= 12; m++ {
		d := civil.DaysInMonth(2023, m) // any non-leap year
		if n <= d {
			return m, n
		}
		n -= d
	}
	return 12, 31
}
