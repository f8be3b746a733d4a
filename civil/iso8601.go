// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidISO8601 is returned for text that is not exactly
	// YYYY-MM-DDTHH:MM:SSZ.
	ErrInvalidISO8601 = errors.New("invalid ISO8601 UTC timestamp")
	// ErrInvalidDateTime is returned for text that is not exactly
	// YYYY-MM-DD HH:MM:SS.
	ErrInvalidDateTime = errors.New("invalid date-time")
)

// fixedDigits parses exactly n ASCII digits of s starting at off and range
// checks the value.
func fixedDigits(s string, off, n, minVal, maxVal int) (int, bool) {
	v := 0
	for i := off; i < off+n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	if v < minVal || v > maxVal {
		return 0, false
	}
	return v, true
}

func parseFixedFields(s string) (Fields, error) {
	var f Fields
	var ok bool
	if f.Year, ok = fixedDigits(s, 0, 4, MinYear, MaxYear); !ok {
		return f, fmt.Errorf("year %q", s[0:4])
	}
	if f.Month, ok = fixedDigits(s, 5, 2, 1, 12); !ok {
		return f, fmt.Errorf("month %q", s[5:7])
	}
	if f.Day, ok = fixedDigits(s, 8, 2, 1, 31); !ok {
		return f, fmt.Errorf("day %q", s[8:10])
	}
	if f.Hour, ok = fixedDigits(s, 11, 2, 0, 23); !ok {
		return f, fmt.Errorf("hour %q", s[11:13])
	}
	if f.Minute, ok = fixedDigits(s, 14, 2, 0, 59); !ok {
		return f, fmt.Errorf("minute %q", s[14:16])
	}
	// 60 is accepted for nominal leap-second slots and carries into the
	// next minute on encoding.
	if f.Second, ok = fixedDigits(s, 17, 2, 0, 60); !ok {
		return f, fmt.Errorf("second %q", s[17:19])
	}
	if f.Day > DaysInMonth(f.Year, f.Month) {
		return f, fmt.Errorf("day %d exceeds %s %d", f.Day, MonthName(f.Month), f.Year)
	}
	return f, nil
}

// ParseISO8601 parses text of the exact form YYYY-MM-DDTHH:MM:SSZ (length 20,
// fixed field positions, case-insensitive T and Z) as a UTC instant.
func ParseISO8601(s string) (Instant, error) {
	if len(s) != 20 || s[4] != '-' || s[7] != '-' ||
		(s[10] != 'T' && s[10] != 't') || s[13] != ':' || s[16] != ':' ||
		(s[19] != 'Z' && s[19] != 'z') {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidISO8601)
	}
	f, err := parseFixedFields(s)
	if err != nil {
		return 0, fmt.Errorf("%q: invalid %v: %w", s, err, ErrInvalidISO8601)
	}
	return encode(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second), nil
}

// ParseDateTime parses text of the exact form YYYY-MM-DD HH:MM:SS
// (length 19) into civil fields. The fields carry no zone; callers compose
// them as local time with the zone rule left to decide DST.
func ParseDateTime(s string) (Fields, error) {
	if len(s) != 19 || s[4] != '-' || s[7] != '-' || s[10] != ' ' ||
		s[13] != ':' || s[16] != ':' {
		return Fields{}, fmt.Errorf("%q: %w", s, ErrInvalidDateTime)
	}
	f, err := parseFixedFields(s)
	if err != nil {
		return Fields{}, fmt.Errorf("%q: invalid %v: %w", s, err, ErrInvalidDateTime)
	}
	return f, nil
}
