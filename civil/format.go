// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// Style selects one of the fixed named formats.
type Style int

const (
	// StyleISO8601 is YYYY-MM-DDTHH:MM:SSZ for UTC output. The local
	// variant (see package local) trails a numeric UTC offset instead.
	StyleISO8601 Style = iota
	// StyleDateTime is YYYY-MM-DD HH:MM:SS.
	StyleDateTime
	// StyleDate is YYYY-MM-DD.
	StyleDate
	// StyleTime is HH:MM:SS.
	StyleTime
)

// UTCPattern returns the strftime pattern for the style when formatting UTC.
func (s Style) UTCPattern() string {
	switch s {
	case StyleISO8601:
		return "%Y-%m-%dT%H:%M:%SZ"
	case StyleDateTime:
		return "%Y-%m-%d %H:%M:%S"
	case StyleDate:
		return "%Y-%m-%d"
	case StyleTime:
		return "%H:%M:%S"
	}
	return ""
}

// LocalPattern returns the strftime pattern for the style when formatting
// local time. Only the ISO8601 pattern differs, trailing the numeric offset.
func (s Style) LocalPattern() string {
	if s == StyleISO8601 {
		return "%Y-%m-%dT%H:%M:%S%z"
	}
	return s.UTCPattern()
}

// Format renders the instant's UTC civil fields using the named style.
func Format(i Instant, style Style) (string, error) {
	return FormatPattern(i, style.UTCPattern())
}

// FormatPattern renders the instant's UTC civil fields using a strftime
// pattern. It fails for an empty pattern or for instants outside the
// supported year range.
func FormatPattern(i Instant, pattern string) (string, error) {
	f, ok := i.UTC()
	if !ok {
		return "", fmt.Errorf("instant %d outside formattable range", i.Unix())
	}
	return FormatFields(f, 0, pattern)
}

// FormatFields renders already decomposed fields with the given UTC offset in
// seconds; %z renders the offset. The zero offset renders as +0000, so UTC
// styles use explicit literal Z patterns.
func FormatFields(f Fields, offsetSeconds int, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("empty format pattern")
	}
	loc := time.UTC
	if offsetSeconds != 0 {
		loc = time.FixedZone("", offsetSeconds)
	}
	t := time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, loc)
	return strftime.Format(pattern, t), nil
}
