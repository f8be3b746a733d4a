// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civil provides conversion between absolute instants (epoch seconds)
// and proleptic-Gregorian civil calendar fields, valid over the year range
// 0000-9999 independently of any platform calendar primitive.
package civil

const (
	// SecondsPerMinute etc. are exported for use by the arithmetic layer.
	SecondsPerMinute int64 = 60
	SecondsPerHour   int64 = 60 * SecondsPerMinute
	SecondsPerDay    int64 = 24 * SecondsPerHour

	// MinYear and MaxYear bound the civil years accepted as input and
	// produced as output.
	MinYear = 0
	MaxYear = 9999
)

// Instant is an absolute point in time expressed as seconds since
// 1970-01-01T00:00:00Z. It is the sole canonical representation of a point
// in time; civil and local fields are views derived from it.
type Instant int64

// FromUnix returns the Instant for the given epoch seconds.
func FromUnix(seconds int64) Instant {
	return Instant(seconds)
}

// Unix returns the instant as epoch seconds.
func (i Instant) Unix() int64 {
	return int64(i)
}

// Fields is the civil calendar/clock view of an instant: proleptic-Gregorian
// year, month (1-12), day (1-31), hour (0-23), minute (0-59) and
// second (0-59). The parsers additionally accept second 60 for nominal
// leap-second slots; decomposition never produces it.
type Fields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var daysPerMonth = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year, or 0 if month is outside 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 {
		return DaysInFeb(year)
	}
	return daysPerMonth[month-1]
}

// ClampDay limits day to the valid range for the given year and month.
// Days below 1 clamp to 1; days beyond the month's length clamp to its last
// day. The day is returned unchanged when month is invalid.
func ClampDay(year, month, day int) int {
	maxDay := DaysInMonth(year, month)
	if maxDay <= 0 {
		return day
	}
	if day < 1 {
		return 1
	}
	if day > maxDay {
		return maxDay
	}
	return day
}

// MonthName returns the English name for month 1-12 and "" otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ValidClock reports whether hour, minute and second form a valid time of
// day (leap-second slots excluded).
func ValidClock(hour, minute, second int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60 && second >= 0 && second < 60
}

// daysFromCivil converts a civil date to days since the epoch using 400-year
// era blocks with 100-year and 4-year corrections. The month index is shifted
// so March is 0 and February 11, placing the leap day last. Exact for any
// int year; no iteration and no dependence on a platform time type.
func daysFromCivil(year, month, day int) int64 {
	if month <= 2 {
		year--
	}
	era := year
	if year < 0 {
		era = year - 399
	}
	era /= 400
	yoe := int64(year - era*400) // [0, 399]
	mp := month - 3
	if month <= 2 {
		mp = month + 9
	}
	doy := int64(153*mp+2)/5 + int64(day) - 1    // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy       // [0, 146096]
	return int64(era)*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year, month, day int) {
	z := days + 719468
	era := z
	if z < 0 {
		era = z - 146096
	}
	era /= 146097
	doe := z - era*146097                                        // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // [0, 365]
	mp := (5*doy + 2) / 153                                      // [0, 11]
	d := doy - (153*mp+2)/5 + 1                                  // [1, 31]
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// UTC decomposes the instant into UTC civil fields. The second return value
// is false when the civil year falls outside 0000-9999, in which case the
// zero Fields value is returned.
func (i Instant) UTC() (Fields, bool) {
	days := floorDiv(int64(i), SecondsPerDay)
	rem := floorMod(int64(i), SecondsPerDay)
	year, month, day := civilFromDays(days)
	if year < MinYear || year > MaxYear {
		return Fields{}, false
	}
	return Fields{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   int(rem / SecondsPerHour),
		Minute: int(rem % SecondsPerHour / SecondsPerMinute),
		Second: int(rem % SecondsPerMinute),
	}, true
}

// Weekday returns the day of the week of the instant's UTC civil date,
// 0=Sunday through 6=Saturday.
func (i Instant) Weekday() int {
	days := floorDiv(int64(i), SecondsPerDay)
	return int(floorMod(days+4, 7)) // 1970-01-01 was a Thursday
}

// Time encodes civil fields as an Instant. The day is clamped to the number
// of days in the month. The zero Instant is returned when the year, month or
// clock fields are out of range.
func Time(year, month, day, hour, minute, second int) Instant {
	if year < MinYear || year > MaxYear || month < 1 || month > 12 || !ValidClock(hour, minute, second) {
		return 0
	}
	day = ClampDay(year, month, day)
	return encode(year, month, day, hour, minute, second)
}

// Date is shorthand for Time at midnight.
func Date(year, month, day int) Instant {
	return Time(year, month, day, 0, 0, 0)
}

// FromFields encodes the given fields, clamping the day as Time does.
func FromFields(f Fields) Instant {
	return Time(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
}

// encode performs the day-counting conversion without range validation.
// A second of 60 is carried linearly into the next minute.
func encode(year, month, day, hour, minute, second int) Instant {
	days := daysFromCivil(year, month, day)
	return Instant(days*SecondsPerDay +
		int64(hour)*SecondsPerHour +
		int64(minute)*SecondsPerMinute +
		int64(second))
}
