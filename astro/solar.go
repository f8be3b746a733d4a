// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"math"

	"github.com/skycal/almanac/civil"
	"github.com/skycal/almanac/local"
)

// sunAltitude is the solar zenith angle for sunrise and sunset, 90 degrees
// plus standard atmospheric refraction (0.833).
const sunAltitude = 90.833

// JulianDay converts a Gregorian calendar date to a Julian day number
// (Meeus). January and February count as months 13 and 14 of the prior
// year so the leap day falls last.
func JulianDay(year, month, day int) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) + float64(day) + b - 1524.5
}

// julianCenturies converts a Julian day to fractional centuries since J2000.
func julianCenturies(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

func geomMeanLongSun(t float64) float64 {
	l0 := 280.46646 + t*(36000.76983+t*0.0003032)
	for l0 > 360 {
		l0 -= 360
	}
	for l0 < 0 {
		l0 += 360
	}
	return l0
}

func geomMeanAnomalySun(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

func eccentricityEarthOrbit(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

func meanObliquityOfEcliptic(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

func obliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return meanObliquityOfEcliptic(t) + 0.00256*math.Cos(degToRad(omega))
}

func sunEqOfCenter(t float64) float64 {
	m := degToRad(geomMeanAnomalySun(t))
	return math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*m)*(0.019993-0.000101*t) +
		math.Sin(3*m)*0.000289
}

func sunTrueLong(t float64) float64 {
	return geomMeanLongSun(t) + sunEqOfCenter(t)
}

func sunApparentLong(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return sunTrueLong(t) - 0.00569 - 0.00478*math.Sin(degToRad(omega))
}

// sunDeclination returns the Sun's declination in degrees at t centuries
// since J2000.
func sunDeclination(t float64) float64 {
	sint := math.Sin(degToRad(obliquityCorrection(t))) * math.Sin(degToRad(sunApparentLong(t)))
	return radToDeg(math.Asin(sint))
}

// equationOfTime returns the difference between mean and apparent solar
// time in minutes.
func equationOfTime(t float64) float64 {
	epsilon := obliquityCorrection(t)
	l0 := geomMeanLongSun(t)
	e := eccentricityEarthOrbit(t)
	m := geomMeanAnomalySun(t)

	y := math.Tan(degToRad(epsilon) / 2)
	y *= y

	sin2l0 := math.Sin(2 * degToRad(l0))
	sinm := math.Sin(degToRad(m))
	cos2l0 := math.Cos(2 * degToRad(l0))
	sin4l0 := math.Sin(4 * degToRad(l0))
	sin2m := math.Sin(2 * degToRad(m))

	etime := y*sin2l0 - 2*e*sinm + 4*e*y*sinm*cos2l0 - 0.5*y*y*sin4l0 - 1.25*e*e*sin2m
	return radToDeg(etime) * 4
}

// hourAngleSunrise returns the hour angle at which the Sun crosses the
// sunrise altitude. The result is NaN when the crossing never happens:
// an acos argument below -1 is polar day, above 1 polar night.
func hourAngleSunrise(lat, declination float64) float64 {
	latRad := degToRad(lat)
	declRad := degToRad(declination)
	arg := math.Cos(degToRad(sunAltitude))/(math.Cos(latRad)*math.Cos(declRad)) -
		math.Tan(latRad)*math.Tan(declRad)
	return math.Acos(arg)
}

// sunriseSetUTC returns the minutes after UTC midnight of the rise or set
// event for the day of jd, or NaN for polar day/night.
func sunriseSetUTC(rise bool, jd, lat, lon float64) float64 {
	t := julianCenturies(jd)
	eqTime := equationOfTime(t)
	ha := hourAngleSunrise(lat, sunDeclination(t))
	if !rise {
		ha = -ha
	}
	delta := lon + radToDeg(ha)
	return 720 - 4*delta - eqTime
}

// eventMinutes runs the two-pass NOAA solver: a first estimate from the hour
// angle at noon, then a refinement with the hour angle recomputed at the
// estimated event time. Returns local minutes after midnight, or false for
// no event.
func eventMinutes(rise bool, year, month, day int, lat, lon, offsetMinutes float64) (int, bool) {
	jd := JulianDay(year, month, day)
	first := sunriseSetUTC(rise, jd, lat, lon)
	refined := sunriseSetUTC(rise, jd+first/(60*24), lat, lon)
	if math.IsNaN(refined) {
		return 0, false
	}
	return int(math.Round(refined + offsetMinutes)), true
}

// SunEvent computes the sunrise (rise=true) or sunset instant for the civil
// date year/month/day as observed at the coordinate under the given UTC
// offset in minutes. The date is the calendar day under that offset, not
// the UTC day; the event instant is reconstructed from that local day's
// midnight.
func SunEvent(rise bool, year, month, day int, c Coordinate, offsetMinutes float64) Event {
	if !c.Valid() {
		return Event{}
	}
	if year < civil.MinYear || year > civil.MaxYear || month < 1 || month > 12 ||
		day < 1 || day > civil.DaysInMonth(year, month) {
		return Event{}
	}
	minutes, ok := eventMinutes(rise, year, month, day, c.Lat, c.Lon, offsetMinutes)
	if !ok || minutes < 0 || minutes >= 24*60 {
		return Event{}
	}
	offsetSeconds := int64(math.Round(offsetMinutes * 60))
	midnight := civil.Date(year, month, day)
	localMidnight := midnight - civil.Instant(offsetSeconds)
	return Event{OK: true, At: localMidnight + civil.Instant(int64(minutes)*civil.SecondsPerMinute)}
}

// localDate returns the civil calendar date of the instant shifted by the
// offset.
func localDate(at civil.Instant, offsetSeconds int64) (year, month, day int, ok bool) {
	f, ok := (at + civil.Instant(offsetSeconds)).UTC()
	if !ok {
		return 0, 0, 0, false
	}
	return f.Year, f.Month, f.Day, true
}

// SunEventAt computes the event for the calendar day containing at under a
// fixed UTC offset in minutes.
func SunEventAt(rise bool, at civil.Instant, c Coordinate, offsetMinutes float64) Event {
	if !c.Valid() {
		return Event{}
	}
	year, month, day, ok := localDate(at, int64(math.Round(offsetMinutes*60)))
	if !ok {
		return Event{}
	}
	return SunEvent(rise, year, month, day, c, offsetMinutes)
}

// SunEventZone computes the event for the calendar day containing at under
// a POSIX TZ rule; the offset (DST included) is resolved from the rule. An
// empty rule selects the ambient rule.
func SunEventZone(rise bool, at civil.Instant, c Coordinate, rule string) Event {
	if !c.Valid() {
		return Event{}
	}
	r := local.Resolve(at, rule)
	if !r.OK {
		return Event{}
	}
	f := r.Fields
	return SunEvent(rise, f.Year, f.Month, f.Day, c, float64(r.OffsetMinutes))
}

// IsDay reports whether at lies within [sunrise+riseOffset, sunset+setOffset]
// inclusive for the coordinate's day under the rule. False when either event
// does not occur or the shifted window is inverted.
func IsDay(at civil.Instant, c Coordinate, rule string, riseOffsetSec, setOffsetSec int) bool {
	rise := SunEventZone(true, at, c, rule)
	set := SunEventZone(false, at, c, rule)
	if !rise.OK || !set.OK {
		return false
	}
	start := rise.At + civil.Instant(riseOffsetSec)
	end := set.At + civil.Instant(setOffsetSec)
	if start > end {
		return false
	}
	return at >= start && at <= end
}
