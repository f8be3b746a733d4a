// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"math"

	"github.com/skycal/almanac/civil"
)

// The lunar series below is referenced to its own Julian-day origin
// (JD 2444238.5, the 1980 epoch conventional for this family of formulas).
// It is deliberately not unified with the J2000 epoch of the solar solver.
const lunarEpoch = 2444238.5

// lunarJulianDay is the Julian-day conversion used by the lunar series; the
// Gregorian correction applies only to dates after 1582-10-15, and day may
// carry a fraction for the time of day.
func lunarJulianDay(year, month int, day float64) float64 {
	b := 0
	if month < 3 {
		year--
		month += 12
	}
	if year > 1582 || (year == 1582 && month > 10) || (year == 1582 && month == 10 && day > 15) {
		a := year / 100
		b = 2 - a + a/4
	}
	c := 365.25 * float64(year)
	e := 30.6001 * float64(month+1)
	return float64(b) + c + e + day + 1720994.5
}

// sunEclipticLongitude returns the Sun's ecliptic longitude in degrees for
// j days past the lunar epoch. The eccentric anomaly is found by Newton
// iteration of Kepler's equation, converged to 1e-12.
func sunEclipticLongitude(j float64) float64 {
	n := 360 / 365.2422 * j
	n -= float64(int64(n/360)) * 360
	x := n - 3.762863
	if x < 0 {
		x += 360
	}
	x = degToRad(x)
	e := x
	for {
		dl := e - 0.016718*math.Sin(e) - x
		e -= dl / (1 - 0.016718*math.Cos(e))
		if math.Abs(dl) < 1e-12 {
			break
		}
	}
	v := 360 / math.Pi * math.Atan(1.01686011182*math.Tan(e/2))
	l := v + 282.596403
	l -= float64(int64(l/360)) * 360
	return l
}

// moonEclipticLongitude returns the Moon's ecliptic longitude in degrees,
// built from the mean longitude plus the classical perturbation terms:
// evection, annual equation, Earth-eccentricity correction, correction of
// center, and a final periodic term. The coefficients determine phase
// accuracy and are kept exactly.
func moonEclipticLongitude(j, sunLon float64) float64 {
	ms := 0.985647332099*j - 3.762863
	if ms < 0 {
		ms += 360
	}
	l := 13.176396*j + 64.975464
	l -= float64(int64(l/360)) * 360
	if l < 0 {
		l += 360
	}
	mm := l - 0.1114041*j - 349.383063
	mm -= float64(int64(mm/360)) * 360
	ev := 1.2739 * math.Sin(degToRad(2*(l-sunLon)-mm))
	sms := math.Sin(degToRad(ms))
	ae := 0.1858 * sms
	mm += ev - ae - 0.37*sms
	ec := 6.2886 * math.Sin(degToRad(mm))
	l += ev + ec - ae + 0.214*math.Sin(degToRad(2*mm))
	l += 0.6583 * math.Sin(degToRad(2*(l-sunLon)))
	return l
}

// MoonPhase returns the lunar phase angle and illuminated fraction at the
// instant. The phase angle is the Moon-Sun ecliptic longitude difference
// normalized to [0,360); illumination is (1-cos(angle))/2.
func MoonPhase(at civil.Instant) Phase {
	f, ok := at.UTC()
	if !ok {
		return Phase{}
	}
	hour := float64(f.Hour) + float64(f.Minute*60+f.Second)/3600
	j := lunarJulianDay(f.Year, f.Month, float64(f.Day)+hour/24) - lunarEpoch
	sunLon := sunEclipticLongitude(j)
	moonLon := moonEclipticLongitude(j, sunLon)
	angle := moonLon - sunLon
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = math.Mod(angle, 360)
	}
	return Phase{
		OK:           true,
		AngleDegrees: int(angle),
		Illumination: (1 - math.Cos(degToRad(moonLon-sunLon))) / 2,
	}
}
