// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"

	"github.com/skycal/almanac/civil"
)

// jdeToDate converts a Julian ephemeris day to the UTC midnight instant of
// its calendar date.
func jdeToDate(jde float64) civil.Instant {
	y, m, d := julian.JDToCalendar(jde)
	return civil.Date(y, int(m), int(d))
}

// December returns the date of the winter solstice.
func December(year int) civil.Instant {
	return jdeToDate(solstice.December(year))
}

// March returns the date of the vernal equinox.
func March(year int) civil.Instant {
	return jdeToDate(solstice.March(year))
}

// June returns the date of the summer solstice.
func June(year int) civil.Instant {
	return jdeToDate(solstice.June(year))
}

// September returns the date of the autumnal equinox.
func September(year int) civil.Instant {
	return jdeToDate(solstice.September(year))
}
