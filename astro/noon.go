// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/skycal/almanac/civil"
)

// ApparentSolarNoon returns the instant the Sun crosses the local meridian
// on the given UTC calendar date, taken as the midpoint of rise and set.
func ApparentSolarNoon(year, month, day int, c Coordinate) Event {
	if !c.Valid() {
		return Event{}
	}
	rise, set := sunrise.SunriseSunset(c.Lat, c.Lon, year, time.Month(month), day)
	if rise.IsZero() || set.IsZero() {
		return Event{}
	}
	noon := rise.Add(set.Sub(rise) / 2)
	return Event{OK: true, At: civil.FromUnix(noon.Unix())}
}
