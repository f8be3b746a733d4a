// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astro computes solar and lunar ephemeris approximations: sunrise
// and sunset via the NOAA two-pass hour-angle solver, and lunar phase via a
// truncated lunar theory with an iterative Kepler solve. Results carry a
// validity flag; a false flag with in-range inputs means the event does not
// occur (polar day or night), which callers must not conflate with input
// errors.
package astro

import (
	"math"

	"github.com/skycal/almanac/civil"
)

// Coordinate is a geographic position in degrees.
type Coordinate struct {
	Lat float64 // -90..90
	Lon float64 // -180..180
}

// Valid reports whether both components are finite and within bounds.
// Every ephemeris operation fails without computation on an invalid
// coordinate.
func (c Coordinate) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0) &&
		c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Event is a sunrise or sunset. OK is false when the event does not occur on
// the requested day or the inputs were invalid.
type Event struct {
	OK bool
	At civil.Instant
}

// Phase describes the Moon's appearance at an instant. AngleDegrees is the
// Sun-Moon ecliptic longitude difference normalized to [0,360), 0 at new
// moon and about 180 at full moon; Illumination follows the cosine phase
// law.
type Phase struct {
	OK           bool
	AngleDegrees int
	Illumination float64
}

func degToRad(deg float64) float64 { return math.Pi * deg / 180 }

func radToDeg(rad float64) float64 { return 180 * rad / math.Pi }
