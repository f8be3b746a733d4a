// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"fmt"
	"math"
	"os"
	"time"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/skycal/almanac/astro"
	"github.com/skycal/almanac/tz"
)

// Duration is a time.Duration that unmarshals from YAML strings such as
// "30m" or "1h30m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", node.Value, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config is the process-scoped configuration consumed by the stored-config
// operations: a location for the ephemeris, a zone rule for local time, and
// an optional NTP server. It is set once via Init, may be cleared with
// Reset, and is read by every operation that does not take explicit
// parameters.
type Config struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	// ZoneRule is a POSIX TZ rule string; empty means the ambient rule.
	ZoneRule string `yaml:"zone_rule"`
	// NTPServer enables SyncNow when non-empty.
	NTPServer string `yaml:"ntp_server"`
	// SyncInterval requests a background sync interval from the provider;
	// zero leaves the provider default in place.
	SyncInterval Duration `yaml:"sync_interval"`
}

// Coordinate returns the configured location.
func (c Config) Coordinate() astro.Coordinate {
	return astro.Coordinate{Lat: c.Latitude, Lon: c.Longitude}
}

// Validate checks the configuration without applying it.
func (c Config) Validate() error {
	errs := &errors.M{}
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		errs.Append(fmt.Errorf("latitude %v outside -90..90", c.Latitude))
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		errs.Append(fmt.Errorf("longitude %v outside -180..180", c.Longitude))
	}
	if c.ZoneRule != "" {
		if _, err := tz.Resolve(c.ZoneRule); err != nil {
			errs.Append(err)
		}
	}
	if c.SyncInterval < 0 {
		errs.Append(fmt.Errorf("sync interval %v is negative", c.SyncInterval))
	}
	return errs.Err()
}

// LoadConfig reads a YAML configuration file and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML configuration data.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
