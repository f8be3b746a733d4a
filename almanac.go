// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac ties the calendar and ephemeris packages together behind a
// single configured instance: set a location and zone rule once, then ask
// for sunrise, sunset, moon phase, local time and NTP sync against that
// stored configuration. The underlying packages (civil, calendar, local,
// astro, tz, ntp) remain usable on their own for callers that prefer
// explicit parameters over stored state.
package almanac

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/skycal/almanac/astro"
	"github.com/skycal/almanac/calendar"
	"github.com/skycal/almanac/civil"
	"github.com/skycal/almanac/ctxlog"
	"github.com/skycal/almanac/local"
	"github.com/skycal/almanac/ntp"
	"github.com/skycal/almanac/tz"
)

// Almanac holds a validated configuration and serves the stored-config
// operations. The zero value is usable but has no location or NTP server;
// operations that need them report no result until Init succeeds. All
// methods are safe for concurrent use.
type Almanac struct {
	mu          sync.Mutex
	cfg         Config
	initialized bool

	clock    func() civil.Instant
	provider ntp.Provider
	syncs    ntp.Registry
}

// Option configures an Almanac at construction time.
type Option func(*Almanac)

// WithClock replaces the wall-clock source, typically for tests.
func WithClock(fn func() civil.Instant) Option {
	return func(a *Almanac) { a.clock = fn }
}

// WithProvider replaces the NTP provider used by SyncNow.
func WithProvider(p ntp.Provider) Option {
	return func(a *Almanac) { a.provider = p }
}

// New returns an Almanac with no configuration applied.
func New(opts ...Option) *Almanac {
	a := &Almanac{
		clock:    func() civil.Instant { return civil.FromUnix(time.Now().Unix()) },
		provider: &ntp.Client{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init validates and stores the configuration. A non-empty zone rule also
// becomes the process ambient rule, so empty-rule calls throughout the
// module resolve against it. Init may be called again to reconfigure.
func (a *Almanac) Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ZoneRule != "" {
		if err := tz.SetAmbient(cfg.ZoneRule); err != nil {
			return err
		}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg = cfg
	a.initialized = true
	if cfg.SyncInterval > 0 {
		if setter, ok := a.provider.(ntp.IntervalSetter); ok {
			setter.SetSyncInterval(time.Duration(cfg.SyncInterval))
		}
	}
	return nil
}

// Reset clears the stored configuration and sync history. The ambient zone
// rule is left as is.
func (a *Almanac) Reset() {
	a.mu.Lock()
	a.cfg = Config{}
	a.initialized = false
	a.mu.Unlock()
	a.syncs.Reset()
}

// Initialized reports whether Init has succeeded since the last Reset.
func (a *Almanac) Initialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized
}

func (a *Almanac) config() (Config, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg, a.initialized
}

// Now returns the current UTC instant from the configured clock.
func (a *Almanac) Now() civil.Instant {
	return a.clock()
}

// NowLocal resolves the current instant in the stored zone rule.
func (a *Almanac) NowLocal() local.Resolution {
	cfg, _ := a.config()
	return local.Resolve(a.Now(), cfg.ZoneRule)
}

// Sunrise returns today's sunrise at the stored location and zone rule.
func (a *Almanac) Sunrise() astro.Event {
	return a.sunEventNow(true)
}

// Sunset returns today's sunset at the stored location and zone rule.
func (a *Almanac) Sunset() astro.Event {
	return a.sunEventNow(false)
}

func (a *Almanac) sunEventNow(rise bool) astro.Event {
	cfg, ok := a.config()
	if !ok {
		return astro.Event{}
	}
	return astro.SunEventZone(rise, a.Now(), cfg.Coordinate(), cfg.ZoneRule)
}

// SunriseAt returns sunrise for the calendar day containing at, at the
// stored location under the stored zone rule.
func (a *Almanac) SunriseAt(at civil.Instant) astro.Event {
	return a.sunEventAt(true, at)
}

// SunsetAt returns sunset for the calendar day containing at.
func (a *Almanac) SunsetAt(at civil.Instant) astro.Event {
	return a.sunEventAt(false, at)
}

func (a *Almanac) sunEventAt(rise bool, at civil.Instant) astro.Event {
	cfg, ok := a.config()
	if !ok {
		return astro.Event{}
	}
	return astro.SunEventZone(rise, at, cfg.Coordinate(), cfg.ZoneRule)
}

// SunriseOffset computes sunrise for the day containing at using an explicit
// UTC offset in hours plus a DST flag, independent of any zone rule.
func (a *Almanac) SunriseOffset(at civil.Instant, offsetHours float64, dst bool) astro.Event {
	return a.sunEventOffset(true, at, offsetHours, dst)
}

// SunsetOffset is the sunset counterpart of SunriseOffset.
func (a *Almanac) SunsetOffset(at civil.Instant, offsetHours float64, dst bool) astro.Event {
	return a.sunEventOffset(false, at, offsetHours, dst)
}

func (a *Almanac) sunEventOffset(rise bool, at civil.Instant, offsetHours float64, dst bool) astro.Event {
	cfg, ok := a.config()
	if !ok {
		return astro.Event{}
	}
	minutes := offsetHours * 60
	if dst {
		minutes += 60
	}
	return astro.SunEventAt(rise, at, cfg.Coordinate(), minutes)
}

// IsDay reports whether the current instant falls between sunrise and
// sunset at the stored location.
func (a *Almanac) IsDay() bool {
	return a.IsDayAt(a.Now(), 0, 0)
}

// IsDayAt reports whether at falls within [sunrise+riseOffsetSec,
// sunset+setOffsetSec]. Negative rise offsets widen the window before
// sunrise; negative set offsets shrink it before sunset.
func (a *Almanac) IsDayAt(at civil.Instant, riseOffsetSec, setOffsetSec int) bool {
	cfg, ok := a.config()
	if !ok {
		return false
	}
	return astro.IsDay(at, cfg.Coordinate(), cfg.ZoneRule, riseOffsetSec, setOffsetSec)
}

// SolarNoon returns the apparent solar noon for the day containing at.
func (a *Almanac) SolarNoon(at civil.Instant) astro.Event {
	cfg, ok := a.config()
	if !ok {
		return astro.Event{}
	}
	r := local.Resolve(at, cfg.ZoneRule)
	if !r.OK {
		return astro.Event{}
	}
	return astro.ApparentSolarNoon(r.Fields.Year, r.Fields.Month, r.Fields.Day, cfg.Coordinate())
}

// MoonPhase returns the lunar phase at the current instant.
func (a *Almanac) MoonPhase() astro.Phase {
	return astro.MoonPhase(a.Now())
}

// MoonPhaseAt returns the lunar phase at an arbitrary instant. The phase is
// location independent.
func (a *Almanac) MoonPhaseAt(at civil.Instant) astro.Phase {
	return astro.MoonPhase(at)
}

// IsDSTActive reports whether DST is in effect right now under the stored
// zone rule.
func (a *Almanac) IsDSTActive() bool {
	cfg, _ := a.config()
	return local.IsDST(a.Now(), cfg.ZoneRule)
}

// IsDSTActiveAt reports whether DST is in effect at the given instant.
func (a *Almanac) IsDSTActiveAt(at civil.Instant) bool {
	cfg, _ := a.config()
	return local.IsDST(at, cfg.ZoneRule)
}

// ResolveLocal converts a UTC instant to local fields under the stored
// zone rule.
func (a *Almanac) ResolveLocal(at civil.Instant) local.Resolution {
	cfg, _ := a.config()
	return local.Resolve(at, cfg.ZoneRule)
}

// ComposeLocal converts local civil fields back to a UTC instant under the
// stored zone rule, using the automatic DST policy.
func (a *Almanac) ComposeLocal(f civil.Fields) (civil.Instant, bool) {
	cfg, _ := a.config()
	return local.Compose(f, cfg.ZoneRule, local.Auto)
}

// NextDailyAt returns the next instant at which the local wall clock under
// the stored zone rule reads hour:minute:second, at or after the current
// instant.
func (a *Almanac) NextDailyAt(hour, minute, second int) civil.Instant {
	cfg, _ := a.config()
	return calendar.NextDailyAtLocal(hour, minute, second, a.Now(), cfg.ZoneRule)
}

// NextWeekdayAt returns the next instant falling on the given local weekday
// (0=Sunday) at the given local time under the stored zone rule.
func (a *Almanac) NextWeekdayAt(weekday, hour, minute, second int) civil.Instant {
	cfg, _ := a.config()
	return calendar.NextWeekdayAtLocal(weekday, hour, minute, second, a.Now(), cfg.ZoneRule)
}

// FormatLocal renders the instant as local time under the stored zone rule
// using a named style.
func (a *Almanac) FormatLocal(at civil.Instant, style civil.Style) (string, error) {
	return a.ResolveLocal(at).Format(style)
}

// FormatLocalPattern renders the instant as local time with a strftime
// pattern.
func (a *Almanac) FormatLocalPattern(at civil.Instant, pattern string) (string, error) {
	return a.ResolveLocal(at).FormatPattern(pattern)
}

// ParseLocal parses "YYYY-MM-DD HH:MM:SS" as local wall-clock time under
// the stored zone rule.
func (a *Almanac) ParseLocal(s string) (civil.Instant, error) {
	f, err := civil.ParseDateTime(s)
	if err != nil {
		return 0, err
	}
	cfg, _ := a.config()
	at, ok := local.Compose(f, cfg.ZoneRule, local.Auto)
	if !ok {
		return 0, civil.ErrInvalidDateTime
	}
	return at, nil
}

// OnSync registers the callback invoked after each successful SyncNow. A nil
// callback clears the registration; a new callback replaces the old one.
func (a *Almanac) OnSync(fn ntp.SyncFunc) {
	a.syncs.Set(fn)
}

// SyncNow queries the configured NTP server and delivers the synced instant
// to the OnSync callback. It reports false when no server is configured or
// the query fails.
func (a *Almanac) SyncNow(ctx context.Context) bool {
	cfg, ok := a.config()
	if !ok || cfg.NTPServer == "" {
		return false
	}
	at, err := a.provider.Sync(ctx, cfg.NTPServer)
	if err != nil {
		ctxlog.Logger(ctx).Log(ctx, slog.LevelWarn, "ntp sync failed",
			"server", cfg.NTPServer, "err", err)
		return false
	}
	a.syncs.Deliver(at)
	ctxlog.Logger(ctx).Log(ctx, slog.LevelInfo, "ntp sync",
		"server", cfg.NTPServer, "unix", at.Unix())
	return true
}

// HasLastSync reports whether any SyncNow has succeeded since the last
// Reset.
func (a *Almanac) HasLastSync() bool {
	return a.syncs.HasLastSync()
}

// LastSync returns the most recently synced instant; zero when none.
func (a *Almanac) LastSync() civil.Instant {
	return a.syncs.LastSync()
}

// SetSyncInterval forwards the interval to the provider when it supports
// one. It reports whether the interval was applied.
func (a *Almanac) SetSyncInterval(d time.Duration) bool {
	if d <= 0 {
		return false
	}
	if setter, ok := a.provider.(ntp.IntervalSetter); ok {
		return setter.SetSyncInterval(d)
	}
	return false
}
