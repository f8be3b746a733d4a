// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz

import (
	"os"
	"sync"
)

// The ambient rule plays the role of the process-wide local-time rule.
// Operations that take an explicit rule string never touch it; operations
// given an empty rule read it. Overrides serialize on overrideMu so that a
// scoped swap cannot interleave with another: callers running local-time
// operations from multiple goroutines must rely on that serialization and
// should prefer explicit rule strings.
var (
	ambientMu  sync.RWMutex
	ambient    = initialAmbient()
	overrideMu sync.Mutex

	cacheMu sync.RWMutex
	cache   = map[string]*Rule{}
)

func initialAmbient() *Rule {
	if env := os.Getenv("TZ"); env != "" {
		if r, err := Parse(env); err == nil {
			return r
		}
	}
	return UTC
}

// Ambient returns the rule currently in effect for empty-rule operations.
func Ambient() *Rule {
	ambientMu.RLock()
	defer ambientMu.RUnlock()
	return ambient
}

// SetAmbient installs the given rule string as the ambient rule. The empty
// string restores UTC.
func SetAmbient(rule string) error {
	r := UTC
	if rule != "" {
		var err error
		if r, err = Resolve(rule); err != nil {
			return err
		}
	}
	ambientMu.Lock()
	ambient = r
	ambientMu.Unlock()
	return nil
}

// Override temporarily installs rule as the ambient rule and returns a
// restore function that must be called on every exit path. An empty rule is
// a no-op. Overrides are exclusive: a second Override blocks until the first
// is restored.
func Override(rule string) (restore func(), err error) {
	if rule == "" {
		return func() {}, nil
	}
	r, err := Resolve(rule)
	if err != nil {
		return nil, err
	}
	overrideMu.Lock()
	ambientMu.Lock()
	prev := ambient
	ambient = r
	ambientMu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			ambientMu.Lock()
			ambient = prev
			ambientMu.Unlock()
			overrideMu.Unlock()
		})
	}, nil
}

// Resolve parses a rule string through a process-wide cache. The empty
// string resolves to the ambient rule.
func Resolve(rule string) (*Rule, error) {
	if rule == "" {
		return Ambient(), nil
	}
	cacheMu.RLock()
	r, ok := cache[rule]
	cacheMu.RUnlock()
	if ok {
		return r, nil
	}
	r, err := Parse(rule)
	if err != nil {
		return nil, err
	}
	cacheMu.Lock()
	cache[rule] = r
	cacheMu.Unlock()
	return r, nil
}
