// Copyright 2025 the almanac authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tz

import "fmt"

type parser struct {
	s   string
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.s) }

func (p *parser) peek() byte { return p.s[p.pos] }

func (p *parser) rest() string { return p.s[p.pos:] }

func (p *parser) expect(c byte) error {
	if p.done() || p.s[p.pos] != c {
		return fmt.Errorf("expected %q at position %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// abbr consumes a zone abbreviation: three or more alphabetic characters, or
// an arbitrary <>-quoted form.
func (p *parser) abbr() (string, error) {
	if p.done() {
		return "", fmt.Errorf("missing zone abbreviation")
	}
	if p.peek() == '<' {
		end := p.pos + 1
		for end < len(p.s) && p.s[end] != '>' {
			end++
		}
		if end >= len(p.s) {
			return "", fmt.Errorf("unterminated quoted abbreviation")
		}
		a := p.s[p.pos+1 : end]
		p.pos = end + 1
		return a, nil
	}
	start := p.pos
	for !p.done() && isAlpha(p.peek()) {
		p.pos++
	}
	if p.pos-start < 3 {
		return "", fmt.Errorf("zone abbreviation must be at least 3 letters")
	}
	return p.s[start:p.pos], nil
}

// number consumes one or more digits.
func (p *parser) number() (int, error) {
	start := p.pos
	v := 0
	for !p.done() && isDigit(p.peek()) {
		v = v*10 + int(p.peek()-'0')
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected a number at position %d", p.pos)
	}
	return v, nil
}

// offset consumes [+-]hh[:mm[:ss]] and returns seconds; limit bounds the
// absolute hour portion.
func (p *parser) offset(limit int) (int, error) {
	sign := 1
	if !p.done() && (p.peek() == '+' || p.peek() == '-') {
		if p.peek() == '-' {
			sign = -1
		}
		p.pos++
	}
	h, err := p.number()
	if err != nil {
		return 0, err
	}
	secs := h * 3600
	for i := 0; i < 2 && !p.done() && p.peek() == ':'; i++ {
		p.pos++
		v, err := p.number()
		if err != nil {
			return 0, err
		}
		if v > 59 {
			return 0, fmt.Errorf("minutes/seconds out of range: %d", v)
		}
		if i == 0 {
			secs += v * 60
		} else {
			secs += v
		}
	}
	if secs > limit {
		return 0, fmt.Errorf("offset %ds exceeds limit", secs)
	}
	return sign * secs, nil
}

// transition consumes a date rule (Mm.w.d, Jn or n) with an optional /time.
func (p *parser) transition() (transition, error) {
	var tr transition
	if p.done() {
		return tr, fmt.Errorf("missing transition date")
	}
	switch {
	case p.peek() == 'M':
		p.pos++
		tr.kind = dateMonthWeekDay
		m, err := p.number()
		if err != nil {
			return tr, err
		}
		if err := p.expect('.'); err != nil {
			return tr, err
		}
		w, err := p.number()
		if err != nil {
			return tr, err
		}
		if err := p.expect('.'); err != nil {
			return tr, err
		}
		d, err := p.number()
		if err != nil {
			return tr, err
		}
		if m < 1 || m > 12 || w < 1 || w > 5 || d > 6 {
			return tr, fmt.Errorf("month.week.day %d.%d.%d out of range", m, w, d)
		}
		tr.month, tr.week, tr.day = m, w, d
	case p.peek() == 'J':
		p.pos++
		tr.kind = dateJulianNoLeap
		n, err := p.number()
		if err != nil {
			return tr, err
		}
		if n < 1 || n > 365 {
			return tr, fmt.Errorf("julian day %d out of range", n)
		}
		tr.day = n
	default:
		tr.kind = dateZeroBased
		n, err := p.number()
		if err != nil {
			return tr, err
		}
		if n > 365 {
			return tr, fmt.Errorf("day %d out of range", n)
		}
		tr.day = n
	}
	tr.seconds = defaultRuleSeconds
	if !p.done() && p.peek() == '/' {
		p.pos++
		// POSIX allows -167 to 167 hours here.
		secs, err := p.offset(167 * 3600)
		if err != nil {
			return tr, err
		}
		tr.seconds = secs
	}
	return tr, nil
}
