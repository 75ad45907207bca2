// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import (
	"context"
	"regexp"
	"strconv"
	"time"
)

// ws matches optional whitespace, including vertical tab, the Unicode
// space separators, U+2028, U+2029 and U+FEFF.
const ws = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`

// Fields may be separated by any of . , - or / with optional whitespace
// around the separators.
var numericDateRe = regexp.MustCompile(`^` + ws + `(\d{1,4})(?:` + ws + `[.,\-/]` + ws + `(\d{1,2}))?` + ws + `[.,\-/]` + ws + `(\d{1,4})` + ws + `$`)

// Parse parses val using SystemClock to supply the current year, see
// ParseWithClock.
func Parse(val string) (Date, error) {
	return ParseWithClock(SystemClock, val)
}

// ParseContext is like Parse but uses the Clock stored in ctx, if any.
func ParseContext(ctx context.Context, val string) (Date, error) {
	return ParseWithClock(ClockFromContext(ctx), val)
}

// TryParse is like Parse but returns false instead of an error. The
// returned Date must not be used when false is returned.
func TryParse(val string) (Date, bool) {
	d, err := Parse(val)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// ParseWithClock parses a numeric date in one of the following formats:
//
//	mm/dd       12/30 is December 30 of the current year as per clock
//	mm/yyyy     12/2000 is December 1, 2000
//	yyyy/mm     2000/12 is December 1, 2000
//	yyyy/mm/dd  2000/12/30
//	mm/dd/yyyy  12/30/2000
//
// Any of . , - or / may be used as a separator. A field of three or four
// digits is taken to be a year. In the three field formats a one or two
// digit year is expanded so that 0-29 is 2000-2029 and 30-99 is 1930-1999.
// All errors are of type *FormatError.
func ParseWithClock(clock Clock, val string) (Date, error) {
	m := numericDateRe.FindStringSubmatch(val)
	if m == nil {
		return Date{}, &FormatError{Input: val}
	}
	g1, g2, g3 := m[1], m[2], m[3]
	year, month, day := 0, 0, 1

	if len(g2) == 0 {
		switch {
		case len(g1) < 3 && len(g3) < 3:
			year = clock.Now().Year()
			month, day = atoi(g1), atoi(g3)
		case len(g1) < 3:
			month, year = atoi(g1), atoi(g3)
		default:
			if len(g3) > 2 {
				return Date{}, &FormatError{Input: val}
			}
			year, month = atoi(g1), atoi(g3)
		}
	} else {
		yearFirst := len(g1) > 2
		ys := g3
		if yearFirst {
			ys = g1
		}
		year = atoi(ys)
		if len(ys) < 3 {
			year = expandYear(year)
		}
		if yearFirst {
			month, day = atoi(g2), atoi(g3)
		} else {
			month, day = atoi(g1), atoi(g2)
		}
	}

	d, err := Create(year, time.Month(month), day)
	if err != nil {
		return Date{}, &FormatError{Input: val, Err: err}
	}
	return d, nil
}

// expandYear maps a two digit year, 0-29 to 2000-2029 and 30-99 to 1930-1999.
func expandYear(year int) int {
	if year >= 30 {
		return year + 1900
	}
	return year + 2000
}

// atoi is only ever called with the 1-4 ascii digits matched by
// numericDateRe.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
