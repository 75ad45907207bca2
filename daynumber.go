// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import (
	"fmt"
	"time"
)

const (
	// TicksPerSecond is the number of 100ns ticks in a second.
	TicksPerSecond int64 = 10_000_000
	// TicksPerDay is the number of 100ns ticks in a day.
	TicksPerDay int64 = 24 * 60 * 60 * TicksPerSecond

	nanosPerTick = int64(time.Duration(100))
)

const (
	minDayNumber = -719162
	maxDayNumber = 2932896
)

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Ticks returns the number of 100ns ticks since 1970-01-01T00:00:00Z,
// it is negative for dates before 1970.
func (d Date) Ticks() int64 {
	return d.t.Unix()*TicksPerSecond + int64(d.t.Nanosecond())/nanosPerTick
}

// DayNumber returns the number of whole days since 1970-01-01, which is
// day 0.
func (d Date) DayNumber() int {
	return int(floorDiv(d.Ticks(), TicksPerDay))
}

// FromDayNumber returns the Date for the given day number, see DayNumber.
func FromDayNumber(n int) (Date, error) {
	if n < minDayNumber || n > maxDayNumber {
		return Date{}, fmt.Errorf("day number %d: %w", n, ErrOutOfRange)
	}
	ticks := int64(n) * TicksPerDay
	return Date{t: time.Unix(floorDiv(ticks, TicksPerSecond), 0).UTC()}, nil
}
