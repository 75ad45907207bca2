// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import (
	"context"
	"time"

	"cloudeng.io/datetime"
)

// Clock supplies the current time. Parsing uses it to determine the
// year for dates that are specified as month and day only.
type Clock interface {
	Now() time.Time
}

// ClockFunc allows a function to be used as a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns time.Now().
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock returns a Clock that always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

type clockKey struct{}

// ContextWithClock returns a new context with the given Clock stored in it.
func ContextWithClock(ctx context.Context, clock Clock) context.Context {
	return context.WithValue(ctx, clockKey{}, clock)
}

// ClockFromContext returns the Clock stored in ctx. If there is none but
// ctx carries a datetime.YearAndPlace then a Clock fixed at the start of
// that year, in that place, is returned. SystemClock is returned otherwise.
func ClockFromContext(ctx context.Context) Clock {
	if c, ok := ctx.Value(clockKey{}).(Clock); ok && c != nil {
		return c
	}
	if yp := datetime.YearAndPlaceFromContext(ctx); yp.IsSet() {
		return FixedClock(time.Date(yp.Year, 1, 1, 0, 0, 0, 0, yp.Place))
	}
	return SystemClock
}
