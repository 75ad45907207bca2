// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"cloudeng.io/dateonly"
)

func newDate(y, m, d int) dateonly.Date {
	return dateonly.MustCreate(y, time.Month(m), d)
}

func TestCreate(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
	}{
		{1, 1, 1},
		{50, 6, 15},
		{99, 12, 31},
		{100, 2, 28},
		{1970, 1, 1},
		{2000, 2, 29},
		{2024, 3, 5},
		{9999, 12, 31},
	} {
		d, err := dateonly.Create(tc.y, time.Month(tc.m), tc.d)
		if err != nil {
			t.Errorf("%v-%v-%v: %v", tc.y, tc.m, tc.d, err)
			continue
		}
		if got, want := d.Year(), tc.y; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Month(), time.Month(tc.m); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Day(), tc.d; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := d.Time(), time.Date(tc.y, time.Month(tc.m), tc.d, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []struct {
		y, m, d int
	}{
		{0, 1, 1},
		{10000, 1, 1},
		{-1, 1, 1},
		{2024, 0, 1},
		{2024, 13, 1},
		{2024, 1, 0},
		{2024, 1, 32},
		{2023, 2, 29},
		{1900, 2, 29},
		{2024, 4, 31},
	} {
		_, err := dateonly.Create(tc.y, time.Month(tc.m), tc.d)
		if !errors.Is(err, dateonly.ErrInvalidDate) {
			t.Errorf("%v-%v-%v: missing or wrong error: %v", tc.y, tc.m, tc.d, err)
		}
	}
}

func TestLimits(t *testing.T) {
	minv, maxv := dateonly.MinValue(), dateonly.MaxValue()
	if got, want := minv, newDate(1, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := maxv, newDate(9999, 12, 31); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := minv.DayOfWeek(), time.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := maxv.DayOfWeek(), time.Friday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var zero dateonly.Date
	if got, want := zero, minv; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := minv.Time().UnixMilli(), int64(-62135596800000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := maxv.Time().UnixMilli(), int64(253402214400000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFieldAccessors(t *testing.T) {
	for _, tc := range []struct {
		date      dateonly.Date
		dayOfWeek time.Weekday
		dayOfYear int
	}{
		{newDate(1, 1, 1), time.Monday, 1},
		{newDate(1970, 1, 1), time.Thursday, 1},
		{newDate(2000, 1, 1), time.Saturday, 1},
		{newDate(2000, 12, 31), time.Sunday, 366},
		{newDate(2023, 3, 1), time.Wednesday, 31 + 28 + 1},
		{newDate(2023, 12, 31), time.Sunday, 365},
		{newDate(2024, 3, 5), time.Tuesday, 31 + 29 + 5},
		{newDate(2024, 12, 31), time.Tuesday, 366},
		{newDate(9999, 12, 31), time.Friday, 365},
	} {
		if got, want := tc.date.DayOfWeek(), tc.dayOfWeek; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := tc.date.DayOfYear(), tc.dayOfYear; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	for _, year := range []int{1, 1900, 2000, 2023, 2024, 9999} {
		n := 0
		for d := range dateonly.Days(newDate(year, 1, 1), newDate(year, 12, 31)) {
			n++
			if got, want := d.DayOfYear(), n; got != want {
				t.Fatalf("%v: got %v, want %v", d, got, want)
			}
		}
		want := 365
		if dateonly.IsLeap(year) {
			want = 366
		}
		if got := n; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2023, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
		{2023, 0, 0},
		{2023, 13, 0},
	} {
		if got, want := dateonly.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestFromTime(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)
	for _, tc := range []struct {
		when time.Time
		date dateonly.Date
	}{
		{time.Date(2024, 3, 5, 23, 59, 0, 0, pst), newDate(2024, 3, 5)},
		{time.Date(2024, 3, 5, 0, 0, 1, 0, time.UTC), newDate(2024, 3, 5)},
		{time.Date(50, 6, 15, 12, 0, 0, 0, time.UTC), newDate(50, 6, 15)},
	} {
		d, err := dateonly.FromTime(tc.when)
		if err != nil {
			t.Errorf("%v: %v", tc.when, err)
			continue
		}
		if got, want := d, tc.date; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, err := dateonly.FromTime(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, dateonly.ErrInvalidDate) {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestToTime(t *testing.T) {
	d := newDate(2024, 3, 5)
	tod := 12*time.Hour + 30*time.Minute

	if got, want := d.ToTime(tod, dateonly.UTC), time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, kind := range []dateonly.Kind{dateonly.Local, dateonly.Unspecified} {
		lt := d.ToTime(tod, kind)
		if got, want := lt.Location(), time.Local; got != want {
			t.Errorf("%v: got %v, want %v", kind, got, want)
		}
		y, m, dd := lt.Date()
		if y != 2024 || m != time.March || dd != 5 || lt.Hour() != 12 || lt.Minute() != 30 {
			t.Errorf("%v: got %v", kind, lt)
		}
	}

	pst := time.FixedZone("PST", -8*60*60)
	if got, want := d.ToTimeIn(tod, pst), time.Date(2024, 3, 5, 20, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Daylight saving started at midnight on 2018-11-04 in Sao Paulo.
	sp, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	dst := newDate(2018, 11, 4)
	for _, tc := range []struct {
		tod  time.Duration
		want time.Time
	}{
		{0, time.Date(2018, 11, 4, 3, 0, 0, 0, time.UTC)},
		{tod, time.Date(2018, 11, 4, 15, 30, 0, 0, time.UTC)},
	} {
		got := dst.ToTimeIn(tc.tod, sp)
		if !got.Equal(tc.want) {
			t.Errorf("%v: got %v, want %v", tc.tod, got, tc.want)
		}
		if got, want := got.Day(), 4; got != want {
			t.Errorf("%v: got %v, want %v", tc.tod, got, want)
		}
	}
	if got, want := newDate(2018, 11, 3).ToTimeIn(0, sp), time.Date(2018, 11, 3, 3, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArithmetic(t *testing.T) {
	for _, tc := range []struct {
		date dateonly.Date
		n    int
		want dateonly.Date
	}{
		{newDate(2024, 2, 28), 1, newDate(2024, 2, 29)},
		{newDate(2023, 2, 28), 1, newDate(2023, 3, 1)},
		{newDate(2024, 1, 1), -1, newDate(2023, 12, 31)},
		{newDate(1970, 1, 1), -1, newDate(1969, 12, 31)},
		{newDate(2000, 1, 1), 366, newDate(2001, 1, 1)},
		{newDate(1, 1, 1), 0, newDate(1, 1, 1)},
	} {
		got, err := tc.date.AddDays(tc.n)
		if err != nil {
			t.Errorf("%v + %v: %v", tc.date, tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v + %v: got %v, want %v", tc.date, tc.n, got, tc.want)
		}
		if got, want := dateonly.DaysBetween(tc.date, tc.want), tc.n; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if _, err := dateonly.MaxValue().AddDays(1); !errors.Is(err, dateonly.ErrOutOfRange) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := dateonly.MinValue().AddDays(-1); !errors.Is(err, dateonly.ErrOutOfRange) {
		t.Errorf("missing or wrong error: %v", err)
	}

	a, b := newDate(2024, 3, 5), newDate(2024, 3, 6)
	if !a.Before(b) || a.After(b) || !b.After(a) {
		t.Errorf("%v and %v are in the wrong order", a, b)
	}
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysIterator(t *testing.T) {
	var got dateonly.List
	for d := range dateonly.Days(newDate(2024, 2, 27), newDate(2024, 3, 2)) {
		got = append(got, d)
	}
	want := dateonly.List{
		newDate(2024, 2, 27), newDate(2024, 2, 28), newDate(2024, 2, 29),
		newDate(2024, 3, 1), newDate(2024, 3, 2),
	}
	if got.String() != want.String() {
		t.Errorf("got %v, want %v", got, want)
	}

	n := 0
	for range dateonly.Days(newDate(2024, 3, 2), newDate(2024, 3, 1)) {
		n++
	}
	if got, want := n, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	n = 0
	for range dateonly.Days(newDate(2024, 1, 1), newDate(2024, 12, 31)) {
		n++
		if n == 10 {
			break
		}
	}
	if got, want := n, 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	n = 0
	for range dateonly.Days(dateonly.MaxValue(), dateonly.MaxValue()) {
		n++
	}
	if got, want := n, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
