// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dateonly provides a calendar date without a time of day or
// timezone, covering the proleptic Gregorian calendar from 0001-01-01 to
// 9999-12-31. Dates may be created from their fields, from a day number
// relative to 1970-01-01, from a time.Time or by parsing numeric date
// strings such as '12/30', '12/2000', '2000/12', '2000/12/30' or '12/30/2000'.
package dateonly

import (
	"fmt"
	"iter"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

const (
	MinYear = 1
	MaxYear = 9999
)

var (
	// ErrInvalidDate is returned when a year, month and day do not
	// form a valid date between MinYear and MaxYear.
	ErrInvalidDate = errors.New("invalid date")
	// ErrOutOfRange is returned when a day number, or the result of date
	// arithmetic, falls outside of MinValue and MaxValue.
	ErrOutOfRange = errors.New("date out of range")
)

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given
// year, or zero if month is not in the range 1-12.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// Date represents a calendar date. It is stored as midnight UTC on that
// date. The zero value is 0001-01-01, the same as MinValue. Dates are
// comparable using ==.
type Date struct {
	t time.Time
}

func validate(year int, month time.Month, day int) error {
	if year < MinYear || year > MaxYear ||
		month < time.January || month > time.December ||
		day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%04d-%02d-%02d: %w", year, int(month), day, ErrInvalidDate)
	}
	return nil
}

// Create returns the Date for the specified year, month and day. Years
// 1 through 99 are used as is and are not interpreted as 19xx or 20xx.
func Create(year int, month time.Month, day int) (Date, error) {
	if err := validate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// MustCreate is like Create but panics on error.
func MustCreate(year int, month time.Month, day int) Date {
	d, err := Create(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// MinValue returns 0001-01-01.
func MinValue() Date {
	return Date{t: time.UnixMilli(-62135596800000).UTC()}
}

// MaxValue returns 9999-12-31.
func MaxValue() Date {
	return Date{t: time.UnixMilli(253402214400000).UTC()}
}

// FromTime returns the Date of t's year, month and day in t's location.
func FromTime(t time.Time) (Date, error) {
	return Create(t.Year(), t.Month(), t.Day())
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Year() int {
	return d.t.Year()
}

// DayOfWeek returns the day of the week, time.Sunday (0) through
// time.Saturday (6).
func (d Date) DayOfWeek() time.Weekday {
	return d.t.Weekday()
}

// DayOfYear returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years.
func (d Date) DayOfYear() int {
	return d.t.YearDay()
}

// Kind determines how ToTime interprets a Date.
type Kind int

const (
	Unspecified Kind = iota
	UTC
	Local
)

func (k Kind) String() string {
	switch k {
	case UTC:
		return "utc"
	case Local:
		return "local"
	default:
		return "unspecified"
	}
}

// ToTime returns the time.Time that is timeOfDay after midnight on d.
// For UTC midnight is in UTC, for Local and Unspecified it is the
// local wall clock midnight on the same date, ie. the local timezone
// offset is compensated for.
func (d Date) ToTime(timeOfDay time.Duration, kind Kind) time.Time {
	if kind == UTC {
		return d.ToTimeIn(timeOfDay, time.UTC)
	}
	return d.ToTimeIn(timeOfDay, time.Local)
}

// ToTimeIn returns the time.Time that is timeOfDay after midnight on d
// in the specified location. On a day where a daylight saving transition
// skips midnight, the day starts at the transition, eg. 01:00.
func (d Date) ToTimeIn(timeOfDay time.Duration, loc *time.Location) time.Time {
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	if t.Day() != d.Day() {
		_, t = t.ZoneBounds()
	}
	return t.Add(timeOfDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as or after o.
func (d Date) Compare(o Date) int {
	return d.t.Compare(o.t)
}

// Before returns true if d is before o.
func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

// After returns true if d is after o.
func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	return FromDayNumber(d.DayNumber() + n)
}

// DaysBetween returns the number of days from a to b, which is negative
// if b is before a.
func DaysBetween(a, b Date) int {
	return b.DayNumber() - a.DayNumber()
}

// Days returns an iterator over every date from 'from' to 'to' inclusive.
// Nothing is yielded if to is before from.
func Days(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		last := to.DayNumber()
		for n := from.DayNumber(); n <= last; n++ {
			d, _ := FromDayNumber(n)
			if !yield(d) {
				return
			}
		}
	}
}
