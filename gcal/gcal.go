// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gcal converts between dates and the Google Calendar API's
// representation of event start and end times.
package gcal

import (
	"fmt"
	"time"

	"cloudeng.io/dateonly"
	"google.golang.org/api/calendar/v3"
)

// ToEventDateTime returns the all-day representation of d.
func ToEventDateTime(d dateonly.Date) *calendar.EventDateTime {
	return &calendar.EventDateTime{Date: d.String()}
}

// FromEventDateTime returns the date of the supplied EventDateTime. For
// all-day values this is the Date field, otherwise it is the date of the
// DateTime field in the TimeZone field's location if one is specified, or
// in the DateTime's own offset if not.
func FromEventDateTime(edt *calendar.EventDateTime) (dateonly.Date, error) {
	if edt == nil {
		return dateonly.Date{}, fmt.Errorf("missing event date time")
	}
	if len(edt.Date) > 0 {
		t, err := time.Parse(time.DateOnly, edt.Date)
		if err != nil {
			return dateonly.Date{}, err
		}
		return dateonly.FromTime(t)
	}
	if len(edt.DateTime) == 0 {
		return dateonly.Date{}, fmt.Errorf("neither date nor date time are set")
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return dateonly.Date{}, err
	}
	if len(edt.TimeZone) > 0 {
		loc, err := time.LoadLocation(edt.TimeZone)
		if err != nil {
			return dateonly.Date{}, err
		}
		t = t.In(loc)
	}
	return dateonly.FromTime(t)
}

// SetAllDay makes ev an all-day event from first to last inclusive. The
// Google Calendar API, like iCalendar, uses an exclusive end date.
func SetAllDay(ev *calendar.Event, first, last dateonly.Date) error {
	if last.Before(first) {
		return fmt.Errorf("last day %v is before first day %v", last, first)
	}
	end, err := last.AddDays(1)
	if err != nil {
		return err
	}
	ev.Start = ToEventDateTime(first)
	ev.End = ToEventDateTime(end)
	return nil
}

// EventDates returns the first and last days of ev. For all-day events
// the last day is the day before the exclusive end date. A missing end
// is treated as a single day event.
func EventDates(ev *calendar.Event) (first, last dateonly.Date, err error) {
	first, err = FromEventDateTime(ev.Start)
	if err != nil {
		return
	}
	if ev.End == nil {
		return first, first, nil
	}
	last, err = FromEventDateTime(ev.End)
	if err != nil {
		return
	}
	if len(ev.End.Date) > 0 && last.After(first) {
		last, err = last.AddDays(-1)
	}
	return
}
