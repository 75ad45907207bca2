// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ical provides support for reading, writing and expanding
// iCalendar (RFC 5545) all-day events, ie. those whose DTSTART and DTEND
// are dates rather than date-times.
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/dateonly"
	"cloudeng.io/errors"
	ics "github.com/arran4/golang-ical"
)

const dateLayout = "20060102"

// ErrNotAllDay is returned for events whose DTSTART includes a time of day.
var ErrNotAllDay = errors.New("not an all-day event")

// Event represents an all-day event. Last is the final day of the event,
// unlike DTEND which refers to the day after the event ends.
type Event struct {
	UID     string
	Summary string
	First   dateonly.Date
	Last    dateonly.Date
	RRule   string
}

func isAllDay(p *ics.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 {
		return strings.EqualFold(vs[0], "DATE")
	}
	return !strings.Contains(p.Value, "T")
}

func dateProperty(ve *ics.VEvent, prop ics.ComponentProperty) (dateonly.Date, bool, error) {
	p := ve.GetProperty(prop)
	if p == nil {
		return dateonly.Date{}, false, nil
	}
	if !isAllDay(p) {
		return dateonly.Date{}, true, fmt.Errorf("%v: %q: %w", prop, p.Value, ErrNotAllDay)
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(p.Value))
	if err != nil {
		return dateonly.Date{}, true, fmt.Errorf("%v: %q: %w", prop, p.Value, err)
	}
	d, err := dateonly.FromTime(t)
	return d, true, err
}

// StartDate returns the DTSTART of an all-day event.
func StartDate(ve *ics.VEvent) (dateonly.Date, error) {
	d, ok, err := dateProperty(ve, ics.ComponentPropertyDtStart)
	if err != nil {
		return dateonly.Date{}, err
	}
	if !ok {
		return dateonly.Date{}, fmt.Errorf("missing %v", ics.ComponentPropertyDtStart)
	}
	return d, nil
}

// LastDate returns the last day of an all-day event, which is the day
// before DTEND, or DTSTART if there is no DTEND.
func LastDate(ve *ics.VEvent) (dateonly.Date, error) {
	first, err := StartDate(ve)
	if err != nil {
		return dateonly.Date{}, err
	}
	end, ok, err := dateProperty(ve, ics.ComponentPropertyDtEnd)
	if err != nil {
		return dateonly.Date{}, err
	}
	if !ok || !end.After(first) {
		return first, nil
	}
	return end.AddDays(-1)
}

// SetAllDay sets DTSTART and DTEND for an all-day event that runs from
// first to last inclusive.
func SetAllDay(ve *ics.VEvent, first, last dateonly.Date) error {
	if last.Before(first) {
		return fmt.Errorf("last day %v is before first day %v", last, first)
	}
	end, err := last.AddDays(1)
	if err != nil {
		return err
	}
	ve.SetAllDayStartAt(first.Time())
	ve.SetAllDayEndAt(end.Time())
	return nil
}

// Parse reads an iCalendar stream and returns all of its all-day
// events. Events with a time of day are skipped, any other malformed
// events are reported in the returned error, which is an errors.M,
// along with all of the events that could be read.
func Parse(rd io.Reader) ([]Event, error) {
	cal, err := ics.ParseCalendar(rd)
	if err != nil {
		return nil, err
	}
	errs := &errors.M{}
	var events []Event
	for _, ve := range cal.Events() {
		ev, err := newEvent(ve)
		if errors.Is(err, ErrNotAllDay) {
			continue
		}
		if err != nil {
			errs.Append(fmt.Errorf("event %q: %w", uid(ve), err))
			continue
		}
		events = append(events, ev)
	}
	return events, errs.Err()
}

func uid(ve *ics.VEvent) string {
	if p := ve.GetProperty(ics.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}

func newEvent(ve *ics.VEvent) (Event, error) {
	first, err := StartDate(ve)
	if err != nil {
		return Event{}, err
	}
	last, err := LastDate(ve)
	if err != nil {
		return Event{}, err
	}
	ev := Event{UID: uid(ve), First: first, Last: last}
	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}
	if p := ve.GetProperty(ics.ComponentPropertyRrule); p != nil {
		ev.RRule = p.Value
	}
	return ev, nil
}

// NewCalendar returns a calendar containing the supplied events.
func NewCalendar(prodID string, events ...Event) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	for _, ev := range events {
		ve := cal.AddEvent(ev.UID)
		if len(ev.Summary) > 0 {
			ve.SetSummary(ev.Summary)
		}
		if err := SetAllDay(ve, ev.First, ev.Last); err != nil {
			return nil, fmt.Errorf("event %q: %w", ev.UID, err)
		}
		if len(ev.RRule) > 0 {
			ve.AddRrule(ev.RRule)
		}
	}
	return cal, nil
}
