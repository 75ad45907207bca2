// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ical

import (
	"fmt"
	"strings"

	"cloudeng.io/dateonly"
	"github.com/teambition/rrule-go"
)

// Expand returns the dates, between from and to inclusive, on which an
// event that starts on first and recurs as per the RRULE in rule occurs.
// The rule may optionally be prefixed with 'RRULE:'.
func Expand(rule string, first, from, to dateonly.Date) ([]dateonly.Date, error) {
	rule = strings.TrimSpace(rule)
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule %q: %w", rule, err)
	}
	r.DTStart(first.Time())
	times := r.Between(from.Time(), to.Time(), true)
	dates := make([]dateonly.Date, 0, len(times))
	for _, t := range times {
		d, err := dateonly.FromTime(t)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// Occurrences returns the first day of every occurrence of ev that
// starts between from and to inclusive. Non-recurring events have at
// most one occurrence.
func (ev Event) Occurrences(from, to dateonly.Date) ([]dateonly.Date, error) {
	if len(ev.RRule) == 0 {
		if ev.First.Before(from) || ev.First.After(to) {
			return nil, nil
		}
		return []dateonly.Date{ev.First}, nil
	}
	return Expand(ev.RRule, ev.First, from, to)
}
