// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/dateonly"
	"cloudeng.io/dateonly/ical"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type parseFlags struct {
	CommonFlags
}

type dayNumberFlags struct {
	CommonFlags
}

type fromDayNumberFlags struct {
	CommonFlags
}

type RangeFlags struct {
	From string `subcmd:"from,,'the first date of the range to print, defaults to the start of the current year'"`
	To   string `subcmd:"to,,'the last date of the range to print, defaults to the end of the current year'"`
}

type expandFlags struct {
	CommonFlags
	RangeFlags
	RRule string `subcmd:"rrule,,'an iCalendar recurrence rule, eg. FREQ=YEARLY;BYMONTH=7;BYMONTHDAY=4'"`
}

type eventsFlags struct {
	CommonFlags
	RangeFlags
}

type cli struct {
	out io.Writer
}

func (c *cli) printDate(format string, d dateonly.Date, rest ...any) error {
	s, err := d.Format(format)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		_, err = fmt.Fprintln(c.out, s)
		return err
	}
	_, err = fmt.Fprintln(c.out, append([]any{s}, rest...)...)
	return err
}

func (c *cli) parse(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	ctx, cfg, err := setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	dates, parseErr := dateonly.ParseList(ctx, args...)
	if parseErr != nil {
		ctxlog.Logger(ctx).Warn("failed to parse dates", "error", parseErr)
	}
	for _, d := range dates {
		if err := c.printDate(cfg.Format, d); err != nil {
			return err
		}
	}
	return parseErr
}

func (c *cli) dayNumber(ctx context.Context, values any, args []string) error {
	fv := values.(*dayNumberFlags)
	ctx, cfg, err := setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, arg := range args {
		d, err := dateonly.ParseContext(ctx, arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		errs.Append(c.printDate(cfg.Format, d, d.DayNumber()))
	}
	return errs.Err()
}

func (c *cli) fromDayNumber(ctx context.Context, values any, args []string) error {
	fv := values.(*fromDayNumberFlags)
	ctx, cfg, err := setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid day number: %q: %w", arg, err))
			continue
		}
		d, err := dateonly.FromDayNumber(n)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("day number", "day", n, "date", d.String())
		errs.Append(c.printDate(cfg.Format, d))
	}
	return errs.Err()
}

// dateRange returns the range specified by the flags, defaulting to
// the current year as per the clock stored in ctx.
func (rf RangeFlags) dateRange(ctx context.Context) (from, to dateonly.Date, err error) {
	year := dateonly.ClockFromContext(ctx).Now().Year()
	from, to = dateonly.MustCreate(year, 1, 1), dateonly.MustCreate(year, 12, 31)
	if len(rf.From) > 0 {
		if from, err = dateonly.ParseContext(ctx, rf.From); err != nil {
			return
		}
	}
	if len(rf.To) > 0 {
		if to, err = dateonly.ParseContext(ctx, rf.To); err != nil {
			return
		}
	}
	if to.Before(from) {
		err = fmt.Errorf("%v is before %v", to, from)
	}
	return
}

func (c *cli) expand(ctx context.Context, values any, args []string) error {
	fv := values.(*expandFlags)
	ctx, cfg, err := setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	if len(fv.RRule) == 0 {
		return fmt.Errorf("--rrule must be specified")
	}
	first, err := dateonly.ParseContext(ctx, args[0])
	if err != nil {
		return err
	}
	from, to, err := fv.dateRange(ctx)
	if err != nil {
		return err
	}
	dates, err := ical.Expand(fv.RRule, first, from, to)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("expanded", "rrule", fv.RRule, "from", from.String(), "to", to.String(), "dates", len(dates))
	for _, d := range dates {
		if err := c.printDate(cfg.Format, d); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) events(ctx context.Context, values any, args []string) error {
	fv := values.(*eventsFlags)
	ctx, cfg, err := setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	from, to, err := fv.dateRange(ctx)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	events, parseErr := ical.Parse(f)
	if parseErr != nil {
		ctxlog.Logger(ctx).Warn("failed to read some events", "file", args[0], "error", parseErr)
	}
	var occurrences dateonly.List
	summaries := map[dateonly.Date][]string{}
	errs := &errors.M{}
	for _, ev := range events {
		dates, err := ev.Occurrences(from, to)
		if err != nil {
			errs.Append(fmt.Errorf("event %q: %w", ev.UID, err))
			continue
		}
		for _, d := range dates {
			if _, ok := summaries[d]; !ok {
				occurrences = append(occurrences, d)
			}
			summaries[d] = append(summaries[d], ev.Summary)
		}
	}
	occurrences.Sort()
	for _, d := range occurrences {
		for _, s := range summaries[d] {
			errs.Append(c.printDate(cfg.Format, d, s))
		}
	}
	errs.Append(parseErr)
	return errs.Err()
}
