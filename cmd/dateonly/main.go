// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command dateonly parses, formats and converts calendar dates and
// expands recurring all-day events.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	c := &cli{out: os.Stdout}

	parseCmd := subcmd.NewCommand("parse",
		subcmd.MustRegisterFlagStruct(&parseFlags{}, nil, nil),
		c.parse)
	parseCmd.Document(`parse dates in any of the formats mm/dd, mm/yyyy, yyyy/mm, yyyy/mm/dd or mm/dd/yyyy and print them in the requested format.`, "<date>...")

	dayNumberCmd := subcmd.NewCommand("daynumber",
		subcmd.MustRegisterFlagStruct(&dayNumberFlags{}, nil, nil),
		c.dayNumber)
	dayNumberCmd.Document(`print the number of days since 1970-01-01 for each of the specified dates.`, "<date>...")

	fromDayNumberCmd := subcmd.NewCommand("from-daynumber",
		subcmd.MustRegisterFlagStruct(&fromDayNumberFlags{}, nil, nil),
		c.fromDayNumber)
	fromDayNumberCmd.Document(`print the date for each of the specified day numbers.`, "<day-number>...")

	expandCmd := subcmd.NewCommand("expand",
		subcmd.MustRegisterFlagStruct(&expandFlags{}, nil, nil),
		c.expand, subcmd.ExactlyNumArguments(1))
	expandCmd.Document(`print the dates of a recurring all-day event that starts on the specified date.`, "<first-date>")

	eventsCmd := subcmd.NewCommand("events",
		subcmd.MustRegisterFlagStruct(&eventsFlags{}, nil, nil),
		c.events, subcmd.ExactlyNumArguments(1))
	eventsCmd.Document(`print the occurrences of the all-day events in an iCalendar file.`, "<file.ics>")

	cmdSet = subcmd.NewCommandSet(parseCmd, dayNumberCmd, fromDayNumberCmd, expandCmd, eventsCmd)
	cmdSet.Document(`parse, format and convert calendar dates.

Dates without a year, eg. 12/30, are assumed to be in the current year as
determined by the system clock, the --year flag or the year specified
in the configuration file.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
