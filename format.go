// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import "fmt"

const (
	// FormatShort formats a date as MM/DD/YYYY.
	FormatShort = "d"
	// FormatISO formats a date as YYYY-MM-DD, "O" is accepted as a synonym.
	FormatISO = "o"
	// FormatDefault is the format used when none is specified.
	FormatDefault = FormatShort
)

// Format returns d formatted as per FormatShort or FormatISO, all fields
// are zero padded. Any other format returns an UnsupportedFormatError.
func (d Date) Format(format string) (string, error) {
	switch format {
	case FormatShort:
		return fmt.Sprintf("%02d/%02d/%04d", int(d.Month()), d.Day(), d.Year()), nil
	case FormatISO, "O":
		return d.String(), nil
	}
	return "", &UnsupportedFormatError{Format: format}
}

// String returns d in YYYY-MM-DD format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}
