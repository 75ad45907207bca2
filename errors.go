// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import "fmt"

// FormatError is returned when a string cannot be parsed as a Date.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("string %q was not recognized as a valid date: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("string %q was not recognized as a valid date", e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned by Format for any format other
// than "d", "o" or "O".
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("custom formats are not supported: %q", e.Format)
}
