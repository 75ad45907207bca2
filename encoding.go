// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. Dates are always
// marshaled in YYYY-MM-DD format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any format
// accepted by Parse may be used.
func (d *Date) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Value implements driver.Valuer, dates are stored as YYYY-MM-DD strings.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner for time.Time, string and []byte values.
// A time.Time is interpreted in its own location.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		nd, err := FromTime(v)
		if err != nil {
			return err
		}
		*d = nd
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into a date")
	}
	return fmt.Errorf("cannot scan %T into a date", src)
}
