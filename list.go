// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateonly

import (
	"context"
	"slices"
	"strings"

	"cloudeng.io/errors"
)

type List []Date

// ParseList parses each of vals using ParseContext. All of the values
// that fail to parse are reported in the returned error, which is an
// errors.M of *FormatError. The returned list contains the dates that
// were successfully parsed.
func ParseList(ctx context.Context, vals ...string) (List, error) {
	dl := make(List, 0, len(vals))
	errs := &errors.M{}
	for _, v := range vals {
		d, err := ParseContext(ctx, v)
		if err != nil {
			errs.Append(err)
			continue
		}
		dl = append(dl, d)
	}
	return dl, errs.Err()
}

// Sort sorts the list into ascending order.
func (dl List) Sort() {
	slices.SortFunc(dl, Date.Compare)
}

func (dl List) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

func (dl List) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}
