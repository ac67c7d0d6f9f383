// Copyright 2025 The Widthtab Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rangetable

import (
	"errors"
	"fmt"
)

// Validate checks the table-level invariants of a width table:
//
//   - the ranges cover exactly [0, MaxCodePoint], in order, with no gaps
//     and no overlaps;
//   - adjacent ranges with equal width are separated by a mandatory
//     boundary (minimality);
//   - every mandatory boundary code point starts a range.
func Validate(table Table) error {
	if len(table) == 0 {
		return errors.New("empty table")
	}
	// Per-record well-formedness comes first so a malformed record is
	// reported as such even when the table also violates coverage.
	for _, rec := range table {
		if rec.Start > rec.End {
			return fmt.Errorf("range %s: start after end", rec)
		}
	}
	if first := table[0]; first.Start != 0 {
		return fmt.Errorf("table starts at %#x, want 0", first.Start)
	}
	for i, rec := range table {
		if i > 0 {
			prev := table[i-1]
			switch {
			case rec.Start > prev.End+1:
				return fmt.Errorf("gap between %s and %s", prev, rec)
			case rec.Start <= prev.End:
				return fmt.Errorf("overlap between %s and %s", prev, rec)
			case rec.Width == prev.Width && !IsBoundary(rec.Start):
				return fmt.Errorf("non-minimal split between %s and %s", prev, rec)
			}
		}
		for _, cp := range boundaryStarts {
			if cp > rec.Start && cp <= rec.End {
				return fmt.Errorf("boundary %#x absorbed inside %s", cp, rec)
			}
		}
	}
	if last := table[len(table)-1]; last.End != MaxCodePoint {
		return fmt.Errorf("table ends at %#x, want %#x", last.End, MaxCodePoint)
	}
	return nil
}
