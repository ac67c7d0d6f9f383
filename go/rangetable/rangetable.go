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

// Package rangetable produces and consumes range-encoded Unicode display
// width tables. A table is an ordered list of (width, start, end) records
// covering every code point from U+0000 through U+10FFFF with no gaps and no
// overlaps. Adjacent ranges either differ in width or are separated by a
// mandatory boundary code point, so the table is the minimal one consistent
// with its split rules.
package rangetable

import (
	"fmt"
	"sort"
)

// MaxCodePoint is the last valid Unicode code point.
const MaxCodePoint rune = 0x10FFFF

// Record asserts that every code point in [Start, End] has display width
// Width and that no mandatory boundary lies strictly inside the range.
type Record struct {
	Width int
	Start rune
	End   rune
}

func (r Record) String() string {
	return fmt.Sprintf("%d %d %d", r.Width, r.Start, r.End)
}

// contains reports whether the code point lies inside the record.
func (r Record) contains(cp rune) bool {
	return r.Start <= cp && cp <= r.End
}

// Table is an ordered record list supporting code point lookup. Tables
// returned by Read are in emission order; Lookup additionally requires the
// table to be gap-free, which Validate checks.
type Table []Record

// Lookup returns the width recorded for the code point, or false if the
// code point is outside every range.
func (t Table) Lookup(cp rune) (int, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].End >= cp })
	if i < len(t) && t[i].contains(cp) {
		return t[i].Width, true
	}
	return 0, false
}
