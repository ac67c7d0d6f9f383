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

import "fmt"

// EmitFunc receives each finalized range, in strictly increasing Start
// order. Returning an error aborts the scan immediately; no further ranges
// are produced.
type EmitFunc func(Record) error

// Compress scans every code point from 0 through MaxCodePoint in order,
// classifies each with classify, and streams the minimal range records
// consistent with the boundary split rules to emit. A range ends when the
// next code point's width differs or the next code point is a mandatory
// boundary. The final pending range is flushed after the scan.
//
// Each emission is checked against the previous one for contiguity and
// minimality before being handed to emit; a violation means classify is not
// a pure function of its argument.
func Compress(classify func(rune) int, emit EmitFunc) error {
	var (
		start rune
		prev  int
		last  Record
		count int
	)
	for cp := rune(0); cp <= MaxCodePoint; cp++ {
		width := classify(cp)
		if cp == 0 {
			prev = width
			continue
		}
		if width != prev || IsBoundary(cp) {
			rec := Record{Width: prev, Start: start, End: cp - 1}
			if err := emitChecked(rec, last, count, emit); err != nil {
				return err
			}
			last = rec
			count++
			start, prev = cp, width
		}
	}
	return emitChecked(Record{Width: prev, Start: start, End: MaxCodePoint}, last, count, emit)
}

func emitChecked(rec, last Record, count int, emit EmitFunc) error {
	if count > 0 {
		if rec.Start != last.End+1 {
			return fmt.Errorf("internal: range %s does not follow %s", rec, last)
		}
		if rec.Width == last.Width && !IsBoundary(rec.Start) {
			return fmt.Errorf("internal: non-minimal split between %s and %s", last, rec)
		}
	}
	if err := emit(rec); err != nil {
		return fmt.Errorf("emit range %s: %w", rec, err)
	}
	return nil
}
