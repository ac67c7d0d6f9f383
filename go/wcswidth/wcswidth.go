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

// Package wcswidth measures the display width of text lines, mirroring
// wcswidth(3): the width of a line is the sum of its code point widths, and
// any unclassifiable code point makes the whole line unmeasurable.
package wcswidth

import (
	"github.com/rivo/uniseg"

	"github.com/widthtab/widthtab/go/widthclass"
)

// LineWidth returns the total display width of the code points, or -1 when
// any of them is unclassifiable.
func LineWidth(c widthclass.Classifier, runes []rune) int {
	total := 0
	for _, cp := range runes {
		w := c.Width(cp)
		if w < 0 {
			return -1
		}
		total += w
	}
	return total
}

// GraphemeWidth measures the line by grapheme cluster instead of by code
// point, so ZWJ emoji sequences and regional indicator pairs count as one
// cell pair. Unclassifiable code points still force -1.
func GraphemeWidth(c widthclass.Classifier, runes []rune) int {
	for _, cp := range runes {
		if c.Width(cp) < 0 {
			return -1
		}
	}
	return uniseg.StringWidth(string(runes))
}
