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

// Package widthclass classifies the display width of Unicode code points.
// Widths follow wcwidth(3) conventions: 0 for zero-width code points, 1 for
// narrow, 2 for wide, and Unclassified (-1) for control characters,
// surrogates and anything else with no defined width.
package widthclass

// Unclassified is the width reported for code points with no defined
// display width.
const Unclassified = -1

// Classifier reports the display width of a single code point.
type Classifier interface {
	Width(cp rune) int
}

// Func adapts a plain function to a Classifier.
type Func func(rune) int

func (f Func) Width(cp rune) int { return f(cp) }

// isControl reports C0 and C1 control characters, excluding NUL, which
// wcwidth defines as width zero.
func isControl(cp rune) bool {
	return (cp > 0 && cp < 0x20) || (cp >= 0x7F && cp <= 0x9F)
}

// isSurrogate reports UTF-16 surrogate code points, which can never be
// encoded and have no display width.
func isSurrogate(cp rune) bool {
	return cp >= 0xD800 && cp <= 0xDFFF
}
