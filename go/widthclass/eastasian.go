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

package widthclass

import (
	"unicode"

	"golang.org/x/text/width"
)

// EastAsian classifies code points from UAX #11 East Asian Width properties
// via golang.org/x/text. Offered alongside Terminal so tables produced from
// the two providers can be diffed against each other.
type EastAsian struct{}

func (EastAsian) Width(cp rune) int {
	switch {
	case cp == 0:
		return 0
	case isControl(cp) || isSurrogate(cp) || cp > 0x10FFFF:
		return Unclassified
	}
	switch width.LookupRune(cp).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	if unicode.In(cp, unicode.Mn, unicode.Me, unicode.Cf) {
		return 0
	}
	return 1
}
