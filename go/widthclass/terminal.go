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
	"github.com/mattn/go-runewidth"
)

// Terminal classifies code points the way terminal emulators render them,
// backed by go-runewidth. It is the default classifier for both tools.
type Terminal struct {
	cond *runewidth.Condition
}

// NewTerminal returns a Terminal classifier. With eastAsian set, East Asian
// ambiguous characters are treated as wide, matching CJK locales.
func NewTerminal(eastAsian bool) *Terminal {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Terminal{cond: cond}
}

func (t *Terminal) Width(cp rune) int {
	switch {
	case cp == 0:
		return 0
	case isControl(cp) || isSurrogate(cp) || cp > 0x10FFFF:
		return Unclassified
	}
	return t.cond.RuneWidth(cp)
}
