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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/widthtab/widthtab/go/rangetable"
)

func TestTerminalWidth(t *testing.T) {
	c := NewTerminal(false)

	tests := []struct {
		cp   rune
		want int
	}{
		{0x0, 0},       // NUL
		{0x7, -1},      // BEL
		{0x1F, -1},     // last C0 control
		{0x7F, -1},     // DEL
		{0x9F, -1},     // last C1 control
		{'A', 1},
		{' ', 1},
		{'~', 1},
		{0x0301, 0},    // combining acute accent
		{0x4E00, 2},    // CJK ideograph
		{0x1100, 2},    // Hangul Jamo leading consonant
		{0xFF01, 2},    // fullwidth exclamation mark
		{0xD800, -1},   // surrogate
		{0xDFFF, -1},   // surrogate
		{0x1F44D, 2},   // thumbs up emoji
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Width(tt.cp), "U+%04X", tt.cp)
	}
}

func TestTerminalEastAsianAmbiguous(t *testing.T) {
	// U+00A1 INVERTED EXCLAMATION MARK has the Ambiguous East Asian Width
	// property: narrow by default, wide in CJK locales.
	assert.Equal(t, 1, NewTerminal(false).Width(0xA1))
	assert.Equal(t, 2, NewTerminal(true).Width(0xA1))
}

func TestEastAsianWidth(t *testing.T) {
	c := EastAsian{}

	tests := []struct {
		cp   rune
		want int
	}{
		{0x0, 0},
		{0x8, -1},    // backspace
		{'A', 1},
		{0x0301, 0},  // combining mark
		{0x200D, 0},  // zero width joiner (format character)
		{0x4E00, 2},  // CJK ideograph, EastAsianWide
		{0xFF01, 2},  // fullwidth form
		{0xDC00, -1}, // surrogate
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Width(tt.cp), "U+%04X", tt.cp)
	}
}

func TestFunc(t *testing.T) {
	c := Func(func(cp rune) int { return 2 })
	assert.Equal(t, 2, c.Width('A'))
}

func TestFromTable(t *testing.T) {
	table := rangetable.Table{
		{Width: -1, Start: 0x0, End: 0x1F},
		{Width: 1, Start: 0x20, End: 0x7E},
	}
	c := FromTable(table)

	assert.Equal(t, -1, c.Width(0x7))
	assert.Equal(t, 1, c.Width('A'))
	// Outside every range.
	assert.Equal(t, Unclassified, c.Width(0x7F))
}

func TestFromTableMatchesSource(t *testing.T) {
	// A table generated from a classifier must classify identically to it.
	src := NewTerminal(false)
	var table rangetable.Table
	require.NoError(t, rangetable.Compress(src.Width, func(rec rangetable.Record) error {
		table = append(table, rec)
		return nil
	}))
	require.NoError(t, rangetable.Validate(table))

	dst := FromTable(table)
	for cp := rune(0); cp <= rangetable.MaxCodePoint; cp += 17 {
		require.Equal(t, src.Width(cp), dst.Width(cp), "U+%04X", cp)
	}
}
