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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs Compress and gathers the emitted records.
func collect(t *testing.T, classify func(rune) int) Table {
	t.Helper()
	var table Table
	err := Compress(classify, func(rec Record) error {
		table = append(table, rec)
		return nil
	})
	require.NoError(t, err)
	return table
}

func constantWidth(w int) func(rune) int {
	return func(rune) int { return w }
}

func TestConstantWidthSplitsOnlyAtBoundaries(t *testing.T) {
	table := collect(t, constantWidth(1))

	wantStarts := []rune{
		0x0, 0x80, 0x800, 0xD800, 0xE000, 0xF900,
		0x10000, 0xF0000, 0xFFFFE, 0x100000, 0x10FFFE, 0x10FFFF,
	}
	require.Len(t, table, len(wantStarts))
	for i, rec := range table {
		assert.Equal(t, wantStarts[i], rec.Start, "range %d", i)
		assert.Equal(t, 1, rec.Width, "range %d", i)
	}
	require.NoError(t, Validate(table))
}

func TestEveryBoundaryStartsARange(t *testing.T) {
	// Width changes all over the place must not displace boundary splits.
	table := collect(t, func(cp rune) int { return int(cp % 3) })

	starts := make(map[rune]bool, len(table))
	for _, rec := range table {
		starts[rec.Start] = true
	}
	for _, cp := range boundaryStarts {
		assert.True(t, starts[cp], "no range starts at %#x", cp)
	}
	require.NoError(t, Validate(table))
}

func TestWidthChangeStartsNewRange(t *testing.T) {
	// ASCII printables are narrow, one CJK ideograph is wide, everything
	// else is unclassifiable. Splits must appear at each width change even
	// though none of these edges is a mandatory boundary.
	classify := func(cp rune) int {
		switch {
		case cp >= 0x20 && cp <= 0x7E:
			return 1
		case cp == 0x4E00:
			return 2
		default:
			return -1
		}
	}
	table := collect(t, classify)
	require.NoError(t, Validate(table))

	assert.Contains(t, table, Record{Width: -1, Start: 0x0, End: 0x1F})
	assert.Contains(t, table, Record{Width: 1, Start: 0x20, End: 0x7E})
	assert.Contains(t, table, Record{Width: 2, Start: 0x4E00, End: 0x4E00})

	for _, rec := range table {
		if rec.contains(0x7F) {
			assert.Equal(t, rune(0x7F), rec.Start, "width change at 0x7F must start a range")
		}
	}
}

func TestCoverage(t *testing.T) {
	table := collect(t, func(cp rune) int { return int(cp % 2) })

	var next rune
	for _, rec := range table {
		require.Equal(t, next, rec.Start, "gap or overlap before %s", rec)
		require.LessOrEqual(t, rec.Start, rec.End)
		next = rec.End + 1
	}
	assert.Equal(t, MaxCodePoint+1, next)
}

func TestDeterminism(t *testing.T) {
	run := func() []byte {
		var buf bytes.Buffer
		err := Compress(constantWidth(2), func(rec Record) error {
			return Write(&buf, rec)
		})
		require.NoError(t, err)
		return buf.Bytes()
	}
	assert.Equal(t, run(), run())
}

func TestEmitFailureAbortsScan(t *testing.T) {
	sentinel := errors.New("stream closed")
	calls := 0
	err := Compress(constantWidth(1), func(Record) error {
		calls++
		if calls == 3 {
			return sentinel
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls, "no ranges may be emitted after a failure")
}

func TestLookup(t *testing.T) {
	classify := func(cp rune) int {
		if cp >= 0x20 && cp <= 0x7E {
			return 1
		}
		return -1
	}
	table := collect(t, classify)

	for _, cp := range []rune{0x0, 0x20, 0x41, 0x7E, 0x7F, 0x80, 0xD800, 0x4E00, MaxCodePoint} {
		w, ok := table.Lookup(cp)
		require.True(t, ok, "lookup %#x", cp)
		assert.Equal(t, classify(cp), w, "lookup %#x", cp)
	}

	_, ok := Table{{Width: 1, Start: 0x20, End: 0x7E}}.Lookup(0x7F)
	assert.False(t, ok)
}
