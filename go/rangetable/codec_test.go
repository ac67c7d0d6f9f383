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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Record{Width: -1, Start: 0, End: 0x1F}))
	require.NoError(t, Write(&buf, Record{Width: 2, Start: 0x4E00, End: 0x9FFF}))
	assert.Equal(t, "-1 0 31\n2 19968 40959\n", buf.String())
}

func TestReadValidTable(t *testing.T) {
	in := "-1 0 31\n1 32 126\n\n-1 127 1114111\n"
	table, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Table{
		{Width: -1, Start: 0, End: 31},
		{Width: 1, Start: 32, End: 126},
		{Width: -1, Start: 127, End: 1114111},
	}, table)
}

func TestReadRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"too few fields", "1 32\n", "expected 3 fields"},
		{"too many fields", "1 32 126 0\n", "expected 3 fields"},
		{"non-numeric width", "x 32 126\n", "bad width"},
		{"non-numeric start", "1 x 126\n", "bad start"},
		{"non-numeric end", "1 32 x\n", "bad end"},
		{"negative start", "1 -5 126\n", "bad start"},
		{"start past end", "1 126 32\n", "start 0x7e after end 0x20"},
		{"code point out of domain", "1 32 1114112\n", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestRoundTrip(t *testing.T) {
	classify := func(cp rune) int {
		if cp >= 0x1100 && cp <= 0x115F {
			return 2
		}
		return 1
	}

	var buf bytes.Buffer
	require.NoError(t, Compress(classify, func(rec Record) error {
		return Write(&buf, rec)
	}))

	table, err := Read(&buf)
	require.NoError(t, err)
	require.NoError(t, Validate(table))

	for _, cp := range []rune{0x0, 0x10FF, 0x1100, 0x115F, 0x1160, MaxCodePoint} {
		w, ok := table.Lookup(cp)
		require.True(t, ok, "lookup %#x", cp)
		assert.Equal(t, classify(cp), w, "lookup %#x", cp)
	}
}
