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

// boundaryStarts lists the code points that must start a new range even when
// their width equals the preceding code point's. Splitting at UTF-8 length
// transitions lets consumers pre-filter by encoded length, and splitting at
// the surrogate and private-use block edges lets those blocks be
// special-cased by range lookup alone. The "first past the block" entries
// come from treating each block's last member as a forced range end.
var boundaryStarts = []rune{
	0x80,         // first code point encoded with 2 bytes in UTF-8
	0x800,        // first encoded with 3 bytes
	0x10000,      // first encoded with 4 bytes
	MaxCodePoint, // last valid code point

	0xD800, // surrogate block start
	0xE000, // first past the surrogates; also the Private Use Area start
	0xF900, // first past the Private Use Area

	0xF0000,  // Supplemental PUA-A start
	0xFFFFE,  // first past Supplemental PUA-A
	0x100000, // Supplemental PUA-B start
	0x10FFFE, // first past Supplemental PUA-B
}

var boundarySet = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(boundaryStarts))
	for _, cp := range boundaryStarts {
		set[cp] = struct{}{}
	}
	return set
}()

// IsBoundary reports whether the code point must start a new range.
func IsBoundary(cp rune) bool {
	_, ok := boundarySet[cp]
	return ok
}
