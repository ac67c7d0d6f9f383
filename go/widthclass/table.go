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
	"github.com/widthtab/widthtab/go/rangetable"
)

// FromTable returns a Classifier backed by a range-encoded width table, the
// lookup shape a downstream consumer of the generated tables uses. Code
// points outside every range report Unclassified.
func FromTable(table rangetable.Table) Classifier {
	return Func(func(cp rune) int {
		if w, ok := table.Lookup(cp); ok {
			return w
		}
		return Unclassified
	})
}
