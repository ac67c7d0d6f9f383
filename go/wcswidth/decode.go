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

package wcswidth

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidEncoding reports a line that is not valid in the decoder's
// encoding.
var ErrInvalidEncoding = errors.New("invalid byte sequence")

// Decoder turns one line of raw bytes into code points.
type Decoder interface {
	Decode(line []byte) ([]rune, error)
}

// UTF8 is a strict UTF-8 decoder: any invalid sequence fails the whole
// line rather than being replaced.
type UTF8 struct{}

func (UTF8) Decode(line []byte) ([]rune, error) {
	runes := make([]rune, 0, len(line))
	for len(line) > 0 {
		cp, size := utf8.DecodeRune(line)
		if cp == utf8.RuneError && size == 1 {
			return nil, ErrInvalidEncoding
		}
		runes = append(runes, cp)
		line = line[size:]
	}
	return runes, nil
}
