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
	"bufio"
	"fmt"
	"io"

	"github.com/widthtab/widthtab/go/widthclass"
)

// DefaultMaxLineBytes bounds how much of a single line is held in memory.
const DefaultMaxLineBytes = 64 * 1024

// Runner reads lines from In and writes one decimal width per line to Out,
// in input order. Each line is an independent unit: a line that cannot be
// decoded, or that exceeds MaxLineBytes, reports -1 and processing
// continues. Only stream-level read or write failures abort the run.
type Runner struct {
	In         io.Reader
	Out        io.Writer
	Classifier widthclass.Classifier
	// Decoder decodes a line's raw bytes; nil means strict UTF-8.
	Decoder Decoder
	// Graphemes selects grapheme-cluster measurement over per-code-point
	// summation.
	Graphemes bool
	// MaxLineBytes caps the byte length of a single line, terminator
	// included; zero means DefaultMaxLineBytes.
	MaxLineBytes int
}

// Run processes In until EOF. The returned error names the failing stream
// operation; a nil return means every line, including none, was measured.
func (rn *Runner) Run() error {
	max := rn.MaxLineBytes
	if max <= 0 {
		max = DefaultMaxLineBytes
	}
	dec := rn.Decoder
	if dec == nil {
		dec = UTF8{}
	}

	br := bufio.NewReader(rn.In)
	bw := bufio.NewWriter(rn.Out)
	for {
		line, tooLong, err := readLine(br, max)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		width := -1
		if !tooLong {
			if runes, derr := dec.Decode(trimTerminator(line)); derr == nil {
				if rn.Graphemes {
					width = GraphemeWidth(rn.Classifier, runes)
				} else {
					width = LineWidth(rn.Classifier, runes)
				}
			}
		}
		if _, werr := fmt.Fprintf(bw, "%d\n", width); werr != nil {
			return fmt.Errorf("write width: %w", werr)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// readLine returns the next line including its terminator, or io.EOF once
// the input is exhausted. tooLong reports a line exceeding max bytes; its
// remainder has been consumed so the next call starts at the next line.
func readLine(br *bufio.Reader, max int) (line []byte, tooLong bool, err error) {
	var buf []byte
	for {
		frag, err := br.ReadSlice('\n')
		if tooLong || len(buf)+len(frag) > max {
			tooLong = true
		} else {
			buf = append(buf, frag...)
		}
		switch err {
		case nil:
			return buf, tooLong, nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(buf) == 0 && !tooLong {
				return nil, false, io.EOF
			}
			return buf, tooLong, nil
		default:
			return nil, false, err
		}
	}
}

// trimTerminator strips one trailing newline, and a carriage return before
// it, when present. An unterminated final line is measured whole.
func trimTerminator(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
