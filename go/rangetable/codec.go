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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write encodes one record in the wire format: three space-separated decimal
// integers, width first, newline-terminated.
func Write(w io.Writer, rec Record) error {
	_, err := fmt.Fprintf(w, "%d %d %d\n", rec.Width, rec.Start, rec.End)
	return err
}

// Read parses a width table from r. Records are returned in file order;
// Read checks per-record well-formedness (field count, decimal syntax,
// start <= end, domain bounds) but not table-level properties. Use Validate
// for those.
func Read(r io.Reader) (Table, error) {
	var table Table
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		table = append(table, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read width table: %w", err)
	}
	return table, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("bad width %q: %w", fields[0], err)
	}
	start, err := parseCodePoint(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("bad start %q: %w", fields[1], err)
	}
	end, err := parseCodePoint(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("bad end %q: %w", fields[2], err)
	}
	if start > end {
		return Record{}, fmt.Errorf("start %#x after end %#x", start, end)
	}
	return Record{Width: width, Start: start, End: end}, nil
}

func parseCodePoint(s string) (rune, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > int64(MaxCodePoint) {
		return 0, fmt.Errorf("code point %d out of range", n)
	}
	return rune(n), nil
}
