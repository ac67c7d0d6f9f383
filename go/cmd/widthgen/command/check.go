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

package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/widthtab/widthtab/go/rangetable"
)

// AddCheckCommand registers the check subcommand on root.
func AddCheckCommand(root *cobra.Command, wc *WidthGenCommand) {
	check := &cobra.Command{
		Use:   "check",
		Short: "Validate a width table's coverage, minimality and boundary splits",
		Long: `check reads a width table from standard input (or the file named by
--table) and verifies that its ranges cover the whole code point domain in
order with no gaps or overlaps, that no two adjacent ranges could have been
merged, and that every mandatory boundary code point starts a range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if path := wc.tablePath.Get(); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open width table: %w", err)
				}
				defer f.Close()
				in = f
			}

			table, err := rangetable.Read(in)
			if err != nil {
				return fmt.Errorf("failed to read width table: %w", err)
			}
			if err := rangetable.Validate(table); err != nil {
				return fmt.Errorf("invalid width table: %w", err)
			}

			slog.Info("width table ok", "ranges", len(table))
			return nil
		},
	}
	root.AddCommand(check)
}
