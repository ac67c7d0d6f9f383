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
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/widthtab/widthtab/go/rangetable"
	"github.com/widthtab/widthtab/go/servenv"
	"github.com/widthtab/widthtab/go/viperutil"
	"github.com/widthtab/widthtab/go/widthclass"
)

// WidthGenCommand holds the configuration for widthgen commands.
type WidthGenCommand struct {
	reg        *viperutil.Registry
	classifier *viperutil.Value[string]
	eastAsian  *viperutil.Value[bool]
	tablePath  *viperutil.Value[string]
	outputPath *viperutil.Value[string]
	vc         *viperutil.ViperConfig
	lg         *servenv.Logger

	// createOutput opens the --output destination. Replaced in tests.
	createOutput func(path string) (io.WriteCloser, error)
}

// GetRootCommand creates and returns the root command for widthgen with all
// subcommands.
func GetRootCommand() (*cobra.Command, *WidthGenCommand) {
	reg := viperutil.NewRegistry()
	wc := &WidthGenCommand{
		reg: reg,
		classifier: viperutil.Configure(reg, "classifier", viperutil.Options[string]{
			Default:  "terminal",
			FlagName: "classifier",
		}),
		eastAsian: viperutil.Configure(reg, "east-asian", viperutil.Options[bool]{
			Default:  false,
			FlagName: "east-asian",
		}),
		tablePath: viperutil.Configure(reg, "table", viperutil.Options[string]{
			Default:  "",
			FlagName: "table",
		}),
		outputPath: viperutil.Configure(reg, "output", viperutil.Options[string]{
			Default:  "",
			FlagName: "output",
		}),
		vc: viperutil.NewViperConfig(reg),
		lg: servenv.NewLogger(reg),
		createOutput: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}

	root := &cobra.Command{
		Use:   "widthgen",
		Short: "Generate a range-encoded Unicode display width table",
		Long: `widthgen scans every Unicode code point from U+0000 through U+10FFFF,
classifies its display width, and writes one range per line to standard
output:

  <width> <start> <end>

Fields are decimal; width is -1 for unclassifiable code points, 0, 1 or 2
otherwise. Ranges split where the width changes and at fixed boundary code
points (UTF-8 length transitions, the surrogate block, the private use
areas), so consumers can pre-filter by encoded length and special-case
those blocks by range lookup alone.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Silence usage for application errors; flag and argument
			// errors still show it.
			cmd.SilenceUsage = true
			if _, err := wc.vc.LoadConfig(wc.reg); err != nil {
				return err
			}
			wc.lg.SetupLogging()
			return nil
		},
		RunE: wc.runGenerate,
	}

	root.PersistentFlags().String("classifier", wc.classifier.Default(), "Width classifier to use (terminal, eastasian)")
	root.PersistentFlags().Bool("east-asian", wc.eastAsian.Default(), "Treat East Asian ambiguous characters as wide")
	root.PersistentFlags().String("table", wc.tablePath.Default(), "Width table file to use instead of a built-in classifier (generate) or instead of standard input (check)")
	root.Flags().StringP("output", "o", wc.outputPath.Default(), "Write the table to this file instead of standard output")
	wc.vc.RegisterFlags(root.PersistentFlags())
	wc.lg.RegisterFlags(root.PersistentFlags())
	viperutil.BindFlags(root.PersistentFlags(), wc.classifier, wc.eastAsian, wc.tablePath)
	viperutil.BindFlags(root.Flags(), wc.outputPath)

	AddCheckCommand(root, wc)
	return root, wc
}

// newClassifier resolves the flags to a width classifier.
func (wc *WidthGenCommand) newClassifier() (widthclass.Classifier, error) {
	if path := wc.tablePath.Get(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open width table: %w", err)
		}
		defer f.Close()
		table, err := rangetable.Read(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read width table %s: %w", path, err)
		}
		if err := rangetable.Validate(table); err != nil {
			return nil, fmt.Errorf("invalid width table %s: %w", path, err)
		}
		return widthclass.FromTable(table), nil
	}
	switch name := wc.classifier.Get(); name {
	case "terminal":
		return widthclass.NewTerminal(wc.eastAsian.Get()), nil
	case "eastasian":
		return widthclass.EastAsian{}, nil
	default:
		return nil, fmt.Errorf("unknown classifier %q (want terminal or eastasian)", name)
	}
}

func (wc *WidthGenCommand) runGenerate(cmd *cobra.Command, args []string) error {
	classifier, err := wc.newClassifier()
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	var closer io.Closer
	if path := wc.outputPath.Get(); path != "" {
		f, err := wc.createOutput(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		out, closer = f, f
	}

	bw := bufio.NewWriter(out)
	count := 0
	err = rangetable.Compress(classifier.Width, func(rec rangetable.Record) error {
		count++
		return rangetable.Write(bw, rec)
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to write width table: %w", err)
	}
	if err := bw.Flush(); err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to flush width table: %w", err)
	}
	// The close error matters: the table may still be buffered in the
	// kernel, and a failure here means a truncated file.
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}

	slog.Debug("width table generated", "ranges", count)
	return nil
}
