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
	"github.com/spf13/cobra"

	"github.com/widthtab/widthtab/go/servenv"
	"github.com/widthtab/widthtab/go/viperutil"
	"github.com/widthtab/widthtab/go/wcswidth"
	"github.com/widthtab/widthtab/go/widthclass"
)

// WcsWidthsCommand holds the configuration for the wcswidths command.
type WcsWidthsCommand struct {
	reg          *viperutil.Registry
	eastAsian    *viperutil.Value[bool]
	graphemes    *viperutil.Value[bool]
	maxLineBytes *viperutil.Value[int]
	vc           *viperutil.ViperConfig
	lg           *servenv.Logger
}

// GetRootCommand creates and returns the root command for wcswidths.
func GetRootCommand() (*cobra.Command, *WcsWidthsCommand) {
	reg := viperutil.NewRegistry()
	sc := &WcsWidthsCommand{
		reg: reg,
		eastAsian: viperutil.Configure(reg, "east-asian", viperutil.Options[bool]{
			Default:  false,
			FlagName: "east-asian",
		}),
		graphemes: viperutil.Configure(reg, "graphemes", viperutil.Options[bool]{
			Default:  false,
			FlagName: "graphemes",
		}),
		maxLineBytes: viperutil.Configure(reg, "max-line-bytes", viperutil.Options[int]{
			Default:  wcswidth.DefaultMaxLineBytes,
			FlagName: "max-line-bytes",
		}),
		vc: viperutil.NewViperConfig(reg),
		lg: servenv.NewLogger(reg),
	}

	root := &cobra.Command{
		Use:   "wcswidths",
		Short: "Print the display width of each line of standard input",
		Long: `wcswidths reads lines from standard input and writes one decimal integer
per line: the number of terminal cells the line occupies, or -1 when the
line contains a code point with no defined width or cannot be decoded.
The trailing line terminator is not counted.

Used as an oracle when testing consumers of widthgen tables.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if _, err := sc.vc.LoadConfig(sc.reg); err != nil {
				return err
			}
			sc.lg.SetupLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rn := &wcswidth.Runner{
				In:           cmd.InOrStdin(),
				Out:          cmd.OutOrStdout(),
				Classifier:   widthclass.NewTerminal(sc.eastAsian.Get()),
				Graphemes:    sc.graphemes.Get(),
				MaxLineBytes: sc.maxLineBytes.Get(),
			}
			return rn.Run()
		},
	}

	root.Flags().Bool("east-asian", sc.eastAsian.Default(), "Treat East Asian ambiguous characters as wide")
	root.Flags().Bool("graphemes", sc.graphemes.Default(), "Measure by grapheme cluster instead of by code point")
	root.Flags().Int("max-line-bytes", sc.maxLineBytes.Default(), "Longest input line, in bytes, that will be measured; longer lines report -1")
	sc.vc.RegisterFlags(root.PersistentFlags())
	sc.lg.RegisterFlags(root.PersistentFlags())
	viperutil.BindFlags(root.Flags(), sc.eastAsian, sc.graphemes, sc.maxLineBytes)

	return root, sc
}
