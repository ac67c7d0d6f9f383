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

// Package servenv carries the process-level environment shared by the
// widthtab command-line tools, currently structured logging configured from
// flags. Diagnostics default to stderr because both tools own stdout for
// their data output.
package servenv

import (
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/pflag"

	"github.com/widthtab/widthtab/go/viperutil"
)

// Logger owns the logging flags and builds the process slog.Logger.
type Logger struct {
	logLevel  *viperutil.Value[string]
	logFormat *viperutil.Value[string]
	logOutput *viperutil.Value[string]

	once   sync.Once
	logger *slog.Logger
}

// NewLogger registers the logging values on reg.
func NewLogger(reg *viperutil.Registry) *Logger {
	return &Logger{
		logLevel: viperutil.Configure(reg, "log-level", viperutil.Options[string]{
			Default:  "info",
			FlagName: "log-level",
		}),
		logFormat: viperutil.Configure(reg, "log-format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "log-format",
		}),
		logOutput: viperutil.Configure(reg, "log-output", viperutil.Options[string]{
			Default:  "stderr",
			FlagName: "log-output",
		}),
	}
}

// RegisterFlags installs the logging flags on fs and binds them.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", lg.logLevel.Default(), "Log level (debug, info, warn, error)")
	fs.String("log-format", lg.logFormat.Default(), "Log format (text, json)")
	fs.String("log-output", lg.logOutput.Default(), "Log output (stderr, stdout, or a file path)")
	viperutil.BindFlags(fs, lg.logLevel, lg.logFormat, lg.logOutput)
}

// SetupLogging builds the logger from the registered values and installs it
// as the process default. Safe to call more than once; only the first call
// takes effect.
func (lg *Logger) SetupLogging() *slog.Logger {
	lg.once.Do(func() {
		out := lg.resolveOutput()
		opts := &slog.HandlerOptions{Level: parseLevel(lg.logLevel.Get())}

		var handler slog.Handler
		if lg.logFormat.Get() == "json" {
			handler = slog.NewJSONHandler(out, opts)
		} else {
			handler = slog.NewTextHandler(out, opts)
		}

		lg.logger = slog.New(handler)
		slog.SetDefault(lg.logger)
	})
	return lg.logger
}

func (lg *Logger) resolveOutput() *os.File {
	switch dest := lg.logOutput.Get(); dest {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	default:
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Warn("failed to open log output, falling back to stderr", "path", dest, "error", err)
			return os.Stderr
		}
		return f
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
