//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package cli provides the Cobra command structure for tove.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tove-editor/tove/commander"
	"github.com/tove-editor/tove/editor"
	"github.com/tove-editor/tove/internal/config"
	"github.com/tove-editor/tove/internal/logging"
	"github.com/tove-editor/tove/screen"
	"github.com/tove-editor/tove/shell"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	configPath string
	logPath    string
	debug      bool
}

// NewRootCommand creates the root tove command with all subcommands.
// Running the root command itself opens the editor.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}
	var color string

	rootCmd := &cobra.Command{
		Use:   "tove [file]",
		Short: "A modal text editor with token analytics",
		Long: `tove is a modal, line-oriented text editor with a built-in token
analytics engine.

It opens the named file (or a fresh untitled buffer), edits in EDIT mode,
and dispatches colon commands in COMMAND mode. The :tok commands compute
token statistics, n-grams, and permutations over the current buffer and
insert the results at the cursor.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(ErrUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.logPath, "log", "", "path to log file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newStatsCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// usageArgs wraps a positional-argument validator so that failures carry
// the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.Join(ErrUsage, err)
		}
		return nil
	}
}

// runEditor wires the session together and runs the event loop until the
// commander stops. Terminal ownership belongs to the screen for the whole
// loop, so all logging goes to the configured file.
func runEditor(args []string, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	logPath := cfg.LogFile
	if flags.logPath != "" {
		logPath = flags.logPath
	}
	level := cfg.LogLevel
	if flags.debug {
		level = "debug"
	}

	logger := logging.Discard()
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = logging.New(f, level)
	}

	e := editor.NewEditor()
	e.SetLogger(logger)

	r := shell.NewRunner(cfg.Shell, cfg.Compiler, cfg.CompilerFlags)
	r.SetLogger(logger)

	c := commander.NewCommander(e, r)
	c.SetLogger(logger)
	c.SetTabWidth(cfg.TabWidth)

	path := "untitled.txt"
	if len(args) > 0 {
		path = args[0]
	}
	// An unreadable path names a fresh buffer instead of failing.
	if err := e.ReadFile(path); err != nil {
		e.NewFile(path)
	}

	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer s.Close()

	// Transient statuses (Executing:, Compiling...) repaint mid-command.
	c.SetRedraw(func() { s.Render(e, c) })

	logger.Info("session started", logging.FieldFile, path)

	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			logger.Error("event failed", logging.FieldError, err)
		}
	}

	logger.Info("session ended", logging.FieldFile, e.GetBuffer().GetFileName())
	return nil
}
