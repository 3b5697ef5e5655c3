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

// Package shell runs external processes for the editor: arbitrary shell
// command lines and the compile-and-run pipeline behind :cpp. Commands
// block until the subprocess exits; the session loop is synchronous and
// expects that.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tove-editor/tove/internal/logging"
)

// Runner spawns subprocesses with a fixed interpreter and compiler
// configuration. It implements types.Runner.
type Runner struct {
	shell    string
	compiler string
	flags    []string
	logger   *log.Logger
}

// NewRunner returns a Runner that interprets command lines with shell
// (for example /bin/sh) and compiles sources with compiler and flags.
func NewRunner(shell, compiler string, flags []string) *Runner {
	return &Runner{
		shell:    shell,
		compiler: compiler,
		flags:    flags,
		logger:   logging.Discard(),
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Shell runs a command line through the configured interpreter and
// returns its combined stdout and stderr. The output is returned even
// when the command exits nonzero; failure text is data to the caller,
// not an error.
func (r *Runner) Shell(command string) ([]byte, error) {
	r.logger.Debug("running shell command", logging.FieldCommand, command)
	cmd := exec.Command(r.shell, "-c", command)
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.logger.Debug("shell command failed", logging.FieldCommand, command, logging.FieldError, err)
		if len(output) > 0 {
			return output, nil
		}
		return nil, err
	}
	return output, nil
}

// CompileAndRun writes source to a temporary file, compiles it, and runs
// the resulting binary. When compilation fails, output holds the compiler
// diagnostics and ran is false. When the binary runs, output holds its
// combined stdout and stderr, even if it exited nonzero. A non-nil err
// means the pipeline itself could not be set up.
func (r *Runner) CompileAndRun(source []byte) (output []byte, ran bool, err error) {
	dir, err := os.MkdirTemp("", "tove-cpp-")
	if err != nil {
		return nil, false, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if len(source) == 0 || source[len(source)-1] != '\n' {
		source = append(source, '\n')
	}
	src := filepath.Join(dir, "main.cpp")
	bin := filepath.Join(dir, "main")
	if err := os.WriteFile(src, source, 0644); err != nil {
		return nil, false, fmt.Errorf("write temp source: %w", err)
	}

	args := make([]string, 0, len(r.flags)+3)
	args = append(args, r.flags...)
	args = append(args, src, "-o", bin)
	r.logger.Debug("compiling buffer", logging.FieldCommand, r.compiler, logging.FieldBytes, len(source))
	diagnostics, compileErr := exec.Command(r.compiler, args...).CombinedOutput()
	if compileErr != nil {
		r.logger.Debug("compilation failed", logging.FieldError, compileErr)
		return diagnostics, false, nil
	}

	// A crash still counts as a run; whatever the program printed is
	// the result.
	runOutput, runErr := exec.Command(bin).CombinedOutput()
	if runErr != nil {
		r.logger.Debug("program exited with error", logging.FieldError, runErr)
	}
	return runOutput, true, nil
}
