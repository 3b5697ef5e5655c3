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

package cli

import (
	"errors"

	"github.com/tove-editor/tove/internal/logging"
)

// Exit codes for tove.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a runtime error.
	ExitError = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 64
)

// ErrUsage marks command-line usage mistakes so Run can exit with the
// usage code.
var ErrUsage = errors.New("usage error")

// Run executes the root command and maps the outcome to a process exit
// code.
func Run(info BuildInfo) int {
	rootCmd := NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.NewStderr("info")
		logger.Error("command failed", logging.FieldError, err)
		if errors.Is(err, ErrUsage) {
			return ExitUsage
		}
		return ExitError
	}

	return ExitSuccess
}
