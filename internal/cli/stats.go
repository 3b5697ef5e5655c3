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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tove-editor/tove/internal/logging"
	"github.com/tove-editor/tove/internal/ui/pretty"
	"github.com/tove-editor/tove/token"
)

func newStatsCommand(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Print token statistics for files",
		Long: `Compute token statistics for each named file and print a report.

With --json, each file yields one JSON document in the export schema,
including the full token frequency table.

Examples:
  tove stats notes.txt           # Styled report
  tove stats --json notes.txt    # JSON export document
  tove stats a.txt b.txt         # One report per file`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output statistics as JSON")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, flags *rootFlags, asJSON bool) error {
	logger := logging.NewStderr("info")
	if flags.debug {
		logger = logging.NewStderr("debug")
	}

	out := cmd.OutOrStdout()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	formatter := pretty.NewReportFormatter(styles, pretty.TerminalWidth(out))

	for i, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		stats := token.Compute(content)
		logger.Debug("computed statistics",
			logging.FieldFile, path,
			logging.FieldBytes, len(content),
		)

		if asJSON {
			doc, err := stats.ExportJSON(path)
			if err != nil {
				return fmt.Errorf("encode %s: %w", path, err)
			}
			if _, err := out.Write(doc); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			continue
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, formatter.FormatReport(path, stats))
	}

	return nil
}
