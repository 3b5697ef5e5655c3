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

package pretty

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tove-editor/tove/token"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	stats := token.Compute([]byte("alpha beta alpha"))
	formatter := NewReportFormatter(NewStyles(false), 80)

	out := formatter.FormatReport("notes.txt", stats)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "notes.txt", lines[0])
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
	assert.Contains(t, out, fmt.Sprintf("%-20s %d", "Lines", 1))
	assert.Contains(t, out, fmt.Sprintf("%-20s %d", "Tokens", 3))
	assert.Contains(t, out, fmt.Sprintf("%-20s %d", "Unique tokens", 2))
	assert.Contains(t, out, fmt.Sprintf("%-20s %s", "Type-token ratio", "0.667"))
}

func TestFormatReportNarrowSeparator(t *testing.T) {
	t.Parallel()

	stats := token.Compute([]byte("a"))
	formatter := NewReportFormatter(NewStyles(false), 40)

	out := formatter.FormatReport("x", stats)

	assert.Contains(t, out, strings.Repeat("-", 40)+"\n")
	assert.NotContains(t, out, strings.Repeat("-", 41))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))

	// A plain buffer is not a terminal.
	assert.False(t, IsColorEnabled("auto", &buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestTerminalWidthFallsBack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, defaultTermWidth, TerminalWidth(&buf))
}
