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
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/tove-editor/tove/token"
)

const defaultTermWidth = 80

// ReportFormatter renders token statistics as a styled report.
type ReportFormatter struct {
	styles    *Styles
	termWidth int
}

// NewReportFormatter creates a formatter with the given styles and
// terminal width. A width of zero or less falls back to the default.
func NewReportFormatter(styles *Styles, termWidth int) *ReportFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &ReportFormatter{styles: styles, termWidth: termWidth}
}

// FormatReport renders the statistics for a single file.
func (f *ReportFormatter) FormatReport(path string, stats *token.Stats) string {
	var b strings.Builder

	sepWidth := f.termWidth
	if sepWidth > 60 {
		sepWidth = 60
	}

	b.WriteString(f.styles.Title.Render(path))
	b.WriteString("\n")
	b.WriteString(f.styles.Separator.Render(strings.Repeat("-", sepWidth)))
	b.WriteString("\n")

	f.writeCount(&b, "Lines", stats.Lines)
	f.writeCount(&b, "Characters", stats.Chars)
	f.writeCount(&b, "Tokens", stats.Tokens)
	f.writeCount(&b, "Unique tokens", stats.UniqueTokens)
	f.writeRatio(&b, "Type-token ratio", stats.TTR)
	f.writeRatio(&b, "Avg token length", stats.AvgTokenLen)
	f.writeRatio(&b, "Char entropy", stats.CharEntropy)
	f.writeRatio(&b, "Token entropy", stats.TokenEntropy)
	f.writeCount(&b, "Digits", stats.Digits)
	f.writeCount(&b, "Letters", stats.Letters)
	f.writeCount(&b, "Whitespace", stats.Whitespace)
	f.writeCount(&b, "Punctuation", stats.Punctuation)

	return b.String()
}

func (f *ReportFormatter) writeCount(b *strings.Builder, label string, value int) {
	b.WriteString(fmt.Sprintf("%s %s\n",
		f.styles.Label.Render(fmt.Sprintf("%-20s", label)),
		f.styles.Count.Render(fmt.Sprintf("%d", value))))
}

func (f *ReportFormatter) writeRatio(b *strings.Builder, label string, value float64) {
	b.WriteString(fmt.Sprintf("%s %s\n",
		f.styles.Label.Render(fmt.Sprintf("%-20s", label)),
		f.styles.Value.Render(fmt.Sprintf("%.3f", value))))
}

// TerminalWidth returns the width of the terminal behind the writer, or
// the default when the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
