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
package editor

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/tove-editor/tove/types"
)

// A Buffer holds the rows of the document being edited. It always contains
// at least one row.
type Buffer struct {
	rows     []*Row
	fileName string
	language string
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.detectLanguage()
}

// GetLanguage returns the language detected from the file name and content.
func (b *Buffer) GetLanguage() string {
	return b.language
}

func (b *Buffer) detectLanguage() {
	lang := enry.GetLanguage(filepath.Base(b.fileName), b.Bytes())
	if lang == enry.OtherLanguage {
		lang = "Text"
	}
	b.language = lang
}

// LoadBytes replaces the buffer contents. Rows are the newline-split
// segments of the source with any trailing carriage return removed, so a
// load/save round trip reproduces the original bytes (modulo the stripped
// carriage returns). A source ending in a newline therefore ends with an
// empty row, and the result is never empty.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, "\r")))
	}
	b.detectLanguage()
}

// Bytes serializes the buffer, joining rows with newlines.
func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(string(row.Text))
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) TextAfter(row int, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

// Render draws the visible part of the buffer into a display. Tabs occupy a
// single cell so that screen columns track rune columns.
func (b *Buffer) Render(origin types.Point, size types.Size, offset types.Size, display types.Display) {
	for i := 0; i < size.Rows; i++ {
		r := i + offset.Rows
		if r >= len(b.rows) {
			break
		}
		text := b.rows[r].Text
		for j := 0; j < size.Cols; j++ {
			c := j + offset.Cols
			if c >= len(text) {
				break
			}
			ch := text[c]
			if ch == '\t' {
				ch = ' '
			}
			display.SetCell(origin.Col+j, origin.Row+i, ch)
		}
	}
}
