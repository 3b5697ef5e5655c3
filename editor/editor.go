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
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tove-editor/tove/internal/logging"
	"github.com/tove-editor/tove/types"
)

// The Editor manages the editing of text in a Buffer. The cursor row stays
// in [0, rowcount) and the column in [0, row length]; one past the last
// character is a valid position.
type Editor struct {
	Cursor types.Point // cursor position
	Offset types.Size  // display offset
	Buffer *Buffer     // buffer being edited
	size   types.Size  // size of editing area
	dirty  bool        // unsaved changes
	logger *log.Logger
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.logger = logging.Discard()
	return e
}

func (e *Editor) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// Scroll shifts the display offset by the minimum amount that brings the
// cursor back into view. Offsets never go negative.
func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.Cursor.Col < e.Offset.Cols {
		e.Offset.Cols = e.Cursor.Col
	}
	if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
	}
	if e.Offset.Rows < 0 {
		e.Offset.Rows = 0
	}
	if e.Offset.Cols < 0 {
		e.Offset.Cols = 0
	}
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case types.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			// wrap to the end of the previous line
			e.Cursor.Row--
			e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
		}
	case types.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			// wrap to the start of the next line
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	case types.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
		e.clampColumn()
	case types.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
		e.clampColumn()
	}
}

func (e *Editor) clampColumn() {
	if rowLength := e.Buffer.GetRowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

// KeepCursorInRow re-establishes the cursor invariant by clamping.
func (e *Editor) KeepCursorInRow() {
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.Cursor.Row = e.Buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if rowLength := e.Buffer.GetRowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

// editing primitives

func (e *Editor) InsertChar(c rune) {
	if e.Cursor.Col > e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	}
	e.Buffer.rows[e.Cursor.Row].InsertChar(e.Cursor.Col, c)
	e.Cursor.Col++
	e.dirty = true
}

// InsertNewline splits the current row at the cursor. The cursor moves to
// the start of the new row.
func (e *Editor) InsertNewline() {
	newRow := e.Buffer.rows[e.Cursor.Row].Split(e.Cursor.Col)
	i := e.Cursor.Row + 1
	e.Buffer.rows = append(e.Buffer.rows, nil)
	copy(e.Buffer.rows[i+1:], e.Buffer.rows[i:])
	e.Buffer.rows[i] = newRow
	e.Cursor.Row++
	e.Cursor.Col = 0
	e.dirty = true
}

// InsertBlock pastes a multi-line block of text at the cursor. The text is
// split on newlines with carriage returns stripped; the first segment joins
// the current line at the cursor, later segments become new rows, and the
// original tail of the line follows the last segment. The cursor lands at
// the end of the last inserted segment.
func (e *Editor) InsertBlock(text string) {
	if text == "" {
		return
	}
	segments := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	row := e.Buffer.rows[e.Cursor.Row]
	tail := string(row.Text[e.Cursor.Col:])
	row.Text = append(row.Text[:e.Cursor.Col], []rune(segments[0])...)

	if len(segments) > 1 {
		inserted := make([]*Row, 0, len(segments)-1)
		for _, segment := range segments[1:] {
			inserted = append(inserted, NewRow(segment))
		}
		rows := make([]*Row, 0, len(e.Buffer.rows)+len(inserted))
		rows = append(rows, e.Buffer.rows[:e.Cursor.Row+1]...)
		rows = append(rows, inserted...)
		rows = append(rows, e.Buffer.rows[e.Cursor.Row+1:]...)
		e.Buffer.rows = rows
	}

	e.Cursor.Row += len(segments) - 1
	last := e.Buffer.rows[e.Cursor.Row]
	e.Cursor.Col = last.Length()
	last.Text = append(last.Text, []rune(tail)...)
	e.dirty = true
}

// BackspaceChar deletes the character before the cursor. At the start of a
// line it merges the line into the previous one and puts the cursor at the
// join point.
func (e *Editor) BackspaceChar() {
	if e.Cursor.Col > 0 {
		e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
		e.dirty = true
	} else if e.Cursor.Row > 0 {
		previous := e.Buffer.rows[e.Cursor.Row-1]
		col := previous.Length()
		previous.Join(e.Buffer.rows[e.Cursor.Row])
		e.Buffer.rows = append(e.Buffer.rows[:e.Cursor.Row], e.Buffer.rows[e.Cursor.Row+1:]...)
		e.Cursor.Row--
		e.Cursor.Col = col
		e.dirty = true
	}
}

// DeleteForwardChar deletes the character at the cursor. At the end of a
// line it joins the next line onto this one.
func (e *Editor) DeleteForwardChar() {
	row := e.Buffer.rows[e.Cursor.Row]
	if e.Cursor.Col < row.Length() {
		row.DeleteChar(e.Cursor.Col)
		e.dirty = true
	} else if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
		row.Join(e.Buffer.rows[e.Cursor.Row+1])
		e.Buffer.rows = append(e.Buffer.rows[:e.Cursor.Row+1], e.Buffer.rows[e.Cursor.Row+2:]...)
		e.dirty = true
	}
}

// navigation

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(types.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	e.KeepCursorInRow()
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(types.MoveDown)
	}
}

// accessors

func (e *Editor) GetCursor() types.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor types.Point) {
	e.Cursor = cursor
}

func (e *Editor) SetSize(s types.Size) {
	e.size = s
}

func (e *Editor) GetOffset() types.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() types.Buffer {
	return e.Buffer
}

func (e *Editor) IsDirty() bool {
	return e.dirty
}

func (e *Editor) SetDirty(dirty bool) {
	e.dirty = dirty
}
