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

// Package screen draws the editor on a terminal and captures its key
// events. It is the only package that touches termbox.
package screen

import (
	"fmt"
	"strings"

	"github.com/nsf/termbox-go"

	"github.com/tove-editor/tove/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size types.Size // screen size
}

// NewScreen opens the terminal. The caller must Close it before the
// process writes anything else to the display.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e types.Editor, c types.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize types.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	if c.HelpVisible() {
		s.RenderHelp()
		termbox.HideCursor()
		termbox.Flush()
		return
	}

	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(c)
	bufferOrigin := types.Point{Row: 0, Col: 0}
	bufferSize := types.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols}
	e.GetBuffer().Render(bufferOrigin, bufferSize, e.GetOffset(), s)
	termbox.SetCursor(e.GetCursor().Col-e.GetOffset().Cols, e.GetCursor().Row-e.GetOffset().Rows)
	termbox.Flush()
}

// SetCell draws one buffer character. It implements types.Display.
func (s *Screen) SetCell(col int, row int, c rune) {
	termbox.SetCell(col, row, c, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) RenderInfoBar(e types.Editor, c types.Commander) {
	buffer := e.GetBuffer()
	dirty := ""
	if e.IsDirty() {
		dirty = " [+]"
	}
	cursor := e.GetCursor()
	left := fmt.Sprintf(" %s | %s%s | %s ",
		c.GetMode(), buffer.GetFileName(), dirty, buffer.GetLanguage())
	right := fmt.Sprintf(" L%d, C%d ", cursor.Row+1, cursor.Col+1)
	fill := s.size.Cols - len(left) - len(right)
	if fill < 0 {
		fill = 0
	}
	text := left + strings.Repeat(" ", fill) + right
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(c types.Commander) {
	var line string
	if c.GetMode() == types.ModeCommand {
		line = ":" + c.GetCommand()
	} else {
		line = c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

var helpText = []string{
	"--- tove help ---",
	"",
	"MODES",
	"  EDIT:    Type to insert text.",
	"  COMMAND: ESC then type ':' commands.",
	"",
	"MOVE with arrows, Home/End, PgUp/PgDn. Backspace/Delete, Enter.",
	"",
	"COMMANDS",
	"  :w [file]           Save",
	"  :o <file>           Open (warns if unsaved)",
	"  :q | :q!            Quit / Force quit",
	"  :! <cmd>            Run shell command and insert output",
	"  :cpp                Compile and run the buffer as C++",
	"  :eval [expr]        Evaluate Lisp (expr or whole buffer)",
	"  :tok stats [f]      Token stats (buffer or file)",
	"  :tok ngram N [K]    Top-K N-grams (default K=20)",
	"  :tok export f.json  Save JSON stats for buffer",
	"  :tok perm L M       First M strings of length L over {1,2,3}",
	"",
	"Press any key to continue.",
}

func (s *Screen) RenderHelp() {
	for i, line := range helpText {
		if i >= s.size.Rows-1 {
			break
		}
		for x, ch := range line {
			termbox.SetCell(x+2, i, ch, termbox.ColorWhite, termbox.ColorBlack)
		}
	}
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &types.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace:
		return types.KeyBackspace2
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyPgdn:
		return types.KeyPgdn
	case termbox.KeyPgup:
		return types.KeyPgup
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
