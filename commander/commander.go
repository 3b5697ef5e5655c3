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

// Package commander turns key events into editor operations. It owns the
// modal state machine and the command dispatcher.
package commander

import (
	"github.com/charmbracelet/log"

	"github.com/tove-editor/tove/internal/logging"
	"github.com/tove-editor/tove/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor      types.Editor
	runner      types.Runner
	logger      *log.Logger
	mode        types.Mode
	command     string // command as it is being typed on the command line
	message     string // status message
	helpVisible bool
	tabWidth    int
	redraw      func() // repaints the screen so transient statuses show
}

func NewCommander(e types.Editor, r types.Runner) *Commander {
	bindEditor(e)
	return &Commander{
		editor:   e,
		runner:   r,
		logger:   logging.Discard(),
		mode:     types.ModeEdit,
		message:  "Press ESC for COMMAND mode (:help)",
		tabWidth: 8,
	}
}

// SetLogger replaces the commander's logger.
func (c *Commander) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// SetRedraw installs a callback that repaints the screen immediately.
// Long-running commands call it so their "working" status is visible
// while the session loop is blocked.
func (c *Commander) SetRedraw(redraw func()) {
	c.redraw = redraw
}

// SetTabWidth sets the column multiple the tab key advances to.
func (c *Commander) SetTabWidth(width int) {
	if width < 1 {
		width = 8
	}
	c.tabWidth = width
}

func (c *Commander) GetMode() types.Mode {
	return c.mode
}

func (c *Commander) SetMode(m types.Mode) {
	c.mode = m
}

// GetCommand returns the command line as typed so far, without the
// leading colon.
func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}

// IsRunning reports whether the session loop should keep going.
func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit
}

// HelpVisible reports whether the help overlay covers the screen.
func (c *Commander) HelpVisible() bool {
	return c.helpVisible
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event)
	case types.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *types.Event) error {
	// the screen measures the terminal on every render
	return nil
}

func (c *Commander) ProcessKey(event *types.Event) error {
	// any key dismisses the help overlay and is consumed by it
	if c.helpVisible {
		c.helpVisible = false
		return nil
	}
	switch c.mode {
	case types.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case types.ModeCommand:
		return c.ProcessKeyCommandMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *types.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeCommand
			c.command = ""
			c.message = ""
		case types.KeyEnter:
			e.InsertNewline()
		case types.KeyBackspace2:
			e.BackspaceChar()
		case types.KeyDelete:
			e.DeleteForwardChar()
		case types.KeySpace:
			e.InsertChar(' ')
		case types.KeyTab:
			e.InsertChar(' ')
			for e.GetCursor().Col%c.tabWidth != 0 {
				e.InsertChar(' ')
			}
		case types.KeyHome:
			e.MoveToBeginningOfLine()
		case types.KeyEnd:
			e.MoveToEndOfLine()
		case types.KeyPgup:
			e.PageUp()
		case types.KeyPgdn:
			e.PageDown()
		case types.KeyArrowUp:
			e.MoveCursor(types.MoveUp)
		case types.KeyArrowDown:
			e.MoveCursor(types.MoveDown)
		case types.KeyArrowLeft:
			e.MoveCursor(types.MoveLeft)
		case types.KeyArrowRight:
			e.MoveCursor(types.MoveRight)
		}
	}
	if ch != 0 && ch >= 32 && ch <= 126 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
			c.command = ""
			c.message = ""
		case types.KeyEnter:
			c.PerformCommand()
			c.command = ""
			if c.mode != types.ModeQuit {
				c.mode = types.ModeEdit
			}
		case types.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case types.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		if ch == ':' && len(c.command) == 0 {
			// the leading colon is implicit
			return nil
		}
		if ch >= 32 && ch <= 126 {
			c.command = c.command + string(ch)
		}
	}
	return nil
}

func (c *Commander) redrawNow() {
	if c.redraw != nil {
		c.redraw()
	}
}
