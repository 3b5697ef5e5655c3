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

package commander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tove-editor/tove/editor"
	"github.com/tove-editor/tove/types"
)

// fakeRunner satisfies types.Runner with canned results and records what
// it was asked to run.
type fakeRunner struct {
	shellCommands []string
	shellOutput   []byte
	shellErr      error
	compiled      [][]byte
	compileOutput []byte
	compileRan    bool
	compileErr    error
}

func (r *fakeRunner) Shell(command string) ([]byte, error) {
	r.shellCommands = append(r.shellCommands, command)
	return r.shellOutput, r.shellErr
}

func (r *fakeRunner) CompileAndRun(source []byte) ([]byte, bool, error) {
	r.compiled = append(r.compiled, source)
	return r.compileOutput, r.compileRan, r.compileErr
}

func newTestCommander(content string) (*Commander, *editor.Editor, *fakeRunner) {
	e := editor.NewEditor()
	e.GetBuffer().LoadBytes([]byte(content))
	r := &fakeRunner{}
	return NewCommander(e, r), e, r
}

func keyEvent(k types.Key) *types.Event {
	return &types.Event{Type: types.EventKey, Key: k}
}

func charEvent(ch rune) *types.Event {
	return &types.Event{Type: types.EventKey, Ch: ch}
}

// runCommand types a command line in command mode and commits it.
func runCommand(c *Commander, line string) {
	c.SetMode(types.ModeCommand)
	for _, ch := range line {
		if ch == ' ' {
			c.ProcessEvent(keyEvent(types.KeySpace))
		} else {
			c.ProcessEvent(charEvent(ch))
		}
	}
	c.ProcessEvent(keyEvent(types.KeyEnter))
}

func TestInitialState(t *testing.T) {
	c, _, _ := newTestCommander("")

	assert.Equal(t, types.ModeEdit, c.GetMode())
	assert.True(t, c.IsRunning())
	assert.False(t, c.HelpVisible())
	assert.Equal(t, "Press ESC for COMMAND mode (:help)", c.GetMessage())
}

func TestEscapetogglesModes(t *testing.T) {
	c, _, _ := newTestCommander("")

	require.NoError(t, c.ProcessEvent(keyEvent(types.KeyEsc)))
	assert.Equal(t, types.ModeCommand, c.GetMode())
	assert.Empty(t, c.GetMessage(), "entering command mode clears the status")

	c.ProcessEvent(charEvent('q'))
	require.NoError(t, c.ProcessEvent(keyEvent(types.KeyEsc)))
	assert.Equal(t, types.ModeEdit, c.GetMode())
	assert.Empty(t, c.GetCommand(), "escape discards the pending command line")
}

func TestCommandLineAccumulation(t *testing.T) {
	c, _, _ := newTestCommander("")
	c.SetMode(types.ModeCommand)

	c.ProcessEvent(charEvent(':'))
	assert.Empty(t, c.GetCommand(), "leading colon is implicit")

	c.ProcessEvent(charEvent('w'))
	c.ProcessEvent(keyEvent(types.KeySpace))
	c.ProcessEvent(charEvent('x'))
	assert.Equal(t, "w x", c.GetCommand())

	c.ProcessEvent(charEvent(':'))
	assert.Equal(t, "w x:", c.GetCommand(), "colons after the first character are literal")

	for i := 0; i < 10; i++ {
		c.ProcessEvent(keyEvent(types.KeyBackspace2))
	}
	assert.Empty(t, c.GetCommand(), "backspace on an empty command line is a no-op")
}

func TestCommitReturnsToEditMode(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "bogus")
	assert.Equal(t, types.ModeEdit, c.GetMode())
	assert.Empty(t, c.GetCommand())
	assert.Equal(t, "Unknown command: bogus", c.GetMessage())
}

func TestEmptyCommandClearsStatus(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "")
	assert.Empty(t, c.GetMessage())
	assert.Equal(t, types.ModeEdit, c.GetMode())
}

func TestEditModeInsertsPrintables(t *testing.T) {
	c, e, _ := newTestCommander("")

	c.ProcessEvent(charEvent('h'))
	c.ProcessEvent(charEvent('i'))
	c.ProcessEvent(keyEvent(types.KeySpace))
	c.ProcessEvent(charEvent('!'))
	c.ProcessEvent(keyEvent(types.KeyEnter))
	c.ProcessEvent(charEvent('2'))

	assert.Equal(t, "hi !\n2", string(e.Bytes()))
	assert.True(t, e.IsDirty())
}

func TestEditModeNavigationKeys(t *testing.T) {
	c, e, _ := newTestCommander("alpha\nbeta")

	c.ProcessEvent(keyEvent(types.KeyArrowDown))
	c.ProcessEvent(keyEvent(types.KeyEnd))
	assert.Equal(t, types.Point{Row: 1, Col: 4}, e.GetCursor())

	c.ProcessEvent(keyEvent(types.KeyHome))
	assert.Equal(t, types.Point{Row: 1, Col: 0}, e.GetCursor())

	c.ProcessEvent(keyEvent(types.KeyArrowLeft))
	assert.Equal(t, types.Point{Row: 0, Col: 5}, e.GetCursor(), "left wraps to the end of the previous line")

	assert.False(t, e.IsDirty(), "navigation does not dirty the buffer")
}

func TestTabAdvancesToTabStop(t *testing.T) {
	c, e, _ := newTestCommander("")
	c.SetTabWidth(4)

	c.ProcessEvent(charEvent('a'))
	c.ProcessEvent(keyEvent(types.KeyTab))
	assert.Equal(t, "a   ", string(e.Bytes()))
	assert.Equal(t, 4, e.GetCursor().Col)
}

func TestHelpOverlayConsumesDismissingKey(t *testing.T) {
	c, e, _ := newTestCommander("")

	runCommand(c, "help")
	assert.True(t, c.HelpVisible())
	assert.Equal(t, types.ModeEdit, c.GetMode())

	c.ProcessEvent(charEvent('x'))
	assert.False(t, c.HelpVisible())
	assert.Equal(t, "", string(e.Bytes()), "the dismissing key is not inserted")
}

func TestQuitBlockedWhileDirty(t *testing.T) {
	c, e, _ := newTestCommander("")
	e.InsertChar('x')

	runCommand(c, "q")
	assert.True(t, c.IsRunning())
	assert.Equal(t, "Unsaved changes! Use :q! to force quit.", c.GetMessage())

	runCommand(c, "q!")
	assert.False(t, c.IsRunning())
}

func TestQuitWhenClean(t *testing.T) {
	c, _, _ := newTestCommander("clean")

	runCommand(c, "q")
	assert.False(t, c.IsRunning())
	assert.Equal(t, types.ModeQuit, c.GetMode())
}
