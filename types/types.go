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
package types

// Mode identifies an editor mode.
type Mode int

const (
	ModeEdit Mode = iota
	ModeCommand
	// ModeQuit is a sentinel that ends the session loop.
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModeCommand:
		return "COMMAND"
	case ModeQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Move directions
const (
	MoveUp = iota
	MoveDown
	MoveRight
	MoveLeft
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer

	InsertChar(c rune)
	InsertNewline()
	InsertBlock(text string)
	BackspaceChar()
	DeleteForwardChar()

	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()
	KeepCursorInRow()
	Scroll()

	ReadFile(path string) error
	WriteFile(path string) error
	NewFile(path string)
	Bytes() []byte
	IsDirty() bool
	SetDirty(dirty bool)
}

type Buffer interface {
	Render(origin Point, size Size, offset Size, display Display)
	GetRowCount() int
	GetRowLength(i int) int
	GetFileName() string
	GetLanguage() string
	LoadBytes(bytes []byte)
}

type Commander interface {
	SetMode(Mode)
	GetMode() Mode
	GetCommand() string
	GetMessage() string
	IsRunning() bool
	HelpVisible() bool
}

// A Display is a grid of character cells that the editor draws into.
type Display interface {
	SetCell(col int, row int, c rune)
}

// A Runner executes external programs on behalf of the editor. Shell runs a
// command line and returns its combined output. CompileAndRun builds the
// given source with the configured toolchain and, if compilation succeeded,
// runs the result; ran reports whether the program was run.
type Runner interface {
	Shell(command string) (output []byte, err error)
	CompileAndRun(source []byte) (output []byte, ran bool, err error)
}
