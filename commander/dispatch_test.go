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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tove-editor/tove/types"
)

func TestWriteDefaultsToBufferFileName(t *testing.T) {
	c, e, _ := newTestCommander("")
	path := filepath.Join(t.TempDir(), "notes.txt")
	e.NewFile(path)
	c.ProcessEvent(charEvent('x'))
	require.True(t, e.IsDirty())

	runCommand(c, "w")
	assert.Equal(t, "Saved "+path, c.GetMessage())
	assert.False(t, e.IsDirty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestWriteExplicitPath(t *testing.T) {
	c, e, _ := newTestCommander("content")
	path := filepath.Join(t.TempDir(), "copy.txt")

	runCommand(c, "w "+path)
	assert.Equal(t, "Saved "+path, c.GetMessage())
	assert.Equal(t, path, e.GetBuffer().GetFileName())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWriteFailureKeepsDirtyFlag(t *testing.T) {
	c, e, _ := newTestCommander("")
	c.ProcessEvent(charEvent('x'))
	path := filepath.Join(t.TempDir(), "missing", "deep", "out.txt")

	runCommand(c, "w "+path)
	assert.Equal(t, "Error: could not save "+path, c.GetMessage())
	assert.True(t, e.IsDirty())
}

func TestOpenRequiresArgument(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "o")
	assert.Equal(t, "Usage: :o <filename>", c.GetMessage())
}

func TestOpenBlockedWhileDirty(t *testing.T) {
	c, e, _ := newTestCommander("")
	c.ProcessEvent(charEvent('x'))

	runCommand(c, "o somewhere.txt")
	assert.Equal(t, "Unsaved changes! Save with :w first.", c.GetMessage())
	assert.Equal(t, "x", string(e.Bytes()), "document is untouched")
}

func TestOpenReadsFile(t *testing.T) {
	c, e, _ := newTestCommander("old")
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("fresh\ntext\n"), 0644))

	runCommand(c, "o "+path)
	assert.Equal(t, "Opened "+path, c.GetMessage())
	assert.Equal(t, "fresh\ntext\n", string(e.Bytes()))
	assert.Equal(t, types.Point{}, e.GetCursor())
	assert.False(t, e.IsDirty())
}

func TestOpenMissingFileStartsNewBuffer(t *testing.T) {
	c, e, _ := newTestCommander("old")
	path := filepath.Join(t.TempDir(), "nope.txt")

	runCommand(c, "o "+path)
	assert.Equal(t, "New file: "+path, c.GetMessage())
	assert.Equal(t, "", string(e.Bytes()))
	assert.Equal(t, path, e.GetBuffer().GetFileName())
	assert.False(t, e.IsDirty())
}

func TestShellInsertsTrimmedOutput(t *testing.T) {
	c, e, r := newTestCommander("first\nsecond")
	e.SetCursor(types.Point{Row: 0, Col: 5})
	r.shellOutput = []byte(" hello\nworld \n")

	runCommand(c, "! ls -la")
	require.Equal(t, []string{"ls -la"}, r.shellCommands, "one leading space is stripped")
	assert.Equal(t, "firsthello\nworld\nsecond", string(e.Bytes()))
	assert.Equal(t, "Command finished.", c.GetMessage())
	assert.True(t, e.IsDirty())
}

func TestShellEmptyOutput(t *testing.T) {
	c, e, r := newTestCommander("keep")
	r.shellOutput = []byte("  \n ")

	runCommand(c, "!true")
	assert.Equal(t, "Command produced no output.", c.GetMessage())
	assert.Equal(t, "keep", string(e.Bytes()))
	assert.False(t, e.IsDirty())
}

func TestShellFailureWithoutOutputInsertsError(t *testing.T) {
	c, e, r := newTestCommander("")
	r.shellErr = os.ErrPermission

	runCommand(c, "!forbidden")
	assert.Equal(t, "Command finished.", c.GetMessage())
	assert.Contains(t, string(e.Bytes()), "permission denied")
}

func TestCompileRunInsertsDiagnostics(t *testing.T) {
	c, e, r := newTestCommander("int main( {")
	r.compileOutput = []byte("main.cpp:1:1: error: expected parameter\n")
	r.compileRan = false

	runCommand(c, "cpp")
	require.Len(t, r.compiled, 1)
	assert.Equal(t, "int main( {", string(r.compiled[0]))
	assert.Contains(t, string(e.Bytes()), "error: expected parameter")
	assert.Equal(t, "Compilation failed (diagnostics inserted).", c.GetMessage())
}

func TestCompileRunInsertsProgramOutput(t *testing.T) {
	c, e, r := newTestCommander("")
	r.compileOutput = []byte("it works\n")
	r.compileRan = true

	runCommand(c, "cpp")
	assert.Equal(t, "it works", string(e.Bytes()))
	assert.Equal(t, "Program ran (output inserted).", c.GetMessage())
}

func TestCompileRunSilentProgram(t *testing.T) {
	c, e, r := newTestCommander("quiet")
	r.compileRan = true

	runCommand(c, "cpp")
	assert.Equal(t, "quiet", string(e.Bytes()))
	assert.Equal(t, "Program produced no output.", c.GetMessage())
}

func TestTokUsage(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "tok")
	assert.Equal(t, "tok: usage -> :tok stats|ngram|export|perm ...", c.GetMessage())

	runCommand(c, "tok bogus")
	assert.Equal(t, "tok: unknown subcommand", c.GetMessage())
}

func TestTokStatsInsertsReport(t *testing.T) {
	c, e, _ := newTestCommander("ab ab")
	e.SetCursor(types.Point{Row: 0, Col: 5})

	runCommand(c, "tok stats")
	assert.Equal(t, "Token stats inserted.", c.GetMessage())

	text := string(e.Bytes())
	assert.Contains(t, text, `"tokens": 2`)
	assert.Contains(t, text, `"unique_tokens": 1`)
	assert.NotContains(t, text, `"freq"`, "the inserted report omits the frequency table")
}

func TestTokStatsReadsFile(t *testing.T) {
	c, e, _ := newTestCommander("buffer text")
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("x y z"), 0644))
	e.SetCursor(types.Point{Row: 0, Col: 11})

	runCommand(c, "tok stats "+path)
	assert.Contains(t, string(e.Bytes()), `"tokens": 3`, "stats describe the file, not the buffer")
}

func TestTokStatsMissingFile(t *testing.T) {
	c, e, _ := newTestCommander("keep")

	runCommand(c, "tok stats /no/such/file")
	assert.Equal(t, "tok: cannot open /no/such/file", c.GetMessage())
	assert.Equal(t, "keep", string(e.Bytes()))
}

func TestTokNGramDefaults(t *testing.T) {
	c, e, _ := newTestCommander("a b a b a")
	e.SetCursor(types.Point{Row: 0, Col: 9})

	runCommand(c, "tok ngram")
	assert.Equal(t, "N-grams inserted.", c.GetMessage())

	text := string(e.Bytes())
	assert.Contains(t, text, "Top 20 2-grams:")
	assert.Contains(t, text, "  a b  -> 2")
	assert.Contains(t, text, "  b a  -> 2")
}

func TestTokNGramZeroN(t *testing.T) {
	c, e, _ := newTestCommander("a b c")

	runCommand(c, "tok ngram 0")
	assert.Equal(t, "tok: N must be >=1", c.GetMessage())
	assert.Equal(t, "a b c", string(e.Bytes()))
}

func TestTokNGramRejectsGarbageArguments(t *testing.T) {
	c, e, _ := newTestCommander("a b c")

	runCommand(c, "tok ngram two")
	assert.Equal(t, "tok: ngram N [K]", c.GetMessage())

	runCommand(c, "tok ngram 2 many")
	assert.Equal(t, "tok: ngram N [K]", c.GetMessage())
	assert.Equal(t, "a b c", string(e.Bytes()))
}

func TestTokExportWritesJSON(t *testing.T) {
	c, _, _ := newTestCommander("ab ab cd")
	path := filepath.Join(t.TempDir(), "stats.json")

	runCommand(c, "tok export "+path)
	assert.Equal(t, "Exported token stats -> "+path, c.GetMessage())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, path, doc["file"])
	freq, ok := doc["freq"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, freq["ab"])
	assert.EqualValues(t, 1, freq["cd"])
}

func TestTokExportMissingArgument(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "tok export")
	assert.Equal(t, "tok: export <file.json>", c.GetMessage())
}

func TestTokExportFailure(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "tok export /no/such/dir/out.json")
	assert.Equal(t, "tok: export failed", c.GetMessage())
}

func TestTokPermInserts(t *testing.T) {
	c, e, _ := newTestCommander("")

	runCommand(c, "tok perm 2 4")
	assert.Equal(t, "Permutations inserted.", c.GetMessage())
	assert.Equal(t, "11\n12\n13\n21\n", string(e.Bytes()))
}

func TestTokPermZeroLengthLeavesDocumentUnchanged(t *testing.T) {
	c, e, _ := newTestCommander("before")

	runCommand(c, "tok perm 0 10")
	assert.Equal(t, "tok: no permutations", c.GetMessage())
	assert.Equal(t, "before", string(e.Bytes()))
	assert.False(t, e.IsDirty())
}

func TestTokPermMissingArguments(t *testing.T) {
	c, _, _ := newTestCommander("")

	runCommand(c, "tok perm 2")
	assert.Equal(t, "tok: perm <len> <limit>", c.GetMessage())

	runCommand(c, "tok perm")
	assert.Equal(t, "tok: perm <len> <limit>", c.GetMessage())
}

func TestEvalExpression(t *testing.T) {
	c, e, _ := newTestCommander("")

	runCommand(c, "eval (+ 1 2)")
	assert.Equal(t, "Eval result inserted.", c.GetMessage())
	assert.Equal(t, "3", string(e.Bytes()))
}

func TestEvalWholeBuffer(t *testing.T) {
	c, e, _ := newTestCommander("(token-count \"one two three\")")

	runCommand(c, "eval")
	assert.Equal(t, "Eval result inserted.", c.GetMessage())
	assert.True(t, strings.HasPrefix(string(e.Bytes()), "3"))
}

func TestEvalError(t *testing.T) {
	c, e, _ := newTestCommander("keep")

	runCommand(c, "eval (undefined-function 1)")
	assert.True(t, strings.HasPrefix(c.GetMessage(), "eval error:"))
	assert.Equal(t, "keep", string(e.Bytes()))
}
