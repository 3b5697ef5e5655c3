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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tove-editor/tove/internal/logging"
	"github.com/tove-editor/tove/token"
	"github.com/tove-editor/tove/types"
)

// Every command reports its outcome through the status message; no
// dispatch path may abort the session.
var commandTable = map[string]func(*Commander, []string){
	"q":    (*Commander).commandQuit,
	"q!":   (*Commander).commandForceQuit,
	"w":    (*Commander).commandWrite,
	"o":    (*Commander).commandOpen,
	"help": (*Commander).commandHelp,
	"cpp":  (*Commander).commandCompileRun,
	"tok":  (*Commander).commandTok,
	"eval": (*Commander).commandEval,
}

var tokTable = map[string]func(*Commander, []string){
	"stats":  (*Commander).tokStats,
	"ngram":  (*Commander).tokNGram,
	"export": (*Commander).tokExport,
	"perm":   (*Commander).tokPerm,
}

// PerformCommand runs the accumulated command line.
func (c *Commander) PerformCommand() {
	line := strings.TrimSpace(c.command)
	if line == "" {
		c.message = ""
		return
	}
	c.logger.Debug("dispatching command", logging.FieldCommand, line)
	defer func() {
		c.logger.Debug("command complete", logging.FieldStatus, c.message)
	}()

	// everything after the bang goes to the shell verbatim
	if strings.HasPrefix(line, "!") {
		c.commandShell(strings.TrimPrefix(line[1:], " "))
		return
	}

	parts := strings.Fields(line)
	handler, ok := commandTable[parts[0]]
	if !ok {
		c.message = "Unknown command: " + parts[0]
		return
	}
	handler(c, parts[1:])
}

func (c *Commander) commandQuit(args []string) {
	if c.editor.IsDirty() {
		c.message = "Unsaved changes! Use :q! to force quit."
		return
	}
	c.mode = types.ModeQuit
}

func (c *Commander) commandForceQuit(args []string) {
	c.mode = types.ModeQuit
}

func (c *Commander) commandWrite(args []string) {
	e := c.editor
	path := e.GetBuffer().GetFileName()
	if len(args) >= 1 {
		path = args[0]
	}
	if err := e.WriteFile(path); err != nil {
		c.logger.Error("save failed", logging.FieldFile, path, logging.FieldError, err)
		c.message = "Error: could not save " + path
		return
	}
	c.message = "Saved " + path
}

func (c *Commander) commandOpen(args []string) {
	if len(args) < 1 {
		c.message = "Usage: :o <filename>"
		return
	}
	if c.editor.IsDirty() {
		c.message = "Unsaved changes! Save with :w first."
		return
	}
	path := args[0]
	if err := c.editor.ReadFile(path); err != nil {
		c.editor.NewFile(path)
		c.message = "New file: " + path
		return
	}
	c.message = "Opened " + path
}

func (c *Commander) commandHelp(args []string) {
	c.helpVisible = true
}

func (c *Commander) commandShell(command string) {
	display := command
	if len(display) > 40 {
		display = display[:40] + "..."
	}
	c.message = "Executing: " + display
	c.redrawNow()

	output, err := c.runner.Shell(command)
	text := strings.TrimSpace(string(output))
	if err != nil && text == "" {
		text = err.Error()
	}
	if text == "" {
		c.message = "Command produced no output."
		return
	}
	c.editor.InsertBlock(text)
	c.message = "Command finished."
}

func (c *Commander) commandCompileRun(args []string) {
	c.message = "Compiling..."
	c.redrawNow()

	output, ran, err := c.runner.CompileAndRun(c.editor.Bytes())
	if err != nil {
		c.logger.Error("compile pipeline failed", logging.FieldError, err)
		c.message = "Failed to write temp source."
		return
	}
	text := strings.TrimSpace(string(output))
	if !ran {
		if text == "" {
			c.message = "Compilation failed."
			return
		}
		c.editor.InsertBlock(text)
		c.message = "Compilation failed (diagnostics inserted)."
		return
	}
	if text == "" {
		c.message = "Program produced no output."
		return
	}
	c.editor.InsertBlock(text)
	c.message = "Program ran (output inserted)."
}

func (c *Commander) commandTok(args []string) {
	if len(args) == 0 {
		c.message = "tok: usage -> :tok stats|ngram|export|perm ..."
		return
	}
	handler, ok := tokTable[args[0]]
	if !ok {
		c.message = "tok: unknown subcommand"
		return
	}
	handler(c, args[1:])
}

func (c *Commander) tokStats(args []string) {
	content := c.editor.Bytes()
	if len(args) >= 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			c.message = "tok: cannot open " + args[0]
			return
		}
		content = data
	}
	stats := token.Compute(content)
	report, err := stats.ReportJSON()
	if err != nil {
		c.message = "tok: stats failed"
		return
	}
	c.editor.InsertBlock(string(report))
	c.message = "Token stats inserted."
}

func (c *Commander) tokNGram(args []string) {
	n, k := 2, 20
	if len(args) >= 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			c.message = "tok: ngram N [K]"
			return
		}
		n = v
	}
	if len(args) >= 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			c.message = "tok: ngram N [K]"
			return
		}
		k = v
	}
	if n == 0 {
		c.message = "tok: N must be >=1"
		return
	}

	tokens := token.Tokenize(c.editor.Bytes())
	grams := token.TopNGrams(tokens, n, k)
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d %d-grams:\n", k, n)
	for _, g := range grams {
		fmt.Fprintf(&b, "  %s  -> %d\n", g.Text, g.Count)
	}
	c.editor.InsertBlock(b.String())
	c.message = "N-grams inserted."
}

func (c *Commander) tokExport(args []string) {
	if len(args) < 1 {
		c.message = "tok: export <file.json>"
		return
	}
	path := args[0]
	stats := token.Compute(c.editor.Bytes())
	data, err := stats.ExportJSON(path)
	if err != nil {
		c.message = "tok: export failed"
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		c.logger.Error("export failed", logging.FieldFile, path, logging.FieldError, err)
		c.message = "tok: export failed"
		return
	}
	c.message = "Exported token stats -> " + path
}

func (c *Commander) tokPerm(args []string) {
	if len(args) < 2 {
		c.message = "tok: perm <len> <limit>"
		return
	}
	length, lenErr := strconv.Atoi(args[0])
	limit, limErr := strconv.Atoi(args[1])
	if lenErr != nil || limErr != nil {
		c.message = "tok: perm <len> <limit>"
		return
	}
	lines := token.Permutations(length, limit)
	if len(lines) == 0 {
		c.message = "tok: no permutations"
		return
	}
	c.editor.InsertBlock(strings.Join(lines, "\n") + "\n")
	c.message = "Permutations inserted."
}

func (c *Commander) commandEval(args []string) {
	program := strings.Join(args, " ")
	if program == "" {
		program = string(c.editor.Bytes())
	}
	result, err := c.ParseEval(program)
	if err != nil {
		c.message = "eval error: " + err.Error()
		return
	}
	c.editor.InsertBlock(result)
	c.message = "Eval result inserted."
}
