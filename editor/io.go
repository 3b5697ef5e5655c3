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
	"fmt"
	"os"
	"path/filepath"

	"github.com/tove-editor/tove/internal/logging"
	"github.com/tove-editor/tove/types"
)

// ReadFile loads a file into the buffer and clears the dirty flag. The
// cursor and viewport reset to the top of the document.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	e.Cursor = types.Point{}
	e.Offset = types.Size{}
	e.dirty = false
	e.logger.Debug("read file", logging.FieldFile, path, logging.FieldBytes, len(b))
	return nil
}

// NewFile resets the editor to a fresh one-line buffer named path. Nothing
// is created on disk until the buffer is saved.
func (e *Editor) NewFile(path string) {
	e.Buffer = NewBuffer()
	e.Buffer.SetFileName(path)
	e.Cursor = types.Point{}
	e.Offset = types.Size{}
	e.dirty = false
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// WriteFile saves the buffer to path atomically and clears the dirty flag.
// The buffer takes the written path as its file name.
func (e *Editor) WriteFile(path string) error {
	b := e.Bytes()
	if err := writeAtomic(path, b, 0644); err != nil {
		return err
	}
	e.Buffer.SetFileName(path)
	e.dirty = false
	e.logger.Debug("wrote file", logging.FieldFile, path, logging.FieldBytes, len(b))
	return nil
}

// writeAtomic writes content through a temp file in the destination
// directory and renames it into place, so an interrupted save never leaves
// a truncated file behind.
func writeAtomic(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
