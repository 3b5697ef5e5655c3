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
	"errors"

	"github.com/steelseries/golisp"

	"github.com/tove-editor/tove/token"
	"github.com/tove-editor/tove/types"
)

// The Lisp environment is process-global, so primitives reach the session
// through this binding. Sessions are single-threaded and one per process.
var lispEditor types.Editor

func bindEditor(e types.Editor) {
	lispEditor = e
}

func init() {
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
	golisp.MakePrimitiveFunction("token-count", "1", TokenCountImpl)
	golisp.MakePrimitiveFunction("char-entropy", "1", CharEntropyImpl)
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if lispEditor == nil {
		return nil, errors.New("buffer-text requires an attached editor")
	}
	return golisp.StringWithValue(string(lispEditor.Bytes())), nil
}

func TokenCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("token-count requires a string argument")
	}
	count := len(token.Tokenize([]byte(golisp.StringValue(val))))
	return golisp.IntegerWithValue(int64(count)), nil
}

func CharEntropyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("char-entropy requires a string argument")
	}
	stats := token.Compute([]byte(golisp.StringValue(val)))
	return golisp.FloatWithValue(float32(stats.CharEntropy)), nil
}

// ParseEval evaluates a Lisp program and returns the printed form of its
// value.
func (c *Commander) ParseEval(program string) (string, error) {
	value, err := golisp.ParseAndEval(program)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}
