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

// Package token computes statistical properties of text: token and byte
// frequencies, entropies, n-gram rankings, and a bounded combinatorial
// string generator.
package token

// Tokenize splits content into tokens. A token is a maximal run of ASCII
// letters, digits, and underscores; every other byte is a separator and
// never appears in a token.
func Tokenize(content []byte) []string {
	var tokens []string
	start := -1
	for i, b := range content {
		if isTokenByte(b) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			tokens = append(tokens, string(content[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, string(content[start:]))
	}
	return tokens
}

func isTokenByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}
