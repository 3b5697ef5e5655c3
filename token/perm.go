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
package token

// alphabet is the fixed symbol set for composed permutation strings.
var alphabet = [3]byte{'1', '2', '3'}

// HardCap bounds the number of strings any permutation request may generate.
const HardCap = 5000

// Permutations enumerates the strings of exactly length symbols over the
// three-symbol alphabet, in increasing base-3 counting order with the most
// significant symbol first, up to min(limit, 3^length, HardCap). A length
// outside [1,10] or a nonpositive limit yields nothing.
func Permutations(length, limit int) []string {
	if length < 1 || length > 10 || limit < 1 {
		return nil
	}
	if limit > HardCap {
		limit = HardCap
	}
	total := 1
	for i := 0; i < length; i++ {
		total *= len(alphabet)
	}
	if total > limit {
		total = limit
	}
	out := make([]string, 0, total)
	line := make([]byte, length)
	for i := 0; i < total; i++ {
		t := i
		for j := length - 1; j >= 0; j-- {
			line[j] = alphabet[t%len(alphabet)]
			t /= len(alphabet)
		}
		out = append(out, string(line))
	}
	return out
}
