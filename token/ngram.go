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

import (
	"sort"
	"strings"
)

// An NGram is an ordered run of adjacent tokens and its occurrence count.
// Tokens never contain spaces, so Text joins them with single spaces.
type NGram struct {
	Text  string
	Count int
}

// TopNGrams scans tokens with a sliding window of n and returns the k most
// frequent n-grams. The order is deterministic: count descending, then Text
// ascending. If n is zero or the corpus is shorter than n, the result is
// empty.
func TopNGrams(tokens []string, n, k int) []NGram {
	if n <= 0 || len(tokens) < n {
		return nil
	}
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	grams := make([]NGram, 0, len(counts))
	for text, count := range counts {
		grams = append(grams, NGram{Text: text, Count: count})
	}
	sort.Slice(grams, func(i, j int) bool {
		if grams[i].Count != grams[j].Count {
			return grams[i].Count > grams[j].Count
		}
		return grams[i].Text < grams[j].Text
	})
	if k < 0 {
		k = 0
	}
	if len(grams) > k {
		grams = grams[:k]
	}
	return grams
}
