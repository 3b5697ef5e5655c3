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
	"encoding/json"
	"math"
)

// Stats holds the descriptive statistics of a piece of text.
type Stats struct {
	Chars        int
	Lines        int
	Tokens       int
	UniqueTokens int
	TTR          float64 // unique tokens / tokens
	AvgTokenLen  float64
	CharEntropy  float64 // bits, over byte values
	TokenEntropy float64 // bits, over token frequencies
	Digits       int
	Letters      int
	Whitespace   int
	Punctuation  int
	Freq         map[string]int
}

// Compute derives Stats from raw content. Byte classes are disjoint and
// assigned in priority order: digit, letter, whitespace, punctuation.
// A file with no trailing newline still counts as one line.
func Compute(content []byte) *Stats {
	st := &Stats{Lines: 1, Freq: make(map[string]int)}
	var charfreq [256]int
	for _, b := range content {
		st.Chars++
		charfreq[b]++
		if b == '\n' {
			st.Lines++
		}
		switch {
		case b >= '0' && b <= '9':
			st.Digits++
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z'):
			st.Letters++
		case b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r':
			st.Whitespace++
		default:
			st.Punctuation++
		}
	}
	tokens := Tokenize(content)
	st.Tokens = len(tokens)
	totlen := 0
	for _, t := range tokens {
		totlen += len(t)
		st.Freq[t]++
	}
	st.UniqueTokens = len(st.Freq)
	if st.Tokens > 0 {
		st.TTR = float64(st.UniqueTokens) / float64(st.Tokens)
		st.AvgTokenLen = float64(totlen) / float64(st.Tokens)
	}
	st.CharEntropy = byteEntropy(&charfreq, st.Chars)
	st.TokenEntropy = freqEntropy(st.Freq, st.Tokens)
	return st
}

// byteEntropy computes Shannon entropy in bits over a byte-value
// distribution. Zero total yields zero.
func byteEntropy(counts *[256]int, total int) float64 {
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, n := range counts {
		if n > 0 {
			p := float64(n) / float64(total)
			h -= p * math.Log2(p)
		}
	}
	return h
}

// freqEntropy computes Shannon entropy in bits over a token frequency
// distribution. Zero total yields zero.
func freqEntropy(counts map[string]int, total int) float64 {
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, n := range counts {
		if n > 0 {
			p := float64(n) / float64(total)
			h -= p * math.Log2(p)
		}
	}
	return h
}

type classCounts struct {
	Digits      int `json:"digits"`
	Letters     int `json:"letters"`
	Whitespace  int `json:"whitespace"`
	Punctuation int `json:"punctuation"`
}

type report struct {
	Lines        int         `json:"lines"`
	Chars        int         `json:"chars"`
	Tokens       int         `json:"tokens"`
	UniqueTokens int         `json:"unique_tokens"`
	TTR          float64     `json:"type_token_ratio"`
	AvgTokenLen  float64     `json:"avg_token_length"`
	CharEntropy  float64     `json:"char_entropy_bits"`
	TokenEntropy float64     `json:"token_entropy_bits"`
	ClassCounts  classCounts `json:"class_counts"`
}

type export struct {
	File         string         `json:"file"`
	Lines        int            `json:"lines"`
	Chars        int            `json:"chars"`
	Tokens       int            `json:"tokens"`
	UniqueTokens int            `json:"unique_tokens"`
	TTR          float64        `json:"type_token_ratio"`
	AvgTokenLen  float64        `json:"avg_token_length"`
	CharEntropy  float64        `json:"char_entropy_bits"`
	TokenEntropy float64        `json:"token_entropy_bits"`
	Freq         map[string]int `json:"freq"`
}

// ReportJSON renders the inline statistics block: every scalar plus the
// nested class counts, without the frequency table.
func (s *Stats) ReportJSON() ([]byte, error) {
	return json.MarshalIndent(report{
		Lines:        s.Lines,
		Chars:        s.Chars,
		Tokens:       s.Tokens,
		UniqueTokens: s.UniqueTokens,
		TTR:          s.TTR,
		AvgTokenLen:  s.AvgTokenLen,
		CharEntropy:  s.CharEntropy,
		TokenEntropy: s.TokenEntropy,
		ClassCounts: classCounts{
			Digits:      s.Digits,
			Letters:     s.Letters,
			Whitespace:  s.Whitespace,
			Punctuation: s.Punctuation,
		},
	}, "", "  ")
}

// ExportJSON renders the full export document, including the complete
// token frequency table. The file field records where the document is
// being written.
func (s *Stats) ExportJSON(file string) ([]byte, error) {
	b, err := json.MarshalIndent(export{
		File:         file,
		Lines:        s.Lines,
		Chars:        s.Chars,
		Tokens:       s.Tokens,
		UniqueTokens: s.UniqueTokens,
		TTR:          s.TTR,
		AvgTokenLen:  s.AvgTokenLen,
		CharEntropy:  s.CharEntropy,
		TokenEntropy: s.TokenEntropy,
		Freq:         s.Freq,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
