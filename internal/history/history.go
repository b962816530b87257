//
// gambit - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package history tracks how often a quiet from/to pair has caused a
// beta cutoff during a search, for diagnostics. It holds no board
// state and survives across iterative-deepening depths within a
// single search, but is never consulted to reorder move lists.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/frankkopp/gambit/internal/types"
)

var out = message.NewPrinter(language.English)

// History counts beta cutoffs per color and per from/to square pair,
// plus the most recent cutoff move for each from/to pair (the "counter
// move"). Indices are Square values 0..63; SqNone never occurs as a
// from or to square of a played move.
type History struct {
	Count        [ColorLength][SqLength][SqLength]int64
	CounterMoves [SqLength][SqLength]Move
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Update records that m caused a beta cutoff at the given depth for
// color. Deeper cutoffs count for more, the same way the teacher's
// search weighted its history table by remaining depth.
func (h *History) Update(color Color, m Move, depth int) {
	weight := int64(depth * depth)
	h.Count[color][m.From()][m.To()] += weight
	h.CounterMoves[m.From()][m.To()] = m
}

// Score returns the accumulated cutoff weight for m. Exposed for
// diagnostics and tests; the search itself does not use it to reorder
// move lists (see internal/search.alphaBeta).
func (h *History) Score(color Color, m Move) int64 {
	return h.Count[color][m.From()][m.To()]
}

// Clear resets all counters. Called once per StartSearch so that
// history from an unrelated earlier position never leaks into the
// next search.
func (h *History) Clear() {
	*h = History{}
}

func (h *History) String() string {
	sb := strings.Builder{}
	for sf := Square(0); sf < SqLength; sf++ {
		for st := Square(0); st < SqLength; st++ {
			count := h.Count[White][sf][st] + h.Count[Black][sf][st]
			if count == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: white=%d black=%d cm=%s\n",
				sf.String(), st.String(), h.Count[White][sf][st], h.Count[Black][sf][st],
				h.CounterMoves[sf][st].StringUci()))
		}
	}
	return sb.String()
}
