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

package movegen

import (
	"github.com/frankkopp/gambit/internal/position"
)

// Perft counts leaf nodes of the legal move tree to a fixed depth
// (spec.md §8), the standard cross-check for a move generator's
// correctness. Since Position.Apply returns a fresh value rather than
// mutating in place, there is no undo step: each recursive call simply
// works on its own copy.
func Perft(pos position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := Generate(&pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := pos.Apply(m)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count for each legal root move
// separately, keyed by its UCI string, for diagnosing which root branch
// a count mismatch comes from.
func PerftDivide(pos position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	moves := Generate(&pos)
	for _, m := range moves {
		next := pos.Apply(m)
		result[m.StringUci()] = Perft(next, depth-1)
	}
	return result
}
