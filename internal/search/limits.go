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

package search

import (
	"time"

	. "github.com/frankkopp/gambit/internal/types"
)

// Limits describes how a single search invocation should be bounded.
// Trimmed from the teacher's struct: no Mate-search, Ponder or Nodes
// limits, since this engine only ever does straight iterative-deepening
// αβ to a depth/time budget (spec.md §4.4/§5).
type Limits struct {
	// Infinite means search until explicitly stopped.
	Infinite bool

	// Depth, if > 0, stops iterative deepening once this depth completes.
	Depth int

	// MoveTime, if > 0, is an exact time budget for this move.
	MoveTime time.Duration

	// WhiteTime/BlackTime/WhiteInc/BlackInc describe a classic time
	// control clock; used to derive a budget (T/20 + I/2, spec.md §5)
	// when MoveTime is zero.
	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration

	// SearchMoves, if non-empty, restricts the root move expansion to
	// this list (UCI "go searchmoves ..."). Empty means search every
	// legal root move.
	SearchMoves []Move
}

// TimeControlled reports whether this search is bounded by a clock
// rather than running until Infinite or Depth alone stop it.
func (l Limits) TimeControlled() bool {
	return l.MoveTime > 0 || l.WhiteTime > 0 || l.BlackTime > 0
}
