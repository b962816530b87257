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

package position

import (
	. "github.com/frankkopp/gambit/internal/types"
)

// The board is stored as a padded 10x12 mailbox (spec.md §9): a 120-cell
// array where the outer two files/ranks of padding are off-board
// sentinels (PieceOffBoard) framing the real 8x8 board. It is used for
// storage only: move generation and attack computation walk the board
// with Square.Shift file/rank arithmetic, not with mailbox offsets.
// The choice is an internal implementation detail; every exported
// Position method speaks in terms of the 0-63 Square type.
const mailboxSize = 120

var sq64to120 [SqLength]int
var sq120to64 [mailboxSize]int // -1 for padding cells

func init() {
	for i := range sq120to64 {
		sq120to64[i] = -1
	}
	idx := 0
	for rank := 0; rank < 8; rank++ {
		row := 21 + rank*10
		for file := 0; file < 8; file++ {
			cell := row + file
			sq64to120[idx] = cell
			sq120to64[cell] = idx
			idx++
		}
	}
}
