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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/gambit/internal/types"
)

// fakeBoard is a minimal BoardReader over a sparse piece list, used to
// exercise Compute without depending on the position package (which
// itself depends on attacks).
type fakeBoard map[Square]Piece

func (b fakeBoard) PieceAt(sq Square) Piece {
	if pc, ok := b[sq]; ok {
		return pc
	}
	return PieceEmpty
}

func TestComputeRookSlidesUntilBlocked(t *testing.T) {
	a4 := MakeSquare(0, 3)
	a5 := MakeSquare(0, 4)
	a6 := MakeSquare(0, 5)
	b := fakeBoard{
		SqA1: MakePiece(White, Rook),
		a5:   MakePiece(Black, Pawn),
	}
	m := Compute(b)
	assert.True(t, m.Attacked(White, a4))
	assert.True(t, m.Attacked(White, a5), "slider attacks the blocking piece itself")
	assert.False(t, m.Attacked(White, a6), "slider does not see past the blocker")
}

func TestComputeKnightLeaps(t *testing.T) {
	a3 := MakeSquare(0, 2)
	c3 := MakeSquare(2, 2)
	b := fakeBoard{SqB1: MakePiece(White, Knight)}
	m := Compute(b)
	assert.True(t, m.Attacked(White, a3))
	assert.True(t, m.Attacked(White, c3))
	assert.True(t, m.Attacked(White, SqD2))
	assert.False(t, m.Attacked(White, SqB1))
}

func TestComputePawnAttacksDiagonallyOnly(t *testing.T) {
	e4 := MakeSquare(4, 3)
	d5 := MakeSquare(3, 4)
	f5 := MakeSquare(5, 4)
	e5 := MakeSquare(4, 4)
	b := fakeBoard{e4: MakePiece(White, Pawn)}
	m := Compute(b)
	assert.True(t, m.Attacked(White, d5))
	assert.True(t, m.Attacked(White, f5))
	assert.False(t, m.Attacked(White, e5), "pawns do not attack the square they push to")
}

func TestComputeBlackPawnAttacksTowardRank1(t *testing.T) {
	e5 := MakeSquare(4, 4)
	d4 := MakeSquare(3, 3)
	f4 := MakeSquare(5, 3)
	b := fakeBoard{e5: MakePiece(Black, Pawn)}
	m := Compute(b)
	assert.True(t, m.Attacked(Black, d4))
	assert.True(t, m.Attacked(Black, f4))
}

func TestAttackedAnyMatchesIfAnySquareIsAttacked(t *testing.T) {
	a3 := MakeSquare(0, 2)
	h7 := MakeSquare(7, 6)
	b := fakeBoard{SqB1: MakePiece(White, Knight)}
	m := Compute(b)
	assert.True(t, m.AttackedAny(White, SqH8, a3))
	assert.False(t, m.AttackedAny(White, SqH8, h7))
}
