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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/gambit/internal/position"
	. "github.com/frankkopp/gambit/internal/types"
)

func TestGenerateStartPosition(t *testing.T) {
	pos := position.StartPosition()
	moves := Generate(&pos)
	assert.Len(t, moves, 20)
}

func TestGenerateCastlingBothSides(t *testing.T) {
	pos, err := position.NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	moves := Generate(&pos)
	assert.True(t, containsUci(moves, "e1g1"), "expected kingside castle e1g1")
	assert.True(t, containsUci(moves, "e1c1"), "expected queenside castle e1c1")
}

func TestGenerateCastlingOutOfCheckIllegal(t *testing.T) {
	pos, err := position.NewPosition("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	moves := Generate(&pos)
	assert.False(t, containsUci(moves, "e1g1"), "king on e1 is in check from the rook on e2")
}

func TestGenerateEnPassant(t *testing.T) {
	pos := position.StartPosition()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, err := moveFromUci(t, &pos, uci)
		require.NoError(t, err)
		pos = pos.Apply(m)
	}

	moves := Generate(&pos)
	require.True(t, containsUci(moves, "e5d6"), "en passant capture should be legal")

	var epMove Move
	for _, m := range moves {
		if m.StringUci() == "e5d6" {
			epMove = m
			break
		}
	}
	require.True(t, epMove.IsValid())
	next := pos.Apply(epMove)
	d5 := MakeSquare(3, 4)
	assert.True(t, next.PieceAt(d5).IsEmpty(), "the pawn on d5 must be removed")
}

func TestGeneratePromotionFanout(t *testing.T) {
	pos, err := position.NewPosition("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)

	moves := Generate(&pos)
	a7 := MakeSquare(0, 6)
	a8 := MakeSquare(0, 7)
	count := 0
	for _, m := range moves {
		if m.From() == a7 && m.To() == a8 {
			count++
		}
	}
	assert.Equal(t, 4, count, "promotion must fan out into exactly 4 moves")
}

func TestApplyNeverLeavesMoverInCheck(t *testing.T) {
	pos := position.StartPosition()
	for _, m := range Generate(&pos) {
		next := pos.Apply(m)
		assert.NotEqual(t, pos.SideToMove(), next.CheckedColor())
	}
}

func containsUci(moves []Move, uci string) bool {
	for _, m := range moves {
		if m.StringUci() == uci {
			return true
		}
	}
	return false
}

// moveFromUci is a small test helper that resolves a UCI move string
// against the legal moves of pos.
func moveFromUci(t *testing.T, pos *position.Position, uci string) (Move, error) {
	t.Helper()
	return MoveFromUci(uci, Generate(pos))
}
