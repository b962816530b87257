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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "d5"} {
		sq, err := SquareFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, sq.String())
	}
}

func TestSquareFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "i1", "a9", "aa", "11"} {
		_, err := SquareFromString(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestSquareShiftOffBoard(t *testing.T) {
	_, ok := SqA1.Shift(-1, 0)
	assert.False(t, ok)
	_, ok = SqH8.Shift(1, 0)
	assert.False(t, ok)
	to, ok := SqA1.Shift(1, 1)
	assert.True(t, ok)
	assert.Equal(t, SqB2, to)
}

func TestPieceKindRoundTrip(t *testing.T) {
	for ch, want := range map[byte]PieceKind{'P': Pawn, 'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King} {
		p, ok := PieceFromChar(ch)
		require.True(t, ok)
		assert.Equal(t, want, p.Kind())
	}
}

func TestPieceColorAndChar(t *testing.T) {
	wp := MakePiece(White, Pawn)
	bp := MakePiece(Black, Pawn)
	assert.Equal(t, White, wp.Color())
	assert.Equal(t, Black, bp.Color())
	assert.Equal(t, "P", wp.Char())
	assert.Equal(t, "p", bp.Char())
	assert.Equal(t, ".", PieceEmpty.Char())
}

func TestMoveEncodingRoundTrip(t *testing.T) {
	e4 := MakeSquare(4, 3)
	d5 := MakeSquare(3, 4)
	m := NewCapture(e4, d5)
	assert.Equal(t, e4, m.From())
	assert.Equal(t, d5, m.To())
	assert.True(t, m.IsCapture())
	assert.Equal(t, "e4d5", m.StringUci())
}

func TestMovePromotionFields(t *testing.T) {
	a7 := MakeSquare(0, 6)
	a8 := MakeSquare(0, 7)
	m := NewPromotion(a7, a8, Queen, false)
	promo, ok := m.Promotion()
	require.True(t, ok)
	assert.Equal(t, Queen, promo)
	assert.Equal(t, "a7a8q", m.StringUci())
}

func TestMoveOrderValueSurvivesFieldAccessors(t *testing.T) {
	e4 := MakeSquare(4, 3)
	d5 := MakeSquare(3, 4)
	m := NewCapture(e4, d5)
	m = m.WithOrderValue(OrderScore(m))
	assert.Equal(t, e4, m.From())
	assert.Equal(t, d5, m.To())
	assert.True(t, m.IsCapture())
	assert.Greater(t, m.OrderValue(), 0)
}

func TestMoveFromUciMatchesLegalMove(t *testing.T) {
	e4 := MakeSquare(4, 3)
	legal := []Move{NewMove(SqE2, e4), NewDoublePawnPush(SqE2, e4)}
	m, err := MoveFromUci("e2e4", legal)
	require.NoError(t, err)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, e4, m.To())
}

func TestMoveFromUciRejectsIllegalMove(t *testing.T) {
	e3 := MakeSquare(4, 2)
	legal := []Move{NewMove(SqE2, e3)}
	_, err := MoveFromUci("e2e4", legal)
	assert.Error(t, err)
}

func TestValueMateEncodingIsSymmetric(t *testing.T) {
	mate := MateIn(1)
	assert.True(t, mate.IsCheckMateValue())
	assert.Equal(t, -mate, MatedIn(1))
}

func TestValueIsValidRange(t *testing.T) {
	assert.True(t, ValueZero.IsValid())
	assert.True(t, ValueMax.IsValid())
	assert.False(t, ValueInf.IsValid())
}

func TestCastlingRightsString(t *testing.T) {
	var cr CastlingRights
	assert.Equal(t, "-", cr.String())
	cr[WhiteKingside] = true
	cr[BlackQueenside] = true
	assert.Equal(t, "Kq", cr.String())
}

func TestCastlingRightsClearColor(t *testing.T) {
	cr := CastlingRights{true, true, true, true}
	cr.ClearColor(White)
	assert.Equal(t, "kq", cr.String())
}
