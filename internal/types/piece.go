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

import "fmt"

// PieceKind is a chess piece type, independent of color.
type PieceKind int8

const (
	KindNone PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceKindLength = 7
)

var pieceKindChars = [PieceKindLength]string{"", "P", "N", "B", "R", "Q", "K"}

// Char returns the upper-case FEN letter for the piece kind ("" for KindNone).
func (pk PieceKind) Char() string {
	return pieceKindChars[pk]
}

// IsValid reports whether pk is one of the six real piece kinds.
func (pk PieceKind) IsValid() bool {
	return pk >= Pawn && pk <= King
}

func (pk PieceKind) String() string {
	return pk.Char()
}

// Piece is a colored chess piece, encoded as color*6+kind-1 so that
// Piece(White, Pawn) == WhitePawn == 0 and Piece(Black, King) == BlackKing == 11.
// PieceEmpty is the sentinel for an empty square.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceEmpty
	// PieceOffBoard marks a padding cell in a 10x12 mailbox board; it is
	// never a valid occupant of a real square.
	PieceOffBoard
	PieceLength = 12
)

// IsOffBoard reports whether p is the mailbox padding sentinel.
func (p Piece) IsOffBoard() bool {
	return p == PieceOffBoard
}

// MakePiece builds a Piece from a color and a piece kind. MakePiece panics
// if given an invalid kind, since this is always called from trusted,
// internally generated data.
func MakePiece(c Color, pk PieceKind) Piece {
	if !pk.IsValid() {
		panic(fmt.Sprintf("invalid piece kind %d", pk))
	}
	return Piece(int8(c)*6 + int8(pk) - 1)
}

// Kind returns the piece kind, or KindNone for PieceEmpty.
func (p Piece) Kind() PieceKind {
	if p == PieceEmpty {
		return KindNone
	}
	return PieceKind(int8(p)%6) + 1
}

// Color returns the color of the piece. Result is meaningless for PieceEmpty.
func (p Piece) Color() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// IsEmpty reports whether the square this piece sits on is empty.
func (p Piece) IsEmpty() bool {
	return p == PieceEmpty
}

// Char returns the FEN character for the piece: upper-case for White,
// lower-case for Black, "." for an empty square.
func (p Piece) Char() string {
	if p == PieceEmpty {
		return "."
	}
	c := p.Kind().Char()
	if p.Color() == Black {
		return toLower(c)
	}
	return c
}

func toLower(s string) string {
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar maps a FEN piece letter to a Piece. Returns PieceEmpty
// and false if the letter is not a recognised piece letter.
func PieceFromChar(ch byte) (Piece, bool) {
	switch ch {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return PieceEmpty, false
	}
}
