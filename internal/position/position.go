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

// Package position holds the immutable Position game state: board,
// castling rights, en passant target, move counters, cached king
// squares and the per-color attack map, plus FEN parsing/formatting and
// the Apply operation that derives a successor Position.
package position

import (
	"strings"

	"github.com/frankkopp/gambit/internal/attacks"
	. "github.com/frankkopp/gambit/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is an immutable snapshot of a chess game state (spec.md §3).
// It is a plain value: copying a Position by assignment (`p2 := p1`)
// produces an independent deep copy, since every field is itself a
// value type or fixed-size array. Apply relies on exactly this to
// derive a successor without mutating its receiver.
type Position struct {
	squares [mailboxSize]Piece

	sideToMove   Color
	castleRights CastlingRights
	epTarget     Square // SquareNone if not set

	halfmoveClock  int
	fullmoveNumber int

	kingSquare [ColorLength]Square
	attackMap  attacks.Map
	check      Color // ColorNone if nobody is in check
}

// NewEmpty returns a Position with an empty board and White to move;
// mostly useful for tests that build up a position piece by piece.
func NewEmpty() Position {
	var p Position
	for i := range p.squares {
		p.squares[i] = PieceOffBoard
	}
	for _, sq := range sq64to120 {
		p.squares[sq] = PieceEmpty
	}
	p.epTarget = SquareNone
	p.kingSquare[White] = SquareNone
	p.kingSquare[Black] = SquareNone
	p.check = ColorNone
	p.fullmoveNumber = 1
	return p
}

// NewPosition parses a FEN string into a Position (spec.md §6). Returns
// an error on any malformed field rather than panicking (spec.md §7).
func NewPosition(fen string) (Position, error) {
	return parseFen(fen)
}

// StartPosition returns the standard chess starting position.
func StartPosition() Position {
	p, err := NewPosition(StartFen)
	if err != nil {
		// StartFen is a compile-time constant known to be well-formed.
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return p
}

// PieceAt returns the piece on sq, or PieceEmpty if the square is empty.
// Implements attacks.BoardReader.
func (p *Position) PieceAt(sq Square) Piece {
	return p.squares[sq64to120[sq]]
}

func (p *Position) setPieceAt(sq Square, pc Piece) {
	p.squares[sq64to120[sq]] = pc
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastleRights returns the four castling right booleans.
func (p *Position) CastleRights() CastlingRights {
	return p.castleRights
}

// EnPassantTarget returns the en passant destination square a capturing
// pawn would move to, or SquareNone.
func (p *Position) EnPassantTarget() Square {
	return p.epTarget
}

// HalfmoveClock returns the half-move clock (resets on capture or pawn move).
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the full-move counter (increments after Black moves).
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// KingSquare returns the cached square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// AttackCount returns the number of color c's pieces attacking sq.
func (p *Position) AttackCount(c Color, sq Square) int {
	return int(p.attackMap[c][sq])
}

// IsAttacked reports whether any piece of color c attacks sq.
func (p *Position) IsAttacked(c Color, sq Square) bool {
	return p.attackMap.Attacked(c, sq)
}

// InCheck reports whether color c is currently in check.
func (p *Position) InCheck(c Color) bool {
	return p.check == c
}

// CheckedColor returns which color is in check, or ColorNone.
func (p *Position) CheckedColor() Color {
	return p.check
}

// recomputeDerived rebuilds the attack map and check status from
// scratch, implementing spec.md §4.2 step 12/13. Called after every
// mutation that changes the board or side to move.
func (p *Position) recomputeDerived() {
	p.attackMap = attacks.Compute(p)
	p.check = ColorNone
	for _, c := range [2]Color{White, Black} {
		if p.kingSquare[c].IsValid() && p.attackMap.Attacked(c.Flip(), p.kingSquare[c]) {
			p.check = c
		}
	}
}

// String renders an 8x8 ASCII board with rank 8 on top, for debugging.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(string(rune('1' + rank)))
		b.WriteString(" ")
		for file := 0; file < 8; file++ {
			sq := MakeSquare(File(file), Rank(rank))
			b.WriteString(p.PieceAt(sq).Char())
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("  a b c d e f g h\n")
	b.WriteString("side to move: ")
	b.WriteString(p.sideToMove.String())
	b.WriteString("\n")
	return b.String()
}
