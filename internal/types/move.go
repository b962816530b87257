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
	"fmt"
	"strings"
)

// Move is a 32-bit unsigned int encoding a chess move as a primitive value.
//
//  BITMAP 32-bit
//  |-unused --------|-order -|c|type |prom|--from-|--to---|
//  3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 1 1 1 1
//  1 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  -------------------------------------------------------------
//                                              1 1 1 1 1 1        to
//                                1 1 1 1 1 1                      from
//                              1 1                                promotion piece type (pt-2, 0-3)
//                          1 1 1                                  move type
//                        1                                        is-capture
//              1 1 1 1 1 1                                        move order score (0-63)
//
// MoveType distinguishes the move shapes that need special handling when
// applying a move: plain pushes/captures (Normal), a pawn's initial
// two-square push (DoublePawnPush, which sets en_passant_target),
// the en passant capture itself, castling, and promotion.
type Move uint32

// MoveType is the move-shape discriminant packed into a Move.
type MoveType uint8

const (
	Normal MoveType = iota
	DoublePawnPush
	EnPassantCapture
	Castle
	Promotion
)

// MoveNone is the zero value and never a valid move (a1-a1 decodes to it,
// which is never produced by the generator).
const MoveNone Move = 0

const (
	toShift    uint = 0
	fromShift  uint = 6
	promShift  uint = 12
	typeShift  uint = 14
	capShift   uint = 17
	orderShift uint = 18

	squareMask Move = 0x3F
	promMask   Move = 0x3
	typeMask   Move = 0x7
	orderMask  Move = 0x3F
)

// NewMove builds a quiet/normal move.
func NewMove(from, to Square) Move {
	return makeMove(from, to, Normal, KindNone, false)
}

// NewCapture builds a normal capturing move.
func NewCapture(from, to Square) Move {
	return makeMove(from, to, Normal, KindNone, true)
}

// NewDoublePawnPush builds a two-square pawn push, which enables en
// passant capture on the skipped square next ply.
func NewDoublePawnPush(from, to Square) Move {
	return makeMove(from, to, DoublePawnPush, KindNone, false)
}

// NewEnPassantCapture builds an en passant capture; `to` is the
// destination square, the captured pawn sits on EnPassantCaptureSquare().
func NewEnPassantCapture(from, to Square) Move {
	return makeMove(from, to, EnPassantCapture, KindNone, true)
}

// NewCastle builds a castling move; from/to are the king's own squares.
func NewCastle(from, to Square) Move {
	return makeMove(from, to, Castle, KindNone, false)
}

// NewPromotion builds a promotion move, capture or not, to the given kind.
func NewPromotion(from, to Square, promo PieceKind, isCapture bool) Move {
	return makeMove(from, to, Promotion, promo, isCapture)
}

func makeMove(from, to Square, t MoveType, promo PieceKind, isCapture bool) Move {
	var promBits Move
	if promo.IsValid() {
		promBits = Move(promo-Knight) & promMask
	}
	m := Move(to)&squareMask |
		(Move(from)&squareMask)<<fromShift |
		promBits<<promShift |
		(Move(t)&typeMask)<<typeShift
	if isCapture {
		m |= 1 << capShift
	}
	return m
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & squareMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// MoveType returns the move-shape discriminant.
func (m Move) MoveType() MoveType {
	return MoveType((m >> typeShift) & typeMask)
}

// IsCapture reports whether the move removes an enemy piece (including
// en passant).
func (m Move) IsCapture() bool {
	return (m>>capShift)&1 == 1
}

// Promotion returns the promotion piece kind and whether this move is a
// promotion at all.
func (m Move) Promotion() (PieceKind, bool) {
	if m.MoveType() != Promotion {
		return KindNone, false
	}
	return PieceKind((m>>promShift)&promMask) + Knight, true
}

// CastleKind returns which castling right this move exercises, valid
// only when MoveType() == Castle. Castling is encoded as the king's own
// two-square move (spec.md §6), so the kind is derived from from/to.
func (m Move) CastleKind() (CastleKind, bool) {
	if m.MoveType() != Castle {
		return CastleNone, false
	}
	switch {
	case m.From() == SqE1 && m.To() == SqG1:
		return WhiteKingside, true
	case m.From() == SqE1 && m.To() == SqC1:
		return WhiteQueenside, true
	case m.From() == SqE8 && m.To() == SqG8:
		return BlackKingside, true
	case m.From() == SqE8 && m.To() == SqC8:
		return BlackQueenside, true
	default:
		return CastleNone, false
	}
}

// EnPassantEnableSquare returns the square a future pawn may step onto
// (the square skipped by a double pawn push), valid only when
// MoveType() == DoublePawnPush.
func (m Move) EnPassantEnableSquare() (Square, bool) {
	if m.MoveType() != DoublePawnPush {
		return SquareNone, false
	}
	from, to := m.From(), m.To()
	mid := (int8(from) + int8(to)) / 2
	return Square(mid), true
}

// EnPassantCaptureSquare returns the square of the pawn to remove, valid
// only when MoveType() == EnPassantCapture.
func (m Move) EnPassantCaptureSquare() (Square, bool) {
	if m.MoveType() != EnPassantCapture {
		return SquareNone, false
	}
	return MakeSquare(m.To().File(), m.From().Rank()), true
}

// orderValue/SetOrderValue pack the move-ordering score (0-63, spec.md §3)
// used to stable-sort the legal move list before it reaches search.

// OrderValue returns the packed move-ordering score.
func (m Move) OrderValue() int {
	return int((m >> orderShift) & orderMask)
}

// WithOrderValue returns a copy of m with the ordering score set. Values
// above 63 are clamped (the formula in spec.md §3 never exceeds 20).
func (m Move) WithOrderValue(v int) Move {
	if v < 0 {
		v = 0
	}
	if v > int(orderMask) {
		v = int(orderMask)
	}
	return (m &^ (orderMask << orderShift)) | (Move(v) << orderShift)
}

// IsValid reports whether the move has sane squares, a valid promotion
// piece (when applicable) and isn't MoveNone.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() {
		return false
	}
	if pt, ok := m.Promotion(); ok && !pt.IsValid() {
		return false
	}
	return true
}

// Equal reports whether two moves carry the same from/to/promotion/type/
// capture fields, ignoring the packed order value (spec.md §3: "Two
// moves are equal iff all fields match").
func (m Move) Equal(o Move) bool {
	const fieldMask = squareMask | (squareMask << fromShift) | (promMask << promShift) | (typeMask << typeShift) | (1 << capShift)
	return m&fieldMask == o&fieldMask
}

// StringUci formats the move as UCI long algebraic notation, e.g. "e2e4",
// "e7e8q", "e1g1".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if pt, ok := m.Promotion(); ok {
		b.WriteString(strings.ToLower(pt.Char()))
	}
	return b.String()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return fmt.Sprintf("%s [type=%d capture=%t order=%d]", m.StringUci(), m.MoveType(), m.IsCapture(), m.OrderValue())
}

// MoveFromUci parses a UCI long algebraic move string against the given
// legal move list, returning the matching Move (with its ordering value
// and capture/type flags intact) or an error if no legal move matches.
// This is the parse half of the "parse-from-string / format-to-string"
// contract in spec.md §6; legality itself is the move generator's job.
func MoveFromUci(s string, legal []Move) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return MoveNone, fmt.Errorf("invalid uci move %q: wrong length", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return MoveNone, fmt.Errorf("invalid uci move %q: %w", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return MoveNone, fmt.Errorf("invalid uci move %q: %w", s, err)
	}
	var promo PieceKind
	if len(s) == 5 {
		p, ok := PieceFromChar(s[4])
		if !ok {
			return MoveNone, fmt.Errorf("invalid uci move %q: bad promotion letter", s)
		}
		promo = p.Kind()
	}
	for _, cand := range legal {
		if cand.From() != from || cand.To() != to {
			continue
		}
		if candPromo, ok := cand.Promotion(); ok {
			if promo == KindNone || candPromo != promo {
				continue
			}
		} else if promo != KindNone {
			continue
		}
		return cand, nil
	}
	return MoveNone, fmt.Errorf("move %q is not legal in this position", s)
}

// OrderScore computes the move-ordering feature score from spec.md §3:
// 15*(en-passant capture) + 3*(capture) + 2*(castle or promotion).
func OrderScore(m Move) int {
	score := 0
	if m.MoveType() == EnPassantCapture {
		score += 15
	}
	if m.IsCapture() {
		score += 3
	}
	if m.MoveType() == Castle || m.MoveType() == Promotion {
		score += 2
	}
	return score
}
