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

type castleRookMove struct {
	rookFrom, rookTo Square
}

var castleRookMoves = map[CastleKind]castleRookMove{
	WhiteKingside:  {SqH1, SqF1},
	WhiteQueenside: {SqA1, SqD1},
	BlackKingside:  {SqH8, SqF8},
	BlackQueenside: {SqA8, SqD8},
}

// cornerCastleRight maps a rook's home square to the castling right it
// guards, used both when the rook itself moves away and when it is
// captured on its home square (spec.md §4.2 step 8).
var cornerCastleRight = map[Square]CastleKind{
	SqA1: WhiteQueenside,
	SqH1: WhiteKingside,
	SqA8: BlackQueenside,
	SqH8: BlackKingside,
}

// Apply returns the successor Position after playing m, following the
// thirteen steps of spec.md §4.2 in order. The receiver is never
// mutated: Position is a plain value, so `np := *p` below is already an
// independent deep copy.
func (p *Position) Apply(m Move) Position {
	np := *p

	mover := np.PieceAt(m.From())
	moverColor := mover.Color()
	moverKind := mover.Kind()

	// step 2: move the piece, noting whether the destination was occupied.
	destOccupied := !np.PieceAt(m.To()).IsEmpty()
	np.setPieceAt(m.From(), PieceEmpty)
	np.setPieceAt(m.To(), mover)
	_ = destOccupied // capture-ness is carried on the Move itself (m.IsCapture())

	// step 3: castling also relocates the rook.
	if ck, ok := m.CastleKind(); ok {
		rm := castleRookMoves[ck]
		rook := np.PieceAt(rm.rookFrom)
		np.setPieceAt(rm.rookFrom, PieceEmpty)
		np.setPieceAt(rm.rookTo, rook)
	}

	// step 4: en passant capture removes the passed pawn, not the
	// (empty) destination square.
	if epSq, ok := m.EnPassantCaptureSquare(); ok {
		np.setPieceAt(epSq, PieceEmpty)
	}

	// step 5: promotion replaces the piece that just landed.
	if promo, ok := m.Promotion(); ok {
		np.setPieceAt(m.To(), MakePiece(moverColor, promo))
	}

	// step 6: flip side to move.
	np.sideToMove = moverColor.Flip()

	// step 7: king moves update the cache and forfeit both castle rights.
	if moverKind == King {
		np.kingSquare[moverColor] = m.To()
		np.castleRights.ClearColor(moverColor)
	}

	// step 8: a rook leaving (or being captured on) its home square
	// forfeits the corresponding right.
	if ck, ok := cornerCastleRight[m.From()]; ok {
		np.castleRights[ck] = false
	}
	if m.IsCapture() {
		if ck, ok := cornerCastleRight[m.To()]; ok {
			np.castleRights[ck] = false
		}
	}

	// step 9: en passant target is set only by a double pawn push, and
	// cleared otherwise.
	if epEnable, ok := m.EnPassantEnableSquare(); ok {
		np.epTarget = epEnable
	} else {
		np.epTarget = SquareNone
	}

	// step 10: halfmove clock resets on capture or pawn move.
	if m.IsCapture() || moverKind == Pawn {
		np.halfmoveClock = 0
	} else {
		np.halfmoveClock++
	}

	// step 11: fullmove number increments after Black's move.
	if moverColor == Black {
		np.fullmoveNumber++
	}

	// steps 12-13: attack map and check status, recomputed from scratch.
	np.recomputeDerived()

	return np
}
