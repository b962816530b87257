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

// Package movegen generates legal moves from a Position (spec.md §4.1).
// Unlike the teacher's pseudo-legal generator plus DoMove/UndoMove/
// WasLegalMove dance, Position has no in-place undo: legality is checked
// by speculatively Apply-ing a pseudo-legal candidate and discarding it
// if the mover's own king ends up attacked. Position.Apply is cheap
// enough (a single value copy plus an attack-map recompute) that this
// is the straightforward way to generate here.
package movegen

import (
	"sort"

	"github.com/frankkopp/gambit/internal/position"
	. "github.com/frankkopp/gambit/internal/types"
)

// knight leaper offsets and king/queen/rook/bishop slide directions, each
// in a fixed order so that move generation is deterministic square by
// square (spec.md §4.1: "generation order is deterministic").
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

type castleSpec struct {
	kind         CastleKind
	kingFrom     Square
	kingTo       Square
	emptySquares []Square
	safeSquares  []Square // must not be attacked by the opponent, includes kingFrom
}

var castleSpecs = [4]castleSpec{
	{WhiteKingside, SqE1, SqG1, []Square{SqF1, SqG1}, []Square{SqE1, SqF1, SqG1}},
	{WhiteQueenside, SqE1, SqC1, []Square{SqD1, SqC1, SqB1}, []Square{SqE1, SqD1, SqC1}},
	{BlackKingside, SqE8, SqG8, []Square{SqF8, SqG8}, []Square{SqE8, SqF8, SqG8}},
	{BlackQueenside, SqE8, SqC8, []Square{SqD8, SqC8, SqB8}, []Square{SqE8, SqD8, SqC8}},
}

// Generate returns the fully legal moves available to the side to move,
// stable-sorted by descending OrderValue (spec.md §3). Moves that would
// leave the mover's own king in check are filtered out.
func Generate(pos *position.Position) []Move {
	mover := pos.SideToMove()
	pseudo := generatePseudoLegal(pos)

	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := pos.Apply(m)
		if next.IsAttacked(mover.Flip(), next.KingSquare(mover)) {
			continue
		}
		legal = append(legal, m.WithOrderValue(OrderScore(m)))
	}

	sort.SliceStable(legal, func(i, j int) bool {
		return legal[i].OrderValue() > legal[j].OrderValue()
	})
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building or sorting the full list. Suitable for cheap
// checkmate/stalemate detection; the search itself tests for an empty
// Generate result instead.
func HasLegalMove(pos *position.Position) bool {
	mover := pos.SideToMove()
	for _, m := range generatePseudoLegal(pos) {
		next := pos.Apply(m)
		if !next.IsAttacked(mover.Flip(), next.KingSquare(mover)) {
			return true
		}
	}
	return false
}

// generatePseudoLegal scans the board a1..h8 and emits every move that
// obeys piece movement rules, without checking whether it leaves the
// mover's own king in check.
func generatePseudoLegal(pos *position.Position) []Move {
	moves := make([]Move, 0, 48)
	mover := pos.SideToMove()

	for sq := SqA1; sq <= SqH8; sq++ {
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() || pc.Color() != mover {
			continue
		}
		switch pc.Kind() {
		case Pawn:
			genPawnMoves(pos, sq, mover, &moves)
		case Knight:
			genLeaperMoves(pos, sq, mover, knightOffsets[:], &moves)
		case Bishop:
			genSlideMoves(pos, sq, mover, bishopDirs[:], &moves)
		case Rook:
			genSlideMoves(pos, sq, mover, rookDirs[:], &moves)
		case Queen:
			genSlideMoves(pos, sq, mover, rookDirs[:], &moves)
			genSlideMoves(pos, sq, mover, bishopDirs[:], &moves)
		case King:
			genLeaperMoves(pos, sq, mover, kingOffsets[:], &moves)
		}
	}
	genCastleMoves(pos, mover, &moves)
	return moves
}

func genLeaperMoves(pos *position.Position, from Square, mover Color, offsets [][2]int, moves *[]Move) {
	for _, o := range offsets {
		to, ok := from.Shift(o[0], o[1])
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if target.IsEmpty() {
			*moves = append(*moves, NewMove(from, to))
		} else if target.Color() != mover {
			*moves = append(*moves, NewCapture(from, to))
		}
	}
}

func genSlideMoves(pos *position.Position, from Square, mover Color, dirs [][2]int, moves *[]Move) {
	for _, d := range dirs {
		to := from
		for {
			next, ok := to.Shift(d[0], d[1])
			if !ok {
				break
			}
			to = next
			target := pos.PieceAt(to)
			if target.IsEmpty() {
				*moves = append(*moves, NewMove(from, to))
				continue
			}
			if target.Color() != mover {
				*moves = append(*moves, NewCapture(from, to))
			}
			break
		}
	}
}

func genPawnMoves(pos *position.Position, from Square, mover Color, moves *[]Move) {
	forward := 1
	startRank := Rank(1)
	lastRank := Rank(7)
	if mover == Black {
		forward = -1
		startRank = Rank(6)
		lastRank = Rank(0)
	}

	// single push
	if one, ok := from.Shift(0, forward); ok && pos.PieceAt(one).IsEmpty() {
		emitPawnAdvance(from, one, lastRank, false, moves)

		// double push, only from the starting rank and only if both
		// squares ahead are empty.
		if from.Rank() == startRank {
			if two, ok := one.Shift(0, forward); ok && pos.PieceAt(two).IsEmpty() {
				*moves = append(*moves, NewDoublePawnPush(from, two))
			}
		}
	}

	// diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		to, ok := from.Shift(df, forward)
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if !target.IsEmpty() && target.Color() != mover {
			emitPawnAdvance(from, to, lastRank, true, moves)
			continue
		}
		if target.IsEmpty() && to == pos.EnPassantTarget() {
			*moves = append(*moves, NewEnPassantCapture(from, to))
		}
	}
}

// emitPawnAdvance appends a single quiet/capturing pawn move, fanning it
// out into the four promotion moves (Queen, Rook, Knight, Bishop, in that
// order per spec.md §4.1) when it lands on the last rank.
func emitPawnAdvance(from, to Square, lastRank Rank, isCapture bool, moves *[]Move) {
	if to.Rank() != lastRank {
		if isCapture {
			*moves = append(*moves, NewCapture(from, to))
		} else {
			*moves = append(*moves, NewMove(from, to))
		}
		return
	}
	for _, promo := range [4]PieceKind{Queen, Rook, Knight, Bishop} {
		*moves = append(*moves, NewPromotion(from, to, promo, isCapture))
	}
}

func genCastleMoves(pos *position.Position, mover Color, moves *[]Move) {
	rights := pos.CastleRights()
	opponent := mover.Flip()
	for _, cs := range castleSpecs {
		if (mover == White && (cs.kind == BlackKingside || cs.kind == BlackQueenside)) ||
			(mover == Black && (cs.kind == WhiteKingside || cs.kind == WhiteQueenside)) {
			continue
		}
		if !rights[cs.kind] {
			continue
		}
		empty := true
		for _, sq := range cs.emptySquares {
			if !pos.PieceAt(sq).IsEmpty() {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		safe := true
		for _, sq := range cs.safeSquares {
			if pos.IsAttacked(opponent, sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		*moves = append(*moves, NewCastle(cs.kingFrom, cs.kingTo))
	}
}
