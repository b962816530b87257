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

// Package attacks computes the per-color attack count map used for check
// detection and castle legality (spec.md §3/§4.2). It is a leaf package:
// it only depends on types and a minimal BoardReader, never on position,
// so that Position can recompute its own attack maps on every Apply
// without an import cycle.
package attacks

import (
	. "github.com/frankkopp/gambit/internal/types"
)

// BoardReader is the minimal view of a board an attack map needs.
type BoardReader interface {
	PieceAt(sq Square) Piece
}

// Map is a per-color, per-square count of attackers, as described in
// spec.md §3: Map[c][s] is the number of pieces of color c that attack
// square s.
type Map [ColorLength][SqLength]int8

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var kingDirs = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

// Compute recomputes the full attack map for both colors from scratch,
// as spec.md §4.2 requires on every apply. For each occupied square it
// expands the attacked squares under that piece's movement rule (pawns
// diagonally only; sliders stop at the first occupied square, inclusive;
// leapers mark each target) and increments Map[color][target].
func Compute(b BoardReader) Map {
	var m Map
	for sq := SqA1; sq <= SqH8; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		c := p.Color()
		switch p.Kind() {
		case Pawn:
			dr := 1
			if c == Black {
				dr = -1
			}
			for _, df := range [2]int{-1, 1} {
				if target, ok := sq.Shift(df, dr); ok {
					m[c][target]++
				}
			}
		case Knight:
			for _, o := range knightOffsets {
				if target, ok := sq.Shift(o[0], o[1]); ok {
					m[c][target]++
				}
			}
		case King:
			for _, o := range kingDirs {
				if target, ok := sq.Shift(o[0], o[1]); ok {
					m[c][target]++
				}
			}
		case Bishop:
			slide(b, sq, c, bishopDirs[:], &m)
		case Rook:
			slide(b, sq, c, rookDirs[:], &m)
		case Queen:
			slide(b, sq, c, rookDirs[:], &m)
			slide(b, sq, c, bishopDirs[:], &m)
		}
	}
	return m
}

func slide(b BoardReader, from Square, c Color, dirs [][2]int, m *Map) {
	for _, d := range dirs {
		cur := from
		for {
			next, ok := cur.Shift(d[0], d[1])
			if !ok {
				break
			}
			m[c][next]++
			if !b.PieceAt(next).IsEmpty() {
				break
			}
			cur = next
		}
	}
}

// Attacked reports whether any piece of color c attacks square sq.
func (m Map) Attacked(c Color, sq Square) bool {
	return m[c][sq] > 0
}

// AttackedAny reports whether any of the given squares are attacked by c;
// used for castle legality (king's path must be unattacked).
func (m Map) AttackedAny(c Color, squares ...Square) bool {
	for _, sq := range squares {
		if m.Attacked(c, sq) {
			return true
		}
	}
	return false
}
