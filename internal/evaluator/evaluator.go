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

// Package evaluator computes a static integer score for a Position, used
// by the search as its leaf-node heuristic.
package evaluator

import (
	"github.com/frankkopp/gambit/internal/config"
	"github.com/frankkopp/gambit/internal/position"
	. "github.com/frankkopp/gambit/internal/types"
)

// Material values in centipawns. The King's finite value keeps terminal
// scores comparable; real mate/stalemate detection happens in Search,
// never here.
const (
	pawnValue   = 100
	knightValue = 300
	bishopValue = 350
	rookValue   = 500
	queenValue  = 900
	kingValue   = 400
)

var materialValue = [PieceKindLength]int{
	KindNone: 0,
	Pawn:     pawnValue,
	Knight:   knightValue,
	Bishop:   bishopValue,
	Rook:     rookValue,
	Queen:    queenValue,
	King:     kingValue,
}

// Evaluate returns the static score of pos in centipawns, positive
// favoring White, from White's perspective. The result depends only on
// pos and the evaluation settings in config.Settings.Eval, never on
// search state (spec.md §8 idempotence property).
func Evaluate(pos *position.Position) int {
	mg := isMidgame(pos)

	score := 0
	whiteBishops, blackBishops := 0, 0

	for sq := SqA1; sq <= SqH8; sq++ {
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		kind := pc.Kind()
		value := materialValue[kind] + pieceSquareValue(pc, sq, mg)
		if pc.Color() == White {
			score += value
		} else {
			score -= value
		}
		if kind == Bishop {
			if pc.Color() == White {
				whiteBishops++
			} else {
				blackBishops++
			}
		}
	}

	if whiteBishops >= 2 {
		score += config.Settings.Eval.BishopPairBonus
	}
	if blackBishops >= 2 {
		score -= config.Settings.Eval.BishopPairBonus
	}

	// Spec's Open Question: the mover's own score worsens when in check,
	// equivalent to a bonus for the side delivering the check.
	if checked := pos.CheckedColor(); checked != ColorNone {
		if checked == White {
			score -= config.Settings.Eval.CheckBonus
		} else {
			score += config.Settings.Eval.CheckBonus
		}
	}

	return score
}

// EvaluateRelative returns Evaluate from the perspective of the side to
// move, as required by the negamax search contract (spec.md §4.4).
func EvaluateRelative(pos *position.Position) Value {
	score := Evaluate(pos)
	if pos.SideToMove() == Black {
		score = -score
	}
	return Value(score)
}

func isMidgame(pos *position.Position) bool {
	nonPawnPieces := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := pos.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		if pc.Kind() != Pawn {
			nonPawnPieces++
		}
	}
	return nonPawnPieces > config.Settings.Eval.EndgamePieceThreshold
}

func pieceSquareValue(pc Piece, sq Square, mg bool) int {
	mgTable, egTable := tablesFor(pc.Kind())
	var table *[64]int
	if mg {
		table = mgTable
	} else {
		table = egTable
	}
	if pc.Color() == White {
		return table[63-int(sq)]
	}
	return table[int(sq)]
}

func tablesFor(kind PieceKind) (*[64]int, *[64]int) {
	switch kind {
	case Pawn:
		return &pawnMg, &pawnEg
	case Knight:
		return &knightMg, &knightEg
	case Bishop:
		return &bishopMg, &bishopEg
	case Rook:
		return &rookMg, &rookEg
	case Queen:
		return &queenMg, &queenEg
	case King:
		return &kingMg, &kingEg
	default:
		return &zeroTable, &zeroTable
	}
}

var zeroTable [64]int
