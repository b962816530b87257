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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/gambit/internal/types"
)

// parseFen implements the six-field FEN grammar of spec.md §6. Any
// malformed field is a fatal parse error surfaced to the caller rather
// than a partially constructed Position (spec.md §7).
func parseFen(fen string) (Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("fen: expected at least 4 fields, got %d in %q", len(fields), fen)
	}
	for len(fields) < 6 {
		// halfmove clock / fullmove number are commonly omitted; default them.
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	p := NewEmpty()

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	if err := parseCastling(&p, fields[2]); err != nil {
		return Position{}, err
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("fen: invalid en passant target %q: %w", fields[3], err)
		}
		p.epTarget = sq
	} else {
		p.epTarget = SquareNone
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
	}
	p.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Position{}, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
	}
	p.fullmoveNumber = fullmove

	if p.kingSquare[White] == SquareNone || p.kingSquare[Black] == SquareNone {
		return Position{}, fmt.Errorf("fen: both kings must be present: %q", fen)
	}

	p.recomputeDerived()
	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks separated by '/', got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i) // FEN lists ranks 8 -> 1
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := PieceFromChar(ch)
			if !ok {
				return fmt.Errorf("fen: invalid piece letter %q in rank %q", ch, rankStr)
			}
			if file > 7 {
				return fmt.Errorf("fen: rank %q overflows 8 files", rankStr)
			}
			sq := MakeSquare(File(file), rank)
			p.setPieceAt(sq, pc)
			if pc.Kind() == King {
				p.kingSquare[pc.Color()] = sq
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %q does not cover exactly 8 files", rankStr)
		}
	}
	return nil
}

func parseCastling(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, ch := range []byte(field) {
		switch ch {
		case 'K':
			p.castleRights[WhiteKingside] = true
		case 'Q':
			p.castleRights[WhiteQueenside] = true
		case 'k':
			p.castleRights[BlackKingside] = true
		case 'q':
			p.castleRights[BlackQueenside] = true
		default:
			return fmt.Errorf("fen: invalid castling right letter %q", ch)
		}
	}
	return nil
}

// StringFen formats the position back into FEN notation.
func (p *Position) StringFen() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(MakeSquare(File(file), Rank(rank)))
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.String())
	b.WriteString(" ")
	b.WriteString(p.castleRights.String())
	b.WriteString(" ")
	b.WriteString(p.epTarget.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfmoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullmoveNumber))
	return b.String()
}
