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

// Square is a board coordinate in [0, 63], a1=0 .. h8=63, row-major
// (file varies fastest). SquareNone is the sentinel for "no square".
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA8 Square = 56
	SqB8 Square = 57
	SqC8 Square = 58
	SqD8 Square = 59
	SqE8 Square = 60
	SqF8 Square = 61
	SqG8 Square = 62
	SqH8 Square = 63

	SqLength   = 64
	SquareNone Square = -1
)

// File is the file (column) of a square, 0 (a) .. 7 (h).
type File int8

// Rank is the rank (row) of a square, 0 (rank 1) .. 7 (rank 8).
type Rank int8

// MakeSquare builds a Square from a file and rank, both 0..7.
func MakeSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(int8(sq) % 8)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(int8(sq) / 8)
}

// IsValid reports whether sq is a real board square.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq <= SqH8
}

// String returns the algebraic notation of the square, e.g. "e4".
// SquareNone formats as "-".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// SquareFromString parses algebraic notation (e.g. "e4") into a Square.
// Returns SquareNone and an error if s is not well-formed.
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("invalid square %q: wrong length", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SquareNone, fmt.Errorf("invalid square %q: out of range", s)
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), nil
}

// Shift offsets a square by (df, dr) files/ranks and reports whether the
// result stays on the board.
func (sq Square) Shift(df, dr int) (Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SquareNone, false
	}
	return MakeSquare(File(f), Rank(r)), true
}
