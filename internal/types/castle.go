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

// CastleKind identifies one of the four castling rights/moves.
type CastleKind int8

const (
	WhiteKingside CastleKind = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	CastleNone
	CastleKindLength = 4
)

func (ck CastleKind) String() string {
	switch ck {
	case WhiteKingside:
		return "O-O"
	case WhiteQueenside:
		return "O-O-O"
	case BlackKingside:
		return "O-O"
	case BlackQueenside:
		return "O-O-O"
	default:
		return "-"
	}
}

// CastlingRights holds the four booleans of spec.md §3.
type CastlingRights [CastleKindLength]bool

// Clear resets all four rights to false.
func (cr *CastlingRights) Clear() {
	*cr = CastlingRights{}
}

// ClearColor clears both rights belonging to the given color.
func (cr *CastlingRights) ClearColor(c Color) {
	if c == White {
		cr[WhiteKingside] = false
		cr[WhiteQueenside] = false
	} else {
		cr[BlackKingside] = false
		cr[BlackQueenside] = false
	}
}

// String formats the rights the way FEN does: subset of "KQkq", or "-".
func (cr CastlingRights) String() string {
	s := ""
	if cr[WhiteKingside] {
		s += "K"
	}
	if cr[WhiteQueenside] {
		s += "Q"
	}
	if cr[BlackKingside] {
		s += "k"
	}
	if cr[BlackQueenside] {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
