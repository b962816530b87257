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
	"strconv"
	"strings"
)

// Value is a search/evaluation score in centipawns. Positive favors White.
type Value int32

// MaxDepth bounds the iterative deepening loop and is used to keep mate
// scores comfortably inside the Value range so that negation never
// overflows (spec.md §7).
const MaxDepth = 128

// Value constants. ValueInf/ValueNA sit well outside [ValueMin, ValueMax]
// so that alpha/beta sentinels and "no value" are always distinguishable
// from any real or mate score.
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 30_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 20_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// MateIn encodes a "mate in (ply+1)/2" score for the side to move at the
// given ply from the root, offset so that negating it at each ply up the
// tree is always safe (spec.md §9 "terminal score representation").
func MateIn(ply int) Value {
	return ValueCheckMate - Value(ply)
}

// MatedIn encodes the losing side's view of the same mate.
func MatedIn(ply int) Value {
	return -MateIn(ply)
}

// IsValid reports whether v is within the representable search range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a forced mate in either
// direction.
func (v Value) IsCheckMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > ValueCheckMateThreshold && a <= ValueCheckMate
}

func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsCheckMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		a := int(v)
		if a < 0 {
			a = -a
		}
		pliesToMate := int(ValueCheckMate) - a
		b.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
