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

package config

// searchConfiguration holds the knobs the iterative-deepening search
// actually consumes. Trimmed from the teacher's much larger struct:
// no transposition table, null move, LMR/LMP/futility or extensions,
// since those heuristics are out of scope for this engine.
type searchConfiguration struct {
	UseIterativeDeepening bool
	MaxDepth              int
	DefaultMoveTime       int // milliseconds, used when no time control is given
	MovesToGo             int // carried in the config schema; the time budget (T/20 + I/2) does not read it
}

func init() {
	Settings.Search.UseIterativeDeepening = true
	Settings.Search.MaxDepth = 64
	Settings.Search.DefaultMoveTime = 2000
	Settings.Search.MovesToGo = 40
}
