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

// Package engineapi defines the callback interface Search uses to report
// progress to whatever is driving it (the UCI layer, or a test harness).
// Search lives in internal/search and uci lives in internal/uci; uci
// needs a *search.Search to dispatch "go"/"stop" commands, so Search
// cannot import uci back without a cycle. This interface is the
// standard Go answer: the dependent (search) defines the shape it
// needs, and the dependency (uci) implements it.
package engineapi

import (
	"time"

	. "github.com/frankkopp/gambit/internal/types"
)

// Driver receives progress reports from a running search.
type Driver interface {
	// SendInfoString forwards a free-form diagnostic line.
	SendInfoString(info string)

	// SendIterationEnd reports the result of one completed
	// iterative-deepening depth.
	SendIterationEnd(depth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv []Move)

	// SendResult reports the final chosen move once the search stops.
	SendResult(bestMove Move)
}
