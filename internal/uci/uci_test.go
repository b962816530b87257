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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/gambit/internal/types"
)

func TestUciCommandPrintsIdAndUciOk(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name gambit")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyCommandPrintsReadyOk(t *testing.T) {
	h := NewHandler()
	out := h.Command("isready")
	assert.Equal(t, "readyok\n", out)
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, White, h.position.SideToMove())
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", h.position.StringFen())
}

func TestPositionFenWithoutMoves(t *testing.T) {
	h := NewHandler()
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.position.StringFen())
}

func TestPositionRejectsIllegalMoveWithoutChangingState(t *testing.T) {
	h := NewHandler()
	before := h.position.StringFen()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "illegal move")
	assert.Equal(t, before, h.position.StringFen())
}

func TestPositionRejectsMalformedFen(t *testing.T) {
	h := NewHandler()
	out := h.Command("position fen not-a-fen")
	assert.Contains(t, out, "malformed FEN")
}

func TestGoSearchmovesRestrictsRootMove(t *testing.T) {
	h := NewHandler()
	h.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")

	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle("go depth 2 searchmoves g1h1")
	h.mySearch.WaitWhileSearching()
	_ = h.OutIo.Flush()

	assert.Contains(t, buf.String(), "bestmove g1h1")
}

func TestGoDepthProducesBestMove(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)

	h.handle("go depth 2")
	h.mySearch.WaitWhileSearching()
	_ = h.OutIo.Flush()

	out := buf.String()
	assert.True(t, strings.Contains(out, "bestmove "))
}

func TestBareGoThenStopProducesBestMove(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)

	h.handle("go")
	h.mySearch.StopSearch()
	h.mySearch.WaitWhileSearching()
	_ = h.OutIo.Flush()

	assert.True(t, strings.Contains(buf.String(), "bestmove "))
}

func TestQuitTerminatesLoop(t *testing.T) {
	h := NewHandler()
	quit := h.handle("quit")
	assert.True(t, quit)
}

func TestUnknownCommandDoesNotTerminateLoop(t *testing.T) {
	h := NewHandler()
	quit := h.handle("frobnicate")
	assert.False(t, quit)
}
