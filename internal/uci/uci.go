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

// Package uci contains the Handler data structure and functionality to
// handle the UCI protocol communication between a chess GUI and the
// engine core (spec.md §6). Persistent state is deliberately absent:
// the position is replaced on ucinewgame/position and nothing survives
// a process restart.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/gambit/internal/logging"
	"github.com/frankkopp/gambit/internal/movegen"
	"github.com/frankkopp/gambit/internal/position"
	"github.com/frankkopp/gambit/internal/search"
	. "github.com/frankkopp/gambit/internal/types"
	"github.com/frankkopp/gambit/internal/version"
)

var log *logging.Logger

// Handler owns the input/output streams, the current Position and the
// Search, and dispatches one UCI command line at a time.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	position *position.Position
	mySearch *search.Search

	uciLog *logging.Logger
}

// NewHandler creates a Handler wired to stdin/stdout and the starting
// position, with a fresh Search attached as this handler itself (it
// implements engineapi.Driver).
func NewHandler() *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	start := position.StartPosition()
	h := &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		position: &start,
		mySearch: search.NewSearch(),
		uciLog:   myLogging.GetUciLog(),
	}
	h.mySearch.SetDriver(h)
	return h
}

// Loop reads command lines from InIo until "quit" is received.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single command line and returns whatever the
// handler wrote to OutIo, for tests and debugging.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

// SendInfoString implements engineapi.Driver.
func (h *Handler) SendInfoString(info string) {
	h.send(fmt.Sprintf("info string %s", info))
}

// SendIterationEnd implements engineapi.Driver.
func (h *Handler) SendIterationEnd(depth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv []Move) {
	h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		depth, value.String(), nodes, nps, elapsed.Milliseconds(), pvString(pv)))
}

// SendResult implements engineapi.Driver.
func (h *Handler) SendResult(bestMove Move) {
	h.send(fmt.Sprintf("bestmove %s", bestMove.StringUci()))
}

func pvString(pv []Move) string {
	var b strings.Builder
	for i, m := range pv {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}

func (h *Handler) send(line string) {
	h.uciLog.Infof(">> %s", line)
	_, _ = h.OutIo.WriteString(line)
	_, _ = h.OutIo.WriteString("\n")
	_ = h.OutIo.Flush()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// goKeywords are the "go" subcommand tokens, used to find the end of a
// searchmoves move list (which otherwise runs to end of line).
var goKeywords = map[string]struct{}{
	"infinite": {}, "depth": {}, "movetime": {}, "wtime": {}, "btime": {},
	"winc": {}, "binc": {}, "nodes": {}, "searchmoves": {},
}

// handle dispatches cmd and reports whether "quit" was received.
func (h *Handler) handle(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)

	switch tokens[0] {
	case "quit":
		h.mySearch.StopSearch()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.newGameCommand()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.mySearch.StopSearch()
	case "debug", "register", "setoption":
		log.Debugf("command %q is accepted but not implemented", tokens[0])
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name gambit " + version.Version())
	h.send("id author the gambit authors")
	h.send("uciok")
}

func (h *Handler) newGameCommand() {
	h.mySearch.WaitWhileSearching()
	start := position.StartPosition()
	h.position = &start
}

// positionCommand implements "position startpos [moves ...]" and
// "position fen <FEN> [moves ...]" (spec.md §6). Moves are applied
// atomically: a malformed or illegal move leaves the position
// untouched (spec.md §7).
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.malformed("position", tokens)
		return
	}

	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = position.StartFen
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(tokens[i])
			i++
		}
		fen = b.String()
	default:
		h.malformed("position", tokens)
		return
	}

	next, err := position.NewPosition(fen)
	if err != nil {
		log.Warningf("malformed FEN %q: %v", fen, err)
		h.SendInfoString(fmt.Sprintf("malformed FEN: %v", err))
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			legal := movegen.Generate(&next)
			m, err := MoveFromUci(tokens[i], legal)
			if err != nil {
				log.Warningf("illegal move %q in position command: %v", tokens[i], err)
				h.SendInfoString(fmt.Sprintf("illegal move %q, position unchanged", tokens[i]))
				return
			}
			next = next.Apply(m)
		}
	}

	h.position = &next
}

// goCommand starts a search bounded by whichever limits were given
// (spec.md §6 "go [...]").
func (h *Handler) goCommand(tokens []string) {
	var limits search.Limits
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
		case "depth":
			i++
			limits.Depth = atoiOr(tokens, i, 0)
		case "movetime":
			i++
			limits.MoveTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "wtime":
			i++
			limits.WhiteTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "btime":
			i++
			limits.BlackTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "winc":
			i++
			limits.WhiteInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "binc":
			i++
			limits.BlackInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "nodes":
			// accepted, not used: this engine has no node budget.
			i++
		case "searchmoves":
			legal := movegen.Generate(h.position)
			for i+1 < len(tokens) {
				if _, isKeyword := goKeywords[tokens[i+1]]; isKeyword {
					break
				}
				i++
				m, err := MoveFromUci(tokens[i], legal)
				if err != nil {
					log.Warningf("ignoring searchmoves token %q: %v", tokens[i], err)
					continue
				}
				limits.SearchMoves = append(limits.SearchMoves, m)
			}
		}
	}
	h.mySearch.StartSearch(*h.position, limits)
}

func atoiOr(tokens []string, i int, fallback int) int {
	if i >= len(tokens) {
		return fallback
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil {
		return fallback
	}
	return n
}

func (h *Handler) malformed(cmd string, tokens []string) {
	msg := fmt.Sprintf("command %q malformed: %v", cmd, tokens)
	log.Warning(msg)
	h.SendInfoString(msg)
}
