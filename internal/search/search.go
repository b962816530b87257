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

// Package search implements iterative-deepening fail-hard alpha-beta on
// top of internal/movegen and internal/evaluator. A single Search value
// is reused across "go" commands the way the teacher's Search is: one
// goroutine runs at a time, guarded by a pair of semaphores so that
// StartSearch never blocks the caller past its own initialization.
package search

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/gambit/internal/config"
	"github.com/frankkopp/gambit/internal/engineapi"
	"github.com/frankkopp/gambit/internal/evaluator"
	"github.com/frankkopp/gambit/internal/history"
	myLogging "github.com/frankkopp/gambit/internal/logging"
	"github.com/frankkopp/gambit/internal/movegen"
	"github.com/frankkopp/gambit/internal/position"
	. "github.com/frankkopp/gambit/internal/types"
)

// Result is the outcome of one StartSearch run.
type Result struct {
	BestMove Move
	Value    Value
	Depth    int
}

// Search runs iterative-deepening alpha-beta on demand. The zero value
// is not usable; construct one with NewSearch.
type Search struct {
	log    *logging.Logger
	slog   *logging.Logger
	driver engineapi.Driver

	// initSemaphore/isRunning mirror the teacher's pair in
	// internal/search/search.go: StartSearch acquires initSemaphore
	// before launching run() in its own goroutine, then re-acquires and
	// releases it itself so that StartSearch only returns to its caller
	// once run() has installed its cancellation channel. isRunning lets
	// IsSearching/WaitWhileSearching observe whether run() is still
	// active without a separate mutex.
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	// cancel is a one-shot cancellation channel per spec.md §5: a fresh
	// channel is created for every StartSearch call and closed exactly
	// once by StopSearch. Closing (rather than sending) lets every
	// goroutine-local read observe the stop without a race.
	cancel chan struct{}

	// hist accumulates beta-cutoff counts for quiet moves within a
	// single search, for diagnostics (History.String). It never
	// reorders move lists on its own; legal is always searched in the
	// generator's own OrderValue order. Cleared at the start of every
	// run().
	hist *history.History

	statistics Statistics
	lastResult Result
}

// NewSearch returns a ready-to-use Search with no driver attached.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		hist:          history.NewHistory(),
	}
}

// SetDriver attaches the callback sink used to report progress and the
// final result. A nil driver is valid and simply discards reports.
func (s *Search) SetDriver(d engineapi.Driver) {
	s.driver = d
}

// IsSearching reports whether a search is currently running, without
// blocking.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// StartSearch begins searching pos under limits in its own goroutine
// and returns once that goroutine has installed its cancellation
// channel, so a StopSearch issued immediately after StartSearch returns
// is never lost.
func (s *Search) StartSearch(pos position.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	go s.run(pos, limits)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch signals the running search to stop at its next poll point.
// It is a no-op if no search is running.
func (s *Search) StopSearch() {
	if s.cancel != nil {
		select {
		case <-s.cancel:
			// already closed
		default:
			close(s.cancel)
		}
	}
}

func (s *Search) run(pos position.Position, limits Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.cancel = make(chan struct{})
	s.statistics = Statistics{}
	s.hist.Clear()
	s.initSemaphore.Release(1)

	s.log.Infof("searching: %s", pos.String())

	start := time.Now()
	result := s.iterativeDeepening(&pos, limits, start)
	s.lastResult = result

	s.slog.Debugf("finished at depth %d, %d nodes, best move %s", result.Depth, s.statistics.Nodes, result.BestMove.StringUci())

	if s.driver != nil {
		s.driver.SendResult(result.BestMove)
	}
}

func (s *Search) stopped() bool {
	select {
	case <-s.cancel:
		return true
	default:
		return false
	}
}

// iterativeDeepening runs fail-hard alpha-beta at increasing depths
// until the time budget (or an explicit depth/movetime limit) is
// exhausted, reporting each completed iteration through the driver. A
// stop delivered before depth 1 completes returns the first legal move
// of the generator, never blocking (spec.md §5).
func (s *Search) iterativeDeepening(pos *position.Position, limits Limits, start time.Time) Result {
	legal := movegen.Generate(pos)
	if len(legal) == 0 {
		return Result{BestMove: 0, Value: terminalValue(pos, 0), Depth: 0}
	}
	legal = restrictToSearchMoves(legal, limits.SearchMoves)

	result := Result{BestMove: legal[0], Value: evaluator.EvaluateRelative(pos), Depth: 0}
	budget := timeBudget(limits, pos.SideToMove())

	maxDepth := MaxDepth
	if config.Settings.Search.MaxDepth > 0 && config.Settings.Search.MaxDepth < maxDepth {
		maxDepth = config.Settings.Search.MaxDepth
	}
	if limits.Depth > 0 {
		maxDepth = limits.Depth
	}

	startDepth := 1
	if !config.Settings.Search.UseIterativeDeepening && limits.Depth == 0 {
		// Skip the ramp-up and search straight at maxDepth: still a
		// single "iteration", so the driver still receives exactly one
		// SendIterationEnd report.
		startDepth = maxDepth
	}

	var prevElapsed time.Duration

	for depth := startDepth; depth <= maxDepth; depth++ {
		if s.stopped() {
			break
		}

		s.statistics.CurrentIteration = depth
		iterStart := time.Now()

		value, bestMove, completed := s.searchRoot(pos, legal, depth)
		if !completed {
			break
		}

		elapsed := time.Since(iterStart)
		result = Result{BestMove: bestMove, Value: value, Depth: depth}
		s.statistics.CurrentDepth = depth

		if s.driver != nil {
			total := time.Since(start)
			nps := uint64(0)
			if total > 0 {
				nps = uint64(float64(s.statistics.Nodes) / total.Seconds())
			}
			s.driver.SendIterationEnd(depth, value, s.statistics.Nodes, nps, total, []Move{bestMove})
		}

		if !limits.Infinite && limits.Depth == 0 && budget > 0 {
			// Depth-doubling time prediction (spec.md §5): stop before
			// starting an iteration expected to blow the budget, using
			// integer arithmetic on the last two iteration durations:
			// t_d * (t_d / t_{d-1}), the ratio truncated to a whole number.
			predicted := elapsed
			if prevElapsed > 0 {
				predicted = elapsed * (elapsed / prevElapsed)
			}
			if time.Since(start)+predicted > budget {
				break
			}
		}
		prevElapsed = elapsed

		if limits.Depth == 0 && !limits.Infinite && time.Since(start) > budget {
			break
		}
	}

	return result
}

// searchRoot evaluates every legal root move at the given depth,
// returning the best value/move found and whether the iteration
// completed without being cancelled midway.
func (s *Search) searchRoot(pos *position.Position, legal []Move, depth int) (Value, Move, bool) {
	alpha, beta := -ValueInf, ValueInf
	best := legal[0]
	bestValue := -ValueInf

	for _, m := range legal {
		if s.stopped() {
			return bestValue, best, false
		}
		next := pos.Apply(m)
		value := -s.alphaBeta(&next, depth-1, 1, -beta, -alpha)
		if value > bestValue {
			bestValue = value
			best = m
		}
		if value > alpha {
			alpha = value
		}
	}
	if s.stopped() {
		// a stop during the last root move's subtree cut it short.
		return bestValue, best, false
	}
	return bestValue, best, true
}

// alphaBeta is fail-hard negamax. ply counts plies from the root and is
// used only to offset mate scores so that a shorter mate always sorts
// ahead of a longer one at every level of the tree.
func (s *Search) alphaBeta(pos *position.Position, depth, ply int, alpha, beta Value) Value {
	s.statistics.Nodes++

	if depth <= 0 {
		s.statistics.Leafs++
		return evaluator.EvaluateRelative(pos)
	}

	legal := movegen.Generate(pos)
	if len(legal) == 0 {
		return terminalValue(pos, ply)
	}

	// legal is already ordered by descending OrderValue (movegen.Generate,
	// spec.md §3 "captures first"). That order is searched as-is; history
	// is recorded below for diagnostics only and never reorders legal
	// (spec.md §9: no MVV-LVA/history heuristics without measured gains).
	side := pos.SideToMove()

	for _, m := range legal {
		if ply <= 2 && s.stopped() {
			break
		}
		next := pos.Apply(m)
		value := -s.alphaBeta(&next, depth-1, ply+1, -beta, -alpha)
		if value >= beta {
			if !m.IsCapture() {
				s.hist.Update(side, m, depth)
			}
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// restrictToSearchMoves intersects legal with searchMoves (UCI "go
// searchmoves"), preserving legal's order. An empty searchMoves leaves
// legal untouched.
func restrictToSearchMoves(legal []Move, searchMoves []Move) []Move {
	if len(searchMoves) == 0 {
		return legal
	}
	restricted := legal[:0:0]
	for _, m := range legal {
		for _, allowed := range searchMoves {
			if m.Equal(allowed) {
				restricted = append(restricted, m)
				break
			}
		}
	}
	if len(restricted) == 0 {
		return legal
	}
	return restricted
}

// terminalValue scores a position with no legal moves: checkmate for
// the side to move, a draw otherwise (spec.md §4.3 "no legal move"
// terminal states).
func terminalValue(pos *position.Position, ply int) Value {
	if pos.InCheck(pos.SideToMove()) {
		return MatedIn(ply)
	}
	return ValueDraw
}

// timeBudget derives the time allowed for this move from limits and
// the side to move, following spec.md §5's conservative formula
// budget = T/20 + I/2 when no explicit movetime is given. T and I are
// always the clock and increment of the side actually on move, never
// a fixed color.
func timeBudget(limits Limits, side Color) time.Duration {
	if limits.Infinite {
		return 0
	}
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	if !limits.TimeControlled() {
		if limits.Depth == 0 {
			// Bare "go" with no clock, movetime, depth or infinite flag:
			// fall back to the configured default so the search still
			// terminates on its own.
			return time.Duration(config.Settings.Search.DefaultMoveTime) * time.Millisecond
		}
		return 0
	}

	t, inc := limits.WhiteTime, limits.WhiteInc
	if side == Black {
		t, inc = limits.BlackTime, limits.BlackInc
	}
	if t <= 0 {
		return 0
	}
	return t/20 + inc/2
}
