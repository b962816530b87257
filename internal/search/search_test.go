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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/gambit/internal/config"
	"github.com/frankkopp/gambit/internal/movegen"
	"github.com/frankkopp/gambit/internal/position"
	. "github.com/frankkopp/gambit/internal/types"
)

// testDriver records the reports a Search sends it, for assertions
// without needing a real UCI connection.
type testDriver struct {
	iterations int
	resultMove Move
	resultSet  bool
}

func (d *testDriver) SendInfoString(string) {}

func (d *testDriver) SendIterationEnd(depth int, value Value, nodes uint64, nps uint64, elapsed time.Duration, pv []Move) {
	d.iterations++
}

func (d *testDriver) SendResult(bestMove Move) {
	d.resultSet = true
	d.resultMove = bestMove
}

func runSync(t *testing.T, s *Search, pos position.Position, limits Limits) Result {
	t.Helper()
	s.StartSearch(pos, limits)
	s.WaitWhileSearching()
	return s.lastResult
}

func TestSearchReturnsLegalMove(t *testing.T) {
	pos := position.StartPosition()
	s := NewSearch()
	result := runSync(t, s, pos, Limits{Depth: 2})

	legal := movegen.Generate(&pos)
	found := false
	for _, m := range legal {
		if m.Equal(result.BestMove) {
			found = true
			break
		}
	}
	assert.True(t, found, "search must return a move from legal_moves(P)")
}

func TestSearchFindsMateInOne(t *testing.T) {
	pos, err := position.NewPosition("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	result := runSync(t, s, pos, Limits{Depth: 2})
	assert.Equal(t, "a1a8", result.BestMove.StringUci())
	assert.True(t, result.Value.IsCheckMateValue())
}

func TestSearchFindsScholarsMate(t *testing.T) {
	pos, err := position.NewPosition("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 2 3")
	require.NoError(t, err)

	s := NewSearch()
	result := runSync(t, s, pos, Limits{Depth: 2})
	assert.Equal(t, "f3f7", result.BestMove.StringUci())
}

func TestSearchWithoutLegalMoveReturnsZeroMove(t *testing.T) {
	pos, err := position.NewPosition("7k/5QQ1/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	result := runSync(t, s, pos, Limits{Depth: 1})
	assert.Equal(t, 0, int(result.BestMove))
	assert.True(t, result.Value.IsCheckMateValue())
}

func TestStopBeforeDepthOneReturnsFirstLegalMove(t *testing.T) {
	pos := position.StartPosition()
	legal := movegen.Generate(&pos)
	require.NotEmpty(t, legal)

	s := NewSearch()
	s.cancel = make(chan struct{})
	close(s.cancel)

	_, move, completed := s.searchRoot(&pos, legal, 3)
	assert.False(t, completed)
	assert.Equal(t, legal[0], move)
}

func TestDriverReceivesIterationsAndResult(t *testing.T) {
	pos := position.StartPosition()
	driver := &testDriver{}
	s := NewSearch()
	s.SetDriver(driver)

	s.StartSearch(pos, Limits{Depth: 2})
	s.WaitWhileSearching()

	assert.True(t, driver.resultSet)
	assert.GreaterOrEqual(t, driver.iterations, 2)
	assert.True(t, driver.resultMove.IsValid())
}

func TestUseIterativeDeepeningFalseSearchesOneShotAtMaxDepth(t *testing.T) {
	savedIterative := config.Settings.Search.UseIterativeDeepening
	savedMaxDepth := config.Settings.Search.MaxDepth
	config.Settings.Search.UseIterativeDeepening = false
	config.Settings.Search.MaxDepth = 2
	defer func() {
		config.Settings.Search.UseIterativeDeepening = savedIterative
		config.Settings.Search.MaxDepth = savedMaxDepth
	}()

	pos := position.StartPosition()
	driver := &testDriver{}
	s := NewSearch()
	s.SetDriver(driver)

	s.StartSearch(pos, Limits{MoveTime: time.Hour})
	s.WaitWhileSearching()

	assert.Equal(t, 1, driver.iterations)
	assert.True(t, driver.resultSet)
}

func TestTimeBudgetUsesClockOfSideToMove(t *testing.T) {
	limits := Limits{
		WhiteTime: 20 * time.Second, WhiteInc: 2 * time.Second,
		BlackTime: 10 * time.Second, BlackInc: 1 * time.Second,
	}

	white := timeBudget(limits, White)
	assert.Equal(t, 20*time.Second/20+time.Second, white)

	black := timeBudget(limits, Black)
	assert.Equal(t, 10*time.Second/20+500*time.Millisecond, black)
	assert.NotEqual(t, white, black)
}

func TestIsSearchingReflectsRunState(t *testing.T) {
	s := NewSearch()
	assert.False(t, s.IsSearching())

	pos := position.StartPosition()
	s.StartSearch(pos, Limits{Depth: 3})
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
}
