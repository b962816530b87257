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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/gambit/internal/position"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	pos := position.StartPosition()
	assert.Equal(t, 0, Evaluate(&pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos, err := position.NewPosition("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)
	assert.Greater(t, Evaluate(&pos), 0)
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	withPair, err := position.NewPosition("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	require.NoError(t, err)
	withoutPair, err := position.NewPosition("4k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	require.NoError(t, err)

	diff := Evaluate(&withPair) - Evaluate(&withoutPair)
	assert.Greater(t, diff, bishopValue)
}

func TestEvaluateRelativeFlipsForBlack(t *testing.T) {
	pos, err := position.NewPosition("4k3/8/8/8/8/8/8/R3K3 b Q - 0 1")
	require.NoError(t, err)
	assert.Less(t, int(EvaluateRelative(&pos)), 0)
}
