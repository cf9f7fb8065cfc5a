//
// wisdomgo - a synchronous chess rules kernel and alpha-beta search engine
//
// MIT License
//
// Copyright (c) 2026 The wisdomgo Authors
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

	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/config"
	"github.com/wisdomgo/wisdomgo/internal/evaluator"
	"github.com/wisdomgo/wisdomgo/internal/history"
	"github.com/wisdomgo/wisdomgo/internal/movegen"
	"github.com/wisdomgo/wisdomgo/internal/transpositiontable"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

func newSearch() *Search {
	return New(transpositiontable.New(4), history.New())
}

func TestFindBestMove_MateInOne(t *testing.T) {
	b, err := board.NewFromFen("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := newSearch()
	result := s.FindBestMove(b, types.White, Limits{MaxDepth: 3, Timeout: 5 * time.Second})

	assert.Equal(t, "a1a8", result.BestMove.String())
	assert.GreaterOrEqual(t, result.Score, int32(evaluator.CheckmateScore-3))
}

func TestFindBestMove_PrefersMaterialGain(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	assert.NoError(t, err)

	s := newSearch()
	result := s.FindBestMove(b, types.White, Limits{MaxDepth: 3, Timeout: 5 * time.Second})

	assert.Equal(t, "d1xd5", result.BestMove.String())
}

func TestFindBestMove_NoLegalMovesReturnsCheckmateScore(t *testing.T) {
	b, err := board.NewFromFen("r1bqkbnr/pppp1Qpp/2n5/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 1")
	assert.NoError(t, err)

	s := newSearch()
	result := s.FindBestMove(b, types.Black, Limits{MaxDepth: 2, Timeout: 5 * time.Second})

	assert.Equal(t, types.NoMove, result.BestMove)
	assert.Equal(t, int32(-evaluator.CheckmateScore), result.Score)
}

func TestFindBestMove_TimeoutBeforeFirstIterationReturnsNoMove(t *testing.T) {
	config.Setup()
	orig := config.Settings.Search.NodesPollInterval
	config.Settings.Search.NodesPollInterval = 1
	defer func() { config.Settings.Search.NodesPollInterval = orig }()

	b := board.NewStandard()
	s := newSearch()
	result := s.FindBestMove(b, types.White, Limits{MaxDepth: 4, Timeout: 1 * time.Nanosecond})

	assert.Equal(t, types.NoMove, result.BestMove)
	assert.True(t, result.TimedOut)
}

func TestFindBestMove_LeavesBoardUnchanged(t *testing.T) {
	b := board.NewStandard()
	before := b.Hash()

	s := newSearch()
	s.FindBestMove(b, types.White, Limits{MaxDepth: 2, Timeout: 5 * time.Second})

	assert.Equal(t, before, b.Hash())
}

func TestOrderMoves_TTMoveSortsFirst(t *testing.T) {
	b := board.NewStandard()
	list := movegen.GenerateLegal(b, types.White)
	ttMove := list[len(list)-1]

	orderMoves(list, b, ttMove)
	assert.Equal(t, ttMove, list[0])
}

func TestOrderMoves_CapturesBeforeQuiet(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/3p4/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	list := movegen.GenerateLegal(b, types.White)

	orderMoves(list, b, types.NoMove)
	assert.True(t, list[0].IsAnyCapturing())
}
