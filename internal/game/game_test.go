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

package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wisdomgo/wisdomgo/internal/notation"
	"github.com/wisdomgo/wisdomgo/internal/search"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

func TestCreateStandardGame_StatusPlaying(t *testing.T) {
	g := CreateStandardGame()
	assert.Equal(t, Playing, g.Status())
}

func TestCreateFromFen_InvalidFenReturnsError(t *testing.T) {
	_, err := CreateFromFen("not a fen")
	assert.Error(t, err)
}

func TestMove_RejectsIllegalMove(t *testing.T) {
	g := CreateStandardGame()
	m, err := notation.Parse("e2e5", types.White)
	assert.NoError(t, err)
	err = g.Move(m)
	assert.Error(t, err)
}

func TestMove_AppliesLegalMoveAndAdvancesSideToMove(t *testing.T) {
	g := CreateStandardGame()
	m, err := notation.Parse("e2e4", types.White)
	assert.NoError(t, err)
	assert.NoError(t, g.Move(m))
	assert.Equal(t, types.Black, g.Board().SideToMove())
}

func TestScholarsMate_EndsInCheckmate(t *testing.T) {
	g := CreateStandardGame()
	moves := []struct {
		text  string
		color types.Color
	}{
		{"e2e4", types.White},
		{"e7e5", types.Black},
		{"f1c4", types.White},
		{"b8c6", types.Black},
		{"d1h5", types.White},
		{"g8f6", types.Black},
		{"h5xf7", types.White},
	}
	for _, mv := range moves {
		m, err := notation.Parse(mv.text, mv.color)
		assert.NoError(t, err)
		assert.NoError(t, g.Move(m))
	}
	assert.Equal(t, Checkmate, g.Status())
}

func TestMapCoordinatesToMove_FindsPawnPush(t *testing.T) {
	g := CreateStandardGame()
	e2, _ := types.ParseCoord("e2")
	e4, _ := types.ParseCoord("e4")
	m, ok := g.MapCoordinatesToMove(e2, e4, types.NoPieceType)
	assert.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestMapCoordinatesToMove_NoMatchReturnsFalse(t *testing.T) {
	g := CreateStandardGame()
	e2, _ := types.ParseCoord("e2")
	e5, _ := types.ParseCoord("e5")
	_, ok := g.MapCoordinatesToMove(e2, e5, types.NoPieceType)
	assert.False(t, ok)
}

func TestFindBestMove_ReturnsLegalMoveForSideToMove(t *testing.T) {
	g, err := CreateFromFen("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)
	g.SetMaxDepth(3)
	g.SetSearchTimeout(5 * time.Second)

	m, ok := g.FindBestMove(nil, types.ColorNone)
	assert.True(t, ok)
	assert.Equal(t, "a1a8", m.String())
	assert.Equal(t, Checkmate, func() GameStatus {
		_ = g.Move(m)
		return g.Status()
	}())
}

func TestFindBestMove_ReentrantCallIsRejected(t *testing.T) {
	g := CreateStandardGame()
	assert.NoError(t, g.sem.Acquire(context.Background(), 1))
	defer g.sem.Release(1)

	m, ok := g.FindBestMove(nil, types.ColorNone)
	assert.False(t, ok)
	assert.Equal(t, types.NoMove, m)
}

func TestSetPeriodicFunction_InvokedDuringSearch(t *testing.T) {
	g := CreateStandardGame()
	g.SetMaxDepth(2)
	g.SetSearchTimeout(5 * time.Second)

	called := false
	g.SetPeriodicFunction(func(p search.Progress) {
		called = true
	})
	_, _ = g.FindBestMove(nil, types.ColorNone)
	assert.True(t, called)
}

func TestDifficultyToLimits_MonotonicByDifficulty(t *testing.T) {
	beginnerDepth, beginnerTime := DifficultyToLimits(Beginner)
	expertDepth, expertTime := DifficultyToLimits(Expert)
	assert.Less(t, beginnerDepth, expertDepth)
	assert.Less(t, beginnerTime, expertTime)
}

func TestID_IsStableAndNonZero(t *testing.T) {
	g := CreateStandardGame()
	first := g.ID()
	assert.NotEqual(t, uint64(0), first)
	assert.Equal(t, first, g.ID())
}

// TestThreefoldRepetition_ReachedAfterKnightShuffleTwice replays the
// canonical g1f3/g8f6/f3g1/f6g8 round trip from the initial position
// twice. newGame records the initial hash itself (with WasProgress
// true) before any move is made, so that hash's own first occurrence
// already counts toward the repetition tally; the round trip restores
// it a second and third time, making the position a threefold
// repetition after only two rounds rather than three.
func TestThreefoldRepetition_ReachedAfterKnightShuffleTwice(t *testing.T) {
	g := CreateStandardGame()
	round := []struct {
		text  string
		color types.Color
	}{
		{"g1f3", types.White},
		{"g8f6", types.Black},
		{"f3g1", types.White},
		{"f6g8", types.Black},
	}
	for i := 0; i < 2; i++ {
		for _, mv := range round {
			m, err := notation.Parse(mv.text, mv.color)
			assert.NoError(t, err)
			assert.NoError(t, g.Move(m))
		}
	}
	assert.True(t, g.hist.IsNthRepetition(g.board.Hash(), 3))
	assert.Equal(t, ThreefoldReached, g.Status())
}

// TestFiftyMoveRule_ReachedAfterFiftyNonProgressMoves plays fifty full
// moves (a hundred plies) of king shuffling with no pawn on the board
// and no capture ever available, then asserts the half-move clock has
// reached the configured limit and Status reports FiftyMovesReached.
// A rook is kept on the board throughout so the position never becomes
// insufficient material, and the final two full moves walk each king
// onto squares neither has visited before so the closing position is
// not itself a repetition - only the fifty-move clock governs Status
// at the end, the same way TestScholarsMate_EndsInCheckmate isolates
// checkmate by construction.
func TestFiftyMoveRule_ReachedAfterFiftyNonProgressMoves(t *testing.T) {
	g, err := CreateFromFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)

	e1, _ := types.ParseCoord("e1")
	e2, _ := types.ParseCoord("e2")
	e7, _ := types.ParseCoord("e7")
	e8, _ := types.ParseCoord("e8")
	d1, _ := types.ParseCoord("d1")
	c1, _ := types.ParseCoord("c1")
	d8, _ := types.ParseCoord("d8")
	c8, _ := types.ParseCoord("c8")

	for i := 1; i <= 48; i++ {
		if i%2 == 1 {
			assert.NoError(t, g.Move(types.MakeMove(e1, e2)))
			assert.NoError(t, g.Move(types.MakeMove(e8, e7)))
		} else {
			assert.NoError(t, g.Move(types.MakeMove(e2, e1)))
			assert.NoError(t, g.Move(types.MakeMove(e7, e8)))
		}
	}
	assert.NoError(t, g.Move(types.MakeMove(e1, d1)))
	assert.NoError(t, g.Move(types.MakeMove(e8, d8)))
	assert.NoError(t, g.Move(types.MakeMove(d1, c1)))
	assert.NoError(t, g.Move(types.MakeMove(d8, c8)))

	assert.Equal(t, 100, g.hist.HalfMovesWithoutProgress())
	assert.Equal(t, FiftyMovesReached, g.Status())
}
