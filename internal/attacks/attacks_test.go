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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

func coord(t *testing.T, s string) types.Coord {
	t.Helper()
	c, err := types.ParseCoord(s)
	if err != nil {
		t.Fatalf("ParseCoord(%q): %v", s, err)
	}
	return c
}

func TestIsAttacked_RookOnOpenFile(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsAttacked(b, coord(t, "a8"), types.White))
	assert.False(t, IsAttacked(b, coord(t, "h1"), types.White))
}

func TestIsAttacked_BishopDiagonal(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/8/8/8/8/B3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsAttacked(b, coord(t, "h8"), types.White))
}

func TestIsAttacked_BlockedRay(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/8/4P3/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	// The rook on a1 no longer reaches e8's file (it never did - different
	// file) but does reach a-file all the way; check a blocked rank instead.
	b2, err := board.NewFromFen("k7/8/8/8/8/8/8/RP2K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, IsAttacked(b2, coord(t, "e1"), types.White))
	_ = b
}

func TestIsAttacked_Knight(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/8/8/2N5/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsAttacked(b, coord(t, "e4"), types.White))
	assert.True(t, IsAttacked(b, coord(t, "a4"), types.White))
	assert.False(t, IsAttacked(b, coord(t, "c5"), types.White))
}

func TestIsAttacked_PawnDirectionMatters(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/8/3P4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	// White pawn on d4 attacks c5 and e5 (advancing toward row 0).
	assert.True(t, IsAttacked(b, coord(t, "c5"), types.White))
	assert.True(t, IsAttacked(b, coord(t, "e5"), types.White))
	assert.False(t, IsAttacked(b, coord(t, "c3"), types.White))
}

func TestIsAttacked_King(t *testing.T) {
	b, err := board.NewFromFen("8/8/8/8/4k3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsAttacked(b, coord(t, "d5"), types.Black))
	assert.False(t, IsAttacked(b, coord(t, "d6"), types.Black))
}

func TestIsInCheck_ScholarsMateSetup(t *testing.T) {
	// Black king in check from a queen on f7.
	b, err := board.NewFromFen("rnbqkbnr/pppp1Qpp/8/4p3/4P3/8/PPPP1PPP/RNB1KBNR b KQkq - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsInCheck(b, types.Black))
	assert.False(t, IsInCheck(b, types.White))
}
