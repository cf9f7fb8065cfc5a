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

package movegen

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

func TestGeneratePseudoLegal_StartingPositionCount(t *testing.T) {
	b := board.NewStandard()
	moves := GeneratePseudoLegal(b, types.White)
	assert.Equal(t, 20, moves.Len())
}

func TestGenerateLegal_StartingPositionEqualsPseudoLegal(t *testing.T) {
	b := board.NewStandard()
	assert.Equal(t, 20, GenerateLegal(b, types.White).Len())
}

func TestGenerateLegal_PinnedPieceCannotMove(t *testing.T) {
	// White king on e1, white rook pinned on e2 by a black rook on e8;
	// the pinned rook may only move along the e-file, never sideways.
	b, err := board.NewFromFen("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	legal := GenerateLegal(b, types.White)
	for _, m := range legal {
		if m.Src() == coord(t, "e2") {
			assert.Equal(t, 4, m.Dst().Column(), "pinned rook must stay on the e-file")
		}
	}
}

func TestGenerateLegal_NoCastleThroughCheck(t *testing.T) {
	// Black rook on e8 attacks e1: White king may not castle either way
	// because it starts in check.
	b, err := board.NewFromFen("4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	legal := GenerateLegal(b, types.White)
	for _, m := range legal {
		assert.False(t, m.IsCastling())
	}
}

func TestGenerateLegal_NoCastleThroughAttackedTransitSquare(t *testing.T) {
	// Black rook on f8 attacks f1, the transit square for king-side
	// castling, though not e1 itself.
	b, err := board.NewFromFen("5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	legal := GenerateLegal(b, types.White)
	for _, m := range legal {
		if m.IsCastling() {
			assert.NotEqual(t, 6, m.Dst().Column(), "king-side castle must be filtered out")
		}
	}
}

func TestGenerateLegal_CastlingAllowedWhenClear(t *testing.T) {
	b, err := board.NewFromFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	legal := GenerateLegal(b, types.White)
	found := 0
	for _, m := range legal {
		if m.IsCastling() {
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestHasLegalMove_CheckmateHasNone(t *testing.T) {
	// Fool's mate final position: Black queen delivers mate on h4.
	b, err := board.NewFromFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.False(t, HasLegalMove(b, types.White))
}

func TestPerft_StartingPosition(t *testing.T) {
	b := board.NewStandard()
	assert.Equal(t, uint64(20), Perft(b, types.White, 1))
	assert.Equal(t, uint64(400), Perft(b, types.White, 2))
	assert.Equal(t, uint64(8902), Perft(b, types.White, 3))
}

func TestPerft_KiwipeteIncludesCastlingAndEnPassant(t *testing.T) {
	// The well-known "Kiwipete" test position, chosen because it
	// exercises castling, en passant and promotions at shallow depth.
	b, err := board.NewFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(b, types.White, 1))
}
