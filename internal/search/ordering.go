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
	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/movegen"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

// captureBase lifts every capture and promotion score above the 0 a
// quiet move gets, so even a losing capture (a queen taking a pawn,
// 100 - 1000) still sorts ahead of every quiet move.
const captureBase = 10_000

// ttMoveScore is higher than any capture or promotion score (at most
// captureBase plus a queen promotion at 1000 plus a captured queen at
// 1000) so the TT move always sorts first.
const ttMoveScore = 1_000_000

// orderMoves sorts moves in place: the TT move first (if present in
// this list), then captures by victim-value-minus-aggressor-value
// descending (MVV-LVA), then quiet moves, per spec.md §4.10. A
// promotion is scored as a capture of the promoted piece's value, per
// the same section.
func orderMoves(moves movegen.MoveList, b *board.Board, ttMove types.Move) {
	moves.Sort(func(m types.Move) int32 {
		if m == ttMove {
			return ttMoveScore
		}
		if m.IsPromoting() {
			score := captureBase + m.Promoted().Value()
			if m.IsAnyCapturing() {
				score += victimValue(b, m)
			}
			return score
		}
		if m.IsAnyCapturing() {
			return captureBase + victimValue(b, m) - aggressorValue(b, m)
		}
		return 0
	})
}

func victimValue(b *board.Board, m types.Move) int32 {
	if m.Category() == types.EnPassant {
		return types.Pawn.Value()
	}
	return b.Square(m.Dst()).Value()
}

func aggressorValue(b *board.Board, m types.Move) int32 {
	return b.Square(m.Src()).Value()
}
