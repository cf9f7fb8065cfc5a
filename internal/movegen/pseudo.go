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

// Package movegen produces the moves a search or a caller needs:
// pseudo-legal moves per piece type, and the legal subset of those for
// a side to move. Grounded on the teacher's internal/movegen package
// shape (a generator type plus a legality filter) and on
// original_source/check/move.c and check/check.c for the array-board
// per-piece-type enumeration and the castling-through-check rule.
package movegen

import (
	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

type direction struct{ dr, dc int }

var rookDirections = [4]direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirections = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var queenDirections = [8]direction{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}
var knightOffsets = [8]direction{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

func step(sq types.Coord, d direction) (types.Coord, bool) {
	row := sq.Row() + d.dr
	col := sq.Column() + d.dc
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return types.NoCoord, false
	}
	return types.MakeCoord(row, col), true
}

// promotionPieces are the pieces a pawn may promote to, most valuable
// first so move ordering sees the strong promotion first.
var promotionPieces = [4]types.PieceType{types.Queen, types.Rook, types.Bishop, types.Knight}

// GeneratePseudoLegal returns every pseudo-legal move for who on b:
// legal except possibly for leaving or not addressing a check on
// who's own king. Callers that need only legal moves should use
// GenerateLegal instead.
func GeneratePseudoLegal(b *board.Board, who types.Color) MoveList {
	moves := NewMoveList()
	for sq := types.Coord(0); sq < 64; sq++ {
		p := b.Square(sq)
		if p.IsEmpty() || p.Color() != who {
			continue
		}
		switch p.Type() {
		case types.Pawn:
			genPawnMoves(b, who, sq, &moves)
		case types.Knight:
			genJumpMoves(b, who, sq, knightOffsets[:], &moves)
		case types.Bishop:
			genSlidingMoves(b, who, sq, bishopDirections[:], &moves)
		case types.Rook:
			genSlidingMoves(b, who, sq, rookDirections[:], &moves)
		case types.Queen:
			genSlidingMoves(b, who, sq, queenDirections[:], &moves)
		case types.King:
			genJumpMoves(b, who, sq, queenDirections[:], &moves)
			genCastlingMoves(b, who, sq, &moves)
		}
	}
	return moves
}

func pawnAdvanceDir(c types.Color) int {
	if c == types.White {
		return -1
	}
	return 1
}

func pawnStartRow(c types.Color) int {
	if c == types.White {
		return 6
	}
	return 1
}

func promotionRow(c types.Color) int {
	if c == types.White {
		return 0
	}
	return 7
}

func genPawnMoves(b *board.Board, who types.Color, src types.Coord, moves *MoveList) {
	dir := pawnAdvanceDir(who)

	addOrPromote := func(dst types.Coord, isCapture bool) {
		if dst.Row() == promotionRow(who) {
			for _, pt := range promotionPieces {
				moves.Push(types.MakePromotingMove(src, dst, pt, isCapture))
			}
			return
		}
		if isCapture {
			moves.Push(types.MakeCapturingMove(src, dst))
		} else {
			moves.Push(types.MakeMove(src, dst))
		}
	}

	// Single push.
	if dst, ok := step(src, direction{dir, 0}); ok && b.Square(dst).IsEmpty() {
		addOrPromote(dst, false)
		// Double push, only from the starting row and only if both
		// squares along the way are empty.
		if src.Row() == pawnStartRow(who) {
			if dst2, ok2 := step(dst, direction{dir, 0}); ok2 && b.Square(dst2).IsEmpty() {
				moves.Push(types.MakeMove(src, dst2))
			}
		}
	}

	// Captures, including en passant.
	for _, dc := range [2]int{-1, 1} {
		dst, ok := step(src, direction{dir, dc})
		if !ok {
			continue
		}
		target := b.Square(dst)
		if !target.IsEmpty() && target.Color() != who {
			addOrPromote(dst, true)
			continue
		}
		ep := b.EnPassantTarget()
		if ep.IsSet() && ep.Square == dst && ep.VulnerableColor != who {
			moves.Push(types.MakeEnPassantMove(src, dst))
		}
	}
}

func genJumpMoves(b *board.Board, who types.Color, src types.Coord, offsets []direction, moves *MoveList) {
	for _, d := range offsets {
		dst, ok := step(src, d)
		if !ok {
			continue
		}
		target := b.Square(dst)
		if target.IsEmpty() {
			moves.Push(types.MakeMove(src, dst))
		} else if target.Color() != who {
			moves.Push(types.MakeCapturingMove(src, dst))
		}
	}
}

func genSlidingMoves(b *board.Board, who types.Color, src types.Coord, directions []direction, moves *MoveList) {
	for _, d := range directions {
		cur, ok := step(src, d)
		for ok {
			target := b.Square(cur)
			if target.IsEmpty() {
				moves.Push(types.MakeMove(src, cur))
				cur, ok = step(cur, d)
				continue
			}
			if target.Color() != who {
				moves.Push(types.MakeCapturingMove(src, cur))
			}
			break
		}
	}
}

func genCastlingMoves(b *board.Board, who types.Color, kingSq types.Coord, moves *MoveList) {
	row := kingSq.Row()
	rights := b.Castling(who)
	if rights.Has(types.Kingside) {
		f := types.MakeCoord(row, 5)
		g := types.MakeCoord(row, 6)
		if b.Square(f).IsEmpty() && b.Square(g).IsEmpty() {
			moves.Push(types.MakeCastlingMove(kingSq, g))
		}
	}
	if rights.Has(types.Queenside) {
		d := types.MakeCoord(row, 3)
		c := types.MakeCoord(row, 2)
		bSq := types.MakeCoord(row, 1)
		if b.Square(d).IsEmpty() && b.Square(c).IsEmpty() && b.Square(bSq).IsEmpty() {
			moves.Push(types.MakeCastlingMove(kingSq, c))
		}
	}
}
