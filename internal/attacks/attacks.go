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

// Package attacks answers a single question - is a given square
// attacked by a given color on a given board - which the generator
// and search both need for check detection and castling legality.
// There is no cached attack table here: on an 8x8 array board a fresh
// ray walk from the target square is already cheap enough, and it
// sidesteps an entire class of cache-invalidation bugs the bitboard
// approach has to manage explicitly.
package attacks

import (
	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

type direction struct {
	dr, dc int
}

var rookDirections = [4]direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var bishopDirections = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var knightOffsets = [8]direction{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}
var kingOffsets = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func step(sq types.Coord, d direction) (types.Coord, bool) {
	row := sq.Row() + d.dr
	col := sq.Column() + d.dc
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return types.NoCoord, false
	}
	return types.MakeCoord(row, col), true
}

func walkRay(b *board.Board, from types.Coord, d direction, by types.Color, sliders ...types.PieceType) bool {
	cur, ok := step(from, d)
	for ok {
		p := b.Square(cur)
		if !p.IsEmpty() {
			if p.Color() == by {
				for _, pt := range sliders {
					if p.Type() == pt {
						return true
					}
				}
			}
			return false
		}
		cur, ok = step(cur, d)
	}
	return false
}

// IsAttacked reports whether sq is attacked by any piece of color by on
// b. Grounded on the original source's is_king_threatened, generalized
// from "is this color's king threatened" to "is this square attacked",
// which both the generator (castling-through-check) and the evaluator
// (checkmate/stalemate) need at squares other than the king's own.
func IsAttacked(b *board.Board, sq types.Coord, by types.Color) bool {
	for _, d := range rookDirections {
		if walkRay(b, sq, d, by, types.Rook, types.Queen) {
			return true
		}
	}
	for _, d := range bishopDirections {
		if walkRay(b, sq, d, by, types.Bishop, types.Queen) {
			return true
		}
	}
	for _, d := range knightOffsets {
		if cur, ok := step(sq, d); ok {
			p := b.Square(cur)
			if p.Color() == by && p.Type() == types.Knight {
				return true
			}
		}
	}
	for _, d := range kingOffsets {
		if cur, ok := step(sq, d); ok {
			p := b.Square(cur)
			if p.Color() == by && p.Type() == types.King {
				return true
			}
		}
	}
	// Pawns of color "by" attack sq from one row behind their direction
	// of advance. White advances toward row 0, so a white pawn attacking
	// sq sits one row higher (row+1); Black's sits one row lower.
	pawnRowOffset := 1
	if by == types.Black {
		pawnRowOffset = -1
	}
	for _, dc := range [2]int{-1, 1} {
		cur, ok := step(sq, direction{pawnRowOffset, dc})
		if !ok {
			continue
		}
		p := b.Square(cur)
		if p.Color() == by && p.Type() == types.Pawn {
			return true
		}
	}
	return false
}

// IsInCheck reports whether who's king is currently attacked.
func IsInCheck(b *board.Board, who types.Color) bool {
	return IsAttacked(b, b.KingCoord(who), who.Invert())
}
