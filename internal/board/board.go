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

// Package board holds the Board representation and the only code path
// allowed to mutate it: ApplyMove/UndoMove. Every derived field -
// material, positional score, Zobrist hash, king squares, castling
// eligibility, en-passant target - is maintained incrementally in
// lockstep inside those two functions; nothing else ever writes to a
// Board's squares.
package board

import (
	"fmt"
	"strings"

	"github.com/wisdomgo/wisdomgo/internal/types"
	"github.com/wisdomgo/wisdomgo/internal/zobrist"
)

// StartFen is the standard initial chess position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the full mutable game position: the 8x8 array of pieces
// plus every piece of state MoveExec keeps in sync with it.
type Board struct {
	squares [64]types.ColoredPiece

	material      [2]int32
	positionScore [2]int32

	hash uint64

	kingCoord [2]types.Coord
	castling  [2]types.CastlingEligibility

	// hasCastled records whether a color has completed a castling
	// move this game. It is only ever touched by Apply/UndoMove of a
	// Castling-category move, so undoing any later, unrelated move
	// leaves it untouched - it survives undo the way spec requires.
	hasCastled [2]bool

	enPassant types.EnPassantTarget

	sideToMove types.Color

	halfMovesSinceProgress uint32
	fullMoveNumber         uint32

	zobrist *zobrist.Table
}

// NewStandard builds a Board in the standard chess starting position.
func NewStandard() *Board {
	b, err := NewFromFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("board: standard FEN failed to parse: %v", err))
	}
	return b
}

// Square returns the piece occupying sq, or NoPiece if empty.
func (b *Board) Square(sq types.Coord) types.ColoredPiece {
	return b.squares[sq]
}

// SideToMove returns the color to move next.
func (b *Board) SideToMove() types.Color {
	return b.sideToMove
}

// Material returns the side's total material value.
func (b *Board) Material(c types.Color) int32 {
	return b.material[c]
}

// PositionScore returns the side's positional (piece-square-table) score.
func (b *Board) PositionScore(c types.Color) int32 {
	return b.positionScore[c]
}

// Hash returns the current Zobrist hash.
func (b *Board) Hash() uint64 {
	return b.hash
}

// KingCoord returns the square of the given color's king.
func (b *Board) KingCoord(c types.Color) types.Coord {
	return b.kingCoord[c]
}

// Castling returns the castling eligibility bits for c.
func (b *Board) Castling(c types.Color) types.CastlingEligibility {
	return b.castling[c]
}

// HasCastled reports whether color c has completed a castling move.
func (b *Board) HasCastled(c types.Color) bool {
	return b.hasCastled[c]
}

// EnPassantTarget returns the currently available en-passant capture,
// if any.
func (b *Board) EnPassantTarget() types.EnPassantTarget {
	return b.enPassant
}

// HalfMovesSinceProgress returns the half-move clock (plies since the
// last pawn move or capture), used to drive the fifty/seventy-five
// move rules.
func (b *Board) HalfMovesSinceProgress() uint32 {
	return b.halfMovesSinceProgress
}

// FullMoveNumber returns the current full-move counter.
func (b *Board) FullMoveNumber() uint32 {
	return b.fullMoveNumber
}

// recomputeHash rebuilds the Zobrist hash from scratch. Only called
// at construction time and by tests validating invariant #2 of
// spec.md §8 (hash consistency); the hot path never calls this.
func (b *Board) recomputeHash() uint64 {
	var h uint64
	for sq := types.Coord(0); sq < 64; sq++ {
		if p := b.squares[sq]; !p.IsEmpty() {
			h ^= b.zobrist.PieceKey(sq, p)
		}
	}
	h ^= b.zobrist.CastlingKeys[types.CastlingMask(b.castling[types.White], b.castling[types.Black])]
	if b.enPassant.IsSet() {
		h ^= b.zobrist.EnPassantFileKeys[b.enPassant.Square.Column()]
	}
	if b.sideToMove == types.Black {
		h ^= b.zobrist.SideToMoveKey
	}
	return h
}

// RecomputedHash exposes recomputeHash for invariant tests outside the
// package (spec.md §8 invariant 2).
func (b *Board) RecomputedHash() uint64 {
	return b.recomputeHash()
}

// ComputedMaterial sums up material from scratch, for invariant tests
// (spec.md §8 invariant 4).
func (b *Board) ComputedMaterial(c types.Color) int32 {
	var total int32
	for sq := types.Coord(0); sq < 64; sq++ {
		p := b.squares[sq]
		if !p.IsEmpty() && p.Color() == c {
			total += p.Value()
		}
	}
	return total
}

// String renders an 8x8 ASCII board, rank 8 first, matching the
// row0==rank8 storage convention directly.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sb.WriteString(b.squares[types.MakeCoord(row, col)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func castlingRow(c types.Color) int {
	if c == types.White {
		return 7
	}
	return 0
}

func kingHomeSquare(c types.Color) types.Coord {
	return types.MakeCoord(castlingRow(c), 4)
}

func rookHomeSquare(c types.Color, kingside bool) types.Coord {
	if kingside {
		return types.MakeCoord(castlingRow(c), 7)
	}
	return types.MakeCoord(castlingRow(c), 0)
}
