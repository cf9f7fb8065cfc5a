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

package board

import "github.com/wisdomgo/wisdomgo/internal/types"

// Builder is a fluent, allocation-light way to construct an arbitrary
// position without going through FEN - used by tests that want to set
// up unusual configurations (e.g. scenario S3's bare-king-and-rook
// endings) and by Game.createFromBoard. Grounded on the original
// source's check/test/board_builder.cpp, which the original's own test
// suite uses for exactly the same purpose.
type Builder struct {
	squares    [64]types.ColoredPiece
	sideToMove types.Color
	castling   [2]types.CastlingEligibility
	enPassant  types.EnPassantTarget
	halfMoves  uint32
	fullMoves  uint32
}

// NewBuilder starts from a completely empty board, White to move, no
// castling rights, no en-passant target, move counters at their
// initial values.
func NewBuilder() *Builder {
	return &Builder{
		sideToMove: types.White,
		enPassant:  types.NoEnPassantTarget,
		fullMoves:  1,
	}
}

// Place puts p on sq, overwriting whatever was there.
func (bb *Builder) Place(sq types.Coord, p types.ColoredPiece) *Builder {
	bb.squares[sq] = p
	return bb
}

// SideToMove sets which color moves next.
func (bb *Builder) SideToMove(c types.Color) *Builder {
	bb.sideToMove = c
	return bb
}

// Castling sets the castling eligibility for color c.
func (bb *Builder) Castling(c types.Color, e types.CastlingEligibility) *Builder {
	bb.castling[c] = e
	return bb
}

// EnPassant sets the en-passant target.
func (bb *Builder) EnPassant(t types.EnPassantTarget) *Builder {
	bb.enPassant = t
	return bb
}

// HalfMoveClock sets the half-moves-since-progress counter.
func (bb *Builder) HalfMoveClock(n uint32) *Builder {
	bb.halfMoves = n
	return bb
}

// FullMoveNumber sets the full-move counter.
func (bb *Builder) FullMoveNumber(n uint32) *Builder {
	bb.fullMoves = n
	return bb
}

// Build finishes construction, computing material, positional score,
// king squares and the Zobrist hash. Returns a BuilderError if the
// placed pieces do not describe a valid board (e.g. not exactly one
// king per color).
func (bb *Builder) Build() (*Board, error) {
	b := newEmpty()
	for sq := types.Coord(0); sq < 64; sq++ {
		if p := bb.squares[sq]; !p.IsEmpty() {
			b.putPiece(sq, p)
		}
	}
	b.sideToMove = bb.sideToMove
	b.castling = bb.castling
	b.enPassant = bb.enPassant
	b.halfMovesSinceProgress = bb.halfMoves
	b.fullMoveNumber = bb.fullMoves

	if err := kingCountValid(&bb.squares); err != nil {
		return nil, err
	}
	if err := b.finishConstruction(); err != nil {
		return nil, err
	}
	return b, nil
}

func kingCountValid(squares *[64]types.ColoredPiece) error {
	var kings [2]int
	for _, p := range squares {
		if p.Type() == types.King {
			kings[p.Color()]++
		}
	}
	if kings[types.White] != 1 {
		return &BuilderError{Reason: "White must have exactly one king"}
	}
	if kings[types.Black] != 1 {
		return &BuilderError{Reason: "Black must have exactly one king"}
	}
	return nil
}
