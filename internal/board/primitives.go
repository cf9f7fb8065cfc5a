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

import (
	"github.com/wisdomgo/wisdomgo/internal/types"
	"github.com/wisdomgo/wisdomgo/internal/zobrist"
)

// putPiece places p on sq, which must currently be empty, updating
// material, positional score and hash. It does not touch king_coord -
// callers that place a king must do that themselves.
func (b *Board) putPiece(sq types.Coord, p types.ColoredPiece) {
	b.squares[sq] = p
	c := p.Color()
	b.material[c] += p.Value()
	b.positionScore[c] += pieceSquareValue(c, p.Type(), sq)
	b.hash ^= b.zobrist.PieceKey(sq, p)
}

// removePiece takes whatever piece is on sq off the board and returns
// it (NoPiece if sq was already empty).
func (b *Board) removePiece(sq types.Coord) types.ColoredPiece {
	p := b.squares[sq]
	if p.IsEmpty() {
		return p
	}
	b.squares[sq] = types.NoPiece
	c := p.Color()
	b.material[c] -= p.Value()
	b.positionScore[c] -= pieceSquareValue(c, p.Type(), sq)
	b.hash ^= b.zobrist.PieceKey(sq, p)
	return p
}

// movePiece relocates whatever sits on src to dst. dst must be empty.
func (b *Board) movePiece(src, dst types.Coord) {
	p := b.removePiece(src)
	b.putPiece(dst, p)
}

// newEmpty returns a Board with no pieces placed and default derived
// state (White to move, no castling rights, no en-passant target).
// Callers (FEN parsing, BoardBuilder) place pieces with putPiece, then
// call finishConstruction to fix up king_coord and the hash.
func newEmpty() *Board {
	b := &Board{
		zobrist:    zobrist.Default,
		sideToMove: types.White,
	}
	for i := range b.kingCoord {
		b.kingCoord[i] = types.NoCoord
	}
	b.enPassant = types.NoEnPassantTarget
	return b
}

// finishConstruction locates both kings and recomputes the hash from
// scratch. Called once, right after the squares/castling/enPassant/
// sideToMove fields are filled in by a loader.
func (b *Board) finishConstruction() error {
	for sq := types.Coord(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.Type() == types.King {
			b.kingCoord[p.Color()] = sq
		}
	}
	if b.kingCoord[types.White] == types.NoCoord || b.kingCoord[types.Black] == types.NoCoord {
		return &BuilderError{Reason: "both colors must have exactly one king"}
	}
	b.hash = b.recomputeHash()
	return nil
}
