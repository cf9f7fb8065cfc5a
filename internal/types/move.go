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

package types

import "fmt"

// MoveCategory distinguishes the handful of move shapes that need
// special-cased apply/undo logic.
type MoveCategory uint8

const (
	Default MoveCategory = iota
	NormalCapturing
	EnPassant
	Castling
)

// Move is a move encoded in 32 bits: 6 bits src, 6 bits dst, 3 bits
// promoted piece type, 2 bits category. It is a plain value - copying
// it is free and it never allocates, which matters since the search
// holds one on the stack per recursion level.
type Move uint32

const (
	moveSrcShift      = 0
	moveDstShift      = 6
	movePromShift     = 12
	moveCategoryShift = 15

	moveSrcMask  = 0x3F
	moveDstMask  = 0x3F
	movePromMask = 0x7
	moveCatMask  = 0x3
)

// NoMove is the zero value, never produced by the generator.
const NoMove Move = 0

// MakeMove builds a default (non-capturing, non-special) move.
func MakeMove(src, dst Coord) Move {
	return buildMove(src, dst, NoPieceType, Default)
}

// MakeCapturingMove builds a normal capturing move (not en passant).
func MakeCapturingMove(src, dst Coord) Move {
	return buildMove(src, dst, NoPieceType, NormalCapturing)
}

// MakeEnPassantMove builds an en-passant capture. dst is the square the
// capturing pawn lands on; the captured pawn sits on (src.Row, dst.Column).
func MakeEnPassantMove(src, dst Coord) Move {
	return buildMove(src, dst, NoPieceType, EnPassant)
}

// MakeCastlingMove builds a castling move; dst is the king's destination
// square (column 2 for queenside, column 6 for kingside).
func MakeCastlingMove(src, dst Coord) Move {
	return buildMove(src, dst, NoPieceType, Castling)
}

// MakePromotingMove builds a promotion, optionally also a capture.
func MakePromotingMove(src, dst Coord, promoted PieceType, isCapture bool) Move {
	cat := Default
	if isCapture {
		cat = NormalCapturing
	}
	return buildMove(src, dst, promoted, cat)
}

func buildMove(src, dst Coord, promoted PieceType, cat MoveCategory) Move {
	return Move(uint32(src&moveSrcMask)<<moveSrcShift |
		uint32(dst&moveDstMask)<<moveDstShift |
		uint32(promoted&movePromMask)<<movePromShift |
		uint32(cat&moveCatMask)<<moveCategoryShift)
}

// Src returns the origin square.
func (m Move) Src() Coord {
	return Coord((m >> moveSrcShift) & moveSrcMask)
}

// Dst returns the destination square.
func (m Move) Dst() Coord {
	return Coord((m >> moveDstShift) & moveDstMask)
}

// Promoted returns the promotion piece type, or NoPieceType if this
// move is not a promotion.
func (m Move) Promoted() PieceType {
	return PieceType((m >> movePromShift) & movePromMask)
}

// Category returns the move's special-case category.
func (m Move) Category() MoveCategory {
	return MoveCategory((m >> moveCategoryShift) & moveCatMask)
}

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool {
	return m.Category() == Castling
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Category() == EnPassant
}

// IsPromoting reports whether m promotes a pawn.
func (m Move) IsPromoting() bool {
	return m.Promoted() != NoPieceType
}

// IsAnyCapturing reports whether m removes an enemy piece, whether by
// normal capture or en passant.
func (m Move) IsAnyCapturing() bool {
	cat := m.Category()
	return cat == NormalCapturing || cat == EnPassant
}

// IsCastlingKingside reports, for a castling move, whether it castles
// kingside. The direction is inferred from the king's destination
// column: 6 is kingside, 2 is queenside.
func (m Move) IsCastlingKingside() bool {
	return m.Dst().Column() == 6
}

func (m Move) String() string {
	s := fmt.Sprintf("%s%s", m.Src(), m.Dst())
	switch m.Category() {
	case NormalCapturing:
		s = fmt.Sprintf("%sx%s", m.Src(), m.Dst())
	case EnPassant:
		s += " ep"
	case Castling:
		if m.IsCastlingKingside() {
			return "O-O"
		}
		return "O-O-O"
	}
	if m.IsPromoting() {
		s += fmt.Sprintf("(%s)", m.Promoted())
	}
	return s
}
