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

// UndoToken is the minimum information ApplyMove needs to hand back so
// UndoMove can reverse the move exactly. It is a small stack value -
// no field here is a pointer or a slice, so applying and undoing a
// move never allocates.
type UndoToken struct {
	CapturedPiece       types.ColoredPiece
	CapturedSquare      types.Coord
	PriorCastling       [2]types.CastlingEligibility
	PriorHasCastled     [2]bool
	PriorEnPassant       types.EnPassantTarget
	PriorHalfMoveClock   uint32
	PriorFullMoveNumber  uint32
}

func pawnStartRow(c types.Color) int {
	if c == types.White {
		return 6
	}
	return 1
}

func castlingRookDestination(c types.Color, kingside bool) types.Coord {
	if kingside {
		return types.MakeCoord(castlingRow(c), 5)
	}
	return types.MakeCoord(castlingRow(c), 3)
}

// ApplyMove plays m for who and returns the token needed to reverse
// it. m must be pseudo-legal for who on this board; the generator and
// search are the only callers and are the contract enforcers spec.md
// §4.4 names - ApplyMove itself does not re-validate.
//
// The sub-update ordering below follows spec.md §4.4 exactly,
// including snapshotting a captured rook's identity in the prelude
// (step 1) before any board mutation happens - doing this snapshot
// after the capture already landed is the off-by-one the original
// design notes flag as a likely source bug, so this is deliberately
// not "the obvious order".
func (b *Board) ApplyMove(who types.Color, m types.Move) UndoToken {
	opp := who.Invert()
	src := m.Src()
	dst := m.Dst()
	fromPc := b.Square(src)

	token := UndoToken{
		CapturedSquare:      types.NoCoord,
		PriorCastling:       b.castling,
		PriorHasCastled:     b.hasCastled,
		PriorEnPassant:      b.enPassant,
		PriorHalfMoveClock:  b.halfMovesSinceProgress,
		PriorFullMoveNumber: b.fullMoveNumber,
	}

	// Step 1: snapshot the capture before mutating anything.
	switch m.Category() {
	case types.NormalCapturing:
		token.CapturedPiece = b.Square(dst)
		token.CapturedSquare = dst
	case types.EnPassant:
		capSq := types.MakeCoord(src.Row(), dst.Column())
		token.CapturedPiece = b.Square(capSq)
		token.CapturedSquare = capSq
	}
	capturedRookKingside := false
	capturedRookQueenside := false
	if m.Category() == types.NormalCapturing && token.CapturedPiece.Type() == types.Rook {
		capturedRookKingside = dst == rookHomeSquare(opp, true)
		capturedRookQueenside = dst == rookHomeSquare(opp, false)
	}

	// Steps 2-3: remove the captured piece, if any.
	switch m.Category() {
	case types.NormalCapturing:
		b.removePiece(dst)
	case types.EnPassant:
		b.removePiece(token.CapturedSquare)
	}

	// Step 4: castling rook relocation.
	if m.IsCastling() {
		kingside := m.IsCastlingKingside()
		b.movePiece(rookHomeSquare(who, kingside), castlingRookDestination(who, kingside))
		b.castling[who] = types.NoCastle
		b.hasCastled[who] = true
	}

	// Step 5: move the piece itself.
	b.movePiece(src, dst)

	// Step 6: promotion replaces the pawn that just landed on dst.
	if m.IsPromoting() {
		b.removePiece(dst)
		b.putPiece(dst, types.MakePiece(who, m.Promoted()))
	}

	// Step 7: king-square tracking.
	if fromPc.Type() == types.King {
		b.kingCoord[who] = dst
	}

	// Step 8: castling-eligibility bookkeeping.
	if fromPc.Type() == types.King {
		b.castling[who] = types.NoCastle
	}
	if fromPc.Type() == types.Rook {
		switch src {
		case rookHomeSquare(who, true):
			b.castling[who] = b.castling[who].Clear(types.Kingside)
		case rookHomeSquare(who, false):
			b.castling[who] = b.castling[who].Clear(types.Queenside)
		}
	}
	if capturedRookKingside {
		b.castling[opp] = b.castling[opp].Clear(types.Kingside)
	}
	if capturedRookQueenside {
		b.castling[opp] = b.castling[opp].Clear(types.Queenside)
	}

	// Step 9: en-passant target.
	newEnPassant := types.NoEnPassantTarget
	if fromPc.Type() == types.Pawn && src.Row() == pawnStartRow(who) {
		diff := dst.Row() - src.Row()
		if diff == 2 || diff == -2 {
			behindRow := (src.Row() + dst.Row()) / 2
			newEnPassant = types.EnPassantTarget{
				Square:          types.MakeCoord(behindRow, src.Column()),
				VulnerableColor: who,
			}
		}
	}
	oldEnPassant := token.PriorEnPassant
	b.enPassant = newEnPassant

	// Step 10: half-move clock.
	if fromPc.Type() == types.Pawn || m.IsAnyCapturing() {
		b.halfMovesSinceProgress = 0
	} else {
		b.halfMovesSinceProgress++
	}

	// Step 11: flip side to move, apply hash deltas, bump full-move number.
	oldCastlingMask := types.CastlingMask(token.PriorCastling[types.White], token.PriorCastling[types.Black])
	newCastlingMask := types.CastlingMask(b.castling[types.White], b.castling[types.Black])
	b.hash ^= b.zobrist.CastlingKeys[oldCastlingMask] ^ b.zobrist.CastlingKeys[newCastlingMask]
	if oldEnPassant.IsSet() {
		b.hash ^= b.zobrist.EnPassantFileKeys[oldEnPassant.Square.Column()]
	}
	if newEnPassant.IsSet() {
		b.hash ^= b.zobrist.EnPassantFileKeys[newEnPassant.Square.Column()]
	}
	b.hash ^= b.zobrist.SideToMoveKey
	b.sideToMove = opp
	if who == types.Black {
		b.fullMoveNumber++
	}

	return token
}

// UndoMove reverses an ApplyMove call bit-for-bit: it must be called
// with the same (who, m) and the UndoToken ApplyMove returned. Applying
// a move and then undoing it is the identity on Board (spec.md §8
// invariant 1); it is not otherwise idempotent.
func (b *Board) UndoMove(who types.Color, m types.Move, token UndoToken) {
	src := m.Src()
	dst := m.Dst()

	// Reverse step 11.
	b.hash ^= b.zobrist.SideToMoveKey
	b.sideToMove = who
	b.fullMoveNumber = token.PriorFullMoveNumber

	if b.enPassant.IsSet() {
		b.hash ^= b.zobrist.EnPassantFileKeys[b.enPassant.Square.Column()]
	}
	if token.PriorEnPassant.IsSet() {
		b.hash ^= b.zobrist.EnPassantFileKeys[token.PriorEnPassant.Square.Column()]
	}
	b.enPassant = token.PriorEnPassant

	oldMask := types.CastlingMask(b.castling[types.White], b.castling[types.Black])
	newMask := types.CastlingMask(token.PriorCastling[types.White], token.PriorCastling[types.Black])
	b.hash ^= b.zobrist.CastlingKeys[oldMask] ^ b.zobrist.CastlingKeys[newMask]
	b.castling = token.PriorCastling
	b.hasCastled = token.PriorHasCastled

	b.halfMovesSinceProgress = token.PriorHalfMoveClock

	// Reverse step 6.
	if m.IsPromoting() {
		b.removePiece(dst)
		b.putPiece(dst, types.MakePiece(who, types.Pawn))
	}

	// Reverse step 5.
	b.movePiece(dst, src)

	// Reverse step 7.
	if b.Square(src).Type() == types.King {
		b.kingCoord[who] = src
	}

	// Reverse step 4.
	if m.IsCastling() {
		kingside := m.IsCastlingKingside()
		b.movePiece(castlingRookDestination(who, kingside), rookHomeSquare(who, kingside))
	}

	// Reverse steps 2-3.
	switch m.Category() {
	case types.NormalCapturing:
		b.putPiece(dst, token.CapturedPiece)
	case types.EnPassant:
		b.putPiece(token.CapturedSquare, token.CapturedPiece)
	}
}
