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
	"github.com/wisdomgo/wisdomgo/internal/attacks"
	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

// GenerateLegal returns the subset of GeneratePseudoLegal(b, who) that
// does not leave who's own king in check, applying and undoing each
// pseudo-legal move in turn to test it - the same approach
// original_source/check/check.c's was_legal_move takes. Castling moves
// additionally require the king's current, transit and destination
// squares all be unattacked (spec.md's "no castling through check"
// rule), checked here without applying the move; genCastlingMoves
// itself checks only the castling rights and that the squares between
// king and rook are empty.
func GenerateLegal(b *board.Board, who types.Color) MoveList {
	pseudo := GeneratePseudoLegal(b, who)
	legal := NewMoveList()
	opp := who.Invert()

	for _, m := range pseudo {
		if m.IsCastling() {
			if attacks.IsAttacked(b, m.Src(), opp) {
				continue
			}
			step := 1
			if m.Dst().Column() < m.Src().Column() {
				step = -1
			}
			row := m.Src().Row()
			transit := types.MakeCoord(row, m.Src().Column()+step)
			if attacks.IsAttacked(b, transit, opp) || attacks.IsAttacked(b, m.Dst(), opp) {
				continue
			}
			legal.Push(m)
			continue
		}

		token := b.ApplyMove(who, m)
		inCheck := attacks.IsInCheck(b, who)
		b.UndoMove(who, m, token)
		if !inCheck {
			legal.Push(m)
		}
	}
	return legal
}

// HasLegalMove reports whether who has at least one legal move,
// without materializing the whole list - enough to tell checkmate
// and stalemate apart from an ordinary position.
func HasLegalMove(b *board.Board, who types.Color) bool {
	pseudo := GeneratePseudoLegal(b, who)
	opp := who.Invert()
	for _, m := range pseudo {
		if m.IsCastling() {
			if attacks.IsAttacked(b, m.Src(), opp) {
				continue
			}
			step := 1
			if m.Dst().Column() < m.Src().Column() {
				step = -1
			}
			row := m.Src().Row()
			transit := types.MakeCoord(row, m.Src().Column()+step)
			if attacks.IsAttacked(b, transit, opp) || attacks.IsAttacked(b, m.Dst(), opp) {
				continue
			}
			return true
		}
		token := b.ApplyMove(who, m)
		inCheck := attacks.IsInCheck(b, who)
		b.UndoMove(who, m, token)
		if !inCheck {
			return true
		}
	}
	return false
}
