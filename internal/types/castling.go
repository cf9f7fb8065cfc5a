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

// CastlingEligibility is a 2-bit set of which sides a single color may
// still castle to. A bit is cleared permanently the moment its rook or
// king moves, its rook is captured on its home square, or that side
// castles - it is never set again outside of UndoMove.
type CastlingEligibility uint8

const (
	Kingside  CastlingEligibility = 1 << 0
	Queenside CastlingEligibility = 1 << 1
	NoCastle  CastlingEligibility = 0
	BothSides CastlingEligibility = Kingside | Queenside
)

// Has reports whether side is still set in e.
func (e CastlingEligibility) Has(side CastlingEligibility) bool {
	return e&side != 0
}

// Clear returns e with side removed.
func (e CastlingEligibility) Clear(side CastlingEligibility) CastlingEligibility {
	return e &^ side
}

func (e CastlingEligibility) String() string {
	s := ""
	if e.Has(Kingside) {
		s += "K"
	}
	if e.Has(Queenside) {
		s += "Q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// CastlingMask packs White's and Black's eligibility into the 4-bit
// mask (0..15) the Zobrist table and FEN castling field key off of:
// bits 0-1 are White Kingside/Queenside, bits 2-3 are Black's.
func CastlingMask(white, black CastlingEligibility) uint8 {
	return uint8(white) | uint8(black)<<2
}
