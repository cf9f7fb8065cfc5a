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

import "strings"

// PieceType is a piece kind without color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PieceTypeLength
)

var pieceTypeLetters = " KQRBNP"

func (pt PieceType) String() string {
	if int(pt) >= len(pieceTypeLetters) {
		return "?"
	}
	return string(pieceTypeLetters[pt])
}

// pieceValue is the material value of a single piece of this type.
// The king's value is a convention used by the evaluator's material
// sum; a king is never actually captured (see MoveExec §4.4).
var pieceValue = [PieceTypeLength]int32{
	NoPieceType: 0,
	King:        1500,
	Queen:       1000,
	Rook:        500,
	Bishop:      320,
	Knight:      320,
	Pawn:        100,
}

// Value returns the material value of pt.
func (pt PieceType) Value() int32 {
	return pieceValue[pt]
}

// ColoredPiece packs a Color and a PieceType into a single byte, the
// way a board square is actually stored. The empty square is
// ColoredPiece(0) == NoPiece, whose Type is NoPieceType; its color bits
// are zero, so Color on it returns White, not ColorNone.
type ColoredPiece uint8

const (
	colorShift = 3
	typeMask   = 0b0111
)

// NoPiece is the value of an empty board square.
const NoPiece ColoredPiece = 0

// MakePiece packs a color and piece type into a ColoredPiece.
func MakePiece(c Color, pt PieceType) ColoredPiece {
	if pt == NoPieceType {
		return NoPiece
	}
	return ColoredPiece(int(c)<<colorShift | int(pt))
}

// Color returns the color of the piece. Undefined for NoPiece.
func (p ColoredPiece) Color() Color {
	return Color(p >> colorShift)
}

// Type returns the piece kind, or NoPieceType for an empty square.
func (p ColoredPiece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p & typeMask)
}

// IsEmpty reports whether the square this piece occupies is empty.
func (p ColoredPiece) IsEmpty() bool {
	return p == NoPiece
}

// Value returns the material value of the piece (0 for an empty square).
func (p ColoredPiece) Value() int32 {
	return p.Type().Value()
}

func (p ColoredPiece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.Type().String()
	if p.Color() == Black {
		return strings.ToLower(s)
	}
	return s
}

// PieceFromChar decodes a single FEN-style piece letter ("P","n","Q",...)
// into a ColoredPiece. Returns NoPiece, false if s is not a valid
// single-letter piece code.
func PieceFromChar(s string) (ColoredPiece, bool) {
	if len(s) != 1 {
		return NoPiece, false
	}
	upper := strings.ToUpper(s)
	idx := strings.IndexByte(pieceTypeLetters, upper[0])
	if idx <= 0 {
		return NoPiece, false
	}
	c := White
	if s != upper {
		c = Black
	}
	return MakePiece(c, PieceType(idx)), true
}
