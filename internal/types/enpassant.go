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

// EnPassantTarget names the square a pawn may capture onto en passant,
// and the color whose pawn just advanced two squares and so may be
// captured (VulnerableColor); the other color makes the capture. It is
// set after a two-square pawn push and cleared on every other move.
type EnPassantTarget struct {
	Square          Coord
	VulnerableColor Color
}

// NoEnPassantTarget is the zero value, meaning no en-passant capture is
// currently available. Square == NoCoord.
var NoEnPassantTarget = EnPassantTarget{Square: NoCoord, VulnerableColor: ColorNone}

// IsSet reports whether this target names a real square.
func (t EnPassantTarget) IsSet() bool {
	return t.Square != NoCoord
}
