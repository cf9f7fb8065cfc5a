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

// Coord is a 0..63 index into the board array. Row 0 is rank 8, row 7
// is rank 1; column 0 is file a, column 7 is file h. So A1 == (7,0)
// and H8 == (0,7). This mirrors the row-major array the Board stores
// its squares in - index = row*8 + column.
type Coord uint8

// NoCoord is a sentinel for "no square", used by EnPassantTarget/UndoToken
// fields that may be absent.
const NoCoord Coord = 64

// MakeCoord builds a Coord from a row/column pair. Both must be in 0..7.
func MakeCoord(row, col int) Coord {
	return Coord(row*8 + col)
}

// Row returns 0..7, where 0 is rank 8 and 7 is rank 1.
func (c Coord) Row() int {
	return int(c) / 8
}

// Column returns 0..7, where 0 is file a and 7 is file h.
func (c Coord) Column() int {
	return int(c) % 8
}

// Rank returns the human rank number, 1..8.
func (c Coord) Rank() int {
	return 8 - c.Row()
}

// File returns the file letter, 'a'..'h'.
func (c Coord) File() byte {
	return byte('a' + c.Column())
}

// IsValid reports whether c is an on-board square.
func (c Coord) IsValid() bool {
	return c < 64
}

// CoordParseError is returned by ParseCoord for malformed input.
type CoordParseError struct {
	Input string
}

func (e *CoordParseError) Error() string {
	return fmt.Sprintf("types: invalid coordinate %q", e.Input)
}

// ParseCoord parses algebraic coordinates like "e4" into a Coord.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, &CoordParseError{Input: s}
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoCoord, &CoordParseError{Input: s}
	}
	col := int(file - 'a')
	row := 7 - int(rank-'1')
	return MakeCoord(row, col), nil
}

func (c Coord) String() string {
	if !c.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", c.File(), byte('0'+c.Rank()))
}

// addRowCol returns c shifted by (dr, dc) and whether the result stayed
// on the board. Used by ray-walking and jump-table generation.
func (c Coord) addRowCol(dr, dc int) (Coord, bool) {
	r := c.Row() + dr
	col := c.Column() + dc
	if r < 0 || r > 7 || col < 0 || col > 7 {
		return NoCoord, false
	}
	return MakeCoord(r, col), true
}
