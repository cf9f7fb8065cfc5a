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

// Package types holds the value types shared by every other package:
// colors, pieces, squares, moves and castling rights. None of it
// allocates and none of it depends on the board.
package types

import "fmt"

// Color identifies a side. None is a sentinel used only outside the
// search/move-generation hot path (e.g. an empty square's color).
type Color int8

const (
	White Color = iota
	Black
	ColorNone
)

// Invert returns the opposing color. Invert(White) == Black and
// Invert(Black) == White; calling it on ColorNone panics since the
// hot path never holds a ColorNone side-to-move.
func (c Color) Invert() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		panic(fmt.Sprintf("types: Invert called on invalid color %d", c))
	}
}

// Index returns the 0/1 array index for this color. Only valid for
// White and Black.
func (c Color) Index() int {
	return int(c)
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}
