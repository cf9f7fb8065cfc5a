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

import "fmt"

// BuilderError is returned by Builder.Build when the placed pieces do
// not describe a valid board (e.g. two kings of the same color, or a
// color with no king at all). NewFromFen reports a missing king as a
// FenError instead, and does not reject a second king of one color.
type BuilderError struct {
	Reason string
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("board: invalid board construction: %s", e.Reason)
}

// FenError is returned by NewFromFen for malformed FEN input.
type FenError struct {
	Fen    string
	Reason string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("board: invalid FEN %q: %s", e.Fen, e.Reason)
}
