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

package transpositiontable

import "github.com/wisdomgo/wisdomgo/internal/types"

// Bound records whether a stored value is exact, or only a bound
// produced by an alpha-beta cutoff.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // fail-high: true value >= stored value
	BoundUpper // fail-low: true value <= stored value
)

// EntrySize is the size in bytes of one Entry - kept small and flat
// the way the teacher's TtEntry is, so the table's entry count is a
// simple division of its memory budget.
const EntrySize = 24

// Entry is one transposition table slot.
type Entry struct {
	key   uint64
	move  types.Move
	value int32
	depth int8
	bound Bound
}

func (e *Entry) Key() uint64    { return e.key }
func (e *Entry) Move() types.Move { return e.move }
func (e *Entry) Value() int32   { return e.value }
func (e *Entry) Depth() int8    { return e.depth }
func (e *Entry) Bound() Bound   { return e.bound }
