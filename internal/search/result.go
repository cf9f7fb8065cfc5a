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

package search

import (
	"time"

	"github.com/wisdomgo/wisdomgo/internal/movegen"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

// Result is what FindBestMove returns: the best move found by the
// last iteration that ran to completion, never a partial iteration.
// Grounded on the teacher's search.Result, trimmed to the fields
// spec.md's SearchResult names.
type Result struct {
	BestMove Move
	Score    int32
	PV       movegen.MoveList
	Depth    int
	Nodes    uint64
	TimedOut bool
}

// Move is an alias kept local to this package purely so Result's
// field doc reads naturally; it is always a types.Move.
type Move = types.Move

// Progress is reported to a caller-supplied periodic function during
// iterative deepening, once per completed depth - the resolution of
// spec.md §6's unspecified setPeriodicFunction signature, named in
// SPEC_FULL.md §3.
type Progress struct {
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
	BestMove Move
	Score    int32
}
