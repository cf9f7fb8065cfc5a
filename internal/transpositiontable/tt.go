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

// Package transpositiontable implements a fixed-capacity, direct-mapped
// cache of previously searched positions. It is not safe for
// concurrent use - callers that resize or clear it must not do so
// while a search is using it, the same contract the teacher's
// TtTable documents. Grounded on internal/transpositiontable/tt.go
// (Resize-to-a-memory-budget, always-replace-on-deeper-depth,
// direct-mapped addressing via a power-of-2 mask) and ttentry.go
// (compact flat entry struct), adapted from UCI's alpha/beta/exact
// ValueType to spec.md's Bound naming and from FrankyGo's Move-encoded
// age tracking to plain always-replace-on-greater-or-equal-depth.
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wisdomgo/wisdomgo/internal/evaluator"
	myLogging "github.com/wisdomgo/wisdomgo/internal/logging"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB caps how large a table Resize will honor.
const MaxSizeInMB = 16_384

const mb = 1024 * 1024

// Table is the transposition table.
type Table struct {
	log         *logging.Logger
	data        []Entry
	hashMask    uint64
	maxEntries  uint64
	usedEntries uint64
}

// New creates a Table sized to fit within sizeInMB of memory.
func New(sizeInMB int) *Table {
	t := &Table{log: myLogging.GetLog("transpositiontable")}
	t.Resize(sizeInMB)
	return t
}

// Resize clears the table and resizes it to the nearest power-of-two
// entry count fitting within sizeInMB.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	sizeInBytes := uint64(sizeInMB) * mb
	if sizeInBytes < EntrySize {
		t.maxEntries = 0
	} else {
		t.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInBytes/EntrySize))))
	}
	t.hashMask = t.maxEntries - 1
	t.data = make([]Entry, t.maxEntries)
	t.usedEntries = 0
}

// Clear empties the table without resizing it.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxEntries)
	t.usedEntries = 0
}

func (t *Table) index(key uint64) uint64 {
	return key & t.hashMask
}

// Probe looks up key, normalizing any stored mate score from
// distance-from-the-stored-position back to distance-from-root using
// ply (the number of plies the current search is from its own root).
// Returns ok=false on a miss or an empty table.
func (t *Table) Probe(key uint64, ply int) (entry Entry, ok bool) {
	if t.maxEntries == 0 {
		return Entry{}, false
	}
	e := &t.data[t.index(key)]
	if e.key != key || e.bound == BoundNone {
		return Entry{}, false
	}
	result := *e
	result.value = fromStoredScore(result.value, ply)
	return result, true
}

// Store records a search result for key if the slot is empty or the
// new search is at least as deep as the one stored there, whether the
// slot holds this position or a different one; a deeper entry is kept.
// Same-depth updates are allowed since a later visit cannot be worse
// information than an earlier one at equal depth.
// value is normalized from distance-from-root to distance-from-the-
// stored-position before being written, the mirror of Probe's
// adjustment - this is what lets a mate score found 10 plies down
// compare correctly against one found 3 plies down in a later search.
func (t *Table) Store(key uint64, move types.Move, depth int8, value int32, bound Bound, ply int) {
	if t.maxEntries == 0 {
		return
	}
	idx := t.index(key)
	e := &t.data[idx]
	stored := toStoredScore(value, ply)

	if e.bound == BoundNone {
		t.usedEntries++
		*e = Entry{key: key, move: move, value: stored, depth: depth, bound: bound}
		return
	}
	if e.key != key {
		if depth >= e.depth {
			*e = Entry{key: key, move: move, value: stored, depth: depth, bound: bound}
		}
		return
	}
	// Same position: keep the existing move if the new store has none.
	if move == types.NoMove {
		move = e.move
	}
	if depth >= e.depth {
		*e = Entry{key: key, move: move, value: stored, depth: depth, bound: bound}
	}
}

// GetBestMove returns the move stored for key, or NoMove on a miss.
func (t *Table) GetBestMove(key uint64) types.Move {
	if t.maxEntries == 0 {
		return types.NoMove
	}
	e := &t.data[t.index(key)]
	if e.key != key {
		return types.NoMove
	}
	return e.move
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.usedEntries
}

func (t *Table) String() string {
	return out.Sprintf("TT: %d entries used of %d capacity", t.usedEntries, t.maxEntries)
}

// isMateScore reports whether a score is a checkmate score, possibly
// adjusted by some distance-from-somewhere offset. Any score close
// enough to CheckmateScore that it could not be a material evaluation
// qualifies - the same heuristic threshold the teacher's search module
// uses to decide a value needs the ply adjustment at all.
func isMateScore(v int32) bool {
	return v > evaluator.CheckmateScore-1000 || v < -evaluator.CheckmateScore+1000
}

// toStoredScore converts a root-relative mate score to one relative
// to the position being stored, by removing the current search's ply
// offset.
func toStoredScore(v int32, ply int) int32 {
	if !isMateScore(v) {
		return v
	}
	if v > 0 {
		return v + int32(ply)
	}
	return v - int32(ply)
}

// fromStoredScore is the inverse of toStoredScore, reintroducing the
// ply offset of the search that is now probing the entry.
func fromStoredScore(v int32, ply int) int32 {
	if !isMateScore(v) {
		return v
	}
	if v > 0 {
		return v - int32(ply)
	}
	return v + int32(ply)
}
