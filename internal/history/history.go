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

// Package history provides the append-only record of positions played
// in a game, used to answer the threefold/fivefold repetition and
// fifty/seventy-five move questions a Game needs after every move.
package history

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Entry is one played ply: the position's Zobrist hash and whether
// that ply reset the progress clock (a pawn move or a capture).
type Entry struct {
	Hash       uint64
	WasProgress bool
}

// History is the append-only sequence of positions played so far in a
// game. It never removes entries - Unmake in a search tree is handled
// by the caller simply not recording speculative plies, since Record
// is called by Game.Move, never by the search.
type History struct {
	entries []Entry
}

// New returns an empty History.
func New() *History {
	return &History{entries: make([]Entry, 0, 64)}
}

// Record appends a played ply's hash. wasProgress is true for a pawn
// move or a capture, which resets both the fifty-move clock and the
// repetition count (earlier hashes can never recur once the position
// that produced them is unreachable).
func (h *History) Record(hash uint64, wasProgress bool) {
	h.entries = append(h.entries, Entry{Hash: hash, WasProgress: wasProgress})
}

// Len returns the number of recorded plies.
func (h *History) Len() int {
	return len(h.entries)
}

// IsNthRepetition reports whether hash has now occurred at least n
// times since the most recent progress-resetting ply (inclusive of
// the just-recorded occurrence).
func (h *History) IsNthRepetition(hash uint64, n int) bool {
	return h.occurrences(hash) >= n
}

func (h *History) occurrences(hash uint64) int {
	count := 0
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := h.entries[i]
		if e.Hash == hash {
			count++
		}
		if e.WasProgress {
			break
		}
	}
	return count
}

// HalfMovesWithoutProgress returns the number of plies played since
// the most recent pawn move or capture - the fifty/seventy-five move
// counter's raw input.
func (h *History) HalfMovesWithoutProgress() int {
	count := 0
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].WasProgress {
			break
		}
		count++
	}
	return count
}

func (h *History) String() string {
	return out.Sprintf("History{plies=%d}", len(h.entries))
}
