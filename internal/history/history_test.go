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

// The end-to-end threefold-repetition and fifty-move-rule scenarios
// played over a real Board and Game - rather than the synthetic hashes
// this file feeds History directly - live in
// internal/game/game_test.go, where Game.Status can be asserted
// alongside History's own counters.
package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_NoRepetitionInitially(t *testing.T) {
	h := New()
	h.Record(42, false)
	assert.False(t, h.IsNthRepetition(42, 2))
}

func TestHistory_ThirdOccurrenceIsThreefold(t *testing.T) {
	h := New()
	h.Record(1, false)
	h.Record(2, false)
	h.Record(1, false)
	h.Record(2, false)
	h.Record(1, false)
	assert.True(t, h.IsNthRepetition(1, 3))
	assert.False(t, h.IsNthRepetition(1, 4))
}

func TestHistory_ProgressResetsRepetitionWindow(t *testing.T) {
	h := New()
	h.Record(1, false)
	h.Record(1, false)
	h.Record(1, true) // a capture or pawn move lands on the same hash
	assert.False(t, h.IsNthRepetition(1, 2))
}

func TestHistory_HalfMovesWithoutProgress(t *testing.T) {
	h := New()
	h.Record(1, true)
	h.Record(2, false)
	h.Record(3, false)
	h.Record(4, false)
	assert.Equal(t, 3, h.HalfMovesWithoutProgress())
}

func TestHistory_FivefoldRepetition(t *testing.T) {
	h := New()
	for i := 0; i < 5; i++ {
		h.Record(99, false)
	}
	assert.True(t, h.IsNthRepetition(99, 5))
}
