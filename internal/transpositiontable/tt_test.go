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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisdomgo/wisdomgo/internal/evaluator"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

func TestTable_StoreAndProbe(t *testing.T) {
	tt := New(1)
	m := types.MakeMove(12, 28)
	tt.Store(0xdeadbeef, m, 4, 150, BoundExact, 0)

	entry, ok := tt.Probe(0xdeadbeef, 0)
	assert.True(t, ok)
	assert.Equal(t, int32(150), entry.Value())
	assert.Equal(t, m, entry.Move())
}

func TestTable_MissOnDifferentKey(t *testing.T) {
	tt := New(1)
	tt.Store(1, types.NoMove, 4, 0, BoundExact, 0)
	_, ok := tt.Probe(2, 0)
	assert.False(t, ok)
}

func TestTable_DeeperSearchReplacesShallower(t *testing.T) {
	tt := New(1)
	tt.Store(5, types.NoMove, 2, 10, BoundExact, 0)
	tt.Store(5, types.NoMove, 8, 20, BoundExact, 0)
	entry, ok := tt.Probe(5, 0)
	assert.True(t, ok)
	assert.Equal(t, int32(20), entry.Value())
	assert.Equal(t, int8(8), entry.Depth())
}

func TestTable_MateScoreNormalization(t *testing.T) {
	tt := New(1)
	// A mate 6 plies from the search root, seen at a node 3 plies deep,
	// is 3 plies from that node: it is stored relative to that node's
	// own position, so a probe at ply 0 (that node as the new root)
	// reads it back as a mate 3 plies away.
	foundAtPly := 3
	scoreAtDiscovery := int32(evaluator.CheckmateScore - 6)
	tt.Store(77, types.NoMove, 10, scoreAtDiscovery, BoundExact, foundAtPly)

	entry, ok := tt.Probe(77, 0)
	assert.True(t, ok)
	assert.Equal(t, scoreAtDiscovery+int32(foundAtPly), entry.Value())
}

func TestTable_GetBestMove(t *testing.T) {
	tt := New(1)
	m := types.MakeMove(1, 2)
	tt.Store(9, m, 1, 0, BoundExact, 0)
	assert.Equal(t, m, tt.GetBestMove(9))
	assert.Equal(t, types.NoMove, tt.GetBestMove(10))
}

func TestTable_ZeroSizeNeverStores(t *testing.T) {
	tt := New(0)
	tt.Store(1, types.NoMove, 5, 100, BoundExact, 0)
	_, ok := tt.Probe(1, 0)
	assert.False(t, ok)
}
