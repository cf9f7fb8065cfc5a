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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_FieldsRoundTrip(t *testing.T) {
	src, _ := ParseCoord("e2")
	dst, _ := ParseCoord("e4")
	m := MakeMove(src, dst)
	assert.Equal(t, src, m.Src())
	assert.Equal(t, dst, m.Dst())
	assert.False(t, m.IsAnyCapturing())
	assert.False(t, m.IsPromoting())
	assert.False(t, m.IsCastling())
	assert.False(t, m.IsEnPassant())
}

func TestMove_Promotion(t *testing.T) {
	src, _ := ParseCoord("b7")
	dst, _ := ParseCoord("a8")
	m := MakePromotingMove(src, dst, Queen, true)
	assert.True(t, m.IsPromoting())
	assert.True(t, m.IsAnyCapturing())
	assert.Equal(t, Queen, m.Promoted())
}

func TestMove_Castling(t *testing.T) {
	src, _ := ParseCoord("e1")
	kingside, _ := ParseCoord("g1")
	queenside, _ := ParseCoord("c1")

	k := MakeCastlingMove(src, kingside)
	assert.True(t, k.IsCastling())
	assert.True(t, k.IsCastlingKingside())
	assert.Equal(t, "O-O", k.String())

	q := MakeCastlingMove(src, queenside)
	assert.True(t, q.IsCastling())
	assert.False(t, q.IsCastlingKingside())
	assert.Equal(t, "O-O-O", q.String())
}

func TestMove_EnPassant(t *testing.T) {
	src, _ := ParseCoord("e5")
	dst, _ := ParseCoord("d6")
	m := MakeEnPassantMove(src, dst)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsAnyCapturing())
}
