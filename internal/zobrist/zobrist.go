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

// Package zobrist holds the process-wide, immutable table of random
// 64-bit keys the Board XORs together to maintain its hash
// incrementally. The table is built once, from a fixed seed, so that
// hashes are reproducible across processes and test runs.
package zobrist

import "github.com/wisdomgo/wisdomgo/internal/types"

// defaultSeed must never be 0 - see newXorshiftRandom.
const defaultSeed uint64 = 5489

// Table is the full set of Zobrist keys. It has no mutable state
// after New returns it; every field is safe to share across
// goroutines for reading.
type Table struct {
	// PieceKeys[square][coloredPiece] - indexed directly by the packed
	// ColoredPiece byte (0..15), which wastes a couple of unused slots
	// but avoids a remapping step on the hot path.
	PieceKeys [64][16]uint64

	SideToMoveKey uint64

	// CastlingKeys is indexed by the 4-bit combined castling mask
	// produced by types.CastlingMask.
	CastlingKeys [16]uint64

	// EnPassantFileKeys is indexed by file, 0 ('a') .. 7 ('h').
	EnPassantFileKeys [8]uint64
}

// xorshiftRandom is the xorshift64star generator: public-domain code
// by Sebastiano Vigna (2014), the same generator Stockfish-derived
// engines use to seed their Zobrist tables. Outputs 64-bit numbers,
// period 2^64-1, no warm-up needed.
type xorshiftRandom struct {
	s uint64
}

func newXorshiftRandom(seed uint64) *xorshiftRandom {
	if seed == 0 {
		panic("zobrist: seed must not be zero")
	}
	return &xorshiftRandom{s: seed}
}

func (r *xorshiftRandom) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// New builds a Table from the given seed. The same seed always
// produces the same table, which is what makes persisted/expected
// hashes in tests reproducible.
func New(seed uint64) *Table {
	r := newXorshiftRandom(seed)
	t := &Table{}
	for sq := 0; sq < 64; sq++ {
		for cp := 1; cp < 16; cp++ {
			t.PieceKeys[sq][cp] = r.next()
		}
	}
	t.SideToMoveKey = r.next()
	for i := range t.CastlingKeys {
		t.CastlingKeys[i] = r.next()
	}
	for i := range t.EnPassantFileKeys {
		t.EnPassantFileKeys[i] = r.next()
	}
	return t
}

// Default is the process-wide table every Board shares, built once at
// package init from the fixed default seed.
var Default = New(defaultSeed)

// PieceKey returns the XOR key for a colored piece standing on sq.
func (t *Table) PieceKey(sq types.Coord, p types.ColoredPiece) uint64 {
	return t.PieceKeys[sq][p]
}
