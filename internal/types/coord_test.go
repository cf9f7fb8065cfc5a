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

func TestCoord_A1H8Convention(t *testing.T) {
	a1, err := ParseCoord("a1")
	assert.NoError(t, err)
	assert.Equal(t, 7, a1.Row())
	assert.Equal(t, 0, a1.Column())

	h8, err := ParseCoord("h8")
	assert.NoError(t, err)
	assert.Equal(t, 0, h8.Row())
	assert.Equal(t, 7, h8.Column())
}

func TestCoord_RoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "d5"} {
		c, err := ParseCoord(s)
		assert.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
}

func TestParseCoord_Invalid(t *testing.T) {
	for _, s := range []string{"", "z9", "a9", "i1", "aa"} {
		_, err := ParseCoord(s)
		assert.Error(t, err)
	}
}

func TestCoord_RankFile(t *testing.T) {
	e4, _ := ParseCoord("e4")
	assert.Equal(t, 4, e4.Rank())
	assert.Equal(t, byte('e'), e4.File())
}
