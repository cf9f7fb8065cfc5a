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

package movegen

import (
	"fmt"
	"strings"

	"github.com/wisdomgo/wisdomgo/internal/types"
)

// startingCapacity covers the overwhelming majority of chess positions
// (the true worst case is a little over 200) without forcing a
// reallocation on the hot path.
const startingCapacity = 48

// MoveList is a small-buffer-optimized slice of Move - the generator
// builds one of these per ply and the search sorts it in place.
// Grounded on the teacher's internal/moveslice.MoveSlice, trimmed down
// to the operations the generator and search actually use.
type MoveList []types.Move

// NewMoveList returns an empty MoveList with room for a typical
// position's worth of moves.
func NewMoveList() MoveList {
	return make(MoveList, 0, startingCapacity)
}

// Push appends m to the list.
func (ml *MoveList) Push(m types.Move) {
	*ml = append(*ml, m)
}

// Len returns the number of moves currently stored.
func (ml MoveList) Len() int {
	return len(ml)
}

// Sort orders the list by a caller-supplied score, highest first. It
// is a stable insertion sort: move lists are short (rarely more than
// 40 entries) so this beats the overhead of sort.Slice in practice,
// exactly the tradeoff the teacher's MoveSlice.Sort documents.
func (ml MoveList) Sort(score func(types.Move) int32) {
	for i := 1; i < len(ml); i++ {
		tmp := ml[i]
		tmpScore := score(tmp)
		j := i
		for j > 0 && score(ml[j-1]) < tmpScore {
			ml[j] = ml[j-1]
			j--
		}
		ml[j] = tmp
	}
}

func (ml MoveList) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList[%d]{", len(ml)))
	for i, m := range ml {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString("}")
	return sb.String()
}
