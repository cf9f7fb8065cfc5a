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

package game

import "time"

// Difficulty is a collaborator-facing knob - a UI picks one of these,
// never a raw depth/timeout pair. Named after, and playing the role
// of, the original engine's Difficulty input to its play loop.
type Difficulty int

const (
	Beginner Difficulty = iota
	Easy
	Medium
	Hard
	Expert
)

// DifficultyToLimits maps d to the maxDepth/maxTime pair
// Game.SetMaxDepth/SetSearchTimeout expect. It is a pure function -
// Search itself never consults Difficulty.
func DifficultyToLimits(d Difficulty) (maxDepth int, maxTime time.Duration) {
	switch d {
	case Beginner:
		return 2, 1 * time.Second
	case Easy:
		return 4, 2 * time.Second
	case Medium:
		return 6, 5 * time.Second
	case Hard:
		return 10, 10 * time.Second
	case Expert:
		return 16, 30 * time.Second
	default:
		return 6, 5 * time.Second
	}
}
