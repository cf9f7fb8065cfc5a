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

// GameStatus is the outcome Game.Status reports.
type GameStatus int

const (
	Playing GameStatus = iota
	Checkmate
	Stalemate
	ThreefoldReached
	ThreefoldAccepted
	FivefoldDraw
	FiftyMovesReached
	FiftyMovesAccepted
	SeventyFiveMovesDraw
	InsufficientMaterialDraw
)

var gameStatusNames = [...]string{
	Playing:                  "Playing",
	Checkmate:                "Checkmate",
	Stalemate:                "Stalemate",
	ThreefoldReached:         "ThreefoldReached",
	ThreefoldAccepted:        "ThreefoldAccepted",
	FivefoldDraw:             "FivefoldDraw",
	FiftyMovesReached:        "FiftyMovesReached",
	FiftyMovesAccepted:       "FiftyMovesAccepted",
	SeventyFiveMovesDraw:     "SeventyFiveMovesDraw",
	InsufficientMaterialDraw: "InsufficientMaterialDraw",
}

func (s GameStatus) String() string {
	if int(s) < 0 || int(s) >= len(gameStatusNames) {
		return "Unknown"
	}
	return gameStatusNames[s]
}
