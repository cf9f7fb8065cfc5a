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

// Package notation parses and formats the coordinate move notation
// collaborators (a UI, a test fixture) use to talk to the core:
// e2e4, a capture e4xd5, an en-passant ep suffix, a promotion (Q)/(R)/
// (B)/(N) suffix, and castling O-O/O-O-O. Grounded on
// original_source/check/test/parse_simple_move.cpp and
// original_source/engine/test/move_parse_test.cpp, which parse the
// same grammar (and, like here, require an explicit color to resolve
// castling since the text alone doesn't say which rank the rook sits
// on). Formatting piggybacks on types.Move.String, which already
// renders every one of these shapes.
package notation

import (
	"fmt"
	"strings"

	"github.com/wisdomgo/wisdomgo/internal/types"
)

// ParseMoveError is returned by Parse for malformed input, per spec's
// error taxonomy - a user-input error surfaced at the boundary.
type ParseMoveError struct {
	Input  string
	Reason string
}

func (e *ParseMoveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("notation: cannot parse move %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("notation: cannot parse move %q", e.Input)
}

var promotionLetters = map[byte]types.PieceType{
	'Q': types.Queen,
	'R': types.Rook,
	'B': types.Bishop,
	'N': types.Knight,
}

// Format renders m in the coordinate notation Parse accepts. Move
// already implements this directly; Format exists so callers can name
// the operation spec.md §6 names without reaching into types.
func Format(m types.Move) string {
	return m.String()
}

// Parse decodes s into a Move. color disambiguates castling notation,
// which names no squares of its own; it is ignored for every other
// shape. Returns a *ParseMoveError on any malformed input.
func Parse(s string, color types.Color) (types.Move, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return types.NoMove, &ParseMoveError{Input: s, Reason: "empty move"}
	}

	upper := strings.ToUpper(trimmed)
	switch upper {
	case "O-O", "0-0":
		return parseCastling(s, color, types.Kingside)
	case "O-O-O", "0-0-0":
		return parseCastling(s, color, types.Queenside)
	}

	rest := strings.ReplaceAll(trimmed, " ", "")

	isEnPassant := false
	if lower := strings.ToLower(rest); strings.HasSuffix(lower, "ep") {
		isEnPassant = true
		rest = rest[:len(rest)-2]
	}

	promoted := types.NoPieceType
	if strings.HasSuffix(rest, ")") {
		open := strings.LastIndexByte(rest, '(')
		if open < 0 || open+2 != len(rest)-1 {
			return types.NoMove, &ParseMoveError{Input: s, Reason: "malformed promotion suffix"}
		}
		letter := rest[open+1]
		pt, ok := promotionLetters[letter]
		if !ok {
			return types.NoMove, &ParseMoveError{Input: s, Reason: "unknown promotion piece"}
		}
		promoted = pt
		rest = rest[:open]
	}

	isCapture := false
	xIdx := strings.IndexByte(rest, 'x')
	var srcStr, dstStr string
	if xIdx >= 0 {
		isCapture = true
		srcStr, dstStr = rest[:xIdx], rest[xIdx+1:]
	} else if len(rest) == 4 {
		srcStr, dstStr = rest[:2], rest[2:]
	} else {
		return types.NoMove, &ParseMoveError{Input: s, Reason: "expected four coordinate characters"}
	}

	src, err := types.ParseCoord(srcStr)
	if err != nil {
		return types.NoMove, &ParseMoveError{Input: s, Reason: err.Error()}
	}
	dst, err := types.ParseCoord(dstStr)
	if err != nil {
		return types.NoMove, &ParseMoveError{Input: s, Reason: err.Error()}
	}

	switch {
	case isEnPassant:
		return types.MakeEnPassantMove(src, dst), nil
	case promoted != types.NoPieceType:
		return types.MakePromotingMove(src, dst, promoted, isCapture), nil
	case isCapture:
		return types.MakeCapturingMove(src, dst), nil
	default:
		return types.MakeMove(src, dst), nil
	}
}

// parseCastling builds the castling move for color on side, using the
// fixed home squares every legal castle starts from - the king's file
// and the rank are implied by color, exactly how
// original_source's move_parse resolves "o-o"/"o-o-o" once a color is
// supplied.
func parseCastling(original string, color types.Color, side types.CastlingEligibility) (types.Move, error) {
	if color != types.White && color != types.Black {
		return types.NoMove, &ParseMoveError{Input: original, Reason: "castling notation requires a color"}
	}
	row := 7
	if color == types.Black {
		row = 0
	}
	king := types.MakeCoord(row, 4)
	dstCol := 2
	if side == types.Kingside {
		dstCol = 6
	}
	return types.MakeCastlingMove(king, types.MakeCoord(row, dstCol)), nil
}
