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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wisdomgo/wisdomgo/internal/types"
)

// NewFromFen builds a Board from a standard 6-field FEN string: piece
// placement, active color, castling availability, en-passant target,
// half-move clock, full-move number. This is the loader collaborator
// boundary named in spec.md §6 - the core consumes FEN, it does not
// produce a FEN writer for a UI (String/StringFen below exist for
// debugging and tests, not as a supported save format).
func NewFromFen(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &FenError{Fen: fen, Reason: "expected at least 4 space-separated fields"}
	}

	b := newEmpty()

	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, &FenError{Fen: fen, Reason: err.Error()}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = types.White
	case "b":
		b.sideToMove = types.Black
	default:
		return nil, &FenError{Fen: fen, Reason: "active color must be 'w' or 'b'"}
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, &FenError{Fen: fen, Reason: err.Error()}
	}
	b.castling = castling

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, &FenError{Fen: fen, Reason: err.Error()}
	}
	b.enPassant = ep

	b.halfMovesSinceProgress = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &FenError{Fen: fen, Reason: "half-move clock must be a non-negative integer"}
		}
		b.halfMovesSinceProgress = uint32(n)
	}

	b.fullMoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &FenError{Fen: fen, Reason: "full-move number must be a positive integer"}
		}
		b.fullMoveNumber = uint32(n)
	}

	if err := b.finishConstruction(); err != nil {
		return nil, &FenError{Fen: fen, Reason: err.Error()}
	}
	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("piece placement must have 8 ranks, got %d", len(ranks))
	}
	for row, rank := range ranks {
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := types.PieceFromChar(string(ch))
			if !ok {
				return fmt.Errorf("invalid piece character %q", ch)
			}
			if col >= 8 {
				return fmt.Errorf("rank %d has too many squares", row+1)
			}
			b.putPiece(types.MakeCoord(row, col), p)
			col++
		}
		if col != 8 {
			return fmt.Errorf("rank %d does not sum to 8 columns", row+1)
		}
	}
	return nil
}

func parseCastling(s string) ([2]types.CastlingEligibility, error) {
	var c [2]types.CastlingEligibility
	if s == "-" {
		return c, nil
	}
	for _, ch := range s {
		switch ch {
		case 'K':
			c[types.White] |= types.Kingside
		case 'Q':
			c[types.White] |= types.Queenside
		case 'k':
			c[types.Black] |= types.Kingside
		case 'q':
			c[types.Black] |= types.Queenside
		default:
			return c, fmt.Errorf("invalid castling character %q", ch)
		}
	}
	return c, nil
}

func parseEnPassant(s string) (types.EnPassantTarget, error) {
	if s == "-" {
		return types.NoEnPassantTarget, nil
	}
	sq, err := types.ParseCoord(s)
	if err != nil {
		return types.NoEnPassantTarget, fmt.Errorf("invalid en-passant square %q", s)
	}
	// A target on row 2 (FEN rank 6) lies behind a black pawn that just
	// advanced two squares, so Black is the vulnerable color; one on
	// row 5 (rank 3) lies behind a white pawn.
	vulnerable := types.Black
	if sq.Row() == 5 {
		vulnerable = types.White
	}
	return types.EnPassantTarget{Square: sq, VulnerableColor: vulnerable}, nil
}

// StringFen renders the board back to FEN notation.
func (b *Board) StringFen() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.squares[types.MakeCoord(row, col)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')

	castling := castlingFenString(b.castling[types.White], b.castling[types.Black])
	sb.WriteString(castling)
	sb.WriteByte(' ')

	if b.enPassant.IsSet() {
		sb.WriteString(b.enPassant.Square.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.halfMovesSinceProgress)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.fullMoveNumber)))
	return sb.String()
}

func castlingFenString(white, black types.CastlingEligibility) string {
	s := ""
	if white.Has(types.Kingside) {
		s += "K"
	}
	if white.Has(types.Queenside) {
		s += "Q"
	}
	if black.Has(types.Kingside) {
		s += "k"
	}
	if black.Has(types.Queenside) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
