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

// Package game ties board, movegen, history, evaluator and search
// together behind the single collaborator-facing type a UI talks to.
// Grounded on the wiring order of the teacher's cmd/FrankyGo/main.go
// (config.Setup, then a transposition table, then a search, then a
// position) collapsed into one façade, since this core draws the
// Game/Search boundary where the teacher drew a Search/UCI boundary
// instead.
package game

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/wisdomgo/wisdomgo/internal/attacks"
	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/config"
	"github.com/wisdomgo/wisdomgo/internal/evaluator"
	"github.com/wisdomgo/wisdomgo/internal/history"
	myLogging "github.com/wisdomgo/wisdomgo/internal/logging"
	"github.com/wisdomgo/wisdomgo/internal/movegen"
	"github.com/wisdomgo/wisdomgo/internal/search"
	"github.com/wisdomgo/wisdomgo/internal/transpositiontable"
	"github.com/wisdomgo/wisdomgo/internal/types"

	"github.com/op/go-logging"
)

// IllegalMoveError is returned by Move when the given move is not a
// member of the current position's legal move list - a user-input
// error surfaced at the boundary, per spec's error taxonomy.
type IllegalMoveError struct {
	Move types.Move
}

func (e *IllegalMoveError) Error() string {
	return "game: illegal move " + e.Move.String()
}

// Game is the collaborator-facing façade: one Board mutated in place,
// its History, a per-game TranspositionTable and Search, and the
// re-entrancy guard spec.md §5 requires around findBestMove.
type Game struct {
	id uint64

	board *board.Board
	hist  *history.History
	tt    *transpositiontable.Table
	srch  *search.Search
	log   *logging.Logger

	limits search.Limits
	sem    *semaphore.Weighted

	whitePlayer, blackPlayer string
	drawClaimed              bool
}

func newID() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(buf[:])
}

func newGame(b *board.Board) *Game {
	config.Setup()
	tt := transpositiontable.New(config.Settings.Search.TTSizeMB)
	hist := history.New()
	hist.Record(b.Hash(), true)
	g := &Game{
		id:     newID(),
		board:  b,
		hist:   hist,
		tt:     tt,
		srch:   search.New(tt, hist),
		log:    myLogging.GetLog("game"),
		limits: search.NewLimits(),
		sem:    semaphore.NewWeighted(1),
	}
	return g
}

// CreateStandardGame returns a Game starting from the standard initial
// position.
func CreateStandardGame() *Game {
	return newGame(board.NewStandard())
}

// CreateFromFen returns a Game starting from the position fen
// describes, or a *board.FenError if fen is malformed.
func CreateFromFen(fen string) (*Game, error) {
	b, err := board.NewFromFen(fen)
	if err != nil {
		return nil, err
	}
	return newGame(b), nil
}

// CreateFromBoard returns a Game starting from whatever position
// builder describes, or a *board.BuilderError if it is invalid (e.g.
// two kings of the same color).
func CreateFromBoard(builder *board.Builder) (*Game, error) {
	b, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return newGame(b), nil
}

// ID returns a small random identifier an external analytics sink can
// use to correlate games - the resolution of the original's per-game
// UUID tag, without pulling in a UUID library no example in the pack
// uses.
func (g *Game) ID() uint64 {
	return g.id
}

// Board exposes the live position for read-only inspection by a UI.
func (g *Game) Board() *board.Board {
	return g.board
}

// Move applies m - which must be a member of the current legal move
// list - and records the resulting position in the game's History.
// Returns *IllegalMoveError if m is not legal here.
func (g *Game) Move(m types.Move) error {
	side := g.board.SideToMove()
	legal := movegen.GenerateLegal(g.board, side)
	found := false
	for _, lm := range legal {
		if lm == m {
			found = true
			break
		}
	}
	if !found {
		return &IllegalMoveError{Move: m}
	}
	g.board.ApplyMove(side, m)
	g.hist.Record(g.board.Hash(), g.board.HalfMovesSinceProgress() == 0)
	g.drawClaimed = false
	return nil
}

// MapCoordinatesToMove reconstructs the rules-level Move a UI's
// drag-and-drop src->dst gesture describes, disambiguating
// en-passant, castling and promotion against the current legal move
// list. promoted is types.NoPieceType for a non-promoting move. The
// second return value is false if no legal move matches.
func (g *Game) MapCoordinatesToMove(src, dst types.Coord, promoted types.PieceType) (types.Move, bool) {
	side := g.board.SideToMove()
	for _, m := range movegen.GenerateLegal(g.board, side) {
		if m.Src() != src || m.Dst() != dst {
			continue
		}
		if m.IsPromoting() && m.Promoted() != promoted {
			continue
		}
		return m, true
	}
	return types.NoMove, false
}

// FindBestMove runs a synchronous search for who (or the side to move,
// if who is types.ColorNone) using the game's configured limits, and
// logs its progress to log if log is non-nil. It returns
// (types.NoMove, false) if the timer fires before any iteration
// completes - the "None" case spec.md §6 names - or if who has no
// legal move, and also if called re-entrantly while another call is
// already in flight on this Game, which spec.md §5 forbids a
// collaborator from doing.
func (g *Game) FindBestMove(log *logging.Logger, who types.Color) (types.Move, bool) {
	if !g.sem.TryAcquire(1) {
		g.log.Warning("findBestMove called re-entrantly on the same game, ignoring")
		return types.NoMove, false
	}
	defer g.sem.Release(1)

	if who == types.ColorNone {
		who = g.board.SideToMove()
	}
	result := g.srch.FindBestMove(g.board, who, g.limits)
	if log != nil {
		log.Infof("game %x: depth=%d nodes=%d score=%d move=%s timedOut=%t",
			g.id, result.Depth, result.Nodes, result.Score, result.BestMove, result.TimedOut)
	}
	if result.BestMove == types.NoMove {
		return types.NoMove, false
	}
	return result.BestMove, true
}

// SetPlayers records display names for the two sides; purely
// informational, consulted by no rule in the core.
func (g *Game) SetPlayers(white, black string) {
	g.whitePlayer = white
	g.blackPlayer = black
}

// Players returns the names set by SetPlayers.
func (g *Game) Players() (white, black string) {
	return g.whitePlayer, g.blackPlayer
}

// SetMaxDepth overrides the iterative-deepening depth ceiling used by
// FindBestMove.
func (g *Game) SetMaxDepth(depth int) {
	g.limits.MaxDepth = depth
}

// SetSearchTimeout overrides the wall-clock budget used by
// FindBestMove. A zero duration means no timeout.
func (g *Game) SetSearchTimeout(d time.Duration) {
	g.limits.Timeout = d
}

// SetPeriodicFunction installs fn to be called after every completed
// search iteration; nil disables it.
func (g *Game) SetPeriodicFunction(fn func(search.Progress)) {
	g.srch.SetPeriodicFunction(fn)
}

// ClaimDraw accepts a claimable draw (threefold repetition or the
// fifty-move rule) if one is currently available, moving Status from
// ...Reached to ...Accepted. Returns false if no claimable draw exists
// right now - forced draws (fivefold, seventy-five move,
// insufficient material) need no claim and are reported regardless.
func (g *Game) ClaimDraw() bool {
	switch g.Status() {
	case ThreefoldReached, FiftyMovesReached:
		g.drawClaimed = true
		return true
	default:
		return false
	}
}

// Status reports the game's current state per spec.md §6's
// GameStatus enum. Forced draws (fivefold repetition, seventy-five
// moves without progress, insufficient material) are reported as soon
// as they occur; threefold repetition and the fifty-move rule are
// merely *claimable* until ClaimDraw is called, matching standard
// chess rules where those two require a player's claim.
func (g *Game) Status() GameStatus {
	side := g.board.SideToMove()
	inCheck := attacks.IsInCheck(g.board, side)

	if evaluator.IsCheckmate(g.board, side, inCheck) {
		return Checkmate
	}
	if evaluator.IsStalemate(g.board, side, inCheck) {
		return Stalemate
	}
	if evaluator.HasInsufficientMaterial(g.board) {
		return InsufficientMaterialDraw
	}
	hash := g.board.Hash()
	if g.hist.IsNthRepetition(hash, config.Settings.Rules.FivefoldCount) {
		return FivefoldDraw
	}
	if g.hist.HalfMovesWithoutProgress() >= config.Settings.Rules.SeventyFiveMoveLimit {
		return SeventyFiveMovesDraw
	}
	if g.hist.IsNthRepetition(hash, config.Settings.Rules.ThreefoldCount) {
		if g.drawClaimed {
			return ThreefoldAccepted
		}
		return ThreefoldReached
	}
	if g.hist.HalfMovesWithoutProgress() >= config.Settings.Rules.FiftyMoveLimit {
		if g.drawClaimed {
			return FiftyMovesAccepted
		}
		return FiftyMovesReached
	}
	return Playing
}
