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

// Package search implements iterative-deepening negamax alpha-beta
// over a single Board, mutated in place through its apply/undo stack.
// Grounded on the teacher's internal/search (Search struct holding a
// *logging.Logger and a *transpositiontable.TtTable, iterativeDeepening
// looping depth=1..max, a single stopFlag polled from inside the
// recursion) but stripped to what spec.md §4.10/§5 actually describes:
// no opening book, no UCI plumbing, no Lazy SMP, one cancellation flag.
package search

import (
	"sync/atomic"
	"time"

	"github.com/op/go-logging"

	"github.com/wisdomgo/wisdomgo/internal/attacks"
	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/config"
	"github.com/wisdomgo/wisdomgo/internal/evaluator"
	"github.com/wisdomgo/wisdomgo/internal/history"
	myLogging "github.com/wisdomgo/wisdomgo/internal/logging"
	"github.com/wisdomgo/wisdomgo/internal/movegen"
	"github.com/wisdomgo/wisdomgo/internal/transpositiontable"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

// Search holds the collaborators one findBestMove call needs: a
// transposition table (caller-owned, not cleared between searches
// unless the caller asks), the game's move history (for draw
// detection), and the single cancellation flag spec.md §5 calls the
// core's only permitted cross-thread touch-point.
type Search struct {
	log *logging.Logger

	tt   *transpositiontable.Table
	hist *history.History

	stop     atomic.Bool
	deadline time.Time

	nodesVisited uint64
	periodic     func(Progress)
}

// New creates a Search using tt for transposition lookups and hist for
// repetition/fifty-move detection. Both are owned by the caller (the
// Game façade) and outlive any one search.
func New(tt *transpositiontable.Table, hist *history.History) *Search {
	return &Search{
		log:  myLogging.GetLog("search"),
		tt:   tt,
		hist: hist,
	}
}

// SetPeriodicFunction installs a callback invoked after every
// completed iteration with the search's current best line. Passing nil
// disables it.
func (s *Search) SetPeriodicFunction(fn func(Progress)) {
	s.periodic = fn
}

// Stop requests cancellation of any search in progress. Safe to call
// from any goroutine; it is the only state this package shares across
// threads, per spec.md §5.
func (s *Search) Stop() {
	s.stop.Store(true)
}

// FindBestMove iteratively deepens from depth 1 to limits.MaxDepth (or
// until limits.Timeout elapses) and returns the best move found by the
// last iteration that ran to completion. If the timer fires before any
// iteration completes, Result.BestMove is NoMove - the caller's signal
// that this was a pathological, too-short search rather than a
// terminal position (callers distinguish that from checkmate/stalemate
// by checking movegen.HasLegalMove themselves first).
func (s *Search) FindBestMove(b *board.Board, who types.Color, limits Limits) Result {
	s.stop.Store(false)
	s.nodesVisited = 0
	start := time.Now()
	if limits.Timeout > 0 {
		s.deadline = start.Add(limits.Timeout)
	} else {
		s.deadline = time.Time{}
	}

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.Settings.Search.MaxDepth
	}

	var last Result
	for depth := 1; depth <= maxDepth; depth++ {
		score := s.alphaBeta(b, who, depth, -evaluator.InitialAlpha, evaluator.InitialAlpha, 0)
		if s.stop.Load() {
			break
		}
		best := s.tt.GetBestMove(b.Hash())
		last = Result{
			BestMove: best,
			Score:    score,
			PV:       s.reconstructPV(b, who, best, depth),
			Depth:    depth,
			Nodes:    s.nodesVisited,
		}
		if s.periodic != nil {
			s.periodic(Progress{
				Depth:    depth,
				Nodes:    s.nodesVisited,
				Elapsed:  time.Since(start),
				BestMove: last.BestMove,
				Score:    last.Score,
			})
		}
		if isDecisiveMate(score) {
			break
		}
	}
	last.TimedOut = s.stop.Load()
	last.Nodes = s.nodesVisited
	return last
}

// alphaBeta implements the pseudocode of spec.md §4.10 exactly: TT
// probe/store around a negamax recursion, move ordering with the TT
// move first then MVV-LVA, and a single cooperative cancellation
// check. depth is plies remaining; ply is the distance from the
// search root, needed both for mate-score scaling and for the TT's own
// distance-from-root/distance-from-position normalization.
func (s *Search) alphaBeta(b *board.Board, side types.Color, depth int, alpha, beta int32, ply int) int32 {
	s.nodesVisited++
	if s.stop.Load() {
		return 0
	}
	if s.shouldPollTimer() && s.deadlineExpired() {
		s.stop.Store(true)
		return 0
	}
	if evaluator.IsDrawByRule(b, s.hist) {
		return 0
	}
	if depth == 0 {
		return evaluator.Evaluate(b)(side)
	}

	hash := b.Hash()
	if entry, ok := s.tt.Probe(hash, ply); ok && int(entry.Depth()) >= depth {
		switch entry.Bound() {
		case transpositiontable.BoundExact:
			return entry.Value()
		case transpositiontable.BoundLower:
			if entry.Value() > alpha {
				alpha = entry.Value()
			}
		case transpositiontable.BoundUpper:
			if entry.Value() < beta {
				beta = entry.Value()
			}
		}
		if alpha >= beta {
			return entry.Value()
		}
	}
	ttMove := s.tt.GetBestMove(hash)

	moves := movegen.GenerateLegal(b, side)
	if moves.Len() == 0 {
		return s.scoreTerminal(b, side, ply)
	}
	orderMoves(moves, b, ttMove)

	bestScore := -evaluator.InitialAlpha
	bestMove := types.NoMove
	bound := transpositiontable.BoundUpper

	for _, m := range moves {
		token := b.ApplyMove(side, m)
		score := -s.alphaBeta(b, side.Invert(), depth-1, -beta, -alpha, ply+1)
		b.UndoMove(side, m, token)

		if s.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
			bound = transpositiontable.BoundExact
		}
		if alpha >= beta {
			bound = transpositiontable.BoundLower
			break
		}
	}

	s.tt.Store(hash, bestMove, int8(depth), bestScore, bound, ply)
	return bestScore
}

// scoreTerminal scores a position in which side has no legal move:
// checkmate if in check, stalemate otherwise - resolved once, here,
// instead of the caller re-running move generation it already did.
func (s *Search) scoreTerminal(b *board.Board, side types.Color, ply int) int32 {
	inCheck := attacks.IsInCheck(b, side)
	return evaluator.EvaluateWithoutLegalMoves(b, side, ply, inCheck)
}

// shouldPollTimer reports whether this node falls on the polling
// interval configured in config.Settings.Search.NodesPollInterval -
// spec.md §4.10's "every K leaf evaluations" discipline, sized so that
// a time.Now() syscall never dominates the search.
func (s *Search) shouldPollTimer() bool {
	interval := uint64(config.Settings.Search.NodesPollInterval)
	if interval == 0 {
		return true
	}
	return s.nodesVisited%interval == 0
}

// deadlineExpired checks the wall-clock half of cancellation; the
// stop-flag half is checked unconditionally by every caller, since
// reading an atomic bool is cheap enough not to need sampling.
func (s *Search) deadlineExpired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// isDecisiveMate reports whether score already represents a forced
// mate close enough to the root that no deeper iteration could find a
// meaningfully better line, letting iterative deepening stop early.
func isDecisiveMate(score int32) bool {
	return score > evaluator.CheckmateScore-int32(config.Settings.Search.MaxDepth)
}

// reconstructPV walks the principal variation by repeatedly probing
// the TT for the best move of each resulting position, stopping at a
// TT miss, a depth bound, or a repeated hash (a cycle the TT's
// replacement scheme could otherwise walk forever). It applies each
// move on b to look up the next one, then undoes every move it applied
// before returning, leaving b exactly as it found it.
func (s *Search) reconstructPV(b *board.Board, side types.Color, root types.Move, maxLen int) movegen.MoveList {
	pv := movegen.NewMoveList()
	if root == types.NoMove {
		return pv
	}

	var tokens []board.UndoToken
	var movers []types.Color
	seen := make(map[uint64]bool)

	who := side
	move := root
	for len(pv) < maxLen && move != types.NoMove {
		hash := b.Hash()
		if seen[hash] {
			break
		}
		seen[hash] = true
		pv.Push(move)

		token := b.ApplyMove(who, move)
		tokens = append(tokens, token)
		movers = append(movers, who)

		who = who.Invert()
		move = s.tt.GetBestMove(b.Hash())
	}

	for i := len(tokens) - 1; i >= 0; i-- {
		b.UndoMove(movers[i], pv[i], tokens[i])
	}
	return pv
}
