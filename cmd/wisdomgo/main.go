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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wisdomgo/wisdomgo/internal/board"
	"github.com/wisdomgo/wisdomgo/internal/config"
	"github.com/wisdomgo/wisdomgo/internal/game"
	"github.com/wisdomgo/wisdomgo/internal/logging"
	"github.com/wisdomgo/wisdomgo/internal/movegen"
	"github.com/wisdomgo/wisdomgo/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./wisdomgo.toml", "path to configuration settings file")
	fen := flag.String("fen", board.StartFen, "FEN to use for -perft and -depth")
	perft := flag.Int("perft", 0, "runs perft 1..N on -fen and prints nodes/NPS per depth")
	depth := flag.Int("depth", 0, "runs a search to this depth on -fen and prints the best move")
	timeout := flag.Int("timeout", 5, "search timeout in seconds, used with -depth")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	switch {
	case *perft > 0:
		runPerft(*fen, *perft)
	case *depth > 0:
		runSearch(*fen, *depth, *timeout)
	default:
		flag.Usage()
	}
}

func runPerft(fen string, maxDepth int) {
	b, err := board.NewFromFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := movegen.Perft(b, b.SideToMove(), d)
		elapsed := time.Since(start)
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(nodes) / elapsed.Seconds())
		}
		out.Printf("depth %2d: %15d nodes  %10d nps  (%s)\n", d, nodes, nps, elapsed)
	}
}

func runSearch(fen string, depth, timeoutSeconds int) {
	g, err := game.CreateFromFen(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g.SetMaxDepth(depth)
	g.SetSearchTimeout(time.Duration(timeoutSeconds) * time.Second)

	log := logging.GetLog("wisdomgo")
	m, ok := g.FindBestMove(log, types.ColorNone)
	if !ok {
		out.Println("no move found before the timer fired")
		return
	}
	out.Printf("bestmove %s\n", m.String())
}
