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

// Package config holds globally available configuration variables,
// either defaulted, read from a TOML file, or overridden by command
// line flags.
package config

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the configuration file, relative to the
// working directory unless overridden by a command line flag.
var ConfFile = "./wisdomgo.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	Rules  rulesConfiguration
}

type searchConfiguration struct {
	// MaxDepth is the iterative-deepening depth ceiling used when no
	// caller-supplied limit narrows it further.
	MaxDepth int
	// DefaultTimeoutSeconds is the wall-clock budget search.NewLimits
	// gives every search, whatever its depth limit, until the caller
	// sets an explicit timeout.
	DefaultTimeoutSeconds int
	// TTSizeMB is the transposition table's memory budget.
	TTSizeMB int
	// NodesPollInterval is how many nodes the search visits between
	// checks of the wall-clock deadline (0 checks at every node); the
	// stop flag itself is read at every node.
	NodesPollInterval int
}

type evalConfiguration struct {
	// UsePositionalEval toggles the piece-square-table contribution to
	// the static evaluation, kept switchable the way the teacher keeps
	// every evaluation heuristic behind its own flag.
	UsePositionalEval bool
}

type rulesConfiguration struct {
	// FiftyMoveLimit and SeventyFiveMoveLimit are measured in plies
	// (half-moves), matching History.HalfMovesWithoutProgress.
	FiftyMoveLimit       int
	SeventyFiveMoveLimit int
	ThreefoldCount       int
	FivefoldCount        int
}

func init() {
	Settings.Search.MaxDepth = 64
	Settings.Search.DefaultTimeoutSeconds = 5
	Settings.Search.TTSizeMB = 64
	Settings.Search.NodesPollInterval = 2048

	Settings.Eval.UsePositionalEval = true

	Settings.Rules.FiftyMoveLimit = 100
	Settings.Rules.SeventyFiveMoveLimit = 150
	Settings.Rules.ThreefoldCount = 3
	Settings.Rules.FivefoldCount = 5
}

// Setup reads ConfFile if present and overlays it onto the defaults
// set in init(). Repeated calls after the first are a no-op, the same
// idempotence guard the teacher's config.Setup uses so callers (tests,
// cmd/wisdomgo's main, Game construction) can all call it freely.
func Setup() {
	if initialized {
		return
	}
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			log.Println("config: failed to parse", ConfFile, "- using defaults:", err)
		}
	}
	initialized = true
}

// String prints the current settings via reflection, the way the
// teacher's config.conf.String() does for its own Search/Eval blocks.
func (c *conf) String() string {
	var sb strings.Builder
	dump := func(name string, v interface{}) {
		sb.WriteString(name + ":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			sb.WriteString(fmt.Sprintf("  %-22s %v\n", t.Field(i).Name, f.Interface()))
		}
	}
	dump("Search", &c.Search)
	dump("Eval", &c.Eval)
	dump("Rules", &c.Rules)
	return sb.String()
}
