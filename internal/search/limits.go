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

package search

import (
	"time"

	"github.com/wisdomgo/wisdomgo/internal/config"
)

// Limits bounds one call to FindBestMove: the iteration stops at
// whichever of MaxDepth or Timeout is hit first. Grounded on the
// teacher's search.Limits, trimmed to the two controls spec.md
// actually names - no UCI move-time/nodes/ponder modes here.
type Limits struct {
	MaxDepth int
	Timeout  time.Duration
}

// NewLimits returns Limits seeded from configuration defaults.
func NewLimits() Limits {
	return Limits{
		MaxDepth: config.Settings.Search.MaxDepth,
		Timeout:  time.Duration(config.Settings.Search.DefaultTimeoutSeconds) * time.Second,
	}
}
