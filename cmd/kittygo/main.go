/*
 * kittygo - legal chess move generation and perft engine
 *
 * MIT License
 *
 * Copyright (c) 2026 kittygo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kittygo/kittygo/internal/config"
	"github.com/kittygo/kittygo/internal/logging"
	"github.com/kittygo/kittygo/internal/perft"
	"github.com/kittygo/kittygo/internal/position"
)

var out = message.NewPrinter(language.English)

const version = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to a TOML configuration file")
	logLvl := flag.Int("loglvl", -1, "log level 0(critical)..5(debug), overrides the config file")
	fen := flag.String("fen", position.StartFEN, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft search depth")
	bulk := flag.Bool("bulk", true, "use bulk counting at the last ply")
	detailed := flag.Bool("detailed", false, "classify leaves by capture/en passant/castle/promotion/check")
	parallel := flag.Bool("parallel", false, "split the root moves across a worker pool")
	workers := flag.Int("workers", 0, "worker pool size for -parallel, 0 means all available CPUs")
	dump := flag.Bool("dump", false, "dump the parsed position with go-spew before running perft")
	profileMode := flag.String("profile", "", "enable profiling (cpu|mem|block), writes to the current directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.Setup(*configFile)
	if *logLvl >= 0 {
		config.LogLevel = *logLvl
	}
	logging.GetLog()

	if *profileMode != "" {
		defer startProfile(*profileMode).Stop()
	}

	b, err := position.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *depth < 0 || *depth > perft.MaxDepth {
		fmt.Fprintf(os.Stderr, "kittygo: depth %d out of range (0..%d)\n", *depth, perft.MaxDepth)
		os.Exit(1)
	}

	if *dump {
		spew.Dump(b)
	}

	workerCount := *workers
	if workerCount == 0 {
		workerCount = config.Workers
	}

	runPerft(b, *depth, *bulk, *detailed, *parallel, workerCount)
}

// runPerft prints one line per depth from 1 to depth, of the form
// "depth D, nodes N, time Tms, speed S knps", plus a second breakdown
// line in detailed mode. -parallel additionally divides the root moves
// across a worker pool and, at the requested depth, prints each root
// move's subtree count before that depth's summary line; it prints no
// detailed breakdown.
func runPerft(b position.BoardState, depth int, bulk, detailed, parallel bool, workers int) {
	if parallel {
		for d := 1; d <= depth; d++ {
			start := nowFunc()
			counts, total := perft.Parallel(b, d, bulk, workers)
			elapsed := elapsedSince(start)
			if d == depth {
				for _, c := range counts {
					out.Printf("%s: %d\n", c.Move.String(), c.Nodes)
				}
			}
			reportLine(d, total, elapsed)
		}
		return
	}

	for d := 1; d <= depth; d++ {
		start := nowFunc()
		if detailed {
			res := perft.Detailed(b, d)
			elapsed := elapsedSince(start)
			reportLine(d, res.Nodes, elapsed)
			out.Printf("  captures %d, en passants %d, castles %d, promotions %d\n",
				res.Captures, res.EnPassants, res.Castles, res.Promotions)
			continue
		}
		nodes := perft.Count(b, d, bulk)
		reportLine(d, nodes, elapsedSince(start))
	}
}

func reportLine(depth int, nodes uint64, elapsed time.Duration) {
	ms := elapsed.Milliseconds()
	var knps int64
	if ms > 0 {
		knps = int64(nodes) / ms
	}
	out.Printf("depth %d, nodes %d, time %dms, speed %d knps\n", depth, nodes, ms, knps)
}

// nowFunc/elapsedSince are split out from time.Since so the timing line
// above has a single, obvious seam if a future caller wants to stub the
// clock out in a test.
func nowFunc() time.Time { return time.Now() }
func elapsedSince(t time.Time) time.Duration { return time.Since(t) }

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."))
	case "block":
		return profile.Start(profile.BlockProfile, profile.ProfilePath("."))
	default:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
}

func printVersionInfo() {
	out.Printf("kittygo %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
