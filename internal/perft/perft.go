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

// Package perft counts the leaves of the legal-move tree rooted at a
// position to a fixed depth, the standard way to validate a move
// generator: the counts at well-known positions and depths are published
// and any divergence pinpoints a generator bug.
package perft

import (
	"runtime"
	"sort"

	"github.com/frankkopp/workerpool"

	"github.com/kittygo/kittygo/internal/movegen"
	"github.com/kittygo/kittygo/internal/position"
	"github.com/kittygo/kittygo/internal/types"
)

// MaxDepth bounds the requested search depth; a MoveList-per-ply recursion
// beyond this is refused rather than silently run for hours.
const MaxDepth = 15

// PerMoveCount is one root move's leaf count, returned by Divide and
// Parallel to report a divergence breakdown (the classic "perft divide").
type PerMoveCount struct {
	Move  types.Move
	Nodes uint64
}

// Result carries a perft run's totals. Captures/EnPassants/Castles are
// only populated when the run was requested in detailed mode; bulk mode
// leaves them zero to avoid the extra per-leaf move classification work.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Count runs a plain perft to depth from b and returns the leaf count.
// When bulk is true, the recursion stops one ply early and counts the
// legal moves at depth 1 directly instead of descending into them, which
// is substantially faster and is how most published perft numbers are
// produced.
func Count(b position.BoardState, depth int, bulk bool) uint64 {
	if depth == 0 {
		return 1
	}
	moves := movegen.GenerateLegalMoves(&b)
	if bulk && depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		child := position.MakeMove(b, moves.At(i))
		nodes += Count(child, depth-1, bulk)
	}
	return nodes
}

// Detailed runs perft to depth and additionally classifies every leaf
// move by kind. It does not use the bulk-count shortcut, since the leaf
// classification needs to inspect each depth-1 move itself.
func Detailed(b position.BoardState, depth int) Result {
	if depth == 0 {
		return Result{Nodes: 1}
	}
	var res Result
	moves := movegen.GenerateLegalMoves(&b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if depth == 1 {
			res.Nodes++
			classify(&res, m, &b)
			continue
		}
		child := position.MakeMove(b, m)
		sub := Detailed(child, depth-1)
		res.Nodes += sub.Nodes
		res.Captures += sub.Captures
		res.EnPassants += sub.EnPassants
		res.Castles += sub.Castles
		res.Promotions += sub.Promotions
		res.Checks += sub.Checks
	}
	return res
}

func classify(res *Result, m types.Move, b *position.BoardState) {
	if m.IsCapture() {
		res.Captures++
	}
	if m.IsEnPassant() {
		res.EnPassants++
	}
	if m.IsCastle() {
		res.Castles++
	}
	if m.IsPromotion() {
		res.Promotions++
	}
	child := position.MakeMove(*b, m)
	if movegen.InCheck(&child) {
		res.Checks++
	}
}

// Divide runs perft to depth and returns one leaf count per root move,
// sorted by move string, plus the grand total. This is "perft divide", the
// standard tool for bisecting a generator bug against a reference engine:
// run Divide on both engines and find the first root move whose subtree
// count disagrees.
func Divide(b position.BoardState, depth int, bulk bool) ([]PerMoveCount, uint64) {
	if depth < 1 {
		return nil, 1
	}
	moves := movegen.GenerateLegalMoves(&b)
	counts := make([]PerMoveCount, 0, moves.Len())
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		child := position.MakeMove(b, m)
		n := Count(child, depth-1, bulk)
		counts = append(counts, PerMoveCount{Move: m, Nodes: n})
		total += n
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Move.String() < counts[j].Move.String() })
	return counts, total
}

// rootJob counts one root move's subtree on a pool worker. MakeMove is
// pure and BoardState is a value, so each job owns its position copy and
// writes only its own nodes field.
type rootJob struct {
	child position.BoardState
	move  types.Move
	depth int
	bulk  bool
	nodes uint64
}

func (j *rootJob) Id() string {
	return j.move.String()
}

func (j *rootJob) Run() error {
	j.nodes = Count(j.child, j.depth, j.bulk)
	return nil
}

// Parallel runs Divide with each root move's subtree counted on its own
// pool worker. Root-move split is the natural place to parallelize a
// search tree: each root move's subtree is independent and, past the
// first couple of plies, big enough to amortize scheduling overhead.
// Returns the same shape as Divide; workers is the pool size
// (runtime.NumCPU() if <= 0).
func Parallel(b position.BoardState, depth int, bulk bool, workers int) ([]PerMoveCount, uint64) {
	if depth < 1 {
		return nil, 1
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	moves := movegen.GenerateLegalMoves(&b)
	n := moves.Len()
	if n == 0 {
		return nil, 0
	}

	pool := workerpool.NewWorkerPool(workers, n, true)
	jobs := make([]*rootJob, n)
	for i := 0; i < n; i++ {
		m := moves.At(i)
		jobs[i] = &rootJob{
			child: position.MakeMove(b, m),
			move:  m,
			depth: depth - 1,
			bulk:  bulk,
		}
		_ = pool.QueueJob(jobs[i])
	}
	_ = pool.Close()
	for {
		if _, done := pool.GetFinishedWait(); done {
			break
		}
	}

	counts := make([]PerMoveCount, n)
	var total uint64
	for i, j := range jobs {
		counts[i] = PerMoveCount{Move: j.move, Nodes: j.nodes}
		total += j.nodes
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Move.String() < counts[j].Move.String() })
	return counts, total
}
