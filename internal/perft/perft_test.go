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

// Perft tests against the published node counts from
// https://www.chessprogramming.org/Perft_Results, plus the two
// en-passant discovered-check traps that any generator doing the
// horizontal/diagonal pin check naively gets wrong.
package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kittygo/kittygo/internal/position"
)

func mustFEN(t *testing.T, fen string) position.BoardState {
	t.Helper()
	b, err := position.FromFEN(fen)
	assert.NoError(t, err)
	return b
}

func TestStartPositionPerft(t *testing.T) {
	b := mustFEN(t, position.StartFEN)
	var results = map[int]uint64{
		1: 20,
		4: 197_281,
		6: 119_060_324,
	}
	for depth, want := range results {
		assert.Equal(t, want, Count(b, depth, true), "depth %d", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	b := mustFEN(t, fen)

	res1 := Detailed(b, 1)
	assert.Equal(t, uint64(48), res1.Nodes)
	assert.Equal(t, uint64(8), res1.Captures)
	assert.Equal(t, uint64(2), res1.Castles)

	res4 := Detailed(b, 4)
	assert.Equal(t, uint64(4_085_603), res4.Nodes)
	assert.Equal(t, uint64(757_163), res4.Captures)
	assert.Equal(t, uint64(1_929), res4.EnPassants)
	assert.Equal(t, uint64(128_013), res4.Castles)
	assert.Equal(t, uint64(15_172), res4.Promotions)
}

func TestRookEndgamePerft(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"
	b := mustFEN(t, fen)

	res := Detailed(b, 6)
	assert.Equal(t, uint64(11_030_083), res.Nodes)
	assert.Equal(t, uint64(940_350), res.Captures)
	assert.Equal(t, uint64(33_325), res.EnPassants)
	assert.Equal(t, uint64(7_552), res.Promotions)
	assert.Equal(t, uint64(0), res.Castles)
}

func TestMirrorPositionPerft(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	b := mustFEN(t, fen)

	res := Detailed(b, 5)
	assert.Equal(t, uint64(15_833_292), res.Nodes)
	assert.Equal(t, uint64(2_046_173), res.Captures)
	assert.Equal(t, uint64(6_512), res.EnPassants)
	assert.Equal(t, uint64(329_464), res.Promotions)
}

func TestTalkChessBugPerft(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	b := mustFEN(t, fen)
	assert.Equal(t, uint64(89_941_194), Count(b, 5, true))
}

func TestStevenAltPerft(t *testing.T) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	b := mustFEN(t, fen)
	assert.Equal(t, uint64(164_075_551), Count(b, 5, true))
}

// TestEnPassantHorizontalPin is the rank-pin discovered-check trap: a
// naive generator that only checks diagonal/vertical discovered checks
// after an en-passant capture misses that removing both the capturing
// and captured pawn from the 5th rank at once can expose the king to a
// rook or queen sharing that rank.
func TestEnPassantHorizontalPin(t *testing.T) {
	b := mustFEN(t, "7k/3p1p2/8/r1P1K1Pr/8/8/8/8 b - - 0 1")
	assert.Equal(t, uint64(5_070_440), Count(b, 6, true))
}

// TestEnPassantDiagonalPin is the companion trap along a diagonal rather
// than a rank.
func TestEnPassantDiagonalPin(t *testing.T) {
	b := mustFEN(t, "7k/4p2q/2q5/3P1P2/4K3/8/8/8 b - - 0 1")
	assert.Equal(t, uint64(9_034_785), Count(b, 6, true))
}

// TestPerftSumsOverRootMoves checks the recursive decomposition property:
// perft(S, D) equals the sum, over every move legal at S, of
// perft(makeMove(S, m), D-1).
func TestPerftSumsOverRootMoves(t *testing.T) {
	b := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	const depth = 3
	_, divided := Divide(b, depth, true)
	assert.Equal(t, Count(b, depth, true), divided)
}

func TestBulkAndDetailedAgreeOnNodeCount(t *testing.T) {
	b := mustFEN(t, position.StartFEN)
	bulk := Count(b, 4, true)
	detailed := Detailed(b, 4)
	assert.Equal(t, bulk, detailed.Nodes)
}

func TestParallelAgreesWithSerialDivide(t *testing.T) {
	b := mustFEN(t, position.StartFEN)
	_, serialTotal := Divide(b, 3, true)
	_, parallelTotal := Parallel(b, 3, true, 4)
	assert.Equal(t, serialTotal, parallelTotal)
}
