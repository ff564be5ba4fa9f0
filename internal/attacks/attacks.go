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

// Package attacks precomputes the square-pair geometry the legal move
// generator needs on top of types' leaper and magic-bitboard slider
// attacks: the squares strictly between any two aligned squares, and the
// full line through any two aligned squares. Both tables drive the
// pin-mask and check-mask construction in internal/movegen.
package attacks

import "github.com/kittygo/kittygo/internal/types"

var between [types.SqLength][types.SqLength]types.Bitboard
var line [types.SqLength][types.SqLength]types.Bitboard

func init() {
	for from := types.Square(0); from < types.SqLength; from++ {
		for to := types.Square(0); to < types.SqLength; to++ {
			between[from][to] = computeBetween(from, to)
			line[from][to] = computeLine(from, to)
		}
	}
}

// computeBetween walks every slider ray from "from" with the board empty
// except for "to", and returns the squares strictly between the two when
// they lie on a common rank, file or diagonal; otherwise BbZero.
func computeBetween(from, to types.Square) types.Bitboard {
	if from == to {
		return types.BbZero
	}
	occ := to.Bb()
	if types.RookAttack(from, occ).Has(to) {
		return types.RookAttack(from, occ) & types.RookAttack(to, from.Bb())
	}
	if types.BishopAttack(from, occ).Has(to) {
		return types.BishopAttack(from, occ) & types.BishopAttack(to, from.Bb())
	}
	return types.BbZero
}

// computeLine returns the full infinite rank, file or diagonal through from
// and to (including both endpoints and every square beyond them to the
// board edge), or BbZero if the two squares don't share one. Used to
// constrain a pinned piece to the only squares it may legally move along.
func computeLine(from, to types.Square) types.Bitboard {
	if from == to {
		return types.BbZero
	}
	if types.RookAttack(from, types.BbZero).Has(to) {
		return (types.RookAttack(from, types.BbZero) & types.RookAttack(to, types.BbZero)) | from.Bb() | to.Bb()
	}
	if types.BishopAttack(from, types.BbZero).Has(to) {
		return (types.BishopAttack(from, types.BbZero) & types.BishopAttack(to, types.BbZero)) | from.Bb() | to.Bb()
	}
	return types.BbZero
}

// Between returns the squares strictly between from and to if they lie on
// a common rank, file or diagonal; otherwise BbZero. Used to build a check
// mask: when in check from a single slider, the legal replies are limited
// to capturing the checker or interposing on Between(king, checker).
func Between(from, to types.Square) types.Bitboard {
	return between[from][to]
}

// Line returns the full rank, file or diagonal running through from and
// to, or BbZero if they don't share one. A piece pinned to its king along
// Line(king, pinner) may only move within that line.
func Line(from, to types.Square) types.Bitboard {
	return line[from][to]
}

// Aligned reports whether from, mid and to all lie on one rank, file or
// diagonal. mid may lie anywhere on that line, not only between from and to.
func Aligned(from, mid, to types.Square) bool {
	return Line(from, to).Has(mid)
}
