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

package types

import "github.com/kittygo/kittygo/assert"

// Square represents exactly one square on a chess board, numbered so that
// A8=0, B8=1, ..., H8=7, A7=8, ..., H1=63. This numbering (top-left origin,
// rank-major) matches the engine's reference bitboard layout and is the
// mirror image of the more common A1=0 convention.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
	SqLength = 64
)

// IsValid checks whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and a rank. Returns SqNone if either
// is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)<<3 | uint8(f))
}

// MakeSquare parses a two character algebraic square (e.g. "e5"). Returns
// SqNone if s does not describe a valid square.
func MakeSquare(s string) Square {
	if assert.DEBUG {
		assert.Assert(len(s) == 2, "square string must be 2 characters long")
	}
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank('8' - s[1])
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// String renders sq in algebraic notation (e.g. "e5"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square one step in direction d from sq, or SqNone if that
// would step off the board or wrap around a file edge.
func (sq Square) To(d Direction) Square {
	switch d {
	case North, South:
		t := int(sq) + int(d)
		if t < 0 || t >= SqLength {
			return SqNone
		}
		return Square(t)
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	t := int(sq) + int(d)
	if t < 0 || t >= SqLength {
		return SqNone
	}
	return Square(t)
}

// NeighbourFilesMask returns the bitboard of the (up to two) files adjacent
// to sq's file, useful for en-passant attacker lookups.
func (sq Square) NeighbourFilesMask() Bitboard {
	var bb Bitboard
	f := sq.FileOf()
	if f > FileA {
		bb |= (f - 1).Bb()
	}
	if f < FileH {
		bb |= (f + 1).Bb()
	}
	return bb
}
