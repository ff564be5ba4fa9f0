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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit word, one bit per square, bit i corresponding to
// Square(i).
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var sqBb [SqLength]Bitboard

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		sqBb[sq] = 1 << sq
	}
	for f := FileA; f < FileNone; f++ {
		var bb Bitboard
		for r := Rank8; r < RankNone; r++ {
			bb |= SquareOf(f, r).Bb()
		}
		fileBb[f] = bb
	}
	for r := Rank8; r < RankNone; r++ {
		var bb Bitboard
		for f := FileA; f < FileNone; f++ {
			bb |= SquareOf(f, r).Bb()
		}
		rankBb[r] = bb
	}
	initLeaperAttacks()
}

var (
	fileBb [FileNone]Bitboard
	rankBb [RankNone]Bitboard
)

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets sq's bit in b.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sq.Bb()
	return *b
}

// PopSquare clears sq's bit in b.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b &^= sq.Bb()
	return *b
}

// MoveSquare relocates a set bit from one square to another in one update.
func (b *Bitboard) MoveSquare(from, to Square) Bitboard {
	*b = (*b &^ from.Bb()) | to.Bb()
	return *b
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least-significant set square and clears it in *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// Shift masks used by ShiftBitboard to stop bits wrapping across a file
// edge.
var (
	fileAMaskVar Bitboard
	fileHMaskVar Bitboard
)

func init() {
	fileAMaskVar = FileA.Bb()
	fileHMaskVar = FileH.Bb()
}

// ShiftBitboard shifts every set bit of b by one square in direction d,
// masking off bits that would otherwise wrap around a file or run past a
// rank edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ fileHMaskVar) << 1
	case West:
		return (b &^ fileAMaskVar) >> 1
	case Northeast:
		return (b &^ fileHMaskVar) >> 7
	case Northwest:
		return (b &^ fileAMaskVar) >> 9
	case Southeast:
		return (b &^ fileHMaskVar) << 9
	case Southwest:
		return (b &^ fileAMaskVar) << 7
	default:
		return b
	}
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r < RankNone; r++ {
		for f := FileA; f < FileNone; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// leaper (non-sliding) attack tables: pawn, knight, king.
var (
	pawnAttack   [ColorLength][SqLength]Bitboard
	knightAttack [SqLength]Bitboard
	kingAttack   [SqLength]Bitboard
)

func initLeaperAttacks() {
	knightDirs := [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDirs := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	for sq := Square(0); sq < SqLength; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		for _, d := range knightDirs {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightAttack[sq].PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, d := range kingDirs {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingAttack[sq].PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		// pawn attacks: White attacks toward Rank8 (North), Black toward Rank1 (South).
		if r-1 >= 0 {
			if f-1 >= 0 {
				pawnAttack[White][sq].PushSquare(SquareOf(File(f-1), Rank(r-1)))
			}
			if f+1 < 8 {
				pawnAttack[White][sq].PushSquare(SquareOf(File(f+1), Rank(r-1)))
			}
		}
		if r+1 < 8 {
			if f-1 >= 0 {
				pawnAttack[Black][sq].PushSquare(SquareOf(File(f-1), Rank(r+1)))
			}
			if f+1 < 8 {
				pawnAttack[Black][sq].PushSquare(SquareOf(File(f+1), Rank(r+1)))
			}
		}
	}
}

// PawnAttack returns the squares a pawn of color c on sq attacks (not
// including pushes).
func PawnAttack(c Color, sq Square) Bitboard {
	return pawnAttack[c][sq]
}

// KnightAttack returns the knight-jump squares from sq, edge-clipped.
func KnightAttack(sq Square) Bitboard {
	return knightAttack[sq]
}

// KingAttack returns the eight squares adjacent to sq, edge-clipped.
func KingAttack(sq Square) Bitboard {
	return kingAttack[sq]
}
