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

// Color is one of the two sides, White or Black.
type Color uint8

const (
	White    Color = iota
	Black    Color = iota
	ColorNone
	ColorLength = 2
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// MoveDirection returns the direction a pawn of this color advances in.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PromotionRank returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// PawnRank returns the rank on which this color's pawns start.
func (c Color) PawnRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PawnDoublePushRank returns the rank a pawn of this color lands on after a
// double push from its starting square.
func (c Color) PawnDoublePushRank() Rank {
	if c == White {
		return Rank4
	}
	return Rank5
}
