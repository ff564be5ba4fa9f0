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

// Piece is a colorless chess piece kind. BoardState keeps one bitboard per
// (Color, Piece) pair, so Piece itself never needs to carry a color.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceNone
	PieceLength = 6
)

// IsValid reports whether p is one of Pawn..King.
func (p Piece) IsValid() bool {
	return p < PieceNone
}

// PromoLabel returns the uppercase SAN letter for a promotion piece
// (Knight, Bishop, Rook, Queen); panics for any other piece.
func (p Piece) PromoLabel() byte {
	switch p {
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	default:
		panic("not a promotable piece")
	}
}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "-"
	}
}

// PieceFromChar parses one FEN placement character (upper- or lowercase) and
// returns the piece kind and color. ok is false for any other character.
func PieceFromChar(c byte) (p Piece, col Color, ok bool) {
	switch c {
	case 'P':
		return Pawn, White, true
	case 'N':
		return Knight, White, true
	case 'B':
		return Bishop, White, true
	case 'R':
		return Rook, White, true
	case 'Q':
		return Queen, White, true
	case 'K':
		return King, White, true
	case 'p':
		return Pawn, Black, true
	case 'n':
		return Knight, Black, true
	case 'b':
		return Bishop, Black, true
	case 'r':
		return Rook, Black, true
	case 'q':
		return Queen, Black, true
	case 'k':
		return King, Black, true
	default:
		return PieceNone, ColorNone, false
	}
}

// FenChar renders (color, piece) as the FEN placement character.
func FenChar(col Color, p Piece) byte {
	var c byte
	switch p {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	default:
		return '.'
	}
	if col == White {
		return c - ('a' - 'A')
	}
	return c
}
